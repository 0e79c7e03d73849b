// Package snapshot archives gate camera frames to S3 so operators can
// review what the recognizer actually saw for any logged attempt.
package snapshot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Store struct {
	client *s3.Client
	bucket string
}

func NewStore(client *s3.Client, bucket string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
	}
}

// Store uploads one frame and returns the object key recorded on the
// attempt row. Keys are partitioned per building.
func (s *Store) Store(ctx context.Context, buildingID string, image []byte) (string, error) {
	key := fmt.Sprintf("snapshots/%s/%s.jpg", buildingID, uuid.New().String())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot to S3: %w", err)
	}

	return key, nil
}
