// Package queue mirrors every recorded access attempt onto an SQS queue
// so downstream consumers (billing, dashboards) see gate activity
// without polling the database.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
)

type SQSPublisher struct {
	client   *sqs.Client
	queueURL string
	logger   *logger.Logger
}

// Message is the envelope pushed onto the gate-events queue.
type Message struct {
	Type         string    `json:"type"`
	BuildingID   string    `json:"building_id"`
	LicensePlate string    `json:"license_plate"`
	IsAuthorized bool      `json:"is_authorized"`
	Confidence   *int      `json:"confidence,omitempty"`
	AccessedAt   time.Time `json:"accessed_at"`
}

func NewSQSPublisher(client *sqs.Client, queueURL string, logger *logger.Logger) *SQSPublisher {
	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
		logger:   logger,
	}
}

// SendAccessEvent mirrors one recorded attempt onto the queue.
func (p *SQSPublisher) SendAccessEvent(ctx context.Context, log *domain.AccessLog) error {
	return p.sendMessage(ctx, Message{
		Type:         "ACCESS_ATTEMPT",
		BuildingID:   log.BuildingID,
		LicensePlate: log.LicensePlate,
		IsAuthorized: log.IsAuthorized,
		Confidence:   log.Confidence,
		AccessedAt:   log.AccessedAt,
	})
}

func (p *SQSPublisher) sendMessage(ctx context.Context, message Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal gate event: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send gate event to SQS: %w", err)
	}

	p.logger.Infof("Published %s event for building %s", message.Type, message.BuildingID)
	return nil
}
