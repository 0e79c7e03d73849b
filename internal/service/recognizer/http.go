package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls an ALPR inference endpoint over HTTP. One Client is
// constructed at startup and shared; the recognition call is a bounded,
// synchronous operation that is never retried here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type recognizeResponse struct {
	Detected   bool    `json:"detected"`
	Plate      string  `json:"plate"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error"`
}

// Recognize submits the raw image and returns the best plate candidate.
// A non-nil error means the image could not be processed at all; a nil
// error with empty Text means no plate was found in a readable image.
func (c *Client) Recognize(ctx context.Context, image []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/recognize", bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to build recognition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognition service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read recognition response: %w", err)
	}

	var decoded recognizeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("invalid recognition response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return nil, fmt.Errorf("recognition failed: %s", decoded.Error)
		}
		return nil, fmt.Errorf("recognition service returned status %d", resp.StatusCode)
	}

	if !decoded.Detected {
		return &Result{}, nil
	}

	confidence := int(decoded.Confidence * 100)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return &Result{
		Text:       decoded.Plate,
		Confidence: &confidence,
	}, nil
}
