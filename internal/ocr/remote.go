package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hybridpdf/comparator/internal/logging"
)

// RemoteEngine delegates OCR to an external recognition service over HTTP.
type RemoteEngine struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// recognizeRequest is the JSON payload sent to the recognition service.
type recognizeRequest struct {
	Image  string `json:"image"`  // base64 encoded PNG
	Format string `json:"format"` // always "base64"
}

// recognizeResponse is the JSON envelope returned by the service.
type recognizeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"data"`
}

// NewRemoteEngine creates a client for a remote OCR service.
func NewRemoteEngine(baseURL string) *RemoteEngine {
	return &RemoteEngine{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // recognition can take time
		},
		logger: logging.NewLogger("RemoteOCR"),
	}
}

// Name returns the backend name.
func (c *RemoteEngine) Name() string {
	return "remote"
}

// Recognize sends the image to the recognition service and returns its text.
func (c *RemoteEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	reqBody, err := json.Marshal(recognizeRequest{
		Image:  base64.StdEncoding.EncodeToString(image),
		Format: "base64",
	})
	if err != nil {
		return "", &TranscriptionError{Backend: c.Name(), Cause: err}
	}

	endpoint := fmt.Sprintf("%s/api/ocr/recognize", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", &TranscriptionError{Backend: c.Name(), Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TranscriptionError{Backend: c.Name(), Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TranscriptionError{Backend: c.Name(), Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TranscriptionError{
			Backend: c.Name(),
			Cause:   fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body)),
		}
	}

	var envelope recognizeResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &TranscriptionError{Backend: c.Name(), Cause: err}
	}

	if !envelope.Success {
		return "", &TranscriptionError{
			Backend: c.Name(),
			Cause:   fmt.Errorf("service error: %s", envelope.Message),
		}
	}

	c.logger.Debug("recognition complete",
		"chars", len(envelope.Data.Text), "confidence", envelope.Data.Confidence)

	return envelope.Data.Text, nil
}

// HealthCheck verifies that the recognition service is reachable.
func (c *RemoteEngine) HealthCheck(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/health", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("OCR service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OCR service unhealthy: HTTP %d", resp.StatusCode)
	}

	return nil
}
