// Package speech delegates audio transcription to an external
// speech-recognition service.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	ConfidenceHigh = "high"
	ConfidenceLow  = "low"
)

// Result is what the caller gets for any recognizable request. Ambiguous or
// failed recognition is reported as a low-confidence result, not an error;
// errors are reserved for transport-level failures.
type Result struct {
	Text       string `json:"text"`
	Confidence string `json:"confidence"`
	Error      string `json:"error,omitempty"`
}

type Recognizer interface {
	Recognize(ctx context.Context, filename string, audio io.Reader) (*Result, error)
}

// HTTPRecognizer posts the audio clip to a recognition service as multipart
// form data and expects a {text, confidence} JSON reply.
type HTTPRecognizer struct {
	endpoint   string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewHTTPRecognizer(endpoint string, timeout time.Duration, logger *logrus.Logger) *HTTPRecognizer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &HTTPRecognizer{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (r *HTTPRecognizer) Recognize(ctx context.Context, filename string, audio io.Reader) (*Result, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("copy audio: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(preview))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if result.Text == "" {
		result.Confidence = ConfidenceLow
		if result.Error == "" {
			result.Error = "Could not understand audio"
		}
	} else if result.Confidence == "" {
		result.Confidence = ConfidenceHigh
	}

	r.logger.WithFields(logrus.Fields{
		"confidence":  result.Confidence,
		"text_length": len(result.Text),
	}).Info("Speech recognition completed")

	return &result, nil
}
