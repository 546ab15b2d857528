package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultAttemptTimeout bounds each individual endpoint attempt.
const DefaultAttemptTimeout = 10 * time.Second

// LibreTranslateClient is the secondary provider. It walks a fixed ordered
// list of LibreTranslate instances; the first endpoint answering with a
// non-empty translation wins. There are no retries beyond the list and no
// backoff, each endpoint gets exactly one bounded attempt.
type LibreTranslateClient struct {
	endpoints  []string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewLibreTranslateClient(endpoints []string, attemptTimeout time.Duration, logger *logrus.Logger) *LibreTranslateClient {
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &LibreTranslateClient{
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout: attemptTimeout,
		},
		logger: logger,
	}
}

func (c *LibreTranslateClient) Name() string {
	return "libretranslate"
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type libreTranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (c *LibreTranslateClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload := libreTranslateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	var lastErr error
	for _, endpoint := range c.endpoints {
		translated, err := c.attempt(ctx, endpoint, body)
		if err != nil {
			c.logger.WithError(err).WithField("endpoint", endpoint).
				Warn("LibreTranslate endpoint failed")
			lastErr = err
			continue
		}
		c.logger.WithFields(logrus.Fields{
			"endpoint":    endpoint,
			"source_lang": sourceLang,
			"target_lang": targetLang,
		}).Info("Secondary translation completed")
		return translated, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no endpoints configured")
	}
	return "", fmt.Errorf("all endpoints failed: %w", lastErr)
}

func (c *LibreTranslateClient) attempt(ctx context.Context, endpoint string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(preview))
	}

	var result libreTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if strings.TrimSpace(result.TranslatedText) == "" {
		return "", fmt.Errorf("empty translation")
	}
	return result.TranslatedText, nil
}
