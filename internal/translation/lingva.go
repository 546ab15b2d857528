package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultLingvaTimeout = 10 * time.Second

// LingvaClient is the primary remote provider, a Lingva-compatible
// translation front-end queried over plain GET.
type LingvaClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewLingvaClient(baseURL string, logger *logrus.Logger) *LingvaClient {
	if logger == nil {
		logger = logrus.New()
	}
	return &LingvaClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultLingvaTimeout,
		},
		logger: logger,
	}
}

func (c *LingvaClient) Name() string {
	return "lingva"
}

type lingvaResponse struct {
	Translation string `json:"translation"`
}

func (c *LingvaClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	reqURL := fmt.Sprintf("%s/api/v1/%s/%s/%s",
		c.baseURL, sourceLang, targetLang, url.PathEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result lingvaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if strings.TrimSpace(result.Translation) == "" {
		return "", fmt.Errorf("empty translation")
	}

	c.logger.WithFields(logrus.Fields{
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Primary translation completed")

	return result.Translation, nil
}
