package hub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kapu/hf-wrapped-go/pkg/errors"
	"go.uber.org/zap"
)

// Client is the thin HTTP transport for the Hub API. There is no retry or
// backoff here: a failed request is surfaced to the caller, which abandons
// the current handle candidate in favor of the next one.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// BaseURL returns the configured Hub root, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON performs a GET against path (relative to the Hub root) and returns
// the body of a 2xx response.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	return c.GetURL(ctx, reqURL)
}

// GetURL performs a GET against an absolute URL, used when the API hands
// back a fully-qualified next-page link.
func (c *Client) GetURL(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, errors.NewAPIError(fmt.Sprintf("hub request failed: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"url":  reqURL,
			"body": truncateBody(body),
		})
	}

	return body, nil
}

func truncateBody(body []byte) string {
	const limit = 500
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}
