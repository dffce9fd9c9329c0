package keywordtool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const (
	// DefaultURL is the Google keyword search endpoint of Keyword Tool.
	DefaultURL = "https://api.keywordtool.io/v2/search/keywords/google"

	// Locale parameters are fixed: the bridge serves Vietnamese users only.
	language = "vi"
	country  = "vn"

	defaultTimeout = 30 * time.Second
	// Maximum response body size included in error messages
	maxErrorBodySize = 1024
)

// Client for the Keyword Tool API
type Client struct {
	apiURL     *url.URL
	apiKey     string
	timeout    time.Duration
	httpClient *fasthttp.Client
}

// New creates a new Client. A zero timeout falls back to 30s.
func New(apiURL, apiKey string, timeout time.Duration) (*Client, error) {
	if apiURL == "" {
		apiURL = DefaultURL
	}
	parsedURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse keyword tool URL: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiURL:  parsedURL,
		apiKey:  apiKey,
		timeout: timeout,
		httpClient: &fasthttp.Client{
			Name:                "keyword-bridge",
			MaxIdleConnDuration: time.Minute,
		},
	}, nil
}

// Search queries metrics for a single keyword.
// Any JSON reply is returned, including error replies, so the caller can decide
// what a missing result means. Transport failures and non-JSON bodies are errors.
func (c *Client) Search(ctx context.Context, keyword string) (*SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to query keyword metrics: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.searchURL(keyword))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.httpClient.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return nil, fmt.Errorf("failed to query keyword metrics: %w", err)
	}

	var result SearchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode keyword metrics response (status %d): %w: %s",
			resp.StatusCode(), err, truncate(resp.Body()))
	}

	if resp.StatusCode() >= fasthttp.StatusBadRequest {
		zerolog.Ctx(ctx).Warn().
			Int("status", resp.StatusCode()).
			Str("keyword", keyword).
			Msg("Keyword tool returned an error status")
	}
	return &result, nil
}

func (c *Client) searchURL(keyword string) string {
	u := *c.apiURL
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("keyword", keyword)
	q.Set("metrics", "true")
	q.Set("language", language)
	q.Set("country", country)
	u.RawQuery = q.Encode()
	return u.String()
}

// deadline is the sooner of the client timeout and the context deadline.
func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodySize {
		body = body[:maxErrorBodySize]
	}
	return string(body)
}
