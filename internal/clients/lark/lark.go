package lark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Larksuite open platform host.
	DefaultBaseURL = "https://open.larksuite.com"

	tenantAccessTokenPath = "/open-apis/auth/v3/tenant_access_token/internal"
	messagesPath          = "/open-apis/im/v1/messages"

	receiveIDTypeChatID = "chat_id"
	msgTypeText         = "text"

	defaultTimeout = 30 * time.Second
	// Maximum response body size to read
	maxResponseBodySize = 1 << 20
	// Maximum response body size included in error messages
	maxErrorBodySize = 1024
)

// Client for the Lark open platform API
type Client struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
}

// New creates a new Client. A nil httpClient gets a client with a 30s timeout.
func New(baseURL, appID, appSecret string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lark base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(parsedURL.String(), "/"),
		appID:      appID,
		appSecret:  appSecret,
		httpClient: httpClient,
	}, nil
}

// AppID returns the app the client authenticates as.
func (c *Client) AppID() string {
	return c.appID
}

// TenantAccessToken requests a new tenant access token.
// A rejected request is not an error: the returned token is empty and the
// rejection surfaces on the first call that uses it.
func (c *Client) TenantAccessToken(ctx context.Context) (*TenantAccessToken, error) {
	reqBody, err := json.Marshal(tenantAccessTokenRequest{
		AppID:     c.appID,
		AppSecret: c.appSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token request: %w", err)
	}

	status, body, err := c.post(ctx, c.baseURL+tenantAccessTokenPath, "", reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to request tenant access token: %w", err)
	}

	var resp tenantAccessTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode tenant access token response (status %d): %w", status, err)
	}

	if status != http.StatusOK || resp.Code != 0 || resp.TenantAccessToken == "" {
		zerolog.Ctx(ctx).Warn().
			Int("status", status).
			Int("code", resp.Code).
			Str("msg", resp.Msg).
			Msg("Lark did not issue a tenant access token")
	}

	return &TenantAccessToken{
		Token:  resp.TenantAccessToken,
		Expire: time.Duration(resp.Expire) * time.Second,
	}, nil
}

// SendText sends a plain text message to a chat.
func (c *Client) SendText(ctx context.Context, token, chatID, text string) error {
	content, err := json.Marshal(textContent{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal message content: %w", err)
	}
	reqBody, err := json.Marshal(sendMessageRequest{
		ReceiveID:     chatID,
		ReceiveIDType: receiveIDTypeChatID,
		MsgType:       msgTypeText,
		Content:       string(content),
		UUID:          uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message request: %w", err)
	}

	sendURL := c.baseURL + messagesPath + "?receive_id_type=" + receiveIDTypeChatID
	status, body, err := c.post(ctx, sendURL, token, reqBody)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	var resp apiResponse
	decodeErr := json.Unmarshal(body, &resp)
	if status >= http.StatusBadRequest || (decodeErr == nil && resp.Code != 0) {
		msg := resp.Msg
		if msg == "" {
			msg = truncate(body)
		}
		return &APIError{StatusCode: status, Code: resp.Code, Msg: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode send message response: %w", decodeErr)
	}
	return nil
}

func (c *Client) post(ctx context.Context, target, token string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodySize {
		body = body[:maxErrorBodySize]
	}
	return string(body)
}
