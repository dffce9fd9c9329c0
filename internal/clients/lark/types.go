package lark

import (
	"errors"
	"fmt"
	"time"
)

// Lark error codes returned when the bearer token is missing, expired or revoked.
const (
	codeMissingAccessToken = 99991661
	codeInvalidAccessToken = 99991663
	codeInvalidToken       = 99991668
)

// TenantAccessToken is an app-scoped bearer token.
type TenantAccessToken struct {
	Token  string
	Expire time.Duration
}

type tenantAccessTokenRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

type tenantAccessTokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	// Expire is the remaining lifetime in seconds.
	Expire int `json:"expire"`
}

type sendMessageRequest struct {
	ReceiveID     string `json:"receive_id"`
	ReceiveIDType string `json:"receive_id_type"`
	MsgType       string `json:"msg_type"`
	// Content is itself a JSON document encoded as a string.
	Content string `json:"content"`
	UUID    string `json:"uuid,omitempty"`
}

type textContent struct {
	Text string `json:"text"`
}

type apiResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// APIError is returned when a Lark API call is rejected.
type APIError struct {
	StatusCode int
	Code       int
	Msg        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lark API error (status %d, code %d): %s", e.StatusCode, e.Code, e.Msg)
}

// IsInvalidTokenError reports whether err was caused by an unusable bearer token.
func IsInvalidTokenError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case codeMissingAccessToken, codeInvalidAccessToken, codeInvalidToken:
		return true
	}
	return false
}
