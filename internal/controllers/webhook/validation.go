package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var errNotObject = errors.New("body is not a JSON object")

// mentionPattern matches the placeholders Lark puts in place of @mentions.
var mentionPattern = regexp.MustCompile(`@_(?:user_\d+|all)`)

// parseEvent decodes a request body. An empty body is an empty event and a body
// that is a JSON string is decoded once more.
func parseEvent(body []byte) (*InboundEvent, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return &InboundEvent{}, nil
	}
	if body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return nil, fmt.Errorf("failed to decode string body: %w", err)
		}
		body = bytes.TrimSpace([]byte(inner))
	}
	if len(body) == 0 || body[0] != '{' {
		return nil, errNotObject
	}

	var event InboundEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	return &event, nil
}

// extractKeyword turns message text into a lookup keyword.
func extractKeyword(text string) string {
	text = mentionPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(norm.NFC.String(text))
}
