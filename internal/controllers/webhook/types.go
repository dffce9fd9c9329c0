package webhook

import (
	"bytes"
	"encoding/json"
)

// InboundEvent is a Lark event callback. Both the v1 and v2 envelopes are accepted,
// as is the url verification handshake.
type InboundEvent struct {
	// Challenge is set on the url verification handshake and must be echoed back.
	Challenge string `json:"challenge"`
	// Token is the v1 verification token.
	Token string `json:"token"`
	// Type is the v1 callback type, e.g. "url_verification" or "event_callback".
	Type string `json:"type"`
	// UUID is the v1 event id.
	UUID string `json:"uuid"`
	// Schema is "2.0" for v2 events.
	Schema string       `json:"schema"`
	Header *EventHeader `json:"header"`
	Event  *Event       `json:"event"`
}

// EventHeader is the v2 event envelope header.
type EventHeader struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	Token      string `json:"token"`
	CreateTime string `json:"create_time"`
	AppID      string `json:"app_id"`
	TenantKey  string `json:"tenant_key"`
}

// Event is the event body.
type Event struct {
	Message *Message `json:"message"`
}

// Message is a received chat message.
type Message struct {
	ChatID      string         `json:"chat_id"`
	ChatType    string         `json:"chat_type"`
	MessageID   string         `json:"message_id"`
	MessageType string         `json:"message_type"`
	Content     MessageContent `json:"content"`
}

// MessageContent is the content of a text message. Lark sends it as a JSON encoded
// string; a plain object is accepted too.
type MessageContent struct {
	Text string `json:"text"`
}

// UnmarshalJSON implements json.Unmarshaler. Every field is optional and a field of
// the wrong type reads as empty. Challenge also takes a number or bool verbatim.
func (e *InboundEvent) UnmarshalJSON(data []byte) error {
	*e = InboundEvent{}
	fields := objectFields(data)
	e.Challenge = scalarString(fields["challenge"])
	e.Token = stringField(fields, "token")
	e.Type = stringField(fields, "type")
	e.UUID = stringField(fields, "uuid")
	e.Schema = stringField(fields, "schema")

	if header := objectFields(fields["header"]); header != nil {
		e.Header = &EventHeader{
			EventID:    stringField(header, "event_id"),
			EventType:  stringField(header, "event_type"),
			Token:      stringField(header, "token"),
			CreateTime: stringField(header, "create_time"),
			AppID:      stringField(header, "app_id"),
			TenantKey:  stringField(header, "tenant_key"),
		}
	}

	event := objectFields(fields["event"])
	if event == nil {
		return nil
	}
	e.Event = &Event{}
	if message := objectFields(event["message"]); message != nil {
		e.Event.Message = &Message{
			ChatID:      stringField(message, "chat_id"),
			ChatType:    stringField(message, "chat_type"),
			MessageID:   stringField(message, "message_id"),
			MessageType: stringField(message, "message_type"),
		}
		if raw, ok := message["content"]; ok {
			_ = e.Event.Message.Content.UnmarshalJSON(raw)
		}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A string that does not decode to an
// object, or a text that is not a string, leaves the content empty.
func (m *MessageContent) UnmarshalJSON(data []byte) error {
	*m = MessageContent{}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(s)
	}
	m.Text = stringField(objectFields(data), "text")
	return nil
}

// objectFields splits a JSON object into its raw fields. Anything else yields nil.
func objectFields(data []byte) map[string]json.RawMessage {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

// stringField returns fields[name] when it is a JSON string.
func stringField(fields map[string]json.RawMessage, name string) string {
	var s string
	if raw, ok := fields[name]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// scalarString returns a JSON string as is and a number or bool as its literal text.
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch {
	case raw[0] == '"':
		var s string
		_ = json.Unmarshal(raw, &s)
		return s
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		return string(raw)
	case bytes.Equal(raw, []byte("true")):
		return "true"
	}
	return ""
}

// EventID returns the id used to detect redeliveries.
func (e *InboundEvent) EventID() string {
	if e.Header != nil && e.Header.EventID != "" {
		return e.Header.EventID
	}
	return e.UUID
}

// VerificationToken returns the token the platform signed the event with.
func (e *InboundEvent) VerificationToken() string {
	if e.Header != nil && e.Header.Token != "" {
		return e.Header.Token
	}
	return e.Token
}

// EventType returns the v2 event type, or the v1 callback type.
func (e *InboundEvent) EventType() string {
	if e.Header != nil && e.Header.EventType != "" {
		return e.Header.EventType
	}
	return e.Type
}

// Message returns the received message or an empty one.
func (e *InboundEvent) Message() Message {
	if e.Event == nil || e.Event.Message == nil {
		return Message{}
	}
	return *e.Event.Message
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChallengeResponse answers the url verification handshake.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

// StatusResponse reports how an event was handled.
type StatusResponse struct {
	Status string `json:"status"`
}
