package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	t.Parallel()

	t.Run("lark string content", func(t *testing.T) {
		event, err := parseEvent([]byte(messageEvent))
		require.NoError(t, err)
		assert.Equal(t, "evt-1", event.EventID())
		assert.Equal(t, "vt", event.VerificationToken())
		assert.Equal(t, "im.message.receive_v1", event.EventType())
		assert.Equal(t, "@_user_1 seo ", event.Message().Content.Text)
	})

	t.Run("undecodable string content is empty", func(t *testing.T) {
		event, err := parseEvent([]byte(`{"event":{"message":{"content":"plain text"}}}`))
		require.NoError(t, err)
		assert.Empty(t, event.Message().Content.Text)
	})

	t.Run("v1 envelope", func(t *testing.T) {
		event, err := parseEvent([]byte(`{"uuid":"u-1","token":"vt","type":"event_callback"}`))
		require.NoError(t, err)
		assert.Equal(t, "u-1", event.EventID())
		assert.Equal(t, "vt", event.VerificationToken())
		assert.Equal(t, "event_callback", event.EventType())
	})

	t.Run("string wrapped body", func(t *testing.T) {
		event, err := parseEvent([]byte(`"{\"event\":{\"message\":{\"chat_id\":\"oc\",\"content\":{\"text\":\"seo\"}}}}"`))
		require.NoError(t, err)
		assert.Equal(t, "oc", event.Message().ChatID)
		assert.Equal(t, "seo", event.Message().Content.Text)
	})

	t.Run("empty body", func(t *testing.T) {
		event, err := parseEvent([]byte("  "))
		require.NoError(t, err)
		assert.Equal(t, Message{}, event.Message())
	})

	t.Run("fields of the wrong type read as empty", func(t *testing.T) {
		tests := []struct {
			body      string
			challenge string
			chatID    string
			text      string
		}{
			{body: `{"challenge":123}`, challenge: "123"},
			{body: `{"challenge":true}`, challenge: "true"},
			{body: `{"challenge":{"a":1}}`},
			{body: `{"event":"x"}`},
			{body: `{"event":{"message":[]}}`},
			{body: `{"header":5,"uuid":7}`},
			{body: `{"event":{"message":{"chat_id":5,"content":{"text":"seo"}}}}`, text: "seo"},
			{body: `{"event":{"message":{"chat_id":"oc","content":{"text":42}}}}`, chatID: "oc"},
			{body: `{"event":{"message":{"chat_id":"oc","content":7}}}`, chatID: "oc"},
		}
		for _, tt := range tests {
			event, err := parseEvent([]byte(tt.body))
			require.NoError(t, err, tt.body)
			assert.Equal(t, tt.challenge, event.Challenge, tt.body)
			assert.Equal(t, tt.chatID, event.Message().ChatID, tt.body)
			assert.Equal(t, tt.text, event.Message().Content.Text, tt.body)
			assert.Empty(t, event.EventID(), tt.body)
		}
	})

	t.Run("not an object", func(t *testing.T) {
		for _, body := range []string{"42", "null", `"42"`, `""`, "{"} {
			_, err := parseEvent([]byte(body))
			require.Error(t, err, body)
		}
	})
}

func TestExtractKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "plain", text: "seo", expected: "seo"},
		{name: "surrounding whitespace", text: " \tseo tools\n", expected: "seo tools"},
		{name: "mention", text: "@_user_1 seo", expected: "seo"},
		{name: "mention all", text: "@_all  marketing", expected: "marketing"},
		{name: "only mention", text: "@_user_12", expected: ""},
		{name: "decomposed accents are composed", text: "to\u0301i \u01b0u", expected: "t\u00f3i \u01b0u"},
		{name: "empty", text: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractKeyword(tt.text))
		})
	}
}
