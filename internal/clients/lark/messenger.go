package lark

import (
	"context"

	"github.com/rs/zerolog"
)

// Messenger replies to chats as the bot.
type Messenger struct {
	client *Client
	tokens *TokenCache
}

// NewMessenger creates a Messenger that authenticates with tokens from the cache.
func NewMessenger(client *Client, tokens *TokenCache) *Messenger {
	return &Messenger{
		client: client,
		tokens: tokens,
	}
}

// Reply sends text to the chat. Every failure is returned to the caller.
func (m *Messenger) Reply(ctx context.Context, chatID, text string) error {
	token, err := m.tokens.Token(ctx)
	if err != nil {
		return err
	}

	if err := m.client.SendText(ctx, token, chatID, text); err != nil {
		if IsInvalidTokenError(err) {
			zerolog.Ctx(ctx).Debug().Str("chatId", chatID).Msg("Dropping rejected tenant access token")
			m.tokens.Invalidate()
		}
		return err
	}
	return nil
}
