package keywordreport

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/keyword-bridge/internal/clients/keywordtool"
	"github.com/rs/zerolog"
)

// MetricsClient looks up keyword metrics.
type MetricsClient interface {
	Search(ctx context.Context, keyword string) (*keywordtool.SearchResponse, error)
}

// ChatReplier posts a text message into a chat.
type ChatReplier interface {
	Reply(ctx context.Context, chatID, text string) error
}

// Outcome is the result of a report.
type Outcome string

const (
	// OutcomeFound means metrics were found and sent to the chat.
	OutcomeFound Outcome = "found"
	// OutcomeNotFound means the lookup had no result and the chat was told so.
	OutcomeNotFound Outcome = "not_found"
)

// Service looks up a keyword and replies to the chat with its metrics.
type Service struct {
	metrics MetricsClient
	replier ChatReplier
}

// NewService creates a new Service.
func NewService(metrics MetricsClient, replier ChatReplier) *Service {
	return &Service{
		metrics: metrics,
		replier: replier,
	}
}

// Lookup returns the message that a report for keyword would send.
func (s *Service) Lookup(ctx context.Context, keyword string) (string, Outcome, error) {
	resp, err := s.metrics.Search(ctx, keyword)
	if err != nil {
		return "", "", fmt.Errorf("failed to look up keyword metrics: %w", err)
	}
	metrics := resp.First()
	if metrics == nil {
		return NotFoundMessage(keyword), OutcomeNotFound, nil
	}
	return MetricsMessage(keyword, metrics), OutcomeFound, nil
}

// Report looks up keyword and sends the result to chatID.
func (s *Service) Report(ctx context.Context, chatID, keyword string) (Outcome, error) {
	text, outcome, err := s.Lookup(ctx, keyword)
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().Str("keyword", keyword).Str("chatId", chatID).Str("outcome", string(outcome)).Msg("Sending keyword report")
	if err := s.replier.Reply(ctx, chatID, text); err != nil {
		return "", fmt.Errorf("failed to send keyword report: %w", err)
	}
	return outcome, nil
}

// NotFoundMessage is the reply for a keyword without metrics.
func NotFoundMessage(keyword string) string {
	return "Không tìm thấy từ khóa: " + keyword
}

// MetricsMessage renders the metrics reply.
func MetricsMessage(keyword string, m *keywordtool.KeywordMetrics) string {
	return fmt.Sprintf("📈 *%s*\n• Volume: %s\n• CPC: $%s\n• Cạnh tranh: %s",
		keyword, m.SearchVolume, m.CPC.USD, m.Competition)
}
