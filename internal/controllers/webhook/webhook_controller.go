package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/DIMO-Network/keyword-bridge/internal/celcondition"
	"github.com/DIMO-Network/keyword-bridge/internal/services/keywordreport"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/cel-go/cel"
	"github.com/rs/zerolog"
)

const (
	statusNoKeyword = "No keyword found"
	statusNoData    = "No data"
	statusOK        = "ok"
	statusIgnored   = "Ignored"
	statusDuplicate = "Duplicate event"
)

var errTokenMismatch = errors.New("verification token mismatch")

type KeywordReporter interface {
	Report(ctx context.Context, chatID, keyword string) (keywordreport.Outcome, error)
}

type EventCache interface {
	MarkSeen(id string) bool
	Forget(id string)
}

// EventController answers Lark event callbacks with keyword metrics.
type EventController struct {
	reporter          KeywordReporter
	events            EventCache
	verificationToken string
	filter            cel.Program
}

// NewEventController creates a new EventController. An empty verificationToken
// skips the token check and an empty messageFilter answers every message.
func NewEventController(reporter KeywordReporter, events EventCache, verificationToken, messageFilter string) (*EventController, error) {
	var filter cel.Program
	if messageFilter != "" {
		prg, err := celcondition.PrepareCondition(messageFilter)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare message filter: %w", err)
		}
		filter = prg
	}
	return &EventController{
		reporter:          reporter,
		events:            events,
		verificationToken: verificationToken,
		filter:            filter,
	}, nil
}

// HandleEvent handles one event callback.
func (e *EventController) HandleEvent(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return richerrors.Error{
			ExternalMsg: "Only POST allowed",
			Err:         fmt.Errorf("method %s not allowed", c.Method()),
			Code:        fiber.StatusMethodNotAllowed,
		}
	}

	event, err := parseEvent(c.Body())
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid JSON",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if e.verificationToken != "" &&
		subtle.ConstantTimeCompare([]byte(event.VerificationToken()), []byte(e.verificationToken)) != 1 {
		return richerrors.Error{
			ExternalMsg: "Invalid verification token",
			Err:         errTokenMismatch,
			Code:        fiber.StatusUnauthorized,
		}
	}

	if event.Challenge != "" {
		return c.JSON(ChallengeResponse{Challenge: event.Challenge})
	}

	eventID := event.EventID()
	if e.events.MarkSeen(eventID) {
		zerolog.Ctx(c.UserContext()).Debug().Str("eventId", eventID).Msg("Skipping redelivered event")
		return c.JSON(StatusResponse{Status: statusDuplicate})
	}

	if err := e.handleMessage(c, event); err != nil {
		e.events.Forget(eventID)
		return err
	}
	return nil
}

func (e *EventController) handleMessage(c *fiber.Ctx, event *InboundEvent) error {
	message := event.Message()
	keyword := extractKeyword(message.Content.Text)
	if keyword == "" {
		return c.JSON(StatusResponse{Status: statusNoKeyword})
	}

	if e.filter != nil {
		ok, err := celcondition.EvaluateCondition(e.filter, celcondition.Vars{
			Text:        keyword,
			ChatID:      message.ChatID,
			ChatType:    message.ChatType,
			MessageType: message.MessageType,
			EventType:   event.EventType(),
		})
		if err != nil {
			return richerrors.Error{
				ExternalMsg: "Internal server error",
				Err:         err,
				Code:        fiber.StatusInternalServerError,
			}
		}
		if !ok {
			return c.JSON(StatusResponse{Status: statusIgnored})
		}
	}

	outcome, err := e.reporter.Report(c.UserContext(), message.ChatID, keyword)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Internal server error",
			Err:         fmt.Errorf("failed to report keyword %q to chat %q: %w", keyword, message.ChatID, err),
			Code:        fiber.StatusInternalServerError,
		}
	}
	if outcome == keywordreport.OutcomeNotFound {
		return c.JSON(StatusResponse{Status: statusNoData})
	}
	return c.JSON(StatusResponse{Status: statusOK})
}
