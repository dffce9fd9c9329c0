package app

import (
	"fmt"
	"net/http"

	"github.com/DIMO-Network/keyword-bridge/internal/clients/keywordtool"
	"github.com/DIMO-Network/keyword-bridge/internal/clients/lark"
	"github.com/DIMO-Network/keyword-bridge/internal/config"
	"github.com/DIMO-Network/keyword-bridge/internal/controllers/webhook"
	"github.com/DIMO-Network/keyword-bridge/internal/services/eventcache"
	"github.com/DIMO-Network/keyword-bridge/internal/services/keywordreport"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// Services holds the upstream clients shared by every entrypoint.
type Services struct {
	Reports   *keywordreport.Service
	Messenger *lark.Messenger
}

// NewServices creates the Keyword Tool and Lark clients from settings.
func NewServices(settings *config.Settings) (*Services, error) {
	metrics, err := keywordtool.New(settings.KeywordToolURL, settings.KeywordToolAPIKey, settings.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword tool client: %w", err)
	}

	var httpClient *http.Client
	if settings.HTTPTimeout > 0 {
		httpClient = &http.Client{Timeout: settings.HTTPTimeout}
	}
	larkClient, err := lark.New(settings.LarkBaseURL, settings.AppID, settings.AppSecret, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create lark client: %w", err)
	}
	messenger := lark.NewMessenger(larkClient, lark.NewTokenCache(larkClient, settings.TokenExpiryMargin))

	return &Services{
		Reports:   keywordreport.NewService(metrics, messenger),
		Messenger: messenger,
	}, nil
}

func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	services, err := NewServices(settings)
	if err != nil {
		return nil, err
	}

	events := eventcache.NewEventCache(settings.EventDedupeTTL)

	app, err := CreateFiberApp(logger, services.Reports, events, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the routes.
func CreateFiberApp(logger zerolog.Logger, reporter webhook.KeywordReporter, events webhook.EventCache, settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting Keyword Bridge...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)
	app.Use(recover.New())

	eventController, err := webhook.NewEventController(reporter, events, settings.VerificationToken, settings.MessageFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to create event controller: %w", err)
	}
	logger.Info().Msg("Registering routes...")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "ok",
		})
	})

	// Lark event callbacks
	app.All("/api/webhook", eventController.HandleEvent)

	return app, nil
}
