// Package main runs the webhook as an AWS Lambda behind API Gateway or a
// function URL (payload format 2.0).
//
// APP_SECRET and KEYWORDTOOL_API_KEY may be left empty and read from SSM
// Parameter Store at cold start via SSM_APP_SECRET_PARAM and
// SSM_KEYWORDTOOL_API_KEY_PARAM.
package main

import (
	"context"

	"github.com/DIMO-Network/keyword-bridge/internal/app"
	"github.com/DIMO-Network/keyword-bridge/internal/config"
	"github.com/DIMO-Network/keyword-bridge/internal/secrets"
	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
)

func main() {
	ctx := context.Background()
	logger := logging.GetAndSetDefaultLogger("keyword-bridge")

	settings, err := env.LoadSettings[config.Settings](".env")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load settings")
	}
	if settings.LogLevel != "" {
		level, err := zerolog.ParseLevel(settings.LogLevel)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to parse log level")
		}
		zerolog.SetGlobalLevel(level)
	}
	logger = logging.GetAndSetDefaultLogger(settings.ServiceName)

	if err := resolveSecrets(ctx, &settings); err != nil {
		logger.Fatal().Err(err).Msg("Failed to resolve secrets")
	}

	fiberApp, err := app.CreateServers(&settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create servers")
	}

	adapter := httpadapter.NewV2(adaptor.FiberApp(fiberApp))
	lambda.Start(adapter.ProxyWithContext)
}

func resolveSecrets(ctx context.Context, settings *config.Settings) error {
	if (settings.AppSecret != "" || settings.SSMAppSecretParam == "") &&
		(settings.KeywordToolAPIKey != "" || settings.SSMKeywordToolAPIKeyParam == "") {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	ssmClient := ssm.NewFromConfig(cfg)

	settings.AppSecret, err = secrets.Resolve(ctx, ssmClient, settings.AppSecret, settings.SSMAppSecretParam)
	if err != nil {
		return err
	}
	settings.KeywordToolAPIKey, err = secrets.Resolve(ctx, ssmClient, settings.KeywordToolAPIKey, settings.SSMKeywordToolAPIKeyParam)
	if err != nil {
		return err
	}
	return nil
}
