package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"keyword-bridge"`

	KeywordToolAPIKey string `env:"KEYWORDTOOL_API_KEY"`
	KeywordToolURL    string `env:"KEYWORDTOOL_URL" envDefault:"https://api.keywordtool.io/v2/search/keywords/google"`

	AppID       string `env:"APP_ID"`
	AppSecret   string `env:"APP_SECRET"`
	LarkBaseURL string `env:"LARK_BASE_URL" envDefault:"https://open.larksuite.com"`

	// VerificationToken, when set, must match the token carried by every inbound event.
	VerificationToken string `env:"VERIFICATION_TOKEN"`
	// MessageFilter is an optional CEL expression; events it rejects are acknowledged and ignored.
	MessageFilter string `env:"MESSAGE_FILTER"`

	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	TokenExpiryMargin time.Duration `env:"TOKEN_EXPIRY_MARGIN" envDefault:"5m"`
	EventDedupeTTL    time.Duration `env:"EVENT_DEDUPE_TTL" envDefault:"1h"`

	// SSM parameter names used by the lambda build when the plain values are empty.
	SSMAppSecretParam         string `env:"SSM_APP_SECRET_PARAM"`
	SSMKeywordToolAPIKeyParam string `env:"SSM_KEYWORDTOOL_API_KEY_PARAM"`
}
