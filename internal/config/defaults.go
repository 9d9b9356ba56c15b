package config

import "time"

// Built-in fallback values applied when no other configuration source sets a
// field. Secrets (token sign key, API credentials, DSN) deliberately have no
// defaults and must always be provided explicitly.
const (
	DefaultHTTPAddress    = "0.0.0.0:8000"
	DefaultRequestTimeout = 150 * time.Second

	DefaultTokenIssuer   = "hybrid-analyzer"
	DefaultTokenDuration = 24 * time.Hour

	DefaultClassifierAPIURL  = "https://api-inference.huggingface.co/models"
	DefaultClassifierModel   = "facebook/bart-large-mnli"
	DefaultClassifierTimeout = 60 * time.Second

	DefaultGeneratorAPIURL  = "https://generativelanguage.googleapis.com"
	DefaultGeneratorModel   = "gemini-2.5-flash"
	DefaultGeneratorTimeout = 60 * time.Second
)

// DefaultCORSAllowedOrigins lists the development front-end origins allowed
// when APP_CORS_ALLOWED_ORIGINS is not set.
var DefaultCORSAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        DefaultTokenIssuer,
			TokenDuration:      DefaultTokenDuration,
			CORSAllowedOrigins: DefaultCORSAllowedOrigins,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Remote: Remote{
			Classifier: Classifier{
				APIURL:         DefaultClassifierAPIURL,
				Model:          DefaultClassifierModel,
				RequestTimeout: DefaultClassifierTimeout,
			},
			Generator: Generator{
				APIURL:         DefaultGeneratorAPIURL,
				Model:          DefaultGeneratorModel,
				RequestTimeout: DefaultGeneratorTimeout,
			},
		},
	}
}
