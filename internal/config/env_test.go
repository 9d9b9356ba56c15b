package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllSections(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "super-secret")
	t.Setenv("APP_TOKEN_ISSUER", "test-issuer")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.local,http://b.local")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "2m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/analyzer")
	t.Setenv("REMOTE_CLASSIFIER_API_URL", "https://classifier.local")
	t.Setenv("REMOTE_CLASSIFIER_MODEL", "test/model")
	t.Setenv("REMOTE_CLASSIFIER_API_TOKEN", "hf-token")
	t.Setenv("REMOTE_CLASSIFIER_REQUEST_TIMEOUT", "45s")
	t.Setenv("REMOTE_GENERATOR_API_URL", "https://generator.local")
	t.Setenv("REMOTE_GENERATOR_MODEL", "gen-model")
	t.Setenv("REMOTE_GENERATOR_API_KEY", "gm-key")
	t.Setenv("REMOTE_GENERATOR_REQUEST_TIMEOUT", "30s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "super-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://u:p@localhost:5432/analyzer", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://classifier.local", cfg.Remote.Classifier.APIURL)
	assert.Equal(t, "test/model", cfg.Remote.Classifier.Model)
	assert.Equal(t, "hf-token", cfg.Remote.Classifier.APIToken)
	assert.Equal(t, 45*time.Second, cfg.Remote.Classifier.RequestTimeout)
	assert.Equal(t, "https://generator.local", cfg.Remote.Generator.APIURL)
	assert.Equal(t, "gen-model", cfg.Remote.Generator.Model)
	assert.Equal(t, "gm-key", cfg.Remote.Generator.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Remote.Generator.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Zero(t, cfg.App.TokenDuration)
}
