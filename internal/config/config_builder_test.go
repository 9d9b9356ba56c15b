package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalValid returns a config carrying only the fields that have no
// defaults, so that build() passes validation.
func minimalValid() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "secret",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/analyzer"},
		},
	}
}

func TestBuild_DefaultsFillMissingFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalValid())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultClassifierAPIURL, cfg.Remote.Classifier.APIURL)
	assert.Equal(t, DefaultClassifierModel, cfg.Remote.Classifier.Model)
	assert.Equal(t, DefaultClassifierTimeout, cfg.Remote.Classifier.RequestTimeout)
	assert.Equal(t, DefaultGeneratorModel, cfg.Remote.Generator.Model)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	explicit := minimalValid()
	explicit.App.TokenDuration = time.Hour
	explicit.Remote.Classifier.Model = "custom/model"

	b := newConfigBuilder()
	b.configs = append(b.configs, explicit)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "custom/model", cfg.Remote.Classifier.Model)
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name:    "missing DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrMissingDatabaseDSN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalValid()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)
			b.withDefaults()

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	assert.Error(t, err)
}
