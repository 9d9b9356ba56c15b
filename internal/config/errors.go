package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source. Without it the service cannot issue or
	// verify tokens.
	ErrMissingTokenSignKey = errors.New("missing token sign key")

	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("missing database DSN")

	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidClassifierConfigs indicates invalid classification client
	// settings (for example, missing API URL, model, or timeout).
	ErrInvalidClassifierConfigs = errors.New("invalid classifier configuration")

	// ErrInvalidGeneratorConfigs indicates invalid generation client
	// settings (for example, missing API URL, model, or timeout).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
)
