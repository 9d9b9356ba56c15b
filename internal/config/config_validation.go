package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Secrets have no built-in defaults, so their absence is a hard startup
// error rather than a silent misconfiguration.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Remote.Classifier.APIURL == "" || cfg.Remote.Classifier.Model == "" ||
		cfg.Remote.Classifier.RequestTimeout <= 0 {
		return ErrInvalidClassifierConfigs
	}

	if cfg.Remote.Generator.APIURL == "" || cfg.Remote.Generator.Model == "" ||
		cfg.Remote.Generator.RequestTimeout <= 0 {
		return ErrInvalidGeneratorConfigs
	}

	return nil
}
