package config

// validate checks that the final merged [StructuredConfig] satisfies
// startup invariants.
//
// The server fills in defaults for anything not listed here, so only
// contradictory combinations are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Generation.BaseURL != "" && cfg.Generation.Model == "" {
		return ErrInvalidGenerationConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
