package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or contradictory.
var (
	// ErrInvalidGenerationConfigs indicates generation settings that
	// cannot work (for example, a base URL without a model).
	ErrInvalidGenerationConfigs = errors.New("invalid generation configuration")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing server URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
