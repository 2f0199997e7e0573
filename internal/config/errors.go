package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidBuildConfigs indicates invalid composition settings
	// (for example, an unknown output format or dev server port).
	ErrInvalidBuildConfigs = errors.New("invalid build configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP API settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log format).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
