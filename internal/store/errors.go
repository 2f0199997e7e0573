package store

import "errors"

// Sentinel errors returned by [ConfigStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrBaseNotFound is returned when the base configuration file does not exist.
	ErrBaseNotFound = errors.New("base configuration not found")

	// ErrUnsupportedBaseFormat is returned when the base file extension is not
	// one of .json, .yaml, .yml or .toml.
	ErrUnsupportedBaseFormat = errors.New("unsupported base configuration format")

	// ErrParsingBase is returned when the base file cannot be parsed or does
	// not decode into a build configuration.
	ErrParsingBase = errors.New("failed to parse base configuration")

	// ErrEmptyComposed is returned when asked to save a configuration that was
	// never composed.
	ErrEmptyComposed = errors.New("composed configuration is empty")
)
