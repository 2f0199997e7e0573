package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for output formats other than JSON and YAML.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// OutputFormat is the encoding used when exporting a composed configuration.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat parses a format name. Empty input selects JSON.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}
