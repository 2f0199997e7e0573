package store

import (
	"context"

	"github.com/MKhiriev/go-bundle-composer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigStorage loads base configurations and persists composed ones.
type ConfigStorage interface {
	// LoadBase reads the base configuration at path. An empty path yields
	// [models.DefaultBase].
	LoadBase(ctx context.Context, path string) (models.BuildConfiguration, error)

	// SaveComposed encodes cc in format and writes it to path. An empty path
	// writes to the storage's output stream.
	SaveComposed(ctx context.Context, path string, format models.OutputFormat, cc models.ComposedConfiguration) error
}
