package service

import (
	"context"

	"github.com/MKhiriev/go-bundle-composer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ComposeService loads the base configuration and composes it for a profile.
// Every call reads the base afresh.
type ComposeService interface {
	// Compose returns the sealed configuration for profile.
	Compose(ctx context.Context, profile models.Profile) (models.ComposedConfiguration, error)

	// Export composes for profile and writes the result to path in format.
	// An empty path writes to the storage's output stream.
	Export(ctx context.Context, profile models.Profile, path string, format models.OutputFormat) (models.ComposedConfiguration, error)

	// Deliver composes for profile and hands the result to the bundler
	// runtime.
	Deliver(ctx context.Context, profile models.Profile) (models.ComposedConfiguration, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
