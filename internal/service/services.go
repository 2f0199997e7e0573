package service

import (
	"fmt"

	"github.com/MKhiriev/go-bundle-composer/internal/adapter"
	"github.com/MKhiriev/go-bundle-composer/internal/composer"
	"github.com/MKhiriev/go-bundle-composer/internal/config"
	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/internal/store"
	"github.com/MKhiriev/go-bundle-composer/models"
)

type Services struct {
	ComposeService ComposeService
	AppInfoService AppInfoService
}

// NewServices builds the service layer. runtime may be nil when no bundler
// runtime address is configured.
func NewServices(storages *store.Storages, runtime adapter.RuntimeAdapter, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	c := composer.New(ComposerOptions(cfg.Build), nil)

	return &Services{
		ComposeService: NewComposeService(storages.ConfigStorage, c, runtime, cfg.Build, logger),
		AppInfoService: appInfo,
	}, nil
}
