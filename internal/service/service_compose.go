// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bundle-composer/internal/adapter"
	"github.com/MKhiriev/go-bundle-composer/internal/composer"
	"github.com/MKhiriev/go-bundle-composer/internal/config"
	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/internal/store"
	"github.com/MKhiriev/go-bundle-composer/models"
)

type composeService struct {
	storage  store.ConfigStorage
	composer *composer.Composer
	runtime  adapter.RuntimeAdapter

	basePath string

	logger *logger.Logger
}

// NewComposeService wires storage, composer and runtime into a
// [ComposeService]. runtime may be nil, in which case Deliver fails with
// [ErrRuntimeNotConfigured].
func NewComposeService(storage store.ConfigStorage, c *composer.Composer, runtime adapter.RuntimeAdapter, cfg config.Build, logger *logger.Logger) ComposeService {
	return &composeService{
		storage:  storage,
		composer: c,
		runtime:  runtime,
		basePath: cfg.BasePath,
		logger:   logger,
	}
}

// ComposerOptions maps the build settings onto composer options. Unset
// settings keep the composer defaults.
func ComposerOptions(cfg config.Build) composer.Options {
	opts := composer.DefaultOptions()
	if cfg.DevServerHost != "" {
		opts.DevServer.Host = cfg.DevServerHost
	}
	if cfg.DevServerPort != 0 {
		opts.DevServer.Port = cfg.DevServerPort
	}
	if len(cfg.VendorModules) > 0 {
		opts.VendorModules = cfg.VendorModules
	}
	return opts
}

func (s *composeService) Compose(ctx context.Context, profile models.Profile) (models.ComposedConfiguration, error) {
	base, err := s.storage.LoadBase(ctx, s.basePath)
	if err != nil {
		return models.ComposedConfiguration{}, fmt.Errorf("load base configuration: %w", err)
	}

	cc, err := s.composer.Compose(base, profile)
	if err != nil {
		s.logger.Err(err).Str("profile", profile.String()).Msg("composition failed")
		return models.ComposedConfiguration{}, err
	}

	s.logger.Debug().
		Str("profile", cc.Profile().String()).
		Str("fingerprint", cc.Fingerprint()).
		Msg("configuration composed")

	return cc, nil
}

func (s *composeService) Export(ctx context.Context, profile models.Profile, path string, format models.OutputFormat) (models.ComposedConfiguration, error) {
	cc, err := s.Compose(ctx, profile)
	if err != nil {
		return models.ComposedConfiguration{}, err
	}

	if err = s.storage.SaveComposed(ctx, path, format, cc); err != nil {
		return models.ComposedConfiguration{}, fmt.Errorf("save composed configuration: %w", err)
	}

	return cc, nil
}

func (s *composeService) Deliver(ctx context.Context, profile models.Profile) (models.ComposedConfiguration, error) {
	if s.runtime == nil {
		return models.ComposedConfiguration{}, ErrRuntimeNotConfigured
	}

	cc, err := s.Compose(ctx, profile)
	if err != nil {
		return models.ComposedConfiguration{}, err
	}

	if err = adapter.Deliver(ctx, s.runtime, cc); err != nil {
		return models.ComposedConfiguration{}, fmt.Errorf("deliver %s configuration: %w", profile, err)
	}

	return cc, nil
}
