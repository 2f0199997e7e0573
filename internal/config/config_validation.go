// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-bundle-composer/models"
)

// validate checks that the final merged [StructuredConfig] can be used.
// An unknown environment profile is reported as
// [models.ErrInvalidEnvironmentProfile] so that callers can fail fast on it.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseProfile(cfg.Environment); err != nil {
		return err
	}

	if _, err := models.ParseOutputFormat(cfg.Build.OutputFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBuildConfigs, err)
	}

	if cfg.Build.DevServerPort < 0 || cfg.Build.DevServerPort > 65535 {
		return fmt.Errorf("%w: dev server port %d out of range", ErrInvalidBuildConfigs, cfg.Build.DevServerPort)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	switch cfg.App.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidAppConfigs, cfg.App.LogFormat)
	}

	return nil
}
