// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOptions trims surrounding blanks from every string value, including
// the elements of comma-separated lists such as COMPOSER_VENDOR_MODULES.
var envOptions = env.Options{
	FuncMap: map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(""): func(v string) (any, error) {
			return strings.TrimSpace(v), nil
		},
	},
}

// parseEnv populates cfg from the variables named by the `env` and
// `envPrefix` tags of [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, envOptions); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
