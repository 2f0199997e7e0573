// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-bundle-composer/models"
)

// StructuredConfig is the top-level configuration container for the
// composer. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Environment is the raw environment profile signal.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV"`

	// Build holds the inputs and outputs of composition.
	Build Build `envPrefix:"COMPOSER_"`

	// Server holds the read-only HTTP API settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the bundler runtime endpoint settings.
	Adapter Adapter `envPrefix:"RUNTIME_"`

	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`

	// ProfileDefaulted is set by the builder when no source provided
	// Environment and [models.DefaultProfile] was applied.
	ProfileDefaulted bool
}

// Build holds the settings that parameterise composition.
type Build struct {
	// BasePath is the base configuration file (.json, .yaml, .yml, .toml).
	// Empty selects the built-in base.
	// Env: COMPOSER_BASE
	BasePath string `env:"BASE"`

	// OutputPath is where the composed configuration is written.
	// Empty writes to stdout.
	// Env: COMPOSER_OUT
	OutputPath string `env:"OUT"`

	// OutputFormat is "json" or "yaml".
	// Env: COMPOSER_FORMAT
	OutputFormat string `env:"FORMAT"`

	// VendorModules are the third-party modules bundled into the vendor
	// bundle in production.
	// Env: COMPOSER_VENDOR_MODULES (comma separated)
	VendorModules []string `env:"VENDOR_MODULES" envSeparator:","`

	// DevServerHost is the development server bind address.
	// Env: COMPOSER_DEV_SERVER_HOST
	DevServerHost string `env:"DEV_SERVER_HOST"`

	// DevServerPort is the development server port.
	// Env: COMPOSER_DEV_SERVER_PORT
	DevServerPort int `env:"DEV_SERVER_PORT"`
}

// Server holds network and timeout settings for the HTTP API.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the address of the bundler runtime that receives composed
// configurations.
type Adapter struct {
	// HTTPAddress is the runtime base address, with or without scheme.
	// Env: RUNTIME_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single handoff request.
	// Env: RUNTIME_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by the version command and endpoint when the
	// binary carries no linker-injected version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFormat is "json" or "console".
	// Env: APP_LOG_FORMAT
	LogFormat string `env:"LOG_FORMAT"`
}

// Profile returns the parsed environment profile. It is only meaningful on
// a config returned by [Load], which has validated it.
func (cfg *StructuredConfig) Profile() models.Profile {
	return models.Profile(cfg.Environment)
}

// Format returns the parsed output format.
func (cfg *StructuredConfig) Format() models.OutputFormat {
	format, _ := models.ParseOutputFormat(cfg.Build.OutputFormat)
	return format
}

// Load merges and validates the configuration from the following sources,
// highest priority first (the first non-zero value wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// flags may be nil when the caller registered no flags.
func Load(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
