// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package composer turns a base build configuration and an environment
// profile into a sealed, validated [models.ComposedConfiguration].
//
// Composition is a pure in-memory transformation: the override fragment is a
// function of the profile and the composer options only, the merge follows
// the per-field strategies declared in [models.FieldStrategies], and the
// result is validated before it is returned. Nothing here performs I/O or
// reads process state; the profile is passed in by the caller.
package composer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-bundle-composer/internal/validators"
	"github.com/MKhiriev/go-bundle-composer/models"
)

// ErrInconsistentConfiguration wraps the validator error of a composition
// whose result breaks a profile invariant.
var ErrInconsistentConfiguration = errors.New("composed configuration is inconsistent")

// Options parameterise the override fragments.
type Options struct {
	// DevServer is the development server descriptor.
	DevServer models.DevServer

	// VendorModules are the third-party modules moved into the vendor bundle
	// in production.
	VendorModules []string

	// AppEntry is the name of the application bundle.
	AppEntry string

	// VendorEntry is the name of the vendor bundle and its split directive.
	VendorEntry string

	// RuntimeChunk is the name of the module-loader bootstrap bundle. It must
	// not name an entry point.
	RuntimeChunk string

	// HashLength is the number of digest characters embedded in production
	// filenames.
	HashLength int
}

// DefaultOptions returns the options used by [Compose].
func DefaultOptions() Options {
	return Options{
		DevServer: models.DevServer{
			Host:    "0.0.0.0",
			Port:    8000,
			Hot:     true,
			Overlay: models.Overlay{Errors: true},
			Open:    true,
		},
		VendorModules: []string{"vue"},
		AppEntry:      "app",
		VendorEntry:   "vendor",
		RuntimeChunk:  "runtime",
		HashLength:    8,
	}
}

// Composer composes build configurations for a fixed set of options.
// It holds no mutable state and is safe for concurrent use.
type Composer struct {
	opts      Options
	validator validators.Validator
}

// New builds a Composer. Zero-valued options fall back to [DefaultOptions];
// a nil validator selects [validators.NewComposedValidator].
func New(opts Options, validator validators.Validator) *Composer {
	defaults := DefaultOptions()

	if opts.DevServer == (models.DevServer{}) {
		opts.DevServer = defaults.DevServer
	}
	if len(opts.VendorModules) == 0 {
		opts.VendorModules = defaults.VendorModules
	}
	opts.VendorModules = slices.Clone(opts.VendorModules)
	if opts.AppEntry == "" {
		opts.AppEntry = defaults.AppEntry
	}
	if opts.VendorEntry == "" {
		opts.VendorEntry = defaults.VendorEntry
	}
	if opts.RuntimeChunk == "" {
		opts.RuntimeChunk = defaults.RuntimeChunk
	}
	if opts.HashLength <= 0 {
		opts.HashLength = defaults.HashLength
	}
	if validator == nil {
		validator = validators.NewComposedValidator()
	}

	return &Composer{opts: opts, validator: validator}
}

// Options returns a copy of the options the composer was built with.
func (c *Composer) Options() Options {
	opts := c.opts
	opts.VendorModules = slices.Clone(c.opts.VendorModules)
	return opts
}

// Compose merges the override fragment for profile onto base, seals the
// result and validates it.
//
// An unknown profile fails with an error wrapping
// [models.ErrInvalidEnvironmentProfile] before anything is merged. base is
// never modified.
func (c *Composer) Compose(base models.BuildConfiguration, profile models.Profile) (models.ComposedConfiguration, error) {
	fragment, err := c.Fragment(profile)
	if err != nil {
		return models.ComposedConfiguration{}, err
	}

	merged, err := Merge(base, fragment)
	if err != nil {
		return models.ComposedConfiguration{}, fmt.Errorf("compose %s: %w", profile, err)
	}

	composed, err := models.NewComposedConfiguration(profile, merged)
	if err != nil {
		return models.ComposedConfiguration{}, err
	}

	if err = c.validator.Validate(context.Background(), composed); err != nil {
		return models.ComposedConfiguration{}, fmt.Errorf("%w (%s): %w", ErrInconsistentConfiguration, profile, err)
	}

	return composed, nil
}

// Compose composes base for env with [DefaultOptions].
func Compose(base models.BuildConfiguration, env models.Profile) (models.ComposedConfiguration, error) {
	return New(DefaultOptions(), nil).Compose(base, env)
}
