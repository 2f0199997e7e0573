// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ComposedConfiguration is the sealed result of merging a base configuration
// with a profile's override fragment. It is the only object handed to the
// bundler runtime.
//
// The value is immutable: its configuration is unexported and every accessor
// returns a copy.
type ComposedConfiguration struct {
	profile     Profile
	config      BuildConfiguration
	fingerprint string
}

// NewComposedConfiguration seals cfg for profile. cfg is deep-copied, so
// later changes by the caller are not observed.
func NewComposedConfiguration(profile Profile, cfg BuildConfiguration) (ComposedConfiguration, error) {
	sealed := cfg.Clone()

	doc, err := json.Marshal(struct {
		Profile Profile            `json:"profile"`
		Config  BuildConfiguration `json:"config"`
	}{profile, sealed})
	if err != nil {
		return ComposedConfiguration{}, fmt.Errorf("encode composed configuration: %w", err)
	}

	sum := blake2b.Sum256(doc)

	return ComposedConfiguration{
		profile:     profile,
		config:      sealed,
		fingerprint: hex.EncodeToString(sum[:]),
	}, nil
}

// Profile returns the profile the configuration was composed for.
func (c ComposedConfiguration) Profile() Profile {
	return c.profile
}

// Config returns a deep copy of the composed configuration.
func (c ComposedConfiguration) Config() BuildConfiguration {
	return c.config.Clone()
}

// Fingerprint returns the hex BLAKE2b-256 digest of the canonical encoding of
// profile and configuration. Structurally identical compositions share it.
func (c ComposedConfiguration) Fingerprint() string {
	return c.fingerprint
}

// IsZero reports whether c was never sealed.
func (c ComposedConfiguration) IsZero() bool {
	return c.fingerprint == ""
}

// MarshalJSON encodes the composed configuration exactly as the bundler
// runtime consumes it.
func (c ComposedConfiguration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.config)
}
