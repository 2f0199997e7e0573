// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrInvalidEnvironmentProfile is returned when the environment signal holds
// a value other than [Development] or [Production]. There is no fallback
// variant: the error must be surfaced before any composition starts.
var ErrInvalidEnvironmentProfile = errors.New("invalid environment profile")

// Profile selects one of the two mutually exclusive build variants.
// It is read once at the process entry boundary and never changes afterwards.
type Profile string

const (
	// Development produces an interactive build: eval source maps, dev server,
	// hot reload and in-memory style injection.
	Development Profile = "development"

	// Production produces an optimized build: vendor/runtime splitting,
	// content-hashed filenames and extracted stylesheets.
	Production Profile = "production"
)

// DefaultProfile is used when the environment signal is absent.
// An empty signal is not an error; a non-empty unknown one is.
const DefaultProfile = Development

// Profiles lists every recognized profile in a stable order.
var Profiles = []Profile{Development, Production}

// ParseProfile converts a raw environment signal into a [Profile].
// Matching is exact; any other value yields [ErrInvalidEnvironmentProfile].
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case Development:
		return Development, nil
	case Production:
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidEnvironmentProfile, s, Development, Production)
	}
}

// String implements fmt.Stringer.
func (p Profile) String() string {
	return string(p)
}

// IsValid reports whether p is one of the recognized profiles.
func (p Profile) IsValid() bool {
	return p == Development || p == Production
}
