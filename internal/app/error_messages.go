// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP handlers and the command-line interface.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgUnknownProfile is returned when the requested environment profile
	// is neither "development" nor "production".
	MsgUnknownProfile = "unknown environment profile"

	// MsgBaseUnavailable is returned when the base configuration cannot be
	// found or parsed.
	MsgBaseUnavailable = "base configuration is unavailable"

	// MsgInconsistentConfiguration is returned when composition produced a
	// configuration that breaks the invariants of its profile.
	MsgInconsistentConfiguration = "composed configuration is inconsistent"

	// MsgRuntimeUnavailable is returned when the bundler runtime rejected or
	// could not receive a composed configuration.
	MsgRuntimeUnavailable = "bundler runtime is unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgProfileDefaulted is logged when no source set the environment
	// profile and the default was applied.
	MsgProfileDefaulted = "environment profile not set, defaulting to development"
)
