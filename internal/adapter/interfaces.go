// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter hands composed configurations over to the bundler runtime.
//
// The primary abstraction is [RuntimeAdapter], which decouples the service
// layer from the protocol the runtime speaks. The package ships an HTTP/REST
// implementation ([NewHTTPRuntimeAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bundle-composer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/runtime_adapter_mock.go -package=mock

// RuntimeAdapter delivers a composed configuration to the bundler runtime.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type RuntimeAdapter interface {
	// Run asks the runtime to perform a one-off build with cc.
	// Used for production configurations.
	Run(ctx context.Context, cc models.ComposedConfiguration) error

	// Serve asks the runtime to start (or reload) its development server
	// with cc.
	Serve(ctx context.Context, cc models.ComposedConfiguration) error
}
