// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the composer command-line application.
//
// It wires configuration, storages, the bundler runtime adapter and services
// into cobra commands: compose, describe, deliver, serve and version.
package cli
