// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "context"

// Runner defines the minimal lifecycle contract for the command-line
// application.
type Runner interface {
	// Run parses args, executes the selected command and blocks until it
	// finishes.
	Run(ctx context.Context, args []string) error
}
