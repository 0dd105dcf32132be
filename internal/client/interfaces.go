// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run executes the command named by args[0] and returns once it is done.
	Run(ctx context.Context, args []string) error
}

// Browser runs the interactive blog browser.
type Browser interface {
	Browse(ctx context.Context) error
}
