// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"time"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the configured mode and blocks until it finishes or ctx
	// is cancelled.
	Run(ctx context.Context) error
}

// Watcher is the interactive dashboard used by watch mode on a terminal.
type Watcher interface {
	Watch(ctx context.Context, interval time.Duration, in io.Reader, out io.Writer) error
}
