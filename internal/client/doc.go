// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// Depending on configuration it fetches the account data once, refreshes it
// periodically (interactive dashboard or JSON lines) or serves it over HTTP
// next to a background refresh loop.
package client
