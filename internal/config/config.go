// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging flags, environment variables and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Youfone holds account credentials and API client settings.
	Youfone Youfone `envPrefix:"YOUFONE_"`

	// Server holds settings of the optional HTTP surface.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background refresh settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Output controls how fetched data is printed.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Youfone holds the account and API client settings.
type Youfone struct {
	// Email is the account login.
	// Env: YOUFONE_EMAIL
	Email string `env:"EMAIL"`

	// Password is the account password. Must be kept confidential.
	// Env: YOUFONE_PASSWORD
	Password string `env:"PASSWORD"`

	// Country is "nl" or "be". Anything else falls back to "nl".
	// Env: YOUFONE_COUNTRY
	Country string `env:"COUNTRY"`

	// BaseURL overrides the API base URL template. "{country}" is replaced
	// by the country code.
	// Env: YOUFONE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Headers are extra HTTP headers sent with every request,
	// e.g. "X-Client:ha,X-Debug:1".
	// Env: YOUFONE_HEADERS
	Headers map[string]string `env:"HEADERS"`

	// Debug logs every request and response.
	// Env: YOUFONE_DEBUG
	Debug bool `env:"DEBUG"`

	// RequestTimeout bounds one API request (e.g. "10s").
	// Env: YOUFONE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the HTTP surface.
type Server struct {
	// HTTPAddress is the TCP address to listen on, in "host:port" format.
	// Empty disables the server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval re-fetches account data periodically when non-zero.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Output controls rendering of fetched data.
type Output struct {
	// JSON prints the raw result as JSON instead of the usage table.
	// Env: OUTPUT_JSON
	JSON bool `env:"JSON"`
}

// GetStructuredConfig loads and merges the configuration from flags,
// environment variables and the JSON file, then validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(ParseFlags()).
		withEnv().
		withJSON().
		build()
}
