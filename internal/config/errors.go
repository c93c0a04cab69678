package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidCredentialsConfigs indicates a missing email or password.
	ErrInvalidCredentialsConfigs = errors.New("invalid youfone credentials configuration")
	// ErrInvalidYoufoneConfigs indicates invalid API client settings
	// (for example, a negative request timeout).
	ErrInvalidYoufoneConfigs = errors.New("invalid youfone configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
