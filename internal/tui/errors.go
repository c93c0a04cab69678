// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// humanizeError replaces low-level network failures with a short hint and
// keeps any other message as is.
func humanizeError(message string) string {
	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the Youfone API is unreachable"
	}

	if strings.Contains(s, "status code 401") || strings.Contains(s, "status code 403") {
		return "Login rejected, check email and password"
	}

	if message == "" {
		return "unknown error"
	}
	return message
}

// ErrNoServices is returned by New when the account services are missing.
var ErrNoServices = errors.New("tui: account services are not configured")
