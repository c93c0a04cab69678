package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered UUIDv7 string for tagging requests,
// falling back to a random UUIDv4 if the clock source fails.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
