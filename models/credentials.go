package models

import "github.com/rs/zerolog"

// Credentials is the email/password pair used for the login call.
// It is built once from configuration and never mutated afterwards.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so that request
// debug logging never prints the password.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", c.Email).Str("password", "***")
}
