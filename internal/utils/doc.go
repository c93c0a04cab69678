// Package utils provides small helpers shared across the application:
// key normalization for API records, the resty-backed HTTP client and JSON
// response writing.
package utils
