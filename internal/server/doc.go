// Package server runs the HTTP surface of the application.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
