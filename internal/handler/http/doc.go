// Package http exposes the aggregated account data over a small REST API
// for embedding applications such as home-automation hubs.
//
// Routes are wired with chi. Every request gets a trace id and an access log
// line, and responses are gzip-compressed when the client accepts it.
package http
