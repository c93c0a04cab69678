// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/utils"
)

const defaultRequestTimeout = 15 * time.Second

// SessionConfig holds everything a [Session] derives its endpoint and
// headers from.
type SessionConfig struct {
	// Country selects the API domain. Unsupported values fall back to
	// [DefaultCountry].
	Country string

	// BaseURLTemplate overrides [DefaultBaseURLTemplate]. It may contain
	// [CountryToken].
	BaseURLTemplate string

	// Headers are extra headers carried by the connection context. They take
	// precedence over the default headers.
	Headers map[string]string

	// Debug logs every request and response at debug level.
	Debug bool

	// RequestTimeout bounds a single request. Zero means 15s.
	RequestTimeout time.Duration
}

// Request describes one call made through [Session.Send].
type Request struct {
	// Method defaults to POST.
	Method string
	// Path is relative to the base endpoint, e.g. "Card/GetSimOnly".
	Path string
	// Body is JSON-encoded. Ignored for GET.
	Body any
	// ExpectedStatus defaults to 200.
	ExpectedStatus int
	// WantsJSON makes Send return the response body.
	WantsJSON bool
	// Headers are applied last and override everything else.
	Headers map[string]string
}

// Session owns one lazily created HTTP connection context for the Youfone
// API together with the per-country endpoint, the default headers and the
// security key learned from responses.
//
// Session is safe for concurrent use. Scopes entered through [Session.Use]
// run one at a time: a second Use waits until the first returns, so the
// connection context and the security key belong to a single run.
type Session struct {
	country      string
	baseURL      string
	headers      map[string]string
	extraHeaders map[string]string
	debug        bool
	timeout      time.Duration

	logger *logger.Logger

	// run is held for the duration of Use.
	run chan struct{}

	mu          sync.Mutex
	client      *utils.HTTPClient
	securityKey string
}

// NewSession configures a closed session. The country is resolved with
// [ResolveCountry], the base URL and default headers are derived from it.
// Returns an error when the resulting base URL is not a valid absolute URL.
func NewSession(cfg SessionConfig, logger *logger.Logger) (*Session, error) {
	country := ResolveCountry(cfg.Country)

	template := cfg.BaseURLTemplate
	if template == "" {
		template = DefaultBaseURLTemplate
	}
	baseURL, err := normalizeBaseURL(strings.ReplaceAll(template, CountryToken, country))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	if cfg.Country != country {
		logger.Debug().
			Str("requested", cfg.Country).
			Str("country", country).
			Msg("unsupported country, using default")
	}

	return &Session{
		country:      country,
		baseURL:      baseURL,
		headers:      headersFor(country),
		extraHeaders: maps.Clone(cfg.Headers),
		debug:        cfg.Debug,
		timeout:      timeout,
		logger:       logger,
		run:          make(chan struct{}, 1),
	}, nil
}

// Country returns the resolved country code.
func (s *Session) Country() string {
	return s.country
}

// BaseURL returns the derived base endpoint without a trailing slash.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Headers returns a copy of the session's default headers.
func (s *Session) Headers() map[string]string {
	return maps.Clone(s.headers)
}

// SecurityKey returns the last security key received, or "".
func (s *Session) SecurityKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.securityKey
}

// IsOpen reports whether a connection context currently exists.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil
}

// Open creates the connection context if there is none. Calling it on an
// open session does nothing.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openLocked()
}

func (s *Session) openLocked() *utils.HTTPClient {
	if s.client != nil {
		return s.client
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(s.timeout).
		SetHeaders(s.headers).
		SetHeaders(s.extraHeaders)
	if s.debug {
		registerDebugHooks(client, s.logger)
	}

	s.client = client
	s.logger.Debug().Str("base_url", s.baseURL).Msg("session opened")
	return client
}

// Close releases the connection context. Calling it on a closed session does
// nothing. The security key is kept until the next Use.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return
	}
	s.client.Close()
	s.client = nil
	s.logger.Debug().Msg("session closed")
}

// Use waits for any other Use to finish, clears the security key, opens the
// session, runs fn and closes the session again on every exit path,
// including a panic in fn. It returns the context error if ctx is done
// before the session becomes free.
func (s *Session) Use(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case s.run <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for session: %w", ctx.Err())
	}
	defer func() { <-s.run }()

	s.mu.Lock()
	s.securityKey = ""
	s.mu.Unlock()

	s.Open()
	defer s.Close()

	return fn(ctx)
}

// Send performs one API call, opening the session first if needed.
//
// Headers are merged as defaults, extra session headers, security key, then
// req.Headers. A security key present on the response replaces the stored
// one, whatever the status. When the status equals req.ExpectedStatus the
// body is returned if req.WantsJSON is set (nil for an empty body);
// otherwise a *RequestFailedError is returned. Connection failures come back
// as *TransportError and invalid JSON as *DecodeError.
func (s *Session) Send(ctx context.Context, req Request) (json.RawMessage, error) {
	if req.Method == "" {
		req.Method = http.MethodPost
	}
	if req.ExpectedStatus == 0 {
		req.ExpectedStatus = http.StatusOK
	}

	s.mu.Lock()
	client := s.openLocked()
	securityKey := s.securityKey
	s.mu.Unlock()

	r := client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, utils.NewRequestID())
	if securityKey != "" {
		r.SetHeader(SecurityKeyHeader, securityKey)
	}
	r.SetHeaders(req.Headers)
	if req.Body != nil && req.Method != http.MethodGet {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, s.endpoint(req.Path))
	if err != nil {
		return nil, &TransportError{Path: req.Path, Err: err}
	}

	if key := strings.TrimSpace(resp.Header().Get(SecurityKeyHeader)); key != "" {
		s.mu.Lock()
		s.securityKey = key
		s.mu.Unlock()
	}

	if err = checkStatus(req.Path, resp, req.ExpectedStatus); err != nil {
		return nil, err
	}
	if !req.WantsJSON {
		return nil, nil
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, &DecodeError{Path: req.Path, Err: fmt.Errorf("invalid JSON (%d bytes)", len(body))}
	}

	return json.RawMessage(bytes.Clone(body)), nil
}

func (s *Session) endpoint(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}
