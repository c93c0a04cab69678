package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, serverURL string) *Session {
	t.Helper()
	s, err := NewSession(SessionConfig{BaseURLTemplate: serverURL}, logger.Nop())
	require.NoError(t, err)
	return s
}

// ── Configure ────────────────────────────────────────────────────────────────

func TestNewSession_CountryResolution(t *testing.T) {
	tests := []struct {
		name        string
		country     string
		wantCountry string
		wantBaseURL string
	}{
		{name: "netherlands", country: "nl", wantCountry: "nl", wantBaseURL: "https://my.youfone.nl/api"},
		{name: "belgium", country: "be", wantCountry: "be", wantBaseURL: "https://my.youfone.be/api"},
		{name: "unsupported falls back", country: "de", wantCountry: "nl", wantBaseURL: "https://my.youfone.nl/api"},
		{name: "empty falls back", country: "", wantCountry: "nl", wantBaseURL: "https://my.youfone.nl/api"},
		{name: "case sensitive", country: "BE", wantCountry: "nl", wantBaseURL: "https://my.youfone.nl/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(SessionConfig{Country: tt.country}, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCountry, s.Country())
			assert.Equal(t, tt.wantBaseURL, s.BaseURL())
		})
	}
}

func TestNewSession_HeadersDerivedPerCountry(t *testing.T) {
	be, err := NewSession(SessionConfig{Country: "be"}, logger.Nop())
	require.NoError(t, err)
	nl, err := NewSession(SessionConfig{Country: "nl"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "https://my.youfone.be", be.Headers()["Origin"])
	assert.Equal(t, "https://my.youfone.nl", nl.Headers()["Origin"])

	// the shared template must stay untouched
	assert.Equal(t, "https://my.youfone."+CountryToken, headerTemplate["Origin"])
}

func TestNewSession_InvalidBaseURL(t *testing.T) {
	_, err := NewSession(SessionConfig{BaseURLTemplate: "http://"}, logger.Nop())
	require.Error(t, err)
}

func TestNewSession_CustomTemplateWithToken(t *testing.T) {
	s, err := NewSession(SessionConfig{Country: "be", BaseURLTemplate: "http://localhost:8080/" + CountryToken + "/"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/be", s.BaseURL())
}

// ── Open / Close / Use ───────────────────────────────────────────────────────

func TestSession_OpenIsIdempotent(t *testing.T) {
	s := newTestSession(t, "http://localhost:1")

	s.Open()
	first := s.client
	s.Open()

	require.True(t, s.IsOpen())
	assert.Same(t, first, s.client)
}

func TestSession_CloseUnopenedIsNoop(t *testing.T) {
	s := newTestSession(t, "http://localhost:1")

	assert.NotPanics(t, s.Close)
	assert.False(t, s.IsOpen())
}

func TestSession_CloseThenReopen(t *testing.T) {
	s := newTestSession(t, "http://localhost:1")

	s.Open()
	first := s.client
	s.Close()
	s.Close()
	assert.False(t, s.IsOpen())

	s.Open()
	assert.True(t, s.IsOpen())
	assert.NotSame(t, first, s.client)
}

func TestSession_UseClosesOnError(t *testing.T) {
	s := newTestSession(t, "http://localhost:1")
	boom := errors.New("boom")

	err := s.Use(context.Background(), func(ctx context.Context) error {
		assert.True(t, s.IsOpen())
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, s.IsOpen())
}

func TestSession_UseClosesOnPanic(t *testing.T) {
	s := newTestSession(t, "http://localhost:1")

	assert.Panics(t, func() {
		_ = s.Use(context.Background(), func(ctx context.Context) error {
			panic("abandoned")
		})
	})
	assert.False(t, s.IsOpen())
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestSession_SendOpensLazily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	require.False(t, s.IsOpen())

	_, err := s.Send(context.Background(), Request{Path: PathLogin})
	require.NoError(t, err)
	assert.True(t, s.IsOpen())
}

func TestSession_SendBuildsURLAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Card/GetSimOnly", r.URL.Path)
		assert.Equal(t, "https://my.youfone.nl", r.Header.Get("Origin"))
		assert.Equal(t, "extra", r.Header.Get("X-Extra"))
		assert.Equal(t, "per-call", r.Header.Get("X-Call"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"msisdn":"31600000000"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"remainingDays":3}`))
	}))
	defer srv.Close()

	s, err := NewSession(SessionConfig{
		BaseURLTemplate: srv.URL,
		Headers:         map[string]string{"X-Extra": "extra"},
	}, logger.Nop())
	require.NoError(t, err)

	raw, err := s.Send(context.Background(), Request{
		Path:      PathSimOnlyUsage,
		Body:      map[string]any{"msisdn": "31600000000"},
		WantsJSON: true,
		Headers:   map[string]string{"X-Call": "per-call"},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"remainingDays":3}`, string(raw))
}

func TestSession_ExtraHeadersOverrideDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := NewSession(SessionConfig{
		BaseURLTemplate: srv.URL,
		Headers:         map[string]string{"User-Agent": "custom-agent"},
	}, logger.Nop())
	require.NoError(t, err)

	_, err = s.Send(context.Background(), Request{Path: PathLogin})
	require.NoError(t, err)
}

func TestSession_SendUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	_, err := s.Send(context.Background(), Request{Path: PathLogin, WantsJSON: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)

	var failed *RequestFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, PathLogin, failed.Path)
	assert.Equal(t, http.StatusUnauthorized, failed.Status)
	assert.Equal(t, "invalid credentials", failed.Body)
}

func TestSession_SendCustomExpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	raw, err := s.Send(context.Background(), Request{Path: "x", ExpectedStatus: http.StatusNoContent})

	require.NoError(t, err)
	assert.Nil(t, raw)

	_, err = s.Send(context.Background(), Request{Path: "x"})
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestSession_SendWithoutJSONReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ignored":true}`))
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	raw, err := s.Send(context.Background(), Request{Path: "x"})

	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSession_SendEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	raw, err := s.Send(context.Background(), Request{Path: "x", WantsJSON: true})

	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSession_SendMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken":`))
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	_, err := s.Send(context.Background(), Request{Path: "x", WantsJSON: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.False(t, IsRetryable(err))
}

func TestSession_SendGETHasNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	_, err := s.Send(context.Background(), Request{Method: http.MethodGet, Path: "x", Body: map[string]any{"a": 1}})
	require.NoError(t, err)
}

func TestSession_SendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := newTestSession(t, url)
	_, err := s.Send(context.Background(), Request{Path: PathLogin})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.True(t, IsRetryable(err))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, PathLogin, transportErr.Path)
}

func TestSession_SendCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestSession(t, srv.URL)
	_, err := s.Send(ctx, Request{Path: PathLogin})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsRetryable(err))
}

// ── security key ─────────────────────────────────────────────────────────────

func TestSession_SecurityKeyRotatesAndIsEchoed(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			assert.Empty(t, r.Header.Get(SecurityKeyHeader))
			w.Header().Set(SecurityKeyHeader, "key-1")
		case 2:
			assert.Equal(t, "key-1", r.Header.Get(SecurityKeyHeader))
			w.Header().Set(SecurityKeyHeader, "key-2")
		case 3:
			// no new key on this response
			assert.Equal(t, "key-2", r.Header.Get(SecurityKeyHeader))
		default:
			assert.Equal(t, "key-2", r.Header.Get(SecurityKeyHeader))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	ctx := context.Background()

	for _, path := range []string{PathLogin, PathAvailableCards, PathSimOnlyUsage, PathAbonnement} {
		_, err := s.Send(ctx, Request{Path: path})
		require.NoError(t, err)
	}

	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, "key-2", s.SecurityKey())
}

func TestSession_SecurityKeyLearnedFromFailedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(SecurityKeyHeader, "from-error")
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	_, err := s.Send(context.Background(), Request{Path: "x"})

	require.Error(t, err)
	assert.Equal(t, "from-error", s.SecurityKey())
}

func TestSession_SecurityKeySurvivesClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(SecurityKeyHeader, "kept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	_, err := s.Send(context.Background(), Request{Path: "x"})
	require.NoError(t, err)

	s.Close()
	assert.Equal(t, "kept", s.SecurityKey())
}

func TestSession_UseClearsSecurityKey(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set(SecurityKeyHeader, "first-run")
		} else {
			// login of the second run starts without a key
			assert.Empty(t, r.Header.Get(SecurityKeyHeader))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestSession(t, srv.URL)
	login := func(ctx context.Context) error {
		_, err := s.Send(ctx, Request{Path: PathLogin})
		return err
	}

	require.NoError(t, s.Use(context.Background(), login))
	assert.Equal(t, "first-run", s.SecurityKey())

	require.NoError(t, s.Use(context.Background(), login))
	assert.Equal(t, int32(2), calls.Load())
	assert.Empty(t, s.SecurityKey())
}

func TestSession_UseRunsOneAtATime(t *testing.T) {
	s := newTestSession(t, "http://localhost:1")

	var inside, maxInside atomic.Int32
	enter := func(ctx context.Context) error {
		n := inside.Add(1)
		if n > maxInside.Load() {
			maxInside.Store(n)
		}
		time.Sleep(20 * time.Millisecond)
		inside.Add(-1)
		return nil
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Use(context.Background(), enter))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.False(t, s.IsOpen())
}

func TestSession_UseWaitHonorsContext(t *testing.T) {
	s := newTestSession(t, "http://localhost:1")

	entered := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = s.Use(context.Background(), func(ctx context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Use(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
