package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	c1 := NewHTTPClient()
	c2 := NewHTTPClient()

	require.NotNil(t, c1)
	require.NotNil(t, c2)
	assert.NotSame(t, c1.Client, c2.Client)
	assert.NotSame(t, c1.transport, c2.transport)
}

func TestNewHTTPClient_TransportSettings(t *testing.T) {
	c := NewHTTPClient()

	assert.True(t, c.transport.ForceAttemptHTTP2)
	assert.False(t, c.transport.DisableKeepAlives)
}

func TestHTTPClient_RequestAndClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient()
	resp, err := c.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	assert.NotPanics(t, c.Close)
	assert.NotPanics(t, c.Close)
}
