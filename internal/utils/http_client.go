package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and owns the
// transport so that it can be released with [HTTPClient.Close].
type HTTPClient struct {
	*resty.Client

	transport *http.Transport
}

// NewHTTPClient creates an HTTPClient whose transport keeps connections alive
// between requests and negotiates HTTP/2 when the server offers it.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	return &HTTPClient{
		Client:    resty.New().SetTransport(transport),
		transport: transport,
	}
}

// Close drops every idle connection held by the client. In-flight requests
// are not interrupted.
func (c *HTTPClient) Close() {
	c.transport.CloseIdleConnections()
}
