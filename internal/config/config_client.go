package config

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout       = 15 * time.Second
	defaultServerRequestTimeout = 30 * time.Second
)

// ClientYoufone holds the settings used by the Youfone adapter.
type ClientYoufone struct {
	Email          string
	Password       string
	Country        string
	BaseURL        string
	Headers        map[string]string
	Debug          bool
	RequestTimeout time.Duration
}

// ClientServer holds the settings of the optional HTTP surface.
type ClientServer struct {
	// HTTPAddress is empty when the server is disabled.
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// RefreshInterval is zero when periodic refresh is disabled.
	RefreshInterval time.Duration
}

// ClientOutput contains rendering settings.
type ClientOutput struct {
	JSON bool
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Youfone ClientYoufone
	Server  ClientServer
	Workers ClientWorkers
	Output  ClientOutput
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration, filling in default timeouts.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Youfone: ClientYoufone{
			Email:          cfg.Youfone.Email,
			Password:       cfg.Youfone.Password,
			Country:        cfg.Youfone.Country,
			BaseURL:        cfg.Youfone.BaseURL,
			Headers:        cfg.Youfone.Headers,
			Debug:          cfg.Youfone.Debug,
			RequestTimeout: cfg.Youfone.RequestTimeout,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Output:  ClientOutput{JSON: cfg.Output.JSON},
	}

	if clientCfg.Youfone.RequestTimeout == 0 {
		clientCfg.Youfone.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Server.RequestTimeout == 0 {
		clientCfg.Server.RequestTimeout = defaultServerRequestTimeout
	}

	return clientCfg
}
