package handler

import (
	"github.com/MKhiriev/go-youfone/internal/config"
	"github.com/MKhiriev/go-youfone/internal/handler/http"
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled in cfg.
func NewHandlers(services *service.Services, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating http handler")
	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
