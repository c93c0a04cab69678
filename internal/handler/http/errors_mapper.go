package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-youfone/internal/adapter"
	"github.com/MKhiriev/go-youfone/internal/service"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{adapter.ErrTransport, http.StatusGatewayTimeout},
	{adapter.ErrRequestFailed, http.StatusBadGateway},
	{adapter.ErrDecode, http.StatusBadGateway},
	{service.ErrMissingCustomerID, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusBadGateway
}
