package http

import (
	"net/http"

	"github.com/MKhiriev/go-youfone/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"

	maxTraceIDLength = 128
)

// withTraceID attaches a child logger carrying trace_id to the request
// context. The id is taken from X-Trace-ID, then X-Request-ID, and is
// generated when neither is usable.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)
		if traceID == "" {
			traceID = utils.NewRequestID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func incomingTraceID(r *http.Request) string {
	for _, header := range []string{traceIDHeader, requestIDHeader} {
		if id := r.Header.Get(header); id != "" && len(id) <= maxTraceIDLength {
			return id
		}
	}
	return ""
}
