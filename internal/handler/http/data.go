package http

import (
	"net/http"

	"github.com/MKhiriev/go-youfone/internal/adapter"
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/utils"
	"github.com/MKhiriev/go-youfone/models"
)

// getData runs one aggregation per request. Failures are written as the
// {"error": "..."} descriptor with a gateway status.
func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot, err := h.services.AccountService.GetData(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Warn().
			Err(err).
			Bool("retryable", adapter.IsRetryable(err)).
			Int("status", status).
			Msg("collecting account data failed")

		if _, writeErr := utils.WriteJSON(w, models.NewErrorResult(err), status); writeErr != nil {
			log.Err(writeErr).Msg("error writing response")
		}
		return
	}

	if _, err := utils.WriteJSON(w, models.NewDataResult(snapshot), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
