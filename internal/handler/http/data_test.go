package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-youfone/internal/adapter"
	"github.com/MKhiriev/go-youfone/internal/service"
	"github.com/MKhiriev/go-youfone/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetData_Success(t *testing.T) {
	account := &stubAccountService{snapshot: &models.AccountSnapshot{
		Customer: models.Customer{"customer_id": "123", "has_simonly": true},
		SimInfo: []models.SimInfo{{
			Options:        models.Option{"msisdn": "31600000000"},
			Usage:          []models.UsageSnapshot{{Type: "data", Units: "GB", LeftSideData: 2, RightSideData: 10, Percentage: 20, RemainingDays: 15}},
			AbonnementInfo: map[string]any{"plan_name": "Basic"},
		}},
	}}

	rec := httptest.NewRecorder()
	newTestRouter(account).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, 1, account.calls)
	assert.JSONEq(t, `{
		"customer": {"customer_id": "123", "has_simonly": true},
		"sim_info": [{
			"options": {"msisdn": "31600000000"},
			"usage": [{"is_unlimited": false, "left_side_data": 2, "right_side_data": 10, "percentage": 20, "remaining_days": 15, "type": "data", "units": "GB"}],
			"abonnement_info": {"plan_name": "Basic"}
		}]
	}`, rec.Body.String())
}

func TestGetData_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "login rejected",
			err:        errors.Join(service.ErrLogin, &adapter.RequestFailedError{Path: "authentication/login", Status: 401}),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "transport failure",
			err:        &adapter.TransportError{Path: "Card/GetSimOnly", Err: errors.New("connection refused")},
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "deadline exceeded",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "missing customer id",
			err:        service.ErrMissingCustomerID,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(&stubAccountService{err: tt.err}).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/data", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"error": tt.err.Error()}, body)
		})
	}
}

func TestStatusFromError_WrappedKinds(t *testing.T) {
	wrapped := errors.Join(service.ErrFetchUsage, &adapter.DecodeError{Path: "Card/GetSimOnly", Err: errors.New("bad")})

	assert.Equal(t, http.StatusBadGateway, statusFromError(wrapped))
	assert.Equal(t, http.StatusGatewayTimeout, statusFromError(&adapter.TransportError{Err: context.DeadlineExceeded}))
}
