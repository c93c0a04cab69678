package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/api/version", ok)
	router.Get("/api/data", ok)
	router.Head("/api/data", ok)

	handler := CheckHTTPMethod(router)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{"known path lists methods", http.MethodPost, "/api/data", http.StatusMethodNotAllowed, "GET, HEAD"},
		{"single method", http.MethodDelete, "/api/version", http.StatusMethodNotAllowed, "GET"},
		{"unknown path", http.MethodPost, "/api/other", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}
