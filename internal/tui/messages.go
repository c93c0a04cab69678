package tui

import (
	"time"

	"github.com/MKhiriev/go-youfone/models"
)

// resultMsg delivers a finished aggregation run to the dashboard.
type resultMsg struct {
	result models.DataResult
	at     time.Time
}
