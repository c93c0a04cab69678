package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-youfone/models"
)

// AccountService defines the contract for aggregating the customer's account
// data into one [models.AccountSnapshot].
type AccountService interface {
	// GetData logs in, lists the customer's cards and collects usage and plan
	// details for every SIM-only line, in the order the API returned them.
	// All requests run sequentially inside a single session which is closed
	// before GetData returns. Any failure aborts the run; no partial snapshot
	// is returned.
	GetData(ctx context.Context) (*models.AccountSnapshot, error)

	// GetDataResult runs GetData and folds a failure into an error
	// descriptor. It never returns an error itself.
	GetDataResult(ctx context.Context) models.DataResult
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// RefreshJob re-runs the aggregation periodically in the background.
type RefreshJob interface {
	// Start stops any previous run, collects data once immediately and then
	// every interval, passing each result to onResult. Results are not
	// retained between runs.
	Start(ctx context.Context, interval time.Duration, onResult func(models.DataResult))

	// Stop cancels the background goroutine and waits for it to exit.
	// Safe to call when the job is not running.
	Stop()
}
