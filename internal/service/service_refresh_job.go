package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-youfone/models"
)

const defaultRefreshInterval = 15 * time.Minute

type refreshJob struct {
	accountService AccountService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls accountService.GetDataResult
// on a ticker. The job is idle until Start is called.
func NewRefreshJob(accountService AccountService) RefreshJob {
	return &refreshJob{accountService: accountService}
}

// Start implements RefreshJob. If interval is zero or negative it defaults to
// 15 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration, onResult func(models.DataResult)) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if onResult == nil {
		onResult = func(models.DataResult) {}
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.run(jobCtx, onResult)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx, onResult)
			}
		}
	}()
}

func (j *refreshJob) run(ctx context.Context, onResult func(models.DataResult)) {
	result := j.accountService.GetDataResult(ctx)
	if ctx.Err() != nil {
		return
	}
	onResult(result)
}

// Stop implements RefreshJob.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
