package service

import (
	"context"
	"sync"
	"time"
)

type catalogRefreshJob struct {
	catalog CatalogService
	session interface{ IsAuthenticated() bool }

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatalogRefreshJob creates a catalogRefreshJob that re-fetches the job
// catalog on a ticker, keeping the local cache warm. Refreshes are skipped
// while the session is unauthenticated. The job is idle until Start is
// called.
func NewCatalogRefreshJob(catalog CatalogService, session SessionService) CatalogRefreshJob {
	return &catalogRefreshJob{catalog: catalog, session: session}
}

// Start implements [CatalogRefreshJob]. It stops any previously running job,
// then launches a background goroutine that refreshes the catalog every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *catalogRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.session.IsAuthenticated() {
					continue
				}
				_, _ = j.catalog.List(jobCtx)
			}
		}
	}()
}

// Stop implements [CatalogRefreshJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *catalogRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
