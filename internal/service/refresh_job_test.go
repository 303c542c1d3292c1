package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/jobscout/models"
)

type countingCatalog struct {
	calls atomic.Int64
}

func (c *countingCatalog) List(ctx context.Context) ([]models.Job, error) {
	c.calls.Add(1)
	return nil, nil
}

func (c *countingCatalog) ByID(ctx context.Context, id int64) (models.Job, error) {
	return models.Job{}, nil
}

type fakeAuth struct {
	authed atomic.Bool
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authed.Load() }

func newRefreshJobForTest(catalog CatalogService, auth *fakeAuth) *catalogRefreshJob {
	return &catalogRefreshJob{catalog: catalog, session: auth}
}

func TestCatalogRefreshJob_RefreshesWhileAuthenticated(t *testing.T) {
	catalog := &countingCatalog{}
	auth := &fakeAuth{}
	auth.authed.Store(true)
	job := newRefreshJobForTest(catalog, auth)

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return catalog.calls.Load() >= 2
	}, time.Second, time.Millisecond)
}

func TestCatalogRefreshJob_SkipsWhileUnauthenticated(t *testing.T) {
	catalog := &countingCatalog{}
	auth := &fakeAuth{}
	job := newRefreshJobForTest(catalog, auth)

	job.Start(context.Background(), time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Zero(t, catalog.calls.Load())
}

func TestCatalogRefreshJob_StopTerminatesGoroutine(t *testing.T) {
	catalog := &countingCatalog{}
	auth := &fakeAuth{}
	auth.authed.Store(true)
	job := newRefreshJobForTest(catalog, auth)

	job.Start(context.Background(), time.Millisecond)
	require.Eventually(t, func() bool {
		return catalog.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	job.Stop()
	after := catalog.calls.Load()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, after, catalog.calls.Load())
}

func TestCatalogRefreshJob_StopWithoutStart(t *testing.T) {
	job := newRefreshJobForTest(&countingCatalog{}, &fakeAuth{})

	// Must not panic or block.
	job.Stop()
}

func TestCatalogRefreshJob_ContextCancelStops(t *testing.T) {
	catalog := &countingCatalog{}
	auth := &fakeAuth{}
	auth.authed.Store(true)
	job := newRefreshJobForTest(catalog, auth)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, time.Millisecond)
	require.Eventually(t, func() bool {
		return catalog.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(10 * time.Millisecond)
	after := catalog.calls.Load()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, after, catalog.calls.Load())
}
