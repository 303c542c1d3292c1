package service

import (
	"context"
	"errors"
	"strings"

	"github.com/avolkov/jobscout/internal/adapter"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/internal/store"
	"github.com/avolkov/jobscout/models"
)

// Filters is the client-side predicate set for the job list. The zero value
// matches everything.
type Filters struct {
	// SearchTerm matches case-insensitively against title, company and
	// description.
	SearchTerm string

	// RemoteOnly keeps only remote postings when true.
	RemoteOnly bool

	// JobType keeps only exact matches when non-empty.
	JobType string
}

// IsZero reports whether every predicate is at its default.
func (f Filters) IsZero() bool {
	return f.SearchTerm == "" && !f.RemoteOnly && f.JobType == ""
}

type catalogService struct {
	adapter adapter.APIClient
	cache   store.JobCacheRepository
	creds   CredentialSource
	logger  *logger.Logger
}

func NewCatalogService(apiClient adapter.APIClient, cache store.JobCacheRepository, creds CredentialSource, log *logger.Logger) CatalogService {
	return &catalogService{adapter: apiClient, cache: cache, creds: creds, logger: log}
}

// List implements [CatalogService]. A successful fetch refreshes the local
// cache; when the backend is unreachable the cached catalog is served
// instead, so the job list degrades rather than disappears.
func (c *catalogService) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := c.adapter.ListJobs(ctx, c.creds.Credential())
	if err != nil {
		cached, cacheErr := c.cache.GetAll(ctx)
		if cacheErr == nil && len(cached) > 0 {
			c.logger.Debug().Err(err).
				Str("func", "catalogService.List").
				Int("cached_jobs", len(cached)).
				Msg("catalog fetch failed, serving cached jobs")
			return cached, nil
		}
		return nil, err
	}

	if cacheErr := c.cache.ReplaceAll(ctx, jobs); cacheErr != nil {
		// The live result is still good; a stale cache only matters the
		// next time the backend is down.
		c.logger.Err(cacheErr).
			Str("func", "catalogService.List").
			Msg("failed to refresh job cache")
	}

	return jobs, nil
}

// ByID implements [CatalogService]. A not-found from the server is final;
// transport failures fall back to the cache.
func (c *catalogService) ByID(ctx context.Context, id int64) (models.Job, error) {
	job, err := c.adapter.GetJob(ctx, c.creds.Credential(), id)
	if err == nil {
		return job, nil
	}
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Job{}, err
	}

	cached, cacheErr := c.cache.Get(ctx, id)
	if cacheErr == nil {
		c.logger.Debug().Err(err).
			Str("func", "catalogService.ByID").
			Int64("job_id", id).
			Msg("job fetch failed, serving cached copy")
		return cached, nil
	}

	return models.Job{}, err
}

// ApplyFilters filters jobs with conjunctive predicates. It performs no I/O
// and never mutates its input. Applying the zero [Filters] returns the input
// slice unchanged, same order and content.
func ApplyFilters(jobs []models.Job, f Filters) []models.Job {
	if f.IsZero() {
		return jobs
	}

	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if term != "" && !matchesTerm(job, term) {
			continue
		}
		if f.RemoteOnly && !job.IsRemote {
			continue
		}
		if f.JobType != "" && job.JobType != f.JobType {
			continue
		}
		filtered = append(filtered, job)
	}

	return filtered
}

func matchesTerm(job models.Job, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(job.Title), lowerTerm) ||
		strings.Contains(strings.ToLower(job.Company), lowerTerm) ||
		strings.Contains(strings.ToLower(job.Description), lowerTerm)
}
