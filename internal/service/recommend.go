package service

import (
	"context"
	"fmt"
	"math"

	"github.com/avolkov/jobscout/internal/adapter"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/models"
)

type recommendationService struct {
	adapter adapter.APIClient
	creds   CredentialSource
	logger  *logger.Logger
}

func NewRecommendationService(apiClient adapter.APIClient, creds CredentialSource, log *logger.Logger) RecommendationService {
	return &recommendationService{adapter: apiClient, creds: creds, logger: log}
}

// Fetch implements [RecommendationService]. The recommendation list and the
// job catalog are fetched per call and joined locally; the method holds no
// state between calls, so concurrent fetches cannot corrupt each other.
// Server ranking order is preserved: the aggregator never re-sorts by score.
func (r *recommendationService) Fetch(ctx context.Context) ([]models.RecommendedJob, error) {
	cred := r.creds.Credential()
	if cred == "" {
		return nil, ErrNotAuthenticated
	}

	recs, err := r.adapter.ListRecommendations(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}

	jobs, err := r.adapter.ListJobs(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("fetch job catalog: %w", err)
	}

	byID := make(map[int64]models.Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
	}

	recommended := make([]models.RecommendedJob, 0, len(recs))
	for _, rec := range recs {
		job, ok := byID[rec.JobID]
		if !ok {
			// Delisted jobs leave orphaned records behind; they are
			// dropped silently rather than surfaced as errors.
			r.logger.Debug().
				Str("func", "recommendationService.Fetch").
				Int64("job_id", rec.JobID).
				Msg("dropping recommendation for absent job")
			continue
		}

		recommended = append(recommended, models.RecommendedJob{
			Job:          job,
			MatchScore:   rec.MatchScore,
			MatchPercent: MatchPercent(rec.MatchScore),
			MatchReasons: rec.MatchReasons,
		})
	}

	return recommended, nil
}

// MatchPercent scales a [0,1] match score to a whole percentage using
// round-half-up: 0.005 becomes 1, 0.874 becomes 87.
func MatchPercent(score float64) int {
	return int(math.Floor(score*100 + 0.5))
}

// FormatMatchScore renders a match score for display, e.g. 0.87 -> "87%".
func FormatMatchScore(score float64) string {
	return fmt.Sprintf("%d%%", MatchPercent(score))
}
