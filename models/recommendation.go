package models

// Recommendation is a single record from GET /recommendations/. The score is
// computed by the backend and treated as an opaque oracle; the client only
// formats it. A record whose JobID has no matching catalog entry is dropped
// at the aggregation layer, never treated as an error.
type Recommendation struct {
	// JobID references a Job in the catalog.
	JobID int64 `json:"job_id"`

	// MatchScore is the backend's match estimate in [0,1].
	MatchScore float64 `json:"match_score"`

	// MatchReasons is the ordered list of human-readable reason strings.
	MatchReasons []string `json:"match_reasons"`
}

// RecommendedJob is the presentation view-model: a recommendation joined
// with its resolved catalog entry.
type RecommendedJob struct {
	// Job is the resolved catalog posting.
	Job Job

	// MatchScore is the raw backend score in [0,1].
	MatchScore float64

	// MatchPercent is MatchScore scaled to 0..100 with round-half-up.
	MatchPercent int

	// MatchReasons mirrors the recommendation record's reasons in order.
	MatchReasons []string
}
