// Package store implements local durable storage for the client: the single
// bearer credential that survives restarts, and a cache of the last fetched
// job catalog used as an offline fallback. Both live in one SQLite database
// whose schema is managed by the migrations package.
package store

import (
	"context"

	"github.com/avolkov/jobscout/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists the single bearer token. Exactly one token is
// stored at a time; SaveToken overwrites any previous value. Only the session
// service may write or delete the credential.
type CredentialRepository interface {
	// SaveToken stores token, replacing any previously stored credential.
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the stored credential, or [ErrTokenNotFound] when
	// no credential has been saved.
	LoadToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored credential. Deleting when nothing is
	// stored is not an error.
	DeleteToken(ctx context.Context) error
}

// JobCacheRepository keeps a local copy of the last successfully fetched job
// catalog. The cache is a read-through fallback only; it never feeds the
// recommendation join, which always works against the live catalog.
type JobCacheRepository interface {
	// ReplaceAll atomically swaps the cache contents for jobs.
	ReplaceAll(ctx context.Context, jobs []models.Job) error

	// GetAll returns all cached jobs ordered by id.
	GetAll(ctx context.Context) ([]models.Job, error)

	// Get returns the cached job with the given id, or [ErrJobNotFound].
	Get(ctx context.Context, id int64) (models.Job, error)
}
