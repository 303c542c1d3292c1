package store

import (
	"context"
	"fmt"

	"github.com/avolkov/jobscout/internal/config"
	"github.com/avolkov/jobscout/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Credentials is the SQLite-backed repository for the bearer token.
	Credentials CredentialRepository

	// JobCache is the SQLite-backed copy of the last fetched job catalog.
	JobCache JobCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewCredentialRepository(db, log),
		JobCache:    NewJobCacheRepository(db, log),
	}, nil
}
