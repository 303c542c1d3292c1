package store

import (
	"database/sql"
	"errors"
	"fmt"

	"context"

	"github.com/avolkov/jobscout/internal/logger"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *credentialRepository) SaveToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, upsertToken, token)
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.SaveToken").
			Msg("failed to execute upsert for credential")
		return fmt.Errorf("failed to save credential: %w", err)
	}

	return nil
}

func (r *credentialRepository) LoadToken(ctx context.Context) (string, error) {
	var token string
	err := r.DB.QueryRowContext(ctx, getToken).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.LoadToken").
			Msg("failed to query stored credential")
		return "", fmt.Errorf("failed to load credential: %w", err)
	}

	return token, nil
}

func (r *credentialRepository) DeleteToken(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, deleteToken)
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.DeleteToken").
			Msg("failed to delete stored credential")
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}
