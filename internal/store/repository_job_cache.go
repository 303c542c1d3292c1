package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/models"
)

var jobCacheColumns = []string{
	"id", "title", "company", "location", "description",
	"requirements", "salary_range", "posted_date", "is_remote", "job_type",
}

type jobCacheRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

func NewJobCacheRepository(db *DB, logger *logger.Logger) JobCacheRepository {
	return &jobCacheRepository{
		DB:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// ReplaceAll swaps the cache contents inside one transaction so concurrent
// readers never observe a half-written catalog.
func (r *jobCacheRepository) ReplaceAll(ctx context.Context, jobs []models.Job) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin job cache transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, "DELETE FROM "+models.Job{}.TableName()); err != nil {
		r.logger.Err(err).
			Str("func", "jobCacheRepository.ReplaceAll").
			Msg("failed to clear job cache")
		return fmt.Errorf("failed to clear job cache: %w", err)
	}

	for _, job := range jobs {
		requirements, marshalErr := json.Marshal(job.Requirements)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode requirements for job %d: %w", job.ID, marshalErr)
		}

		query, args, buildErr := r.builder.
			Insert(job.TableName()).
			Columns(jobCacheColumns...).
			Values(
				job.ID,
				job.Title,
				job.Company,
				job.Location,
				job.Description,
				string(requirements),
				job.SalaryRange,
				job.PostedDate,
				job.IsRemote,
				job.JobType,
			).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("failed to build job cache insert: %w", buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "jobCacheRepository.ReplaceAll").
				Int64("job_id", job.ID).
				Msg("failed to insert job into cache")
			return fmt.Errorf("failed to cache job %d: %w", job.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit job cache transaction: %w", err)
	}

	return nil
}

func (r *jobCacheRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	query, args, err := r.builder.
		Select(jobCacheColumns...).
		From(models.Job{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job cache select: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "jobCacheRepository.GetAll").
			Msg("failed to query job cache")
		return nil, fmt.Errorf("failed to query job cache: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, scanErr := scanJob(rows.Scan)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "jobCacheRepository.GetAll").
				Msg("failed to scan cached job row")
			return nil, scanErr
		}
		jobs = append(jobs, job)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating job cache rows: %w", rowsErr)
	}

	return jobs, nil
}

func (r *jobCacheRepository) Get(ctx context.Context, id int64) (models.Job, error) {
	query, args, err := r.builder.
		Select(jobCacheColumns...).
		From(models.Job{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Job{}, fmt.Errorf("failed to build job cache select: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	job, err := scanJob(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, ErrJobNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "jobCacheRepository.Get").
			Int64("job_id", id).
			Msg("failed to scan cached job")
		return models.Job{}, err
	}

	return job, nil
}

func scanJob(scan func(dest ...any) error) (models.Job, error) {
	var job models.Job
	var requirements string
	var postedDate sql.NullTime

	err := scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Description,
		&requirements,
		&job.SalaryRange,
		&postedDate,
		&job.IsRemote,
		&job.JobType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, err
	}
	if err != nil {
		return models.Job{}, fmt.Errorf("failed to scan job row: %w", err)
	}

	if postedDate.Valid {
		job.PostedDate = postedDate.Time
	} else {
		job.PostedDate = time.Time{}
	}

	if err = json.Unmarshal([]byte(requirements), &job.Requirements); err != nil {
		return models.Job{}, fmt.Errorf("failed to decode cached requirements: %w", err)
	}

	return job, nil
}
