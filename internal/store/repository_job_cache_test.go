package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJobCacheRepo(t *testing.T) (*jobCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := NewJobCacheRepository(&DB{DB: db, logger: l}, l).(*jobCacheRepository)
	return repo, mock, db
}

func sampleJob(id int64) models.Job {
	return models.Job{
		ID:           id,
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Berlin",
		Description:  "Build services",
		Requirements: []string{"Go", "SQL"},
		SalaryRange:  "$90000-$110000",
		PostedDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		IsRemote:     true,
		JobType:      models.JobTypeFullTime,
	}
}

func jobCacheRows(jobs ...models.Job) *sqlmock.Rows {
	rows := sqlmock.NewRows(jobCacheColumns)
	for _, j := range jobs {
		rows.AddRow(
			j.ID, j.Title, j.Company, j.Location, j.Description,
			`["Go","SQL"]`, j.SalaryRange, j.PostedDate, j.IsRemote, j.JobType,
		)
	}
	return rows
}

func TestReplaceAll_Success(t *testing.T) {
	repo, mock, db := newTestJobCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_cache").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO job_cache").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO job_cache").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), []models.Job{sampleJob(1), sampleJob(2)})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_EmptyCatalogClearsCache(t *testing.T) {
	repo, mock, db := newTestJobCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_cache").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestJobCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO job_cache").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), []models.Job{sampleJob(1)})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobCacheGetAll_Success(t *testing.T) {
	repo, mock, db := newTestJobCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM job_cache").
		WillReturnRows(jobCacheRows(sampleJob(1), sampleJob(2)))

	jobs, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, []string{"Go", "SQL"}, jobs[0].Requirements)
	assert.True(t, jobs[0].IsRemote)
}

func TestJobCacheGet_NotFound(t *testing.T) {
	repo, mock, db := newTestJobCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM job_cache").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobCacheGet_Success(t *testing.T) {
	repo, mock, db := newTestJobCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM job_cache").
		WithArgs(int64(1)).
		WillReturnRows(jobCacheRows(sampleJob(1)))

	job, err := repo.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, models.JobTypeFullTime, job.JobType)
}
