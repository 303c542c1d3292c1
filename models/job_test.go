package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_UnmarshalJSON_NaivePostedDate(t *testing.T) {
	payload := []byte(`[
		{
			"id": 1,
			"title": "Backend Engineer",
			"company": "Acme",
			"location": "Berlin",
			"description": "Go services",
			"requirements": ["Go", "SQL"],
			"salary_range": "$80000-$100000",
			"posted_date": "2026-08-23T10:15:30.123456",
			"is_remote": true,
			"job_type": "full-time"
		},
		{
			"id": 2,
			"title": "Data Analyst",
			"company": "Globex",
			"location": "Remote",
			"description": "Dashboards",
			"requirements": [],
			"posted_date": "2026-08-20T09:00:00",
			"is_remote": false,
			"job_type": "contract"
		}
	]`)

	var jobs []Job
	require.NoError(t, json.Unmarshal(payload, &jobs))
	require.Len(t, jobs, 2)

	assert.Equal(t, int64(1), jobs[0].ID)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.Equal(t, []string{"Go", "SQL"}, jobs[0].Requirements)
	assert.True(t, jobs[0].IsRemote)
	assert.Equal(t,
		time.Date(2026, 8, 23, 10, 15, 30, 123456000, time.UTC),
		jobs[0].PostedDate)

	assert.Equal(t,
		time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		jobs[1].PostedDate)
}

func TestJob_UnmarshalJSON_RFC3339PostedDate(t *testing.T) {
	var job Job
	err := json.Unmarshal([]byte(`{"id":3,"title":"x","posted_date":"2026-08-23T10:15:30Z"}`), &job)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 23, 10, 15, 30, 0, time.UTC), job.PostedDate)
}

func TestJob_UnmarshalJSON_MissingPostedDate(t *testing.T) {
	var job Job
	err := json.Unmarshal([]byte(`{"id":4,"title":"x"}`), &job)

	require.NoError(t, err)
	assert.True(t, job.PostedDate.IsZero())
}

func TestJob_UnmarshalJSON_InvalidPostedDate(t *testing.T) {
	var job Job
	err := json.Unmarshal([]byte(`{"id":5,"posted_date":"yesterday"}`), &job)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "posted_date")
}

func TestJob_UnmarshalJSON_RoundTripsOwnEncoding(t *testing.T) {
	src := Job{
		ID:         6,
		Title:      "Platform Engineer",
		PostedDate: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(src)
	require.NoError(t, err)

	var job Job
	require.NoError(t, json.Unmarshal(data, &job))
	assert.True(t, src.PostedDate.Equal(job.PostedDate))
}
