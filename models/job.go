package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Well-known job types. JobType is an open string on the wire: values outside
// this set must still render in the UI rather than fail decoding.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Job is a single posting from the job catalog. The client never mutates
// jobs; they are read from GET /jobs/ and GET /jobs/{id} only.
type Job struct {
	// ID is the catalog identifier the recommendation records refer to.
	ID int64 `json:"id"`

	// Title is the position title.
	Title string `json:"title"`

	// Company is the hiring company name.
	Company string `json:"company"`

	// Location is a free-form location string.
	Location string `json:"location"`

	// Description is the full posting text.
	Description string `json:"description"`

	// Requirements is the ordered list of required skills.
	Requirements []string `json:"requirements"`

	// SalaryRange is an optional display string such as "$80000-$100000".
	SalaryRange string `json:"salary_range,omitempty"`

	// PostedDate is when the posting was published.
	PostedDate time.Time `json:"posted_date"`

	// IsRemote marks fully remote positions.
	IsRemote bool `json:"is_remote"`

	// JobType is the employment kind, e.g. "full-time" or "contract".
	// Treated as an open string; unrecognized values pass through.
	JobType string `json:"job_type"`
}

// TableName returns the name of the local cache table
// associated with the Job model.
func (j Job) TableName() string {
	return "job_cache"
}

// postedDateNaive is the backend's timestamp layout: ISO 8601 with optional
// fractional seconds and no timezone offset.
const postedDateNaive = "2006-01-02T15:04:05.999999"

// UnmarshalJSON implements [json.Unmarshaler]. The backend serializes
// posted_date without a timezone offset, which the stdlib time decoder
// rejects; both that naive form and regular RFC 3339 are accepted here.
// Naive timestamps are taken as UTC.
func (j *Job) UnmarshalJSON(data []byte) error {
	type jobAlias Job
	aux := struct {
		PostedDate string `json:"posted_date"`
		*jobAlias
	}{jobAlias: (*jobAlias)(j)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.PostedDate == "" {
		j.PostedDate = time.Time{}
		return nil
	}

	t, err := time.Parse(time.RFC3339Nano, aux.PostedDate)
	if err != nil {
		t, err = time.Parse(postedDateNaive, aux.PostedDate)
	}
	if err != nil {
		return fmt.Errorf("invalid posted_date %q: %w", aux.PostedDate, err)
	}

	j.PostedDate = t
	return nil
}
