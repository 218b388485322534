// Package talents holds the recruiting domain: jobs, talents, applications
// and the catalogs and checks they are built from.
package talents

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus gates where a job is visible.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusDraft  JobStatus = "draft"
	JobStatusPaused JobStatus = "paused"
)

// ParseJobStatus converts a raw string to a JobStatus. An empty string maps
// to active, the default for new postings.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case "":
		return JobStatusActive, nil
	case JobStatusActive, JobStatusDraft, JobStatusPaused:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// Job is a position posting.
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Mission          string    `json:"mission"`
	Responsibilities string    `json:"responsibilities"`
	SuccessIndicator string    `json:"success_indicator"`
	OKR              string    `json:"okr"`
	Status           JobStatus `json:"status"`
	WorkType         string    `json:"work_type,omitempty"`
	Location         string    `json:"location,omitempty"`
	// Candidates is derived from applications and never written back.
	Candidates int       `json:"candidates"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsPublic reports whether candidates may see the job.
func (j *Job) IsPublic() bool {
	return j != nil && j.Status == JobStatusActive
}

// JobFields are the admin-editable fields of a job.
type JobFields struct {
	Title            string    `json:"title" validate:"required,max=160"`
	Mission          string    `json:"mission" validate:"required,max=2000"`
	Responsibilities string    `json:"responsibilities" validate:"max=4000"`
	SuccessIndicator string    `json:"success_indicator" validate:"max=2000"`
	OKR              string    `json:"okr" validate:"max=2000"`
	Status           JobStatus `json:"status" validate:"omitempty,job_status"`
	WorkType         string    `json:"work_type" validate:"max=60"`
	Location         string    `json:"location" validate:"max=120"`
}

// FieldsOf returns the editable fields of j, e.g. to prefill an edit form.
func FieldsOf(j *Job) JobFields {
	if j == nil {
		return JobFields{Status: JobStatusActive}
	}
	return JobFields{
		Title:            j.Title,
		Mission:          j.Mission,
		Responsibilities: j.Responsibilities,
		SuccessIndicator: j.SuccessIndicator,
		OKR:              j.OKR,
		Status:           j.Status,
		WorkType:         j.WorkType,
		Location:         j.Location,
	}
}

// Normalize trims every field and canonicalizes the status, defaulting to
// active. Unknown statuses are kept so Validate can report them.
func (f JobFields) Normalize() JobFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Mission = strings.TrimSpace(f.Mission)
	f.Responsibilities = strings.TrimSpace(f.Responsibilities)
	f.SuccessIndicator = strings.TrimSpace(f.SuccessIndicator)
	f.OKR = strings.TrimSpace(f.OKR)
	f.WorkType = strings.TrimSpace(f.WorkType)
	f.Location = strings.TrimSpace(f.Location)
	if st, err := ParseJobStatus(string(f.Status)); err == nil {
		f.Status = st
	}
	return f
}

// ApplyTo copies the fields onto j. The id and timestamps are left alone.
func (f JobFields) ApplyTo(j *Job) {
	j.Title = f.Title
	j.Mission = f.Mission
	j.Responsibilities = f.Responsibilities
	j.SuccessIndicator = f.SuccessIndicator
	j.OKR = f.OKR
	j.Status = f.Status
	j.WorkType = f.WorkType
	j.Location = f.Location
}

// PublicJobs returns the jobs visible to candidates, keeping input order.
func PublicJobs(jobs []*Job) []*Job {
	out := make([]*Job, 0, len(jobs))
	for _, j := range jobs {
		if j.IsPublic() {
			out = append(out, j)
		}
	}
	return out
}

// FindJob returns the job with the given id or nil.
func FindJob(jobs []*Job, id string) *Job {
	for _, j := range jobs {
		if j != nil && j.ID == id {
			return j
		}
	}
	return nil
}
