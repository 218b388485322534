// Package store is the data service: jobs, talent profiles and applications.
package store

import (
	"context"
	"errors"

	"github.com/spigell/talents/internal/talents"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateApplication = errors.New("talent already applied to this job")
	ErrDuplicateEmail       = errors.New("a profile with this email already exists")
	ErrInvalidTransition    = errors.New("application status transition not allowed")
	ErrNotConfigured        = errors.New("database not configured (missing DATABASE_URL)")
)

// Store is implemented by every backend. Writes validate their input and
// return a *talents.ValidationError before touching the backend.
type Store interface {
	ListJobs(ctx context.Context) ([]*talents.Job, error)
	GetJob(ctx context.Context, id string) (*talents.Job, error)
	CreateJob(ctx context.Context, fields talents.JobFields) (*talents.Job, error)
	UpdateJob(ctx context.Context, id string, fields talents.JobFields) error

	ListTalents(ctx context.Context) ([]*talents.Talent, error)
	GetTalent(ctx context.Context, id string) (*talents.Talent, error)
	// CreateTalentProfile writes the identity record and the talent profile
	// under one generated id. Either both exist afterwards or neither does.
	CreateTalentProfile(ctx context.Context, fields talents.TalentFields) (*talents.Talent, error)

	ListApplications(ctx context.Context, talentID string) ([]*talents.Application, error)
	ListJobApplications(ctx context.Context, jobID string) ([]*talents.Application, error)
	CreateApplication(ctx context.Context, jobID, talentID string) (*talents.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status talents.ApplicationStatus) (*talents.Application, error)

	Close()
}

// PrepareJob normalizes and validates fields for a job write.
func PrepareJob(fields talents.JobFields) (talents.JobFields, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return fields, err
	}
	return fields, nil
}

// PrepareTalent normalizes and validates fields for a profile write.
func PrepareTalent(fields talents.TalentFields) (talents.TalentFields, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return fields, err
	}
	return fields, nil
}
