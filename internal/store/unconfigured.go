package store

import (
	"context"

	"github.com/spigell/talents/internal/talents"
)

// Unconfigured stands in when no database URL is set. Every operation fails
// with ErrNotConfigured so callers can render one uniform message.
type Unconfigured struct{}

var _ Store = Unconfigured{}

func (Unconfigured) ListJobs(context.Context) ([]*talents.Job, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) GetJob(context.Context, string) (*talents.Job, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) CreateJob(context.Context, talents.JobFields) (*talents.Job, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) UpdateJob(context.Context, string, talents.JobFields) error {
	return ErrNotConfigured
}

func (Unconfigured) ListTalents(context.Context) ([]*talents.Talent, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) GetTalent(context.Context, string) (*talents.Talent, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) CreateTalentProfile(context.Context, talents.TalentFields) (*talents.Talent, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) ListApplications(context.Context, string) ([]*talents.Application, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) ListJobApplications(context.Context, string) ([]*talents.Application, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) CreateApplication(context.Context, string, string) (*talents.Application, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) UpdateApplicationStatus(context.Context, string, talents.ApplicationStatus) (*talents.Application, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Close() {}
