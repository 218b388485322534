package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/talents/internal/talents"
)

// Memory keeps everything in process. It backs tests and the console demo
// when no database is configured on purpose.
type Memory struct {
	mu sync.RWMutex

	jobs         map[string]*talents.Job
	jobOrder     []string
	talents      map[string]*talents.Talent
	talentOrder  []string
	emails       map[string]string
	applications map[string]*talents.Application
	appOrder     []string

	now   func() time.Time
	newID func() string
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		jobs:         make(map[string]*talents.Job),
		talents:      make(map[string]*talents.Talent),
		emails:       make(map[string]string),
		applications: make(map[string]*talents.Application),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// ListJobs returns every job, newest first, with candidate counts.
func (m *Memory) ListJobs(context.Context) ([]*talents.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*talents.Job, 0, len(m.jobOrder))
	for _, id := range slices.Backward(m.jobOrder) {
		out = append(out, m.jobCopy(id))
	}
	return out, nil
}

func (m *Memory) GetJob(_ context.Context, id string) (*talents.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.jobs[id]; !ok {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return m.jobCopy(id), nil
}

func (m *Memory) CreateJob(_ context.Context, fields talents.JobFields) (*talents.Job, error) {
	fields, err := PrepareJob(fields)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	job := &talents.Job{ID: m.newID(), CreatedAt: now, UpdatedAt: now}
	fields.ApplyTo(job)

	m.jobs[job.ID] = job
	m.jobOrder = append(m.jobOrder, job.ID)
	return m.jobCopy(job.ID), nil
}

func (m *Memory) UpdateJob(_ context.Context, id string, fields talents.JobFields) error {
	fields, err := PrepareJob(fields)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	fields.ApplyTo(job)
	job.UpdatedAt = m.now().UTC()
	return nil
}

// ListTalents returns every profile, newest first.
func (m *Memory) ListTalents(context.Context) ([]*talents.Talent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*talents.Talent, 0, len(m.talentOrder))
	for _, id := range slices.Backward(m.talentOrder) {
		out = append(out, copyTalent(m.talents[id]))
	}
	return out, nil
}

func (m *Memory) GetTalent(_ context.Context, id string) (*talents.Talent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.talents[id]
	if !ok {
		return nil, fmt.Errorf("talent %s: %w", id, ErrNotFound)
	}
	return copyTalent(t), nil
}

// CreateTalentProfile registers the email and the profile under one lock,
// so a failure leaves neither behind.
func (m *Memory) CreateTalentProfile(_ context.Context, fields talents.TalentFields) (*talents.Talent, error) {
	fields, err := PrepareTalent(fields)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.emails[fields.Email]; taken {
		return nil, fmt.Errorf("profile %s: %w", fields.Email, ErrDuplicateEmail)
	}

	t := fields.NewTalent(m.newID(), m.now())
	m.emails[t.Email] = t.ID
	m.talents[t.ID] = t
	m.talentOrder = append(m.talentOrder, t.ID)
	return copyTalent(t), nil
}

// ListApplications returns the talent's applications, oldest first.
func (m *Memory) ListApplications(_ context.Context, talentID string) ([]*talents.Application, error) {
	return m.filterApplications(func(a *talents.Application) bool { return a.TalentID == talentID }), nil
}

// ListJobApplications returns the job's applications, oldest first.
func (m *Memory) ListJobApplications(_ context.Context, jobID string) ([]*talents.Application, error) {
	return m.filterApplications(func(a *talents.Application) bool { return a.JobID == jobID }), nil
}

func (m *Memory) CreateApplication(_ context.Context, jobID, talentID string) (*talents.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[jobID]; !ok {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	if _, ok := m.talents[talentID]; !ok {
		return nil, fmt.Errorf("talent %s: %w", talentID, ErrNotFound)
	}
	for _, a := range m.applications {
		if a.JobID == jobID && a.TalentID == talentID {
			return nil, ErrDuplicateApplication
		}
	}

	now := m.now().UTC()
	app := &talents.Application{
		ID:        m.newID(),
		JobID:     jobID,
		TalentID:  talentID,
		Status:    talents.ApplicationApplied,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.applications[app.ID] = app
	m.appOrder = append(m.appOrder, app.ID)

	cp := *app
	return &cp, nil
}

func (m *Memory) UpdateApplicationStatus(_ context.Context, id string, status talents.ApplicationStatus) (*talents.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	app, ok := m.applications[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, ErrNotFound)
	}
	if !talents.CanTransition(app.Status, status) {
		return nil, fmt.Errorf("%s -> %s: %w", app.Status, status, ErrInvalidTransition)
	}
	app.Status = status
	app.UpdatedAt = m.now().UTC()

	cp := *app
	return &cp, nil
}

func (m *Memory) Close() {}

func (m *Memory) filterApplications(keep func(*talents.Application) bool) []*talents.Application {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*talents.Application, 0)
	for _, id := range m.appOrder {
		if a := m.applications[id]; keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

// jobCopy must be called with the lock held.
func (m *Memory) jobCopy(id string) *talents.Job {
	cp := *m.jobs[id]
	cp.Candidates = 0
	for _, a := range m.applications {
		if a.JobID == id {
			cp.Candidates++
		}
	}
	return &cp
}

func copyTalent(t *talents.Talent) *talents.Talent {
	cp := *t
	cp.Products = slices.Clone(t.Products)
	cp.Areas = slices.Clone(t.Areas)
	cp.Tags = slices.Clone(t.Tags)
	return &cp
}
