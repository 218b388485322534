// Package postgres is the pgx-backed Store.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
)

// Store implements store.Store over a pgx pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	now    func() time.Time
}

var _ store.Store = (*Store)(nil)

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool, logger: logger, now: time.Now}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const jobColumns = `j.id, j.title, j.mission, j.responsibilities, j.success_indicator, j.okr,
	j.status, j.work_type, j.location, j.created_at, j.updated_at,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)`

func scanJob(row pgx.Row) (*talents.Job, error) {
	var (
		j      talents.Job
		status string
	)
	err := row.Scan(&j.ID, &j.Title, &j.Mission, &j.Responsibilities, &j.SuccessIndicator, &j.OKR,
		&status, &j.WorkType, &j.Location, &j.CreatedAt, &j.UpdatedAt, &j.Candidates)
	if err != nil {
		return nil, err
	}
	j.Status = talents.JobStatus(status)
	return &j, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]*talents.Job, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs j ORDER BY j.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]*talents.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return out, nil
}

func (s *Store) GetJob(ctx context.Context, id string) (*talents.Job, error) {
	j, err := scanJob(s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "job", id)
	}
	return j, nil
}

func (s *Store) CreateJob(ctx context.Context, fields talents.JobFields) (*talents.Job, error) {
	fields, err := store.PrepareJob(fields)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	job := &talents.Job{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	fields.ApplyTo(job)

	_, err = s.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, mission, responsibilities, success_indicator, okr, status, work_type, location, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		job.ID, job.Title, job.Mission, job.Responsibilities, job.SuccessIndicator, job.OKR,
		string(job.Status), job.WorkType, job.Location, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	s.logger.Debug("job created", zap.String("job_id", job.ID), zap.String("title", job.Title))
	return job, nil
}

func (s *Store) UpdateJob(ctx context.Context, id string, fields talents.JobFields) error {
	fields, err := store.PrepareJob(fields)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE jobs SET title = $2, mission = $3, responsibilities = $4, success_indicator = $5, okr = $6,
		        status = $7, work_type = $8, location = $9, updated_at = $10
		 WHERE id = $1`,
		id, fields.Title, fields.Mission, fields.Responsibilities, fields.SuccessIndicator, fields.OKR,
		string(fields.Status), fields.WorkType, fields.Location, s.now().UTC(),
	)
	if err != nil {
		return notFound(err, "job", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, store.ErrNotFound)
	}
	return nil
}

const talentColumns = `t.id, t.name, t.role, p.email, t.phone, t.location, t.bio, t.products, t.areas,
	t.seniority, t.fixed_salary, t.avatar, t.rating, t.tags, t.created_at`

func scanTalent(row pgx.Row) (*talents.Talent, error) {
	var (
		t         talents.Talent
		seniority string
	)
	err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Email, &t.Phone, &t.Location, &t.Bio, &t.Products, &t.Areas,
		&seniority, &t.FixedSalary, &t.Avatar, &t.Rating, &t.Tags, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Seniority = talents.Seniority(seniority)
	return &t, nil
}

func (s *Store) ListTalents(ctx context.Context) ([]*talents.Talent, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+talentColumns+` FROM talents t JOIN profiles p ON p.id = t.id ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	defer rows.Close()

	out := make([]*talents.Talent, 0)
	for rows.Next() {
		t, err := scanTalent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan talent: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	return out, nil
}

func (s *Store) GetTalent(ctx context.Context, id string) (*talents.Talent, error) {
	t, err := scanTalent(s.pool.QueryRow(ctx,
		`SELECT `+talentColumns+` FROM talents t JOIN profiles p ON p.id = t.id WHERE t.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "talent", id)
	}
	return t, nil
}

// CreateTalentProfile inserts the profile and the talent rows in one
// transaction under the same id.
func (s *Store) CreateTalentProfile(ctx context.Context, fields talents.TalentFields) (*talents.Talent, error) {
	fields, err := store.PrepareTalent(fields)
	if err != nil {
		return nil, err
	}
	t := fields.NewTalent(uuid.NewString(), s.now())

	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO profiles (id, email, full_name, role, created_at) VALUES ($1, $2, $3, 'candidate', $4)`,
			t.ID, t.Email, t.Name, t.CreatedAt,
		); err != nil {
			if isCode(err, pgUniqueViolation) {
				return fmt.Errorf("profile %s: %w", t.Email, store.ErrDuplicateEmail)
			}
			return fmt.Errorf("failed to create profile: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO talents (id, name, role, phone, location, bio, products, areas, seniority, fixed_salary, avatar, rating, tags, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			t.ID, t.Name, t.Role, t.Phone, t.Location, t.Bio, nonNil(t.Products), nonNil(t.Areas),
			string(t.Seniority), t.FixedSalary, t.Avatar, t.Rating, nonNil(t.Tags), t.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to create talent: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("talent profile created", zap.String("talent_id", t.ID))
	return t, nil
}

const applicationColumns = `id, job_id, talent_id, status, created_at, updated_at`

func scanApplication(row pgx.Row) (*talents.Application, error) {
	var (
		a      talents.Application
		status string
	)
	if err := row.Scan(&a.ID, &a.JobID, &a.TalentID, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = talents.ApplicationStatus(status)
	return &a, nil
}

func (s *Store) ListApplications(ctx context.Context, talentID string) ([]*talents.Application, error) {
	return s.listApplications(ctx, `talent_id`, talentID)
}

func (s *Store) ListJobApplications(ctx context.Context, jobID string) ([]*talents.Application, error) {
	return s.listApplications(ctx, `job_id`, jobID)
}

func (s *Store) listApplications(ctx context.Context, column, id string) ([]*talents.Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE `+column+` = $1 ORDER BY created_at`, id)
	if err != nil {
		if isCode(err, pgInvalidText) {
			return []*talents.Application{}, nil
		}
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	out := []*talents.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return out, nil
}

// CreateApplication relies on the (job_id, talent_id) unique constraint:
// a conflicting insert returns no row and maps to ErrDuplicateApplication.
func (s *Store) CreateApplication(ctx context.Context, jobID, talentID string) (*talents.Application, error) {
	now := s.now().UTC()
	a, err := scanApplication(s.pool.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, talent_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 ON CONFLICT (job_id, talent_id) DO NOTHING
		 RETURNING `+applicationColumns,
		uuid.NewString(), jobID, talentID, string(talents.ApplicationApplied), now,
	))
	switch {
	case err == nil:
		return a, nil
	case errors.Is(err, pgx.ErrNoRows):
		return nil, store.ErrDuplicateApplication
	case isCode(err, pgForeignKeyViolation), isCode(err, pgInvalidText):
		return nil, fmt.Errorf("job %s or talent %s: %w", jobID, talentID, store.ErrNotFound)
	default:
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
}

// UpdateApplicationStatus locks the row, checks the transition and writes.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id string, status talents.ApplicationStatus) (*talents.Application, error) {
	var out *talents.Application
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var current string
		if err := tx.QueryRow(ctx, `SELECT status FROM applications WHERE id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
			return notFound(err, "application", id)
		}
		from := talents.ApplicationStatus(current)
		if !talents.CanTransition(from, status) {
			return fmt.Errorf("%s -> %s: %w", from, status, store.ErrInvalidTransition)
		}

		a, err := scanApplication(tx.QueryRow(ctx,
			`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1 RETURNING `+applicationColumns,
			id, string(status), s.now().UTC(),
		))
		if err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// notFound maps a missing row, or an id that is not a uuid, to ErrNotFound.
func notFound(err error, kind, id string) error {
	if errors.Is(err, pgx.ErrNoRows) || isCode(err, pgInvalidText) {
		return fmt.Errorf("%s %s: %w", kind, id, store.ErrNotFound)
	}
	return fmt.Errorf("failed to load %s: %w", kind, err)
}

func isCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
