//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

func connectTestStore(t *testing.T) *Store {
	t.Helper()

	url := os.Getenv("TALENTS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TALENTS_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := Connect(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.Migrate(ctx))
	return s
}

// connectEmptyStore migrates into a throwaway schema so list queries see no rows.
func connectEmptyStore(t *testing.T) *Store {
	t.Helper()
	base := connectTestStore(t)
	ctx := context.Background()

	schema := fmt.Sprintf("it_empty_%d", time.Now().UnixNano())
	_, err := base.pool.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = base.pool.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
	})

	u, err := url.Parse(os.Getenv("TALENTS_TEST_DATABASE_URL"))
	require.NoError(t, err)
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()

	s, err := Connect(ctx, u.String(), nil)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.Migrate(ctx))
	return s
}

func uniqueTalent(t *testing.T) talents.TalentFields {
	f := talents.FixtureTalents()[0]
	f.Email = fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
	return f
}

func TestIntegration_JobLifecycle(t *testing.T) {
	s := connectTestStore(t)
	ctx := context.Background()

	job, err := s.CreateJob(ctx, talents.FixtureJobs()[0])
	require.NoError(t, err)
	assert.Equal(t, talents.JobStatusActive, job.Status)

	fields := talents.FieldsOf(job)
	fields.Title = "Engenheiro de Prompt Staff"
	fields.Status = talents.JobStatusPaused
	require.NoError(t, s.UpdateJob(ctx, job.ID, fields))

	got, err := s.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, "Engenheiro de Prompt Staff", got.Title)
	assert.Equal(t, talents.JobStatusPaused, got.Status)

	_, err = s.GetJob(ctx, "not-a-uuid")
	assert.True(t, errors.Is(err, store.ErrNotFound))

	mixed := talents.FixtureJobs()[0]
	mixed.Status = "Active"
	created, err := s.CreateJob(ctx, mixed)
	require.NoError(t, err)
	assert.Equal(t, talents.JobStatusActive, created.Status)
}

func TestIntegration_EmptyListsEncodeAsArrays(t *testing.T) {
	s := connectEmptyStore(t)
	ctx := context.Background()

	jobs, err := s.ListJobs(ctx)
	require.NoError(t, err)
	require.NotNil(t, jobs)
	raw, err := json.Marshal(jobs)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	list, err := s.ListTalents(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	raw, err = json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestIntegration_ProfileIsAtomic(t *testing.T) {
	s := connectTestStore(t)
	ctx := context.Background()

	f := uniqueTalent(t)
	created, err := s.CreateTalentProfile(ctx, f)
	require.NoError(t, err)

	_, err = s.CreateTalentProfile(ctx, f)
	require.ErrorIs(t, err, store.ErrDuplicateEmail)

	got, err := s.GetTalent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Email, got.Email)
	assert.ElementsMatch(t, f.Areas, got.Areas)
}

func TestIntegration_ApplicationGuard(t *testing.T) {
	s := connectTestStore(t)
	ctx := context.Background()

	job, err := s.CreateJob(ctx, talents.FixtureJobs()[1])
	require.NoError(t, err)
	tal, err := s.CreateTalentProfile(ctx, uniqueTalent(t))
	require.NoError(t, err)

	app, err := s.CreateApplication(ctx, job.ID, tal.ID)
	require.NoError(t, err)
	assert.Equal(t, talents.ApplicationApplied, app.Status)

	_, err = s.CreateApplication(ctx, job.ID, tal.ID)
	require.ErrorIs(t, err, store.ErrDuplicateApplication)

	got, err := s.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Candidates)

	_, err = s.UpdateApplicationStatus(ctx, app.ID, talents.ApplicationHired)
	require.ErrorIs(t, err, store.ErrInvalidTransition)

	updated, err := s.UpdateApplicationStatus(ctx, app.ID, talents.ApplicationInterview)
	require.NoError(t, err)
	assert.Equal(t, talents.ApplicationInterview, updated.Status)

	apps, err := s.ListApplications(ctx, tal.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, job.ID, apps[0].JobID)
}
