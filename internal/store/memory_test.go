package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

func registration() talents.TalentFields {
	return talents.TalentFields{
		Name:        "Ana",
		Email:       "ana@x.com",
		Phone:       "11999999999",
		Location:    "São Paulo - SP",
		Bio:         "test",
		Products:    []string{"Formação"},
		Areas:       []string{"Produto"},
		Seniority:   talents.SeniorityPleno,
		FixedSalary: "R$ 1.000,00",
	}
}

func TestMemoryCreateAndUpdateJob(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	job, err := s.CreateJob(ctx, talents.JobFields{Title: "Tech Lead", Mission: "Liderar o time"})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, talents.JobStatusActive, job.Status)

	jobs, err := s.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)

	fields := talents.JobFields{
		Title:            "Tech Lead IA",
		Mission:          "Nova missão",
		Responsibilities: "Revisar código",
		SuccessIndicator: "Deploys semanais",
		OKR:              "KR1",
		Status:           talents.JobStatusPaused,
	}
	require.NoError(t, s.UpdateJob(ctx, job.ID, fields))

	got, err := s.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, fields.Title, got.Title)
	assert.Equal(t, fields.Mission, got.Mission)
	assert.Equal(t, fields.Responsibilities, got.Responsibilities)
	assert.Equal(t, fields.SuccessIndicator, got.SuccessIndicator)
	assert.Equal(t, fields.OKR, got.OKR)
	assert.Equal(t, talents.JobStatusPaused, got.Status)
	assert.Equal(t, job.CreatedAt, got.CreatedAt)
}

func TestMemoryListJobsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	for _, f := range talents.FixtureJobs()[:3] {
		_, err := s.CreateJob(ctx, f)
		require.NoError(t, err)
	}

	jobs, err := s.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, talents.FixtureJobs()[2].Title, jobs[0].Title)
}

func TestMemoryRejectsInvalidInputBeforeWriting(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	_, err := s.CreateJob(ctx, talents.JobFields{Title: "Sem missão"})
	var verr *talents.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "mission")

	bad := registration()
	bad.Areas = nil
	_, err = s.CreateTalentProfile(ctx, bad)
	require.ErrorAs(t, err, &verr)

	jobs, _ := s.ListJobs(ctx)
	list, _ := s.ListTalents(ctx)
	assert.Empty(t, jobs)
	assert.Empty(t, list)
}

func TestMemoryUpdateUnknownJob(t *testing.T) {
	err := store.NewMemory().UpdateJob(context.Background(), "missing", talents.JobFields{Title: "x", Mission: "y"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryCreateTalentProfile(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	tal, err := s.CreateTalentProfile(ctx, registration())
	require.NoError(t, err)
	assert.Equal(t, []string{"Produto"}, tal.Areas)
	assert.Equal(t, talents.SeniorityPleno, tal.Seniority)

	got, err := s.GetTalent(ctx, tal.ID)
	require.NoError(t, err)
	assert.Equal(t, tal.Email, got.Email)

	dup := registration()
	dup.Email = " ANA@x.com "
	_, err = s.CreateTalentProfile(ctx, dup)
	require.ErrorIs(t, err, store.ErrDuplicateEmail)

	list, err := s.ListTalents(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	tal, err := s.CreateTalentProfile(ctx, registration())
	require.NoError(t, err)
	tal.Areas[0] = "Marketing"

	got, err := s.GetTalent(ctx, tal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Produto", got.Areas[0])
}

func TestMemoryApplications(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	job, err := s.CreateJob(ctx, talents.FixtureJobs()[0])
	require.NoError(t, err)
	tal, err := s.CreateTalentProfile(ctx, registration())
	require.NoError(t, err)

	app, err := s.CreateApplication(ctx, job.ID, tal.ID)
	require.NoError(t, err)
	assert.Equal(t, talents.ApplicationApplied, app.Status)

	_, err = s.CreateApplication(ctx, job.ID, tal.ID)
	require.ErrorIs(t, err, store.ErrDuplicateApplication)

	_, err = s.CreateApplication(ctx, "missing", tal.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Candidates)

	byTalent, err := s.ListApplications(ctx, tal.ID)
	require.NoError(t, err)
	require.Len(t, byTalent, 1)
	byJob, err := s.ListJobApplications(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, byJob, 1)
	assert.Equal(t, app.ID, byJob[0].ID)
}

func TestMemoryApplicationStatusMachine(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	job, _ := s.CreateJob(ctx, talents.FixtureJobs()[0])
	tal, _ := s.CreateTalentProfile(ctx, registration())
	app, err := s.CreateApplication(ctx, job.ID, tal.ID)
	require.NoError(t, err)

	_, err = s.UpdateApplicationStatus(ctx, app.ID, talents.ApplicationOffer)
	require.ErrorIs(t, err, store.ErrInvalidTransition)

	for _, next := range []talents.ApplicationStatus{talents.ApplicationInterview, talents.ApplicationOffer, talents.ApplicationHired} {
		app, err = s.UpdateApplicationStatus(ctx, app.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, app.Status)
	}

	_, err = s.UpdateApplicationStatus(ctx, app.ID, talents.ApplicationRejected)
	require.ErrorIs(t, err, store.ErrInvalidTransition)

	_, err = s.UpdateApplicationStatus(ctx, "missing", talents.ApplicationRejected)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryConcurrentApplyCreatesOne(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	job, _ := s.CreateJob(ctx, talents.FixtureJobs()[0])
	tal, _ := s.CreateTalentProfile(ctx, registration())

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateApplication(ctx, job.ID, tal.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, store.ErrDuplicateApplication):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 7, rejected)
}

func TestUnconfigured(t *testing.T) {
	ctx := context.Background()
	var s store.Store = store.Unconfigured{}

	_, err := s.ListJobs(ctx)
	require.ErrorIs(t, err, store.ErrNotConfigured)
	assert.Equal(t, "database not configured (missing DATABASE_URL)", err.Error())

	_, err = s.CreateTalentProfile(ctx, registration())
	assert.ErrorIs(t, err, store.ErrNotConfigured)
	assert.ErrorIs(t, s.UpdateJob(ctx, "id", talents.JobFields{}), store.ErrNotConfigured)
	_, err = s.CreateApplication(ctx, "j", "t")
	assert.ErrorIs(t, err, store.ErrNotConfigured)
}
