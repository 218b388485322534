package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixedMatcher struct{}

func (fixedMatcher) RankJobMatches(_ context.Context, _ *talents.Talent, jobs []*talents.Job) ([]ai.JobMatch, error) {
	out := make([]ai.JobMatch, 0, len(jobs))
	for i, j := range jobs {
		out = append(out, ai.JobMatch{JobID: j.ID, Score: 60 + i*7, Reason: "r"})
	}
	return out, nil
}

type testEnv struct {
	t     *testing.T
	srv   *Server
	mem   *store.Memory
	token string
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	passwords, err := auth.NewPasswords(bcrypt.MinCost, "")
	require.NoError(t, err)
	hash, err := passwords.Hash("secret")
	require.NoError(t, err)
	tokens, err := auth.NewTokens("test-secret", time.Hour)
	require.NoError(t, err)
	authn, err := auth.NewStaticAuthenticator([]auth.Account{{Email: "admin@example.com", PasswordHash: hash}}, passwords, tokens)
	require.NoError(t, err)

	mem := store.NewMemory()
	return &testEnv{
		t:   t,
		mem: mem,
		srv: New(Deps{Store: mem, Auth: authn, Tokens: tokens, Matcher: fixedMatcher{}}),
	}
}

func (e *testEnv) do(method, path string, body any) (int, envelope) {
	e.t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	resp, err := e.srv.App().Test(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(e.t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(e.t, resp.StatusCode, env.Status)
	return resp.StatusCode, env
}

func (e *testEnv) login() {
	e.t.Helper()
	status, env := e.do(http.MethodPost, "/auth/login", auth.Credentials{Email: "admin@example.com", Password: "secret"})
	require.Equal(e.t, http.StatusOK, status, env.Message)

	var out loginResponse
	require.NoError(e.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(e.t, out.Token)
	e.token = out.Token
}

func (e *testEnv) seed() []*talents.Job {
	e.t.Helper()
	var jobs []*talents.Job
	for _, f := range talents.FixtureJobs() {
		j, err := e.mem.CreateJob(context.Background(), f)
		require.NoError(e.t, err)
		jobs = append(jobs, j)
	}
	return jobs
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	status, env := e.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", env.Message)
}

func TestLogin(t *testing.T) {
	e := newEnv(t)

	status, env := e.do(http.MethodPost, "/auth/login", auth.Credentials{Email: "admin@example.com", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid email or password", env.Message)

	e.login()
}

func TestAdminRoutesNeedToken(t *testing.T) {
	e := newEnv(t)

	for _, path := range []string{"/admin/jobs", "/admin/talents"} {
		status, _ := e.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}

	e.token = "garbage"
	status, _ := e.do(http.MethodGet, "/admin/jobs", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	e.login()
	status, _ = e.do(http.MethodGet, "/admin/jobs", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestPublicJobsExcludeDraftAndPaused(t *testing.T) {
	e := newEnv(t)
	e.seed()

	status, env := e.do(http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, status)
	jobs := decode[[]talents.Job](t, env.Data)
	require.NotEmpty(t, jobs)
	for _, j := range jobs {
		assert.Equal(t, talents.JobStatusActive, j.Status, j.Title)
	}

	_, env = e.do(http.MethodGet, "/jobs?q=prompt", nil)
	filtered := decode[[]talents.Job](t, env.Data)
	assert.NotEmpty(t, filtered)
	assert.Less(t, len(filtered), len(jobs))
}

func TestRegistrationAndApplication(t *testing.T) {
	e := newEnv(t)
	jobs := e.seed()

	bad := talents.FixtureTalents()[0]
	bad.Email = "not-an-email"
	status, env := e.do(http.MethodPost, "/talents", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, decode[map[string]string](t, env.Data), "email")

	status, env = e.do(http.MethodPost, "/talents", talents.FixtureTalents()[0])
	require.Equal(t, http.StatusCreated, status, env.Message)
	tal := decode[talents.Talent](t, env.Data)
	require.NotEmpty(t, tal.ID)

	status, _ = e.do(http.MethodPost, "/talents", talents.FixtureTalents()[0])
	assert.Equal(t, http.StatusConflict, status)

	path := "/talents/" + tal.ID + "/applications"
	status, _ = e.do(http.MethodPost, path, applyRequest{JobID: jobs[0].ID})
	assert.Equal(t, http.StatusCreated, status)
	status, _ = e.do(http.MethodPost, path, applyRequest{JobID: jobs[0].ID})
	assert.Equal(t, http.StatusConflict, status)
	status, _ = e.do(http.MethodPost, path, applyRequest{JobID: "missing"})
	assert.Equal(t, http.StatusNotFound, status)

	status, env = e.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]talents.Application](t, env.Data), 1)
}

func TestCandidateRoutesArePublic(t *testing.T) {
	e := newEnv(t)
	jobs := e.seed()
	require.Empty(t, e.token)

	status, env := e.do(http.MethodPost, "/talents", talents.FixtureTalents()[1])
	require.Equal(t, http.StatusCreated, status, env.Message)
	tal := decode[talents.Talent](t, env.Data)
	_, err := uuid.Parse(tal.ID)
	require.NoError(t, err, "talent ids must be random uuids")

	path := "/talents/" + tal.ID + "/applications"
	status, _ = e.do(http.MethodPost, path, applyRequest{JobID: jobs[0].ID})
	assert.Equal(t, http.StatusCreated, status)
	status, _ = e.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = e.do(http.MethodGet, "/admin/talents/"+tal.ID, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestApplyToDraftJobRejected(t *testing.T) {
	e := newEnv(t)
	jobs := e.seed()
	tal, err := e.mem.CreateTalentProfile(context.Background(), talents.FixtureTalents()[0])
	require.NoError(t, err)

	var draft *talents.Job
	for _, j := range jobs {
		if j.Status == talents.JobStatusDraft {
			draft = j
		}
	}
	require.NotNil(t, draft)

	status, _ := e.do(http.MethodPost, "/talents/"+tal.ID+"/applications", applyRequest{JobID: draft.ID})
	assert.Equal(t, http.StatusConflict, status)
}

func TestAdminJobLifecycle(t *testing.T) {
	e := newEnv(t)
	e.login()

	status, _ := e.do(http.MethodPost, "/admin/jobs", talents.JobFields{Title: "Sem missão"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env := e.do(http.MethodPost, "/admin/jobs", talents.JobFields{Title: "Head de IA", Mission: "Liderar"})
	require.Equal(t, http.StatusCreated, status)
	created := decode[talents.Job](t, env.Data)
	assert.Equal(t, talents.JobStatusActive, created.Status)

	update := talents.JobFields{Title: "Head de IA (Sr)", Mission: "Liderar tudo", OKR: "KR1", Status: talents.JobStatusPaused}
	status, env = e.do(http.MethodPut, "/admin/jobs/"+created.ID, update)
	require.Equal(t, http.StatusOK, status)
	updated := decode[talents.Job](t, env.Data)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Head de IA (Sr)", updated.Title)
	assert.Equal(t, talents.JobStatusPaused, updated.Status)

	status, _ = e.do(http.MethodPut, "/admin/jobs/missing", update)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = e.do(http.MethodGet, "/admin/jobs", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]talents.Job](t, env.Data), 1)

	status, env = e.do(http.MethodGet, "/admin/jobs/"+created.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[[]talents.Application](t, env.Data))
}

func TestAdminJobStatusIsCanonicalized(t *testing.T) {
	e := newEnv(t)
	e.login()

	status, env := e.do(http.MethodPost, "/admin/jobs", talents.JobFields{Title: "Head de IA", Mission: "Liderar", Status: "Active"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	created := decode[talents.Job](t, env.Data)
	assert.Equal(t, talents.JobStatusActive, created.Status)

	status, env = e.do(http.MethodPut, "/admin/jobs/"+created.ID, talents.JobFields{Title: "Head de IA", Mission: "Liderar", Status: "PAUSED"})
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, talents.JobStatusPaused, decode[talents.Job](t, env.Data).Status)

	status, _ = e.do(http.MethodPut, "/admin/jobs/"+created.ID, talents.JobFields{Title: "Head de IA", Mission: "Liderar", Status: "Active"})
	require.Equal(t, http.StatusOK, status)

	e.token = ""
	status, env = e.do(http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, status)
	public := decode[[]talents.Job](t, env.Data)
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)
}

func TestApplicationStatusChanges(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	jobs := e.seed()
	tal, err := e.mem.CreateTalentProfile(ctx, talents.FixtureTalents()[0])
	require.NoError(t, err)
	app, err := e.mem.CreateApplication(ctx, jobs[0].ID, tal.ID)
	require.NoError(t, err)
	e.login()

	status, _ := e.do(http.MethodPatch, "/admin/applications/"+app.ID, statusRequest{Status: "Hired"})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = e.do(http.MethodPatch, "/admin/applications/"+app.ID, statusRequest{Status: "unknown"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env := e.do(http.MethodPatch, "/admin/applications/"+app.ID, statusRequest{Status: "interview"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, talents.ApplicationInterview, decode[talents.Application](t, env.Data).Status)
}

func TestRankMatchesSorted(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	jobs := e.seed()
	tal, err := e.mem.CreateTalentProfile(ctx, talents.FixtureTalents()[1])
	require.NoError(t, err)
	e.login()

	status, env := e.do(http.MethodPost, "/admin/talents/"+tal.ID+"/matches", nil)
	require.Equal(t, http.StatusOK, status)
	matches := decode[[]ai.JobMatch](t, env.Data)
	require.Len(t, matches, len(jobs))
	for i := 1; i < len(matches); i++ {
		assert.Greater(t, matches[i-1].Score, matches[i].Score)
	}

	status, _ = e.do(http.MethodPost, "/admin/talents/missing/matches", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCultureFitDisabled(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	tal, err := e.mem.CreateTalentProfile(ctx, talents.FixtureTalents()[0])
	require.NoError(t, err)
	e.login()

	status, _ := e.do(http.MethodPost, "/admin/talents/"+tal.ID+"/culture-fit", transcriptRequest{Transcript: " "})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env := e.do(http.MethodPost, "/admin/talents/"+tal.ID+"/culture-fit", transcriptRequest{Transcript: "texto"})
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, ai.ErrDisabled.Error(), env.Message)
}

func TestUnconfiguredStore(t *testing.T) {
	srv := New(Deps{})
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "database not configured (missing DATABASE_URL)", env.Message)

	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = srv.App().Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestClassify(t *testing.T) {
	cases := map[error]int{
		store.ErrNotFound:                          http.StatusNotFound,
		store.ErrDuplicateApplication:              http.StatusConflict,
		store.ErrInvalidTransition:                 http.StatusConflict,
		store.ErrNotConfigured:                     http.StatusServiceUnavailable,
		ai.ErrDisabled:                             http.StatusServiceUnavailable,
		auth.ErrInvalidCredentials:                 http.StatusUnauthorized,
		&talents.ValidationError{}:                 http.StatusUnprocessableEntity,
		io.ErrUnexpectedEOF:                        http.StatusInternalServerError,
		newAppError(http.StatusTeapot, "tea", nil): http.StatusTeapot,
	}
	for err, want := range cases {
		assert.Equal(t, want, classify(err).Status, err.Error())
	}
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerToken("bearer ")
	assert.False(t, ok)
	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)
}
