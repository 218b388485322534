package views

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/filtering"
	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

// ShowPublicJobs lists active jobs matching keyword. A candidate does not
// see jobs already applied to.
func (r *Router) ShowPublicJobs(ctx context.Context, keyword string) {
	jobs, err := r.openJobs(ctx, keyword)
	if err != nil {
		r.fail("loading jobs", err)
		return
	}
	r.show(&PublicJobList{Jobs: jobs, Keyword: keyword})
}

func (r *Router) openJobs(ctx context.Context, keyword string) ([]*talents.Job, error) {
	all, err := r.deps.Store.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	deps := filtering.Deps{Applications: r.deps.Store, Logger: r.logger}
	steps := filtering.Public()
	if r.candidate != nil {
		deps.TalentID = r.candidate.ID
	} else {
		filtering.DisableByName(steps, filtering.AppliedHistoryName, "no candidate in session")
	}
	r.logger.Debug("job list filters", zap.Any("filters", filtering.Describe(steps)))
	return filtering.Run(ctx, &filtering.Config{Keyword: keyword}, deps, steps, all)
}

// StartRegistration shows the sign-up form. applyTo, when set, is applied
// to right after a successful registration.
func (r *Router) StartRegistration(applyTo string) {
	r.show(&CandidateRegistration{ApplyTo: applyTo})
}

// CancelRegistration returns to the landing screen.
func (r *Router) CancelRegistration() {
	r.GoLanding()
}

// Register validates fields, creates the profile and shows the candidate
// dashboard. Invalid fields keep the form open with per-field errors and
// nothing is written.
func (r *Router) Register(ctx context.Context, fields talents.TalentFields) {
	form, ok := r.current.(*CandidateRegistration)
	if !ok {
		form = &CandidateRegistration{}
	}
	form.Draft = fields
	form.Errors = nil

	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		r.rejectForm(form, "registration", err)
		return
	}

	t, err := r.deps.Store.CreateTalentProfile(ctx, fields)
	if err != nil {
		r.rejectForm(form, "registration", err)
		return
	}

	r.candidate = t
	r.logger.Info("candidate registered", zap.String("talent_id", t.ID))

	if form.ApplyTo != "" {
		if _, err := r.deps.Store.CreateApplication(ctx, form.ApplyTo, t.ID); err != nil {
			r.fail("applying", err)
		}
	}
	r.ShowCandidateDashboard(ctx)
}

func (r *Router) rejectForm(form *CandidateRegistration, action string, err error) {
	var verr *talents.ValidationError
	if errors.As(err, &verr) {
		form.Errors = verr.Fields
	}
	r.show(form)
	r.fail(action, err)
}

// ShowCandidateDashboard shows the current candidate's applications and
// open jobs. Without a candidate it shows the registration form.
func (r *Router) ShowCandidateDashboard(ctx context.Context) {
	if r.candidate == nil {
		r.StartRegistration("")
		return
	}

	dash := &CandidateDashboard{Candidate: r.candidate, Jobs: map[string]*talents.Job{}}
	defer r.show(dash)

	all, err := r.deps.Store.ListJobs(ctx)
	if err != nil {
		r.fail("loading jobs", err)
		return
	}
	dash.Jobs = jobsByID(all)

	apps, err := r.deps.Store.ListApplications(ctx, r.candidate.ID)
	if err != nil {
		r.fail("loading applications", err)
		return
	}
	dash.Applications = apps

	open, err := filtering.Run(ctx, nil, filtering.Deps{
		Applications: r.deps.Store,
		Logger:       r.logger,
		TalentID:     r.candidate.ID,
	}, filtering.Public(), all)
	if err != nil {
		r.fail("loading jobs", err)
		return
	}
	dash.OpenJobs = open
}

// Apply applies the current candidate to jobID. Without a candidate the
// registration form opens and the application follows registration.
func (r *Router) Apply(ctx context.Context, jobID string) {
	if r.candidate == nil {
		r.StartRegistration(jobID)
		return
	}

	_, err := r.deps.Store.CreateApplication(ctx, jobID, r.candidate.ID)
	if errors.Is(err, store.ErrDuplicateApplication) {
		r.alert = "you already applied to this job"
		r.ShowCandidateDashboard(ctx)
		return
	}
	if err != nil {
		r.fail("applying", err)
		return
	}

	r.logger.Info("application created", zap.String("job_id", jobID), zap.String("talent_id", r.candidate.ID))
	r.ShowCandidateDashboard(ctx)
}

// SignOutCandidate forgets the current candidate.
func (r *Router) SignOutCandidate() {
	r.candidate = nil
	r.GoLanding()
}
