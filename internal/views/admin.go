package views

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/talents"
)

// ShowAdminLogin shows the login form.
func (r *Router) ShowAdminLogin() {
	r.show(&AdminLogin{})
}

// Login authenticates and opens the admin dashboard. A failure keeps the
// login screen with an inline error.
func (r *Router) Login(ctx context.Context, creds auth.Credentials) {
	form := &AdminLogin{Email: creds.Email}

	if r.deps.Auth == nil {
		form.Error = "admin login is not configured"
		r.show(form)
		return
	}

	session, err := r.deps.Auth.Authenticate(ctx, creds)
	if err != nil {
		form.Error = "invalid email or password"
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			form.Error = "login failed: " + err.Error()
		}
		r.logger.Info("admin login rejected", zap.Error(err))
		r.show(form)
		return
	}

	r.session = session
	r.logger.Info("admin signed in", zap.String("email", session.Email))
	r.ShowAdminDashboard(ctx)
}

// Logout drops the admin session and any admin selection.
func (r *Router) Logout() {
	r.session = nil
	r.selectedJob = nil
	r.selectedTalent = nil
	r.show(&AdminLogin{})
}

// ShowAdminDashboard lists all jobs and talents. Load failures raise the
// alert and leave the affected list empty.
func (r *Router) ShowAdminDashboard(ctx context.Context) {
	if !r.IsAdmin() {
		r.show(&AdminDashboard{})
		return
	}

	dash := &AdminDashboard{}
	if jobs, err := r.deps.Store.ListJobs(ctx); err != nil {
		r.fail("loading jobs", err)
	} else {
		dash.Jobs = jobs
	}
	if list, err := r.deps.Store.ListTalents(ctx); err != nil {
		r.fail("loading talents", err)
	} else {
		dash.Talents = list
	}

	r.selectedJob = nil
	r.selectedTalent = nil
	r.show(dash)
}

// NewJob opens an empty editor.
func (r *Router) NewJob() {
	r.selectedJob = nil
	r.show(&AdminJobEditor{Fields: talents.FieldsOf(nil)})
}

// EditJob opens the editor prefilled with the job.
func (r *Router) EditJob(ctx context.Context, jobID string) {
	if !r.IsAdmin() {
		r.show(&AdminJobEditor{})
		return
	}
	job, err := r.deps.Store.GetJob(ctx, jobID)
	if err != nil {
		r.fail("loading job", err)
		return
	}
	r.selectedJob = job
	r.show(&AdminJobEditor{Editing: job, Fields: talents.FieldsOf(job)})
}

// SaveJob creates a job, or updates the one being edited keeping its id,
// then returns to a refreshed dashboard. Invalid fields keep the editor
// open and nothing is written.
func (r *Router) SaveJob(ctx context.Context, fields talents.JobFields) {
	editor, ok := r.current.(*AdminJobEditor)
	if !ok || !r.IsAdmin() {
		r.show(&AdminJobEditor{})
		return
	}
	editor.Fields = fields
	editor.Errors = nil

	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		var verr *talents.ValidationError
		if errors.As(err, &verr) {
			editor.Errors = verr.Fields
		}
		r.fail("saving job", err)
		return
	}

	if editor.IsNew() {
		job, err := r.deps.Store.CreateJob(ctx, fields)
		if err != nil {
			r.fail("saving job", err)
			return
		}
		r.logger.Info("job created", zap.String("job_id", job.ID))
	} else {
		if err := r.deps.Store.UpdateJob(ctx, editor.Editing.ID, fields); err != nil {
			r.fail("saving job", err)
			return
		}
		r.logger.Info("job updated", zap.String("job_id", editor.Editing.ID))
	}

	r.ShowAdminDashboard(ctx)
}

// SelectJob opens the job with its applicants.
func (r *Router) SelectJob(ctx context.Context, jobID string) {
	if !r.IsAdmin() {
		r.show(&AdminJobDetail{})
		return
	}

	job, err := r.deps.Store.GetJob(ctx, jobID)
	if err != nil {
		r.fail("loading job", err)
		return
	}
	apps, err := r.deps.Store.ListJobApplications(ctx, jobID)
	if err != nil {
		r.fail("loading applications", err)
		return
	}

	applicants := make(map[string]*talents.Talent, len(apps))
	for _, a := range apps {
		t, err := r.deps.Store.GetTalent(ctx, a.TalentID)
		if err != nil {
			r.fail("loading applicant", err)
			return
		}
		applicants[t.ID] = t
	}

	r.selectedJob = job
	r.show(&AdminJobDetail{Job: job, Applications: apps, Applicants: applicants})
}

// SelectTalent opens the talent detail screen.
func (r *Router) SelectTalent(ctx context.Context, talentID string) {
	if !r.IsAdmin() {
		r.show(&AdminTalentDetail{})
		return
	}

	t, err := r.deps.Store.GetTalent(ctx, talentID)
	if err != nil {
		r.fail("loading talent", err)
		return
	}
	apps, err := r.deps.Store.ListApplications(ctx, talentID)
	if err != nil {
		r.fail("loading applications", err)
		return
	}
	jobs, err := r.deps.Store.ListJobs(ctx)
	if err != nil {
		r.fail("loading jobs", err)
		return
	}

	r.selectedTalent = t
	r.show(&AdminTalentDetail{
		Talent:       t,
		Applications: apps,
		Jobs:         jobsByID(jobs),
		Checklist:    map[string]bool{},
	})
}

func (r *Router) talentDetail() (*AdminTalentDetail, bool) {
	v, ok := r.current.(*AdminTalentDetail)
	return v, ok && r.IsAdmin() && v.Talent != nil
}

// RankMatches scores every job for the selected talent and stores the
// matches sorted by descending score. Analyzing is true only while the
// call runs.
func (r *Router) RankMatches(ctx context.Context) {
	detail, ok := r.talentDetail()
	if !ok {
		return
	}

	jobs, err := r.deps.Store.ListJobs(ctx)
	if err != nil {
		r.fail("ranking jobs", err)
		return
	}

	detail.Analyzing = true
	matches, err := r.deps.Matcher.RankJobMatches(ctx, detail.Talent, jobs)
	detail.Analyzing = false
	if err != nil {
		r.fail("ranking jobs", err)
		return
	}

	ai.SortMatches(matches)
	detail.Matches = matches
	detail.Jobs = jobsByID(jobs)
	r.logger.Info("job matches ranked", zap.String("talent_id", detail.Talent.ID), zap.Int("matches", len(matches)))
}

// AnalyzeCulture produces the cultural-fit report from an interview
// transcript. AnalyzingCulture is true only while the call runs.
func (r *Router) AnalyzeCulture(ctx context.Context, transcript string) {
	detail, ok := r.talentDetail()
	if !ok {
		return
	}

	transcript = talents.SanitizeText(transcript)
	if strings.TrimSpace(transcript) == "" {
		r.alert = "the transcript is empty"
		return
	}

	detail.AnalyzingCulture = true
	report, err := r.deps.Analyst.AnalyzeTranscript(ctx, detail.Talent.Name, detail.Talent.Bio, transcript)
	detail.AnalyzingCulture = false
	if err != nil {
		r.fail("analyzing transcript", err)
		return
	}
	detail.CultureReport = report
}

// ToggleQuestion ticks or unticks an interview question and returns the
// new progress. Unknown questions are ignored.
func (r *Router) ToggleQuestion(question string) int {
	detail, ok := r.talentDetail()
	if !ok {
		return 0
	}
	if !isInterviewQuestion(question) {
		return detail.ChecklistProgress()
	}
	if detail.Checklist == nil {
		detail.Checklist = map[string]bool{}
	}
	detail.Checklist[question] = !detail.Checklist[question]
	return detail.ChecklistProgress()
}

func isInterviewQuestion(q string) bool {
	for _, c := range talents.InterviewQuestions {
		for _, known := range c.Questions {
			if known == q {
				return true
			}
		}
	}
	return false
}

// ChangeApplicationStatus moves an application along the pipeline and
// refreshes it on the current job or talent screen.
func (r *Router) ChangeApplicationStatus(ctx context.Context, applicationID string, status talents.ApplicationStatus) {
	if !r.IsAdmin() {
		r.show(&AdminDashboard{})
		return
	}

	updated, err := r.deps.Store.UpdateApplicationStatus(ctx, applicationID, status)
	if err != nil {
		r.fail("changing application status", err)
		return
	}

	var apps []*talents.Application
	switch v := r.current.(type) {
	case *AdminJobDetail:
		apps = v.Applications
	case *AdminTalentDetail:
		apps = v.Applications
	}
	for i, a := range apps {
		if a.ID == updated.ID {
			apps[i] = updated
		}
	}
	r.logger.Info("application status changed", zap.String("application_id", updated.ID), zap.String("status", string(updated.Status)))
}
