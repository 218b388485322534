package views

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/logger"
	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

// Deps are the services a session talks to.
type Deps struct {
	Store   store.Store
	Auth    auth.Authenticator
	Matcher ai.Matcher
	Analyst ai.Analyst
	Logger  *zap.Logger
}

// Router owns one session. It is not safe for concurrent use.
type Router struct {
	deps   Deps
	logger *zap.Logger

	current        View
	session        *auth.Session
	selectedJob    *talents.Job
	selectedTalent *talents.Talent
	candidate      *talents.Talent
	alert          string
}

// New returns a router on the landing screen.
func New(deps Deps) *Router {
	if deps.Matcher == nil {
		deps.Matcher = ai.Disabled{}
	}
	if deps.Analyst == nil {
		deps.Analyst = ai.Disabled{}
	}
	if deps.Store == nil {
		deps.Store = store.Unconfigured{}
	}
	return &Router{
		deps:    deps,
		logger:  logger.WithFields(deps.Logger),
		current: &Landing{},
	}
}

// Start opens the named screen. Admin screens still go through the gate.
func (r *Router) Start(ctx context.Context, name string) error {
	if err := validStart(name); err != nil {
		return err
	}
	switch name {
	case NamePublicJobList:
		r.ShowPublicJobs(ctx, "")
	case NameCandidateRegistration:
		r.StartRegistration("")
	case NameAdminLogin:
		r.ShowAdminLogin()
	case NameAdminDashboard:
		r.ShowAdminDashboard(ctx)
	default:
		r.GoLanding()
	}
	return nil
}

// Render draws the current screen with rd.
func (r *Router) Render(ctx context.Context, rd Renderer) error {
	return r.current.render(ctx, rd)
}

func (r *Router) Current() View { return r.current }

// IsAdmin reports whether an admin session is active.
func (r *Router) IsAdmin() bool { return r.session != nil }

func (r *Router) Session() *auth.Session { return r.session }

func (r *Router) Candidate() *talents.Talent { return r.candidate }

func (r *Router) SelectedJob() *talents.Job { return r.selectedJob }

func (r *Router) SelectedTalent() *talents.Talent { return r.selectedTalent }

// Alert returns the pending blocking message, if any.
func (r *Router) Alert() string { return r.alert }

// TakeAlert returns the pending message and clears it.
func (r *Router) TakeAlert() string {
	msg := r.alert
	r.alert = ""
	return msg
}

// show switches screens. Any admin screen requested without a session
// resolves to the login screen.
func (r *Router) show(v View) {
	if v.adminOnly() && !r.IsAdmin() {
		r.logger.Debug("admin view requested without session", zap.String(logger.FieldView, v.Name()))
		v = &AdminLogin{}
	}
	if r.current.Name() != v.Name() {
		r.logger.Debug("view changed",
			zap.String("from", r.current.Name()),
			zap.String(logger.FieldView, v.Name()),
		)
	}
	r.current = v
}

// fail records err as the blocking alert and keeps the current screen.
func (r *Router) fail(action string, err error) {
	msg := action + ": " + err.Error()
	var verr *talents.ValidationError
	switch {
	case errors.Is(err, store.ErrNotConfigured), errors.Is(err, ai.ErrDisabled):
		msg = err.Error()
	case errors.As(err, &verr):
		msg = action + ": please fix the highlighted fields"
	}
	r.alert = msg
	r.logger.Warn(action+" failed", zap.String(logger.FieldView, r.current.Name()), zap.Error(err))
}

// GoLanding shows the landing screen. An admin screen with a live session
// is only left through Logout.
func (r *Router) GoLanding() {
	if r.current.adminOnly() && r.IsAdmin() {
		r.logger.Debug("landing refused inside admin area", zap.String(logger.FieldView, r.current.Name()))
		return
	}
	r.show(&Landing{})
}

// Back leaves a detail or form screen: admin screens return to the
// dashboard, everything else to the landing screen.
func (r *Router) Back(ctx context.Context) {
	switch r.current.(type) {
	case *AdminJobEditor, *AdminJobDetail, *AdminTalentDetail:
		r.ShowAdminDashboard(ctx)
	case *AdminDashboard:
		// nothing above the dashboard
	default:
		r.GoLanding()
	}
}

func jobsByID(jobs []*talents.Job) map[string]*talents.Job {
	out := make(map[string]*talents.Job, len(jobs))
	for _, j := range jobs {
		out[j.ID] = j
	}
	return out
}
