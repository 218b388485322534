// Package views holds the session state of the recruiting flow: which
// screen is showing, who is signed in and what is selected.
//
// The set of screens is closed. Every View dispatches itself to the matching
// Renderer method, so adding a screen breaks every Renderer until it
// handles the new one.
package views

import (
	"context"
	"fmt"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/talents"
)

// View is one screen. Only types in this package implement it.
type View interface {
	Name() string
	adminOnly() bool
	render(ctx context.Context, r Renderer) error
}

// Renderer draws screens. A console, a test recorder or any other front end
// implements one method per View.
type Renderer interface {
	Landing(ctx context.Context, v *Landing) error
	PublicJobList(ctx context.Context, v *PublicJobList) error
	CandidateRegistration(ctx context.Context, v *CandidateRegistration) error
	CandidateDashboard(ctx context.Context, v *CandidateDashboard) error
	AdminLogin(ctx context.Context, v *AdminLogin) error
	AdminDashboard(ctx context.Context, v *AdminDashboard) error
	AdminJobEditor(ctx context.Context, v *AdminJobEditor) error
	AdminJobDetail(ctx context.Context, v *AdminJobDetail) error
	AdminTalentDetail(ctx context.Context, v *AdminTalentDetail) error
}

const (
	NameLanding               = "landing"
	NamePublicJobList         = "public-job-list"
	NameCandidateRegistration = "candidate-registration"
	NameCandidateDashboard    = "candidate-dashboard"
	NameAdminLogin            = "admin-login"
	NameAdminDashboard        = "admin-dashboard"
	NameAdminJobEditor        = "admin-job-editor"
	NameAdminJobDetail        = "admin-job-detail"
	NameAdminTalentDetail     = "admin-talent-detail"
)

// Landing is the public entry screen.
type Landing struct{}

func (*Landing) Name() string    { return NameLanding }
func (*Landing) adminOnly() bool { return false }
func (v *Landing) render(ctx context.Context, r Renderer) error {
	return r.Landing(ctx, v)
}

// PublicJobList shows active jobs to visitors and candidates.
type PublicJobList struct {
	Jobs    []*talents.Job
	Keyword string
}

func (*PublicJobList) Name() string    { return NamePublicJobList }
func (*PublicJobList) adminOnly() bool { return false }
func (v *PublicJobList) render(ctx context.Context, r Renderer) error {
	return r.PublicJobList(ctx, v)
}

// CandidateRegistration is the sign-up form. Errors holds per-field
// validation messages from the last submit.
type CandidateRegistration struct {
	Draft  talents.TalentFields
	Errors map[string]string
	// ApplyTo is a job the visitor chose before registering.
	ApplyTo string
}

func (*CandidateRegistration) Name() string    { return NameCandidateRegistration }
func (*CandidateRegistration) adminOnly() bool { return false }
func (v *CandidateRegistration) render(ctx context.Context, r Renderer) error {
	return r.CandidateRegistration(ctx, v)
}

// CandidateDashboard is the signed-up candidate's home.
type CandidateDashboard struct {
	Candidate    *talents.Talent
	Applications []*talents.Application
	// OpenJobs are active jobs the candidate has not applied to.
	OpenJobs []*talents.Job
	// Jobs indexes every known job by id for application rows.
	Jobs map[string]*talents.Job
}

func (*CandidateDashboard) Name() string    { return NameCandidateDashboard }
func (*CandidateDashboard) adminOnly() bool { return false }
func (v *CandidateDashboard) render(ctx context.Context, r Renderer) error {
	return r.CandidateDashboard(ctx, v)
}

// AdminLogin asks for admin credentials. Error is the inline message of
// the last failed attempt.
type AdminLogin struct {
	Email string
	Error string
}

func (*AdminLogin) Name() string    { return NameAdminLogin }
func (*AdminLogin) adminOnly() bool { return false }
func (v *AdminLogin) render(ctx context.Context, r Renderer) error {
	return r.AdminLogin(ctx, v)
}

// AdminDashboard lists every job, whatever its status, and every talent.
type AdminDashboard struct {
	Jobs    []*talents.Job
	Talents []*talents.Talent
}

func (*AdminDashboard) Name() string    { return NameAdminDashboard }
func (*AdminDashboard) adminOnly() bool { return true }
func (v *AdminDashboard) render(ctx context.Context, r Renderer) error {
	return r.AdminDashboard(ctx, v)
}

// AdminJobEditor creates a job when Editing is nil and updates Editing
// otherwise.
type AdminJobEditor struct {
	Editing *talents.Job
	Fields  talents.JobFields
	Errors  map[string]string
}

func (*AdminJobEditor) Name() string    { return NameAdminJobEditor }
func (*AdminJobEditor) adminOnly() bool { return true }
func (v *AdminJobEditor) render(ctx context.Context, r Renderer) error {
	return r.AdminJobEditor(ctx, v)
}

// IsNew reports whether saving creates a job.
func (v *AdminJobEditor) IsNew() bool { return v.Editing == nil }

// AdminJobDetail shows a job with its applicants.
type AdminJobDetail struct {
	Job          *talents.Job
	Applications []*talents.Application
	Applicants   map[string]*talents.Talent
}

func (*AdminJobDetail) Name() string    { return NameAdminJobDetail }
func (*AdminJobDetail) adminOnly() bool { return true }
func (v *AdminJobDetail) render(ctx context.Context, r Renderer) error {
	return r.AdminJobDetail(ctx, v)
}

// AdminTalentDetail shows a talent with AI match results, the cultural-fit
// report and the interview checklist.
type AdminTalentDetail struct {
	Talent       *talents.Talent
	Applications []*talents.Application
	Jobs         map[string]*talents.Job

	Matches   []ai.JobMatch
	Analyzing bool

	CultureReport    string
	AnalyzingCulture bool

	Checklist map[string]bool
}

func (*AdminTalentDetail) Name() string    { return NameAdminTalentDetail }
func (*AdminTalentDetail) adminOnly() bool { return true }
func (v *AdminTalentDetail) render(ctx context.Context, r Renderer) error {
	return r.AdminTalentDetail(ctx, v)
}

// ChecklistProgress is the share of interview questions ticked, 0..100.
func (v *AdminTalentDetail) ChecklistProgress() int {
	return talents.ChecklistProgress(v.Checklist)
}

// StartNames lists the screens a session may open with.
var StartNames = []string{NameLanding, NamePublicJobList, NameCandidateRegistration, NameAdminLogin, NameAdminDashboard}

func validStart(name string) error {
	for _, n := range StartNames {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("unknown initial view %q (one of %v)", name, StartNames)
}
