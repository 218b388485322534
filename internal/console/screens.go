package console

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/talents"
	"github.com/spigell/talents/internal/views"
)

var _ views.Renderer = (*Console)(nil)

const (
	actBack       = "back"
	actQuit       = "quit"
	actBrowse     = "browse"
	actRegister   = "register"
	actDashboard  = "dashboard"
	actAdmin      = "admin"
	actSearch     = "search"
	actSubmit     = "submit"
	actSignIn     = "sign-in"
	actSignOut    = "sign-out"
	actNewJob     = "new-job"
	actEdit       = "edit"
	actStatus     = "status"
	actRank       = "rank"
	actTranscript = "transcript"
	actChecklist  = "checklist"

	jobPrefix    = "job:"
	talentPrefix = "talent:"
)

func (c *Console) Landing(ctx context.Context, _ *views.Landing) error {
	c.title("Lendária talents")
	menu := []item{
		{actBrowse, "Browse open jobs"},
		{actRegister, "Register as a candidate"},
	}
	if cand := c.router.Candidate(); cand != nil {
		menu = append(menu, item{actDashboard, "My applications (" + cand.Name + ")"})
	}
	menu = append(menu, item{actAdmin, "Admin area"}, item{actQuit, "Quit"})

	act, err := c.choose("What do you want to do?", menu)
	if err != nil {
		return err
	}
	switch act {
	case actBrowse:
		c.router.ShowPublicJobs(ctx, "")
	case actRegister:
		c.router.StartRegistration("")
	case actDashboard:
		c.router.ShowCandidateDashboard(ctx)
	case actAdmin:
		if c.router.IsAdmin() {
			c.router.ShowAdminDashboard(ctx)
		} else {
			c.router.ShowAdminLogin()
		}
	case actQuit:
		return ErrQuit
	}
	return nil
}

func (c *Console) PublicJobList(ctx context.Context, v *views.PublicJobList) error {
	c.title("Open jobs")
	if v.Keyword != "" {
		c.line("filter: %q", v.Keyword)
	}
	if len(v.Jobs) == 0 {
		c.line("no open jobs")
	}

	menu := make([]item, 0, len(v.Jobs)+2)
	for _, j := range v.Jobs {
		menu = append(menu, item{jobPrefix + j.ID, jobLabel(j)})
	}
	menu = append(menu, item{actSearch, "Search by keyword"}, item{actBack, "Back"})

	act, err := c.choose("Pick a job to see it and apply", menu)
	if err != nil {
		return err
	}
	switch {
	case act == actSearch:
		kw, err := c.prompt.Input("Keyword", v.Keyword)
		if err != nil {
			return err
		}
		c.router.ShowPublicJobs(ctx, kw)
	case act == actBack:
		c.router.GoLanding()
	case strings.HasPrefix(act, jobPrefix):
		return c.jobCard(ctx, talents.FindJob(v.Jobs, strings.TrimPrefix(act, jobPrefix)))
	}
	return nil
}

func (c *Console) jobCard(ctx context.Context, j *talents.Job) error {
	if j == nil {
		return nil
	}
	c.printJob(j)
	act, err := c.choose("Apply to this job?", []item{{actSubmit, "Apply"}, {actBack, "Back"}})
	if err != nil {
		return err
	}
	if act == actSubmit {
		c.router.Apply(ctx, j.ID)
	}
	return nil
}

func (c *Console) CandidateRegistration(ctx context.Context, v *views.CandidateRegistration) error {
	c.title("Candidate registration")
	c.printErrors(v.Errors)

	act, err := c.choose("Continue", []item{{actSubmit, "Fill in the form"}, {actBack, "Cancel"}})
	if err != nil {
		return err
	}
	if act == actBack {
		c.router.CancelRegistration()
		return nil
	}

	d := v.Draft
	ask := func(label string, dst *string) {
		if err != nil {
			return
		}
		*dst, err = c.prompt.Input(label, *dst)
	}
	ask("Full name", &d.Name)
	ask("Role", &d.Role)
	ask("Email", &d.Email)
	ask("Phone", &d.Phone)
	ask("City - State", &d.Location)
	ask("Short bio", &d.Bio)

	products := strings.Join(d.Products, ", ")
	areas := strings.Join(d.Areas, ", ")
	seniority := string(d.Seniority)
	c.line("products: %s", numbered(talents.AcademyProducts))
	ask("Products taken (numbers or names, comma separated)", &products)
	c.line("areas: %s", numbered(talents.InterestAreas))
	ask("Areas of interest (numbers or names, comma separated)", &areas)
	ask("Seniority (Junior, Pleno, Sênior)", &seniority)
	ask("Fixed salary (R$ 0.000,00)", &d.FixedSalary)
	if err != nil {
		return err
	}

	d.Products = splitList(products, talents.AcademyProducts)
	d.Areas = splitList(areas, talents.InterestAreas)
	d.Seniority = talents.Seniority(strings.TrimSpace(seniority))
	c.router.Register(ctx, d)
	return nil
}

func (c *Console) CandidateDashboard(ctx context.Context, v *views.CandidateDashboard) error {
	c.title("Hi, " + v.Candidate.Name)
	if len(v.Applications) == 0 {
		c.line("no applications yet")
	}
	for _, a := range v.Applications {
		c.line("- %s: %s (since %s)", jobTitle(v.Jobs, a.JobID), a.Status, a.CreatedAt.Format("02/01/2006"))
	}

	menu := make([]item, 0, len(v.OpenJobs)+3)
	for _, j := range v.OpenJobs {
		menu = append(menu, item{jobPrefix + j.ID, "Apply: " + jobLabel(j)})
	}
	menu = append(menu,
		item{actBrowse, "Browse open jobs"},
		item{actSignOut, "Sign out"},
		item{actBack, "Back"},
	)

	act, err := c.choose("Next", menu)
	if err != nil {
		return err
	}
	switch {
	case act == actBrowse:
		c.router.ShowPublicJobs(ctx, "")
	case act == actSignOut:
		c.router.SignOutCandidate()
	case act == actBack:
		c.router.GoLanding()
	case strings.HasPrefix(act, jobPrefix):
		c.router.Apply(ctx, strings.TrimPrefix(act, jobPrefix))
	}
	return nil
}

func (c *Console) AdminLogin(ctx context.Context, v *views.AdminLogin) error {
	c.title("Admin login")
	if v.Error != "" {
		c.line("error: %s", v.Error)
	}

	act, err := c.choose("Continue", []item{{actSignIn, "Sign in"}, {actBack, "Back"}})
	if err != nil {
		return err
	}
	if act == actBack {
		c.router.GoLanding()
		return nil
	}

	email, err := c.prompt.Input("Email", v.Email)
	if err != nil {
		return err
	}
	password, err := c.prompt.Secret("Password")
	if err != nil {
		return err
	}
	c.router.Login(ctx, auth.Credentials{Email: email, Password: password})
	return nil
}

func (c *Console) AdminDashboard(ctx context.Context, v *views.AdminDashboard) error {
	c.title("Admin dashboard")
	c.line("%d jobs, %d talents", len(v.Jobs), len(v.Talents))

	menu := []item{{actNewJob, "New job"}}
	for _, j := range v.Jobs {
		menu = append(menu, item{jobPrefix + j.ID, fmt.Sprintf("Job: %s [%s] %d candidates", j.Title, j.Status, j.Candidates)})
	}
	for _, t := range v.Talents {
		menu = append(menu, item{talentPrefix + t.ID, fmt.Sprintf("Talent: %s (%s, %.1f)", t.Name, t.Seniority, t.Rating)})
	}
	menu = append(menu, item{actSignOut, "Log out"})

	act, err := c.choose("Manage", menu)
	if err != nil {
		return err
	}
	switch {
	case act == actNewJob:
		c.router.NewJob()
	case act == actSignOut:
		c.router.Logout()
	case strings.HasPrefix(act, jobPrefix):
		c.router.SelectJob(ctx, strings.TrimPrefix(act, jobPrefix))
	case strings.HasPrefix(act, talentPrefix):
		c.router.SelectTalent(ctx, strings.TrimPrefix(act, talentPrefix))
	}
	return nil
}

func (c *Console) AdminJobEditor(ctx context.Context, v *views.AdminJobEditor) error {
	if v.IsNew() {
		c.title("New job")
	} else {
		c.title("Edit job: " + v.Editing.Title)
	}
	c.printErrors(v.Errors)

	act, err := c.choose("Continue", []item{{actSubmit, "Fill in the fields"}, {actBack, "Cancel"}})
	if err != nil {
		return err
	}
	if act == actBack {
		c.router.Back(ctx)
		return nil
	}

	f := v.Fields
	ask := func(label string, dst *string) {
		if err != nil {
			return
		}
		*dst, err = c.prompt.Input(label, *dst)
	}
	ask("Title", &f.Title)
	ask("Mission", &f.Mission)
	ask("Responsibilities", &f.Responsibilities)
	ask("Success indicator", &f.SuccessIndicator)
	ask("OKR", &f.OKR)
	ask("Work type", &f.WorkType)
	ask("Location", &f.Location)
	if err != nil {
		return err
	}

	statuses := []talents.JobStatus{talents.JobStatusActive, talents.JobStatusDraft, talents.JobStatusPaused}
	labels := make([]string, len(statuses))
	for i, s := range statuses {
		labels[i] = string(s)
	}
	idx, err := c.prompt.Select("Status", labels)
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(statuses) {
		f.Status = statuses[idx]
	}

	c.router.SaveJob(ctx, f)
	return nil
}

func (c *Console) AdminJobDetail(ctx context.Context, v *views.AdminJobDetail) error {
	c.title("Job")
	c.printJob(v.Job)
	c.line("applicants: %d", len(v.Applications))
	for _, a := range v.Applications {
		c.line("- %s: %s", talentName(v.Applicants, a.TalentID), a.Status)
	}

	menu := []item{{actEdit, "Edit job"}}
	for _, a := range v.Applications {
		menu = append(menu, item{talentPrefix + a.TalentID, "Applicant: " + talentName(v.Applicants, a.TalentID)})
	}
	menu = append(menu, item{actStatus, "Change an application status"}, item{actBack, "Back"})

	act, err := c.choose("Next", menu)
	if err != nil {
		return err
	}
	switch {
	case act == actEdit:
		c.router.EditJob(ctx, v.Job.ID)
	case act == actStatus:
		return c.changeStatus(ctx, v.Applications, func(a *talents.Application) string {
			return talentName(v.Applicants, a.TalentID)
		})
	case act == actBack:
		c.router.Back(ctx)
	case strings.HasPrefix(act, talentPrefix):
		c.router.SelectTalent(ctx, strings.TrimPrefix(act, talentPrefix))
	}
	return nil
}

func (c *Console) AdminTalentDetail(ctx context.Context, v *views.AdminTalentDetail) error {
	t := v.Talent
	c.title(t.Name)
	c.line("%s | %s | %s | %s", t.Email, t.Phone, t.Location, t.Seniority)
	if t.Role != "" {
		c.line("role: %s", t.Role)
	}
	c.line("areas: %s", strings.Join(t.Areas, ", "))
	c.line("products: %s", strings.Join(t.Products, ", "))
	c.line("salary: %s  rating: %.1f", t.FixedSalary, t.Rating)
	if t.Bio != "" {
		c.line("bio: %s", t.Bio)
	}
	for _, a := range v.Applications {
		c.line("- applied to %s: %s", jobTitle(v.Jobs, a.JobID), a.Status)
	}
	if len(v.Matches) > 0 {
		c.line("\njob matches:")
		for _, m := range v.Matches {
			c.line("  %3d%%  %s  %s", m.Score, jobTitle(v.Jobs, m.JobID), m.Reason)
		}
	}
	if v.CultureReport != "" {
		c.line("\n%s", v.CultureReport)
	}
	c.line("interview checklist: %d%%", v.ChecklistProgress())

	act, err := c.choose("Next", []item{
		{actRank, "Rank job matches with AI"},
		{actTranscript, "Analyze an interview transcript"},
		{actChecklist, "Interview checklist"},
		{actStatus, "Change an application status"},
		{actBack, "Back"},
	})
	if err != nil {
		return err
	}
	switch act {
	case actRank:
		c.line("analyzing...")
		c.router.RankMatches(ctx)
	case actTranscript:
		return c.transcript(ctx)
	case actChecklist:
		return c.checklist(v)
	case actStatus:
		return c.changeStatus(ctx, v.Applications, func(a *talents.Application) string {
			return jobTitle(v.Jobs, a.JobID)
		})
	case actBack:
		c.router.Back(ctx)
	}
	return nil
}

func (c *Console) transcript(ctx context.Context) error {
	path, err := c.prompt.Input("Transcript file", "")
	if err != nil {
		return err
	}
	raw, err := c.readFile(strings.TrimSpace(path))
	if err != nil {
		c.line("error: reading transcript: %s", err)
		return nil
	}
	c.line("analyzing...")
	c.router.AnalyzeCulture(ctx, string(raw))
	return nil
}

func (c *Console) checklist(v *views.AdminTalentDetail) error {
	for {
		var questions []string
		var labels []string
		for _, cat := range talents.InterviewQuestions {
			for _, q := range cat.Questions {
				mark := "[ ]"
				if v.Checklist[q] {
					mark = "[x]"
				}
				questions = append(questions, q)
				labels = append(labels, mark+" "+q)
			}
		}
		labels = append(labels, fmt.Sprintf("Done (%d%%)", v.ChecklistProgress()))

		idx, err := c.prompt.Select("Tick the questions asked", labels)
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(questions) {
			return nil
		}
		c.router.ToggleQuestion(questions[idx])
	}
}

func (c *Console) changeStatus(ctx context.Context, apps []*talents.Application, label func(*talents.Application) string) error {
	var menu []item
	for _, a := range apps {
		if a.Status.IsTerminal() {
			continue
		}
		menu = append(menu, item{a.ID, fmt.Sprintf("%s (%s)", label(a), a.Status)})
	}
	if len(menu) == 0 {
		c.line("no application can change status")
		return nil
	}
	menu = append(menu, item{actBack, "Back"})

	id, err := c.choose("Application", menu)
	if err != nil || id == actBack {
		return err
	}

	var current talents.ApplicationStatus
	for _, a := range apps {
		if a.ID == id {
			current = a.Status
		}
	}
	next := talents.NextStatuses(current)
	statusMenu := make([]item, 0, len(next)+1)
	for _, s := range next {
		statusMenu = append(statusMenu, item{string(s), string(s)})
	}
	statusMenu = append(statusMenu, item{actBack, "Back"})

	st, err := c.choose("Move to", statusMenu)
	if err != nil || st == actBack {
		return err
	}
	c.router.ChangeApplicationStatus(ctx, id, talents.ApplicationStatus(st))
	return nil
}

func (c *Console) printJob(j *talents.Job) {
	if j == nil {
		return
	}
	c.line("%s [%s]", j.Title, j.Status)
	if j.WorkType != "" || j.Location != "" {
		c.line("%s %s", j.WorkType, j.Location)
	}
	c.line("mission: %s", j.Mission)
	if j.Responsibilities != "" {
		c.line("responsibilities:\n%s", j.Responsibilities)
	}
	if j.SuccessIndicator != "" {
		c.line("success indicator: %s", j.SuccessIndicator)
	}
	if j.OKR != "" {
		c.line("okr: %s", j.OKR)
	}
}

func (c *Console) printErrors(errs map[string]string) {
	if len(errs) == 0 {
		return
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.line("  %s: %s", k, errs[k])
	}
}

func jobLabel(j *talents.Job) string {
	if j.WorkType == "" {
		return j.Title
	}
	return fmt.Sprintf("%s (%s)", j.Title, j.WorkType)
}

func jobTitle(jobs map[string]*talents.Job, id string) string {
	if j, ok := jobs[id]; ok {
		return j.Title
	}
	return id
}

func talentName(list map[string]*talents.Talent, id string) string {
	if t, ok := list[id]; ok {
		return t.Name
	}
	return id
}
