package talents

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ApplicationStatus tracks a candidate through review.
//
//	Applied ──► Interview ──► Offer ──► Hired
//	   │            │           │
//	   └────────────┴───────────┴──► Rejected
//
// Hired and Rejected are terminal.
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "Applied"
	ApplicationInterview ApplicationStatus = "Interview"
	ApplicationOffer     ApplicationStatus = "Offer"
	ApplicationHired     ApplicationStatus = "Hired"
	ApplicationRejected  ApplicationStatus = "Rejected"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:   {ApplicationInterview, ApplicationRejected},
	ApplicationInterview: {ApplicationOffer, ApplicationRejected},
	ApplicationOffer:     {ApplicationHired, ApplicationRejected},
}

// ApplicationStatuses lists every status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationApplied,
	ApplicationInterview,
	ApplicationOffer,
	ApplicationHired,
	ApplicationRejected,
}

// ParseApplicationStatus converts a raw string, case-insensitively.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	raw := strings.TrimSpace(s)
	for _, st := range ApplicationStatuses {
		if strings.EqualFold(raw, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition reports whether an application may move from -> to.
func CanTransition(from, to ApplicationStatus) bool {
	return slices.Contains(applicationTransitions[from], to)
}

// NextStatuses returns the statuses reachable from s.
func NextStatuses(s ApplicationStatus) []ApplicationStatus {
	return append([]ApplicationStatus(nil), applicationTransitions[s]...)
}

// IsTerminal reports whether no transition leaves s.
func (s ApplicationStatus) IsTerminal() bool {
	return len(applicationTransitions[s]) == 0
}

// Application links a talent to a job.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"job_id"`
	TalentID  string            `json:"talent_id"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// AppliedJobIDs returns the job ids of apps.
func AppliedJobIDs(apps []*Application) []string {
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.JobID)
	}
	return ids
}

// HasApplied reports whether apps contains an application to jobID.
func HasApplied(apps []*Application, jobID string) bool {
	for _, a := range apps {
		if a.JobID == jobID {
			return true
		}
	}
	return false
}
