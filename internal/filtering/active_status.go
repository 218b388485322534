package filtering

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/talents"
)

type activeStatusFilter struct {
	disabled bool
	reason   string
}

// NewActiveStatus creates a filter that removes draft and paused jobs.
func NewActiveStatus() Filter {
	return &activeStatusFilter{}
}

func (f *activeStatusFilter) Name() string { return "active_status" }

func (f *activeStatusFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *activeStatusFilter) IsEnabled() bool { return !f.disabled }

func (f *activeStatusFilter) Validate(*Config) error { return nil }

func (f *activeStatusFilter) Apply(_ context.Context, deps Deps, jobs []*talents.Job) ([]*talents.Job, Step, error) {
	initial := len(jobs)
	kept, excluded := keep(jobs, (*talents.Job).IsPublic)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Debug("excluding jobs that are not active",
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", len(kept)),
		)
	}
	return kept, Step{Initial: initial, Dropped: len(excluded), Left: len(kept)}, nil
}

func (f *activeStatusFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
