package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/talents"
)

type appliedHistoryFilter struct {
	ignore bool
}

type AppliedHistoryConfig struct {
	// Ignore keeps jobs the candidate already applied to.
	Ignore bool
}

// NewAppliedHistory creates a filter that removes jobs the candidate has
// already applied to. It does nothing for anonymous visitors.
func NewAppliedHistory(cfg *AppliedHistoryConfig) Filter {
	ignore := false
	if cfg != nil {
		ignore = cfg.Ignore
	}
	return &appliedHistoryFilter{ignore: ignore}
}

func (f *appliedHistoryFilter) Name() string { return AppliedHistoryName }

func (f *appliedHistoryFilter) Disable(string) { f.ignore = true }

func (f *appliedHistoryFilter) IsEnabled() bool { return true }

func (f *appliedHistoryFilter) Validate(*Config) error { return nil }

func (f *appliedHistoryFilter) Apply(ctx context.Context, deps Deps, jobs []*talents.Job) ([]*talents.Job, Step, error) {
	initial := len(jobs)
	if f.ignore || deps.TalentID == "" {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}
	if deps.Applications == nil {
		return jobs, Step{}, fmt.Errorf("application store is required")
	}

	apps, err := deps.Applications.ListApplications(ctx, deps.TalentID)
	if err != nil {
		return jobs, Step{}, fmt.Errorf("list applications: %w", err)
	}

	kept, excluded := keep(jobs, func(j *talents.Job) bool { return !talents.HasApplied(apps, j.ID) })
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Debug("excluding jobs already applied to",
			zap.String("talent_id", deps.TalentID),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(excluded), Left: len(kept)}, nil
}

func (f *appliedHistoryFilter) Status() Status {
	details := map[string]string{
		"exclude_applied": strconv.FormatBool(!f.ignore),
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
