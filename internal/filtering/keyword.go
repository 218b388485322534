package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/talents"
)

type keywordFilter struct {
	disabled bool
	reason   string
	keyword  string
}

// NewKeyword creates a filter keeping jobs whose title or mission contains
// the configured keyword, case-insensitively.
func NewKeyword() Filter {
	return &keywordFilter{}
}

func (f *keywordFilter) Name() string { return "keyword" }

func (f *keywordFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *keywordFilter) IsEnabled() bool { return !f.disabled }

func (f *keywordFilter) Validate(cfg *Config) error {
	f.keyword = ""
	if cfg != nil {
		f.keyword = strings.ToLower(strings.TrimSpace(cfg.Keyword))
	}
	return nil
}

func (f *keywordFilter) Apply(_ context.Context, deps Deps, jobs []*talents.Job) ([]*talents.Job, Step, error) {
	initial := len(jobs)
	if f.keyword == "" {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept, excluded := keep(jobs, func(j *talents.Job) bool {
		return strings.Contains(strings.ToLower(j.Title), f.keyword) ||
			strings.Contains(strings.ToLower(j.Mission), f.keyword)
	})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Debug("excluding jobs by keyword",
			zap.String("keyword", f.keyword),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(excluded), Left: len(kept)}, nil
}

func (f *keywordFilter) Status() Status {
	details := map[string]string{}
	if f.keyword != "" {
		details["keyword"] = f.keyword
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
