// Package filtering narrows job lists through named, sequential steps.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/talents"
)

// Filter represents a single filtering step applied to jobs.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, jobs []*talents.Job) ([]*talents.Job, Step, error)
}

// ApplicationLister is the part of the store the applied_history step needs.
type ApplicationLister interface {
	ListApplications(ctx context.Context, talentID string) ([]*talents.Application, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Applications ApplicationLister
	Logger       *zap.Logger
	// TalentID is the candidate the list is built for. Empty for anonymous
	// visitors.
	TalentID string
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains per-run settings consumed by the filters.
type Config struct {
	Keyword string
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// AppliedHistoryName names the step dropping jobs the candidate applied to.
const AppliedHistoryName = "applied_history"

// Public returns the steps used for candidate-facing job lists.
func Public() []Filter {
	return []Filter{NewActiveStatus(), NewAppliedHistory(nil), NewKeyword()}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the enabled filters in order. The input slice is not modified.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, jobs []*talents.Job) ([]*talents.Job, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	out := append([]*talents.Job(nil), jobs...)
	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Debug("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, out)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}
		out = next
	}

	return out, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

func keep(jobs []*talents.Job, ok func(*talents.Job) bool) ([]*talents.Job, []string) {
	kept := make([]*talents.Job, 0, len(jobs))
	var dropped []string
	for _, j := range jobs {
		if ok(j) {
			kept = append(kept, j)
			continue
		}
		dropped = append(dropped, j.ID)
	}
	return kept, dropped
}
