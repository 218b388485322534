// Package ai declares the text-generation services the recruiting flow
// depends on: job matching for a talent and cultural-fit analysis.
package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spigell/talents/internal/talents"
)

// ErrDisabled is returned by every call when no AI provider is configured.
var ErrDisabled = errors.New("ai is disabled")

// JobMatch scores one job for a talent.
type JobMatch struct {
	JobID  string `json:"job_id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Matcher ranks jobs for a talent. Implementations may return matches in
// any order and may omit jobs; callers sort with SortMatches.
type Matcher interface {
	RankJobMatches(ctx context.Context, talent *talents.Talent, jobs []*talents.Job) ([]JobMatch, error)
}

// Analyst turns an interview transcript into a cultural-fit report.
type Analyst interface {
	AnalyzeTranscript(ctx context.Context, name, bio, transcript string) (string, error)
}

// SortMatches orders matches by descending score. Ties keep input order.
func SortMatches(matches []JobMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}

// Disabled satisfies Matcher and Analyst and always fails with ErrDisabled.
type Disabled struct {
	// Hint tells the operator how to enable the service.
	Hint string
}

var (
	_ Matcher = Disabled{}
	_ Analyst = Disabled{}
)

func (d Disabled) RankJobMatches(context.Context, *talents.Talent, []*talents.Job) ([]JobMatch, error) {
	return nil, d.err()
}

func (d Disabled) AnalyzeTranscript(context.Context, string, string, string) (string, error) {
	return "", d.err()
}

func (d Disabled) err() error {
	if d.Hint == "" {
		return ErrDisabled
	}
	return fmt.Errorf("%w: %s", ErrDisabled, d.Hint)
}
