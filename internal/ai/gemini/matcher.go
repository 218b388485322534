package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/talents"
	"github.com/spigell/talents/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

//go:embed rank_prompt.md
var rankPrompt string

const defaultMaxLogLength = 200

// Matcher ranks jobs for a talent with one generation call.
type Matcher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Matcher = (*Matcher)(nil)

func NewMatcher(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Matcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Matcher{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

type talentPayload struct {
	Name      string   `json:"name"`
	Role      string   `json:"role,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Seniority string   `json:"seniority"`
	Areas     []string `json:"areas"`
	Products  []string `json:"products,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

type jobPayload struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Mission          string `json:"mission"`
	Responsibilities string `json:"responsibilities,omitempty"`
	SuccessIndicator string `json:"success_indicator,omitempty"`
	OKR              string `json:"okr,omitempty"`
}

// RankJobMatches returns one match per job the model scored. Scores are
// clamped to 0..100 and ids not in jobs are dropped.
func (m *Matcher) RankJobMatches(ctx context.Context, talent *talents.Talent, jobs []*talents.Job) ([]ai.JobMatch, error) {
	if talent == nil {
		return nil, fmt.Errorf("talent is required")
	}
	if len(jobs) == 0 {
		return []ai.JobMatch{}, nil
	}

	message, err := buildRankMessage(talent, jobs)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("gemini rank request",
		zap.String("talent_id", talent.ID),
		zap.Int("jobs", len(jobs)),
		zap.Int("prompt_length", utf8.RuneCountInString(message)),
		zap.String("prompt_preview", utils.TruncateForLog(message, m.maxLogLen)),
	)

	raw, err := m.generator.GenerateContent(ctx, rankPrompt, message)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("gemini rank response",
		zap.String("talent_id", talent.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, m.maxLogLen)),
	)

	known := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		known[j.ID] = struct{}{}
	}

	matches, err := parseMatches(raw, known)
	if err != nil {
		return nil, err
	}
	if dropped := len(jobs) - len(matches); dropped > 0 {
		m.logger.Debug("jobs without a usable score", zap.String("talent_id", talent.ID), zap.Int("count", dropped))
	}
	return matches, nil
}

func buildRankMessage(talent *talents.Talent, jobs []*talents.Job) (string, error) {
	tp := talentPayload{
		Name:      talent.Name,
		Role:      talent.Role,
		Bio:       talent.Bio,
		Seniority: string(talent.Seniority),
		Areas:     talent.Areas,
		Products:  talent.Products,
		Tags:      talent.Tags,
	}
	jp := make([]jobPayload, 0, len(jobs))
	for _, j := range jobs {
		jp = append(jp, jobPayload{
			ID:               j.ID,
			Title:            j.Title,
			Mission:          j.Mission,
			Responsibilities: j.Responsibilities,
			SuccessIndicator: j.SuccessIndicator,
			OKR:              j.OKR,
		})
	}

	talentJSON, err := json.MarshalIndent(tp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal talent payload: %w", err)
	}
	jobsJSON, err := json.MarshalIndent(jp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal jobs payload: %w", err)
	}

	return "TALENT:\n" + string(talentJSON) + "\n\nJOBS:\n" + string(jobsJSON) + "\n\nJSON Response:", nil
}

type rawMatch struct {
	JobID  string  `mapstructure:"job_id"`
	Score  float64 `mapstructure:"score"`
	Reason string  `mapstructure:"reason"`
}

// parseMatches accepts {"matches": [...]} or a bare array, string scores,
// and "jobId"/"id" in place of "job_id".
func parseMatches(raw string, known map[string]struct{}) ([]ai.JobMatch, error) {
	cleaned := extractJSON(raw)

	var data any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var items []any
	switch v := data.(type) {
	case []any:
		items = v
	case map[string]any:
		list, ok := v["matches"].([]any)
		if !ok {
			return nil, fmt.Errorf("parse gemini response: missing matches list")
		}
		items = list
	default:
		return nil, fmt.Errorf("parse gemini response: unexpected %T", data)
	}

	out := make([]ai.JobMatch, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		normalizeKeys(obj)

		var rm rawMatch
		if err := decodeWeak(obj, &rm); err != nil {
			continue
		}

		id := strings.TrimSpace(rm.JobID)
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		out = append(out, ai.JobMatch{
			JobID:  id,
			Score:  clampScore(rm.Score),
			Reason: strings.TrimSpace(rm.Reason),
		})
	}
	return out, nil
}

func normalizeKeys(obj map[string]any) {
	if _, ok := obj["job_id"]; ok {
		return
	}
	for _, alt := range []string{"jobId", "jobID", "id"} {
		if v, ok := obj[alt]; ok {
			obj["job_id"] = v
			return
		}
	}
}

func decodeWeak(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// clampScore rounds a score onto the 0-100 scale the rank prompt asks for.
func clampScore(score float64) int {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
