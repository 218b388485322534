package gemini

import (
	"context"
	_ "embed"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/talents"
	"github.com/spigell/talents/internal/utils"
)

//go:embed culture_prompt.md
var culturePrompt string

// Analyst writes cultural-fit reports from interview transcripts.
type Analyst struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	system    string
}

var _ ai.Analyst = (*Analyst)(nil)

func NewAnalyst(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Analyst {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyst{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
		system:    strings.ReplaceAll(culturePrompt, "{{PILLARS}}", interviewScript()),
	}
}

func (a *Analyst) AnalyzeTranscript(ctx context.Context, name, bio, transcript string) (string, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", errors.New("transcript must not be empty")
	}

	var b strings.Builder
	b.WriteString("CANDIDATO: ")
	b.WriteString(strings.TrimSpace(name))
	if bio = strings.TrimSpace(bio); bio != "" {
		b.WriteString("\nBIO: ")
		b.WriteString(bio)
	}
	b.WriteString("\n\nTRANSCRIÇÃO DA ENTREVISTA:\n")
	b.WriteString(transcript)
	message := b.String()

	a.logger.Debug("gemini culture request",
		zap.Int("transcript_length", utf8.RuneCountInString(transcript)),
		zap.String("prompt_preview", utils.TruncateForLog(message, a.maxLogLen)),
	)

	report, err := a.generator.GenerateContent(ctx, a.system, message)
	if err != nil {
		return "", err
	}

	report = stripMarkdownFence(report)
	a.logger.Debug("gemini culture response",
		zap.Int("response_length", utf8.RuneCountInString(report)),
		zap.String("response_preview", utils.TruncateForLog(report, a.maxLogLen)),
	)
	return report, nil
}

func interviewScript() string {
	var b strings.Builder
	for _, c := range talents.InterviewQuestions {
		b.WriteString("- ")
		b.WriteString(c.Category)
		b.WriteString("\n")
		for _, q := range c.Questions {
			b.WriteString("  - ")
			b.WriteString(q)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// stripMarkdownFence unwraps a report the model wrapped in ```markdown.
func stripMarkdownFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.Index(s, "\n"); nl != -1 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
