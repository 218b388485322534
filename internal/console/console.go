// Package console drives a session from the terminal. It renders the
// router's current screen, asks for the next action and repeats.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/views"
)

// ErrQuit ends the session.
var ErrQuit = errors.New("quit requested")

// Console is a views.Renderer that reads actions from a Prompter.
type Console struct {
	router *views.Router
	prompt Prompter
	out    io.Writer
	logger *zap.Logger

	readFile func(string) ([]byte, error)
}

// Option customizes a Console.
type Option func(*Console)

// WithPrompter replaces the terminal prompter.
func WithPrompter(p Prompter) Option {
	return func(c *Console) { c.prompt = p }
}

// WithOutput replaces stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

func New(router *views.Router, logger *zap.Logger, opts ...Option) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Console{
		router:   router,
		prompt:   Terminal{},
		out:      os.Stdout,
		logger:   logger,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run renders screens until the operator quits or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if msg := c.router.TakeAlert(); msg != "" {
			fmt.Fprintf(c.out, "\n!! %s\n", msg)
		}
		err := c.router.Render(ctx, c)
		if errors.Is(err, ErrQuit) {
			c.logger.Info("session closed")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// choose shows a menu and returns the chosen action key.
func (c *Console) choose(label string, menu []item) (string, error) {
	labels := make([]string, len(menu))
	for i, it := range menu {
		labels[i] = it.label
	}
	idx, err := c.prompt.Select(label, labels)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(menu) {
		return "", fmt.Errorf("invalid choice %d", idx)
	}
	return menu[idx].key, nil
}

type item struct {
	key   string
	label string
}

func (c *Console) title(s string) {
	fmt.Fprintf(c.out, "\n== %s ==\n", s)
}

func (c *Console) line(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// splitList parses a comma separated answer. Numbers pick from catalog
// (1-based); anything else is kept as typed.
func splitList(answer string, catalog []string) []string {
	var out []string
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(part, "%d", &n); err == nil && fmt.Sprint(n) == part && n >= 1 && n <= len(catalog) {
			part = catalog[n-1]
		}
		out = append(out, part)
	}
	return out
}

func numbered(list []string) string {
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = fmt.Sprintf("%d) %s", i+1, s)
	}
	return strings.Join(parts, "  ")
}
