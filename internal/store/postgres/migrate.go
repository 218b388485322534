package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

// Statements splits a SQL script on semicolons and drops empty statements.
// The schema must not carry semicolons inside literals or function bodies.
func Statements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Migrate applies the embedded schema in one transaction. Every statement
// is idempotent, so running it twice is safe.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := Statements(schemaSQL)
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for i, stmt := range stmts {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	s.logger.Info("schema applied", zap.Int("statements", len(stmts)))
	return nil
}
