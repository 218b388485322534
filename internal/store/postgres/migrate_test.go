package postgres

import (
	"strings"
	"testing"
)

func TestStatements(t *testing.T) {
	got := Statements("CREATE TABLE a (id INT);\n\n  ;CREATE INDEX b ON a (id);\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(got), got)
	}
	if got[1] != "CREATE INDEX b ON a (id)" {
		t.Fatalf("unexpected second statement: %q", got[1])
	}
}

func TestEmbeddedSchema(t *testing.T) {
	stmts := Statements(schemaSQL)
	if len(stmts) != 5 {
		t.Fatalf("expected 5 schema statements, got %d", len(stmts))
	}
	for _, s := range stmts {
		if !strings.Contains(s, "IF NOT EXISTS") {
			t.Errorf("schema statement is not idempotent: %s", s)
		}
	}
	if !strings.Contains(schemaSQL, "UNIQUE (job_id, talent_id)") {
		t.Fatal("applications must be unique per job and talent")
	}
}
