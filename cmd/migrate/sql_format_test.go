package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Each migration must carry goose directives and create the table its name
// promises, so a renamed or hollowed-out file fails here before it fails in CI.
var migrationTables = map[string]string{
	"00001_create_users.sql":          "CREATE TABLE users",
	"00002_create_catalog.sql":        "CREATE TABLE books",
	"00003_create_subscriptions.sql":  "CREATE TABLE subscriptions",
	"00004_create_borrow_records.sql": "CREATE TABLE borrow_records",
}

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	migrationsDir := filepath.Join(repoRoot, "db", "migrations")

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", migrationsDir, err)
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		seen[e.Name()] = true
		b, err := os.ReadFile(filepath.Join(migrationsDir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") {
			t.Fatalf("%s missing '-- +goose Up'", e.Name())
		}
		if !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s missing '-- +goose Down'", e.Name())
		}
		if table, ok := migrationTables[e.Name()]; ok && !strings.Contains(s, table) {
			t.Fatalf("%s missing %q", e.Name(), table)
		}
	}

	for name := range migrationTables {
		if !seen[name] {
			t.Fatalf("expected migration %s not found", name)
		}
	}
}
