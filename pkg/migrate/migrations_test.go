package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitMigrationDefinesCoreTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one migration file")
	}

	var init string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), "_init.sql") {
			raw, err := os.ReadFile(filepath.Join("migrations", entry.Name()))
			if err != nil {
				t.Fatalf("read %s: %v", entry.Name(), err)
			}
			init = string(raw)
		}
	}
	if init == "" {
		t.Fatal("init migration not found")
	}

	for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
		if !strings.Contains(init, marker) {
			t.Fatalf("init migration missing %q", marker)
		}
	}
	for _, table := range []string{"users", "games", "catalog_entries"} {
		if !strings.Contains(init, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Fatalf("init migration missing table %q", table)
		}
	}
	if !strings.Contains(init, "catalog_entries_external_id_key") {
		t.Fatal("catalog entries must have a unique external_id index")
	}
}
