package db

import (
	"path/filepath"
	"testing"
)

func TestReopenDatabaseIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "petal_test.db")

	first, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := NewKVRepository(first).Set("dailyStreak", "5"); err != nil {
		t.Fatalf("set: %v", err)
	}

	second, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen with migrations already applied: %v", err)
	}

	value, found, err := NewKVRepository(second).Get("dailyStreak")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !found || value != "5" {
		t.Fatalf("expected value to survive reopen, got %q (found=%v)", value, found)
	}

	versions := make([]string, 0)
	if err := second.Table("schema_migrations").Pluck("version", &versions).Error; err != nil {
		t.Fatalf("load versions: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("expected each migration recorded once, got %#v", versions)
	}
}
