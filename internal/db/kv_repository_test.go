package db

import (
	"path/filepath"
	"testing"
)

func openTestDatabase(t *testing.T) *KVRepository {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "petal_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return NewKVRepository(database)
}

func TestKVRepositoryGetMissingKey(t *testing.T) {
	repo := openTestDatabase(t)

	value, found, err := repo.Get("lastPeriodDate")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected missing key, got value %q", value)
	}
}

func TestKVRepositorySetOverwrites(t *testing.T) {
	repo := openTestDatabase(t)

	if err := repo.Set("dailyStreak", "3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set("dailyStreak", "4"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, found, err := repo.Get("dailyStreak")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || value != "4" {
		t.Fatalf("expected overwritten value 4, got %q (found=%v)", value, found)
	}
}

func TestKVRepositoryDelete(t *testing.T) {
	repo := openTestDatabase(t)

	if err := repo.Set("viewedWellnessTips", `["general_sleep"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Delete("viewedWellnessTips"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, found, err := repo.Get("viewedWellnessTips")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected key to be deleted")
	}
}

func TestKVRepositoryClear(t *testing.T) {
	repo := openTestDatabase(t)

	if err := repo.Set("lastPeriodDate", `"2026-08-01"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set("dailyStreak", "7"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	for _, key := range []string{"lastPeriodDate", "dailyStreak"} {
		_, found, err := repo.Get(key)
		if err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
		if found {
			t.Fatalf("expected %s to be cleared", key)
		}
	}
}
