package db

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	embeddedmigrations "github.com/petalhq/petal/migrations"
	"gorm.io/gorm"
)

// applyEmbeddedMigrations runs every embedded .sql file that is not yet
// recorded in schema_migrations, in filename order. Migrations are
// forward-only; there is no down path.
func applyEmbeddedMigrations(database *gorm.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	entries, err := fs.ReadDir(embeddedmigrations.Files, ".")
	if err != nil {
		return fmt.Errorf("read embedded migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	applied, err := appliedMigrations(database)
	if err != nil {
		return err
	}

	for _, name := range names {
		if _, alreadyApplied := applied[name]; alreadyApplied {
			continue
		}
		rawSQL, err := fs.ReadFile(embeddedmigrations.Files, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := runMigration(database, name, string(rawSQL)); err != nil {
			return err
		}
	}
	return nil
}

func appliedMigrations(database *gorm.DB) (map[string]struct{}, error) {
	versions := make([]string, 0)
	if err := database.Table("schema_migrations").Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}

	applied := make(map[string]struct{}, len(versions))
	for _, version := range versions {
		applied[version] = struct{}{}
	}
	return applied, nil
}

func runMigration(database *gorm.DB, name string, sqlText string) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, rawStatement := range strings.Split(sqlText, ";") {
			statement := strings.TrimSpace(rawStatement)
			if statement == "" {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s: %w", name, err)
			}
		}
		if err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?)`, name).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		return nil
	})
}
