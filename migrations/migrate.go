// Package migrations embeds the hub's schema and applies it with goose.
// Each supported dialect keeps its own migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// dialects maps database/sql driver names to goose dialects and migration
// directories.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
	"pgx":     {dialect: "postgres", dir: "postgres"},
}

// Migrate applies all pending migrations for driver.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
