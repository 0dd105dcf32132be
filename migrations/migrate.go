// Package migrations embeds the SQL schema of the relational backends and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/bloglist/internal/logger"
)

// Goose dialects of the supported SQL backends.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var migrationDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate applies all pending migrations for dialect to db. Goose output
// goes to log; a nil log discards it.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(newGooseLogger(log))
	defer goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
