package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/migrations"
)

// DB is a SQL connection together with the dialect-specific pieces the
// repositories need: a placeholder-aware query builder and an error
// classifier.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// uuidFormat is the [IDFormat] of the SQL backends: time-ordered UUIDv7.
type uuidFormat struct {
	generator *utils.UUIDGenerator
}

func newUUIDFormat() *uuidFormat {
	return &uuidFormat{generator: utils.NewUUIDGenerator()}
}

func (f *uuidFormat) NewID() string {
	return f.generator.Generate()
}

func (f *uuidFormat) Valid(id string) bool {
	return utils.IsValidUUID(id)
}
