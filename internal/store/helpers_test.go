package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/utils"
)

const (
	testUserID = "0190a7b2-58f1-7c4e-9d1a-3e6f0b2c4d5e"
	testBlogID = "0190a7b2-6a00-7d2b-8e3c-1f2a3b4c5d6e"
)

// fixedIDFormat hands out the same identifier on every call.
type fixedIDFormat struct {
	id string
}

func (f fixedIDFormat) NewID() string { return f.id }

func (f fixedIDFormat) Valid(id string) bool { return utils.IsValidUUID(id) }

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func newTestSQLiteDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newSQLiteDB(conn, logger.Nop()), mock
}

// freezeTime pins the repositories' clock for the duration of the test.
func freezeTime(t *testing.T) time.Time {
	t.Helper()

	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	return fixed
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
