package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells transient driver failures from permanent ones.
// It is attached to store error logs.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint
	// violations and bad SQL.
	NonRetryable ErrorClassification = iota

	// Retryable marks failures that may pass on a second attempt, such as
	// a dropped connection or a deadlock rollback.
	Retryable
)

// String returns the label used in log entries.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] for pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats connection exceptions (class 08), transaction rollbacks
// (class 40) and operator intervention (class 57) as retryable. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// IsUniqueViolation reports whether err is a unique_violation (23505),
// which the users table raises for a taken username.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
