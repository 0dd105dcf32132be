package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", unique)))
	assert.False(t, c.IsUniqueViolation(fk))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}
