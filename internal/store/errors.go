package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a user lookup matches no record.
	ErrUserNotFound = errors.New("user was not found")

	// ErrBlogNotFound is returned when a read, update or delete targets a
	// blog that does not exist (or, for deletes, is not owned by the caller).
	ErrBlogNotFound = errors.New("blog was not found")

	// ErrInvalidID is returned when an identifier is not well-formed for the
	// active backend.
	ErrInvalidID = errors.New("malformed id")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
