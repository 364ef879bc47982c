package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session is stored for a scope.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionExists is returned when a document session ID is already
	// taken.
	ErrSessionExists = errors.New("session already exists")

	// ErrNotRegularFile is returned by the batch loader for directories and
	// other non-regular paths.
	ErrNotRegularFile = errors.New("not a regular file")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (REPLACE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a session row fails.
	ErrScanningRow = errors.New("failed to scan session row")
)
