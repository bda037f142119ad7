package store

import "errors"

// Sentinel errors returned by state store implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotInitialized is returned when the settings row has not been
	// created yet. [StateStore.Init] must run before any transaction.
	ErrNotInitialized = errors.New("vault state is not initialized")

	// ErrRecordNotFound is returned when an update or delete targets a record
	// that does not exist in the caller's namespace.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordAlreadyExists is returned when an insert collides with an
	// existing identifier in the caller's namespace.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrAmountOutOfRange is returned when an amount cannot be represented by
	// the BIGINT columns of the SQL schema.
	ErrAmountOutOfRange = errors.New("amount is out of range")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrRetryable marks driver errors classified as transient. The vault
	// never retries internally; the marker lets clients decide.
	ErrRetryable = errors.New("transient database error")
)
