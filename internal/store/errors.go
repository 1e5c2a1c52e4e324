package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrJIDAlreadyExists is returned when an attempt to register a new
	// publisher fails because an account with the same JID already exists.
	ErrJIDAlreadyExists = errors.New("jid already exists")

	// ErrNoPublisherWasFound is returned when a query expected to match at
	// least one publisher record produces an empty result set.
	ErrNoPublisherWasFound = errors.New("no publisher was found")

	// ErrDeviceListNotSaved is returned when a device list INSERT completes
	// without error but the number of affected rows is zero.
	ErrDeviceListNotSaved = errors.New("device list was not saved")

	// ErrBundleNotFound is returned when a query targets a device bundle
	// (identified by publisher_id and device_id) that does not exist.
	ErrBundleNotFound = errors.New("device bundle was not found")

	// ErrNoPreKeysLeft is returned when a pre-key is requested from a bundle
	// whose one-time pre-keys are all used up.
	ErrNoPreKeysLeft = errors.New("no pre-keys left in bundle")

	// ErrServiceNotFound is returned when a delete or modify targets an
	// external service entry that does not exist.
	ErrServiceNotFound = errors.New("external service was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
