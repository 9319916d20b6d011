package errors

import "errors"

// Sentinel error codes. Every error leaving a service or repository is marked
// with exactly one of these so callers and the HTTP layer can branch on
// errors.Is without string matching.
var (
	// ErrValidation indicates the request or entity failed validation.
	ErrValidation = errors.New("validation_error")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not_found")

	// ErrAlreadyExists indicates a uniqueness conflict.
	ErrAlreadyExists = errors.New("already_exists")

	// ErrVersionConflict indicates a stale write was rejected by the
	// per-entity version check.
	ErrVersionConflict = errors.New("version_conflict")

	// ErrGuardCancelled indicates the user declined a guarded mutation.
	// Kept distinct from generic errors so callers can treat an intentional
	// cancellation as a non-failure.
	ErrGuardCancelled = errors.New("guard_cancelled")

	// ErrPermissionDenied indicates the caller may not perform the operation.
	ErrPermissionDenied = errors.New("permission_denied")

	// ErrDatabase indicates a persistence read or write failed.
	ErrDatabase = errors.New("database_error")

	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = errors.New("internal_error")
)
