package apperrors

import "errors"

// Sentinel errors for the ordering domain. Services and repositories wrap
// these with context via fmt.Errorf("...: %w", err); handlers match them
// with errors.Is to pick the HTTP status.
var (
	// ErrUnauthorized covers a missing/malformed bearer identity and
	// accounts that do not exist or are inactive.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredential means the account exists and is active but the
	// password did not match. Kept distinct from ErrUnauthorized for
	// logging; both map to 401 at the boundary.
	ErrInvalidCredential = errors.New("invalid credential")

	ErrNotFound = errors.New("not found")

	// ErrDailyOrderLocked blocks order creation once a completed order
	// exists for the hotel's day.
	ErrDailyOrderLocked = errors.New("daily order already completed by dealer")

	// ErrOrderLocked blocks update/delete of a completed order.
	ErrOrderLocked = errors.New("order completed by dealer and locked")

	ErrValidation = errors.New("validation failed")

	ErrDuplicateEmail = errors.New("email already registered")
)
