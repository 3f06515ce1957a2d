package store

import "errors"

var (
	// ErrDuplicate reports a unique-constraint violation, e.g. saving
	// the same recipe twice for one user. Callers treat it as an
	// informational outcome, not a failure.
	ErrDuplicate = errors.New("record already exists")

	// ErrUnreachable means the backing store could not be reached or
	// rejected the supplied credentials.
	ErrUnreachable = errors.New("store unreachable")
)
