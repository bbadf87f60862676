package store

import "errors"

var (
	// ErrNotFound is returned when no progress record exists for a user.
	ErrNotFound = errors.New("progress not found")
	// ErrVersionConflict is returned by Update when the stored record changed
	// since it was loaded.
	ErrVersionConflict = errors.New("progress version conflict")
)
