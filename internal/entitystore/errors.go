package entitystore

import "errors"

var (
	// ErrItemNotFound is returned when no item exists for a keyed lookup or delete.
	ErrItemNotFound = errors.New("item not found")

	// ErrConditionFailed is returned when a conditional update targets an
	// item that does not exist.
	ErrConditionFailed = errors.New("condition failed")
)
