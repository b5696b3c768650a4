package togglelist

import "errors"

var (
	// ErrUnparsable is returned when raw input is neither a JSON array
	// nor comma-splittable into a non-empty sequence
	ErrUnparsable = errors.New("items are not a JSON array or comma-separated list")

	// ErrEntryNotFound is returned when a toggle target does not exist
	ErrEntryNotFound = errors.New("entry not found")
)
