package resourceid

import "errors"

// Sentinel errors let callers detect failure causes via errors.Is.
var (
	// ErrInvalidArgument is returned when a base string or length cannot
	// produce a valid identifier.
	ErrInvalidArgument = errors.New("resourceid: invalid argument")

	// ErrDuplicate is returned when a registry is attached and no unused
	// name could be drawn within the configured number of attempts.
	ErrDuplicate = errors.New("resourceid: duplicate identifier")
)
