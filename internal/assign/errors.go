package assign

import "errors"

var (
	// ErrInvalidInput is returned when a mapping cannot be built at all,
	// e.g. a slot count below 1.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange is returned when a caller addresses a filament that
	// does not exist in the mapping.
	ErrIndexOutOfRange = errors.New("filament index out of range")
)
