package generators

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned for seed inputs that are not a non-negative
	// integer of at most 256 bits.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidArgument is returned for a nil, zero or negative bound and for
	// negative or inconsistent sampling sizes.
	ErrInvalidArgument = errors.New("invalid argument")
)
