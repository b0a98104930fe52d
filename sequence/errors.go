package sequence

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a requested range of indices does not
	// fit within a sequence.
	ErrOutOfRange = errors.New("out of range")

	// ErrDivisionByZero is returned when a divisor element is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
