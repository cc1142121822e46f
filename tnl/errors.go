package tnl

import (
	"errors"

	"github.com/irfit/irbasis-go/irerr"
)

// Sentinel errors for package tnl.
var (
	// ErrFrequenciesNotAscending is returned when n_vec/o_vec is not
	// strictly increasing.
	ErrFrequenciesNotAscending = errors.New("tnl: frequency indices must be strictly ascending")

	// ErrNegativeFrequency is returned when an n_vec entry is negative.
	ErrNegativeFrequency = errors.New("tnl: frequency indices must be non-negative")

	// ErrZeroFrequency guards the high-frequency branch's 1/(iω)
	// recurrence against division by zero; ω = 0 must always be routed
	// through the low-frequency branch, so hitting this indicates an
	// internal branch-selection bug rather than bad input.
	ErrZeroFrequency = errors.New("tnl: high-frequency branch invoked at omega = 0")

	// ErrTailTooShort is returned when the basis's local polynomial
	// order cannot support num_tail >= 4; fewer terms is not enough for
	// the tail series to converge reliably.
	ErrTailTooShort = errors.New("tnl: basis local polynomial order too small for a 4-term high-omega tail")
)

func init() {
	irerr.Register(ErrFrequenciesNotAscending, irerr.InvalidArgument)
	irerr.Register(ErrNegativeFrequency, irerr.InvalidArgument)
	irerr.Register(ErrZeroFrequency, irerr.NumericalFailure)
	irerr.Register(ErrTailTooShort, irerr.InvalidArgument)
}
