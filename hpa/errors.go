package hpa

import (
	"errors"

	"github.com/irfit/irbasis-go/irerr"
)

// Sentinel errors for package hpa, in the style of
// katalvlaran/lvlath's matrix/errors.go: package-level errors.New values,
// matched by callers with errors.Is. ErrSVDNonConvergent corresponds to
// irerr.NumericalFailure ("SVD non-convergence").
var (
	// ErrSVDNonConvergent is returned when the one-sided Jacobi SVD fails
	// to drive its off-diagonal measure below tolerance within the
	// iteration cap.
	ErrSVDNonConvergent = errors.New("hpa: SVD failed to converge")

	// ErrDimensionMismatch indicates incompatible matrix shapes passed to
	// an operation that requires them to agree.
	ErrDimensionMismatch = errors.New("hpa: dimension mismatch")
)

func init() {
	irerr.Register(ErrSVDNonConvergent, irerr.NumericalFailure)
	irerr.Register(ErrDimensionMismatch, irerr.InvalidArgument)
}
