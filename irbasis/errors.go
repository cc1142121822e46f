package irbasis

import (
	"errors"

	"github.com/irfit/irbasis-go/irerr"
)

// Sentinel errors for package irbasis.
var (
	// ErrLocalPolyTooSmall is returned when NumLocalPoly < 2.
	ErrLocalPolyTooSmall = errors.New("irbasis: num_local_poly must be >= 2")

	// ErrOutOfDomain is returned by BasisSet.Value/Values when x falls
	// outside [-1,1].
	ErrOutOfDomain = errors.New("irbasis: x outside [-1,1]")

	// ErrInvalidIndex is returned when a basis index l is out of range.
	ErrInvalidIndex = errors.New("irbasis: basis index out of range")

	// ErrNonMonotoneSingularValues is returned when the interleaved
	// admission sequence is not non-increasing, a sign of precision
	// exhaustion.
	ErrNonMonotoneSingularValues = errors.New("irbasis: admitted singular values are not monotonically non-increasing")

	// ErrRefinementStalled is returned if the adaptive mesh refinement
	// loop exceeds its iteration cap without converging. Refinement is
	// meant to stop naturally when a step adds no new break-points;
	// this is a defensive backstop since an unbounded loop is not an
	// acceptable library behavior.
	ErrRefinementStalled = errors.New("irbasis: mesh refinement did not converge within the iteration cap")

	// ErrTnlNotLinked is returned by BasisSet.ComputeTnl/ComputeTbarOl
	// when the host binary never imported package tnl (so its init()
	// never called RegisterTnl); see hooks.go.
	ErrTnlNotLinked = errors.New("irbasis: package tnl is not linked into this binary")

	// ErrParseFailed is returned by LoadBasisSet on malformed input.
	ErrParseFailed = errors.New("irbasis: failed to parse serialized basis set")
)

func init() {
	irerr.Register(ErrLocalPolyTooSmall, irerr.InvalidArgument)
	irerr.Register(ErrOutOfDomain, irerr.OutOfDomain)
	irerr.Register(ErrInvalidIndex, irerr.InvalidArgument)
	irerr.Register(ErrNonMonotoneSingularValues, irerr.NumericalFailure)
	irerr.Register(ErrRefinementStalled, irerr.NumericalFailure)
	irerr.Register(ErrTnlNotLinked, irerr.InvalidArgument)
	irerr.Register(ErrParseFailed, irerr.Io)
}
