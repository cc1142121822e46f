package irbasis

import "github.com/irfit/irbasis-go/hpa"

// Options controls Compute's basis construction. Zero value is not
// usable directly; start from DefaultOptions.
type Options struct {
	// MaxDim caps the number of admitted singular-value/vector triplets.
	MaxDim int
	// Cutoff is the relative threshold: triplets with sigma < Cutoff*s0
	// (s0 = the top even singular value) are not admitted.
	Cutoff hpa.Real
	// NBootstrap is the discretization size of the double-precision
	// bootstrap mesh-seeding step.
	NBootstrap int
	// RTol is the relative tolerance driving adaptive mesh refinement:
	// a_tol = RTol * |u_L(1)| (and the y-mesh analogue).
	RTol hpa.Real
	// NumLocalPoly is the number of local Legendre basis functions per
	// mesh section (n_p).
	NumLocalPoly int
	// NumNodesGL is the number of Gauss-Legendre quadrature nodes used
	// per section when assembling the kernel block matrix (n_q).
	NumNodesGL int
	// Verbose enables progress logging of the refinement loop.
	Verbose bool
}

// maxRefinementIterations bounds the adaptive mesh refinement loop.
// Refinement normally stops when a step adds no new break-points; this
// cap is a defensive backstop against a non-terminating sequence of
// insertions, see ErrRefinementStalled.
const maxRefinementIterations = 50

// DefaultOptions returns the Options used when a caller does not
// override a field, at the given working precision (n_p=10, n_q=24).
func DefaultOptions(prec uint) Options {
	return Options{
		MaxDim:       -1,
		Cutoff:       hpa.NewRealPrec(1e-12, prec),
		NBootstrap:   101,
		RTol:         hpa.NewRealPrec(1e-8, prec),
		NumLocalPoly: 10,
		NumNodesGL:   24,
	}
}

func (o Options) validate() error {
	if o.NumLocalPoly < 2 {
		return ErrLocalPolyTooSmall
	}
	return nil
}
