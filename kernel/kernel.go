// Package kernel implements the two analytic-continuation kernels,
// grounded directly on
// _examples/original_source/c++/include/irlib/basis.hpp's
// fermionic_kernel/bosonic_kernel operator() branches, generalized from
// double precision to hpa.Real.
package kernel

import "github.com/irfit/irbasis-go/hpa"

// Statistics distinguishes the two families of kernel.
type Statistics int

const (
	Fermionic Statistics = iota
	Bosonic
)

func (s Statistics) String() string {
	if s == Fermionic {
		return "fermionic"
	}
	return "bosonic"
}

// Kernel is the polymorphic "kernel" contract: a callable
// (R,R) -> R plus two side channels (statistics, Λ). Both
// FermionicKernel and BosonicKernel satisfy it; the split is fixed at
// the call site and has no open extension requirement, so a tagged
// interface rather than a plugin registry is appropriate.
type Kernel interface {
	Eval(x, y hpa.Real) hpa.Real
	Statistics() Statistics
	Lambda() hpa.Real
}

// limit is the |Λy| threshold above which the stable exponential-shifted
// form replaces the direct cosh/sinh evaluation.
var limitFloat = 100.0

// FermionicKernel implements K(x,y) = exp(-0.5 Λxy) / (2 cosh(0.5 Λy)),
// rewritten for |Λy| > limit to avoid overflowing cosh.
type FermionicKernel struct {
	lambda hpa.Real
}

func NewFermionic(lambda hpa.Real) FermionicKernel { return FermionicKernel{lambda: lambda} }

func (k FermionicKernel) Statistics() Statistics { return Fermionic }
func (k FermionicKernel) Lambda() hpa.Real       { return k.lambda }

func (k FermionicKernel) Eval(x, y hpa.Real) hpa.Real {
	prec := x.Prec()
	half := hpa.NewRealPrec(0.5, prec)
	lam := k.lambda.SetPrec(prec)
	lamY := lam.Mul(y)
	limit := hpa.NewRealPrec(limitFloat, prec)

	halfLamXY := half.Mul(lam).Mul(x).Mul(y)
	switch {
	case lamY.Greater(limit):
		return hpa.Exp(halfLamXY.Neg().Sub(half.Mul(lam).Mul(y)))
	case lamY.Less(limit.Neg()):
		return hpa.Exp(halfLamXY.Neg().Add(half.Mul(lam).Mul(y)))
	default:
		num := hpa.Exp(halfLamXY.Neg())
		denom := hpa.NewRealPrec(2, prec).Mul(hpa.Cosh(half.Mul(lam).Mul(y)))
		return num.Quo(denom)
	}
}

// BosonicKernel implements K(x,y) = y exp(-0.5 Λxy) / (2 sinh(0.5 Λy)),
// with the small-|Λy| and large-|Λy| stable branches.
type BosonicKernel struct {
	lambda hpa.Real
}

func NewBosonic(lambda hpa.Real) BosonicKernel { return BosonicKernel{lambda: lambda} }

func (k BosonicKernel) Statistics() Statistics { return Bosonic }
func (k BosonicKernel) Lambda() hpa.Real       { return k.lambda }

func (k BosonicKernel) Eval(x, y hpa.Real) hpa.Real {
	prec := x.Prec()
	half := hpa.NewRealPrec(0.5, prec)
	lam := k.lambda.SetPrec(prec)
	lamY := lam.Mul(y)
	limit := hpa.NewRealPrec(limitFloat, prec)
	tiny := hpa.NewRealPrec(1e-10, prec)

	halfLamXY := half.Mul(lam).Mul(x).Mul(y)
	switch {
	case lamY.Abs().Less(tiny):
		return hpa.Exp(halfLamXY.Neg()).Quo(lam)
	case lamY.Greater(limit):
		return y.Mul(hpa.Exp(halfLamXY.Neg().Sub(half.Mul(lam).Mul(y))))
	case lamY.Less(limit.Neg()):
		return y.Neg().Mul(hpa.Exp(halfLamXY.Neg().Add(half.Mul(lam).Mul(y))))
	default:
		num := y.Mul(hpa.Exp(halfLamXY.Neg()))
		denom := hpa.NewRealPrec(2, prec).Mul(hpa.Sinh(half.Mul(lam).Mul(y)))
		return num.Quo(denom)
	}
}
