// Package tnl implements the Matsubara-frequency transform: given a
// basis produced by package irbasis, it evaluates
// Tnl[i,l] = integral_{-1}^1 exp(i*omega_i*(x+1)) u_l(x) dx / sqrt(2<u_l|u_l>)
// with omega_i = pi*(2*n_i+offset)/2, u_l extended to [-1,1] by parity
// (-1)^l and <u_l|u_l> taken on [0,1], via a frequency-adaptive low/high
// branch and a high-omega boundary-derivative tail series.
package tnl

import (
	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/irbasis"
	"github.com/irfit/irbasis-go/kernel"
	"github.com/irfit/irbasis-go/ppoly"
)

func init() {
	irbasis.RegisterTnl(Compute, ComputeTbarOl)
}

// Compute returns Tnl[i,l] for each n in nVec. nVec must be strictly
// ascending and non-negative.
func Compute(basis *irbasis.BasisSet, nVec []int) (*hpa.ComplexMatrix, error) {
	if err := validateAscending(nVec, true); err != nil {
		return nil, err
	}
	offset := 0
	if basis.Statistics() == kernel.Fermionic {
		offset = 1
	}
	oVec := make([]int, len(nVec))
	for i, n := range nVec {
		oVec[i] = 2*n + offset
	}
	return computeFromO(basis, oVec)
}

// ComputeTbarOl returns Tnl indexed directly by raw frequency integers
// (already including the statistics offset). oVec must be strictly
// ascending.
func ComputeTbarOl(basis *irbasis.BasisSet, oVec []int) (*hpa.ComplexMatrix, error) {
	if err := validateAscending(oVec, false); err != nil {
		return nil, err
	}
	return computeFromO(basis, oVec)
}

func validateAscending(vec []int, requireNonNegative bool) error {
	for i, v := range vec {
		if requireNonNegative && v < 0 {
			return ErrNegativeFrequency
		}
		if i > 0 && vec[i-1] >= v {
			return ErrFrequenciesNotAscending
		}
	}
	return nil
}

func computeFromO(basis *irbasis.BasisSet, oVec []int) (*hpa.ComplexMatrix, error) {
	dim := basis.Dim()
	prec := basis.Lambda().Prec()
	piHalf := hpa.Pi(prec).Mul(hpa.NewRealPrec(0.5, prec))
	signS := signStatistic(basis.Statistics() == kernel.Fermionic, prec)

	out := hpa.NewComplexMatrix(len(oVec), dim)
	for l := 0; l < dim; l++ {
		u, err := basis.HalfU(l)
		if err != nil {
			return nil, err
		}
		nt := numTail(u.Order())
		if nt < 4 {
			return nil, ErrTailTooShort
		}
		norm, err := normFactor(u)
		if err != nil {
			return nil, err
		}

		for i, o := range oVec {
			omega := piHalf.MulInt(o)
			val, err := tnlEntry(u, l, o, omega, signS, nt, norm)
			if err != nil {
				return nil, err
			}
			out.Set(i, l, val)
		}
	}
	return out, nil
}

// tnlEntry computes a single Tnl[i,l] entry. It first checks whether the
// high-omega tail series has converged against the num_tail crossover
// criterion; if so, the tail already IS the final entry
// (normalization and even/odd fold baked into its constants). Otherwise
// it falls back to the direct low/high-branch quadrature, which still
// needs the even/odd fold and the 1/sqrt(2<u|u>) normalization applied
// explicitly.
func tnlEntry(u *ppoly.Poly, l, o int, omega, signS hpa.Real, numTerms int, norm hpa.Real) (hpa.Complex, error) {
	full, err := tailSum(u, l, numTerms, omega, signS)
	if err != nil {
		return hpa.Complex{}, err
	}
	partial, err := tailSum(u, l, numTerms-2, omega, signS)
	if err != nil {
		return hpa.Complex{}, err
	}
	if tailConverged(full, partial) {
		return full, nil
	}

	raw, err := rawIntegral(u, omega)
	if err != nil {
		return hpa.Complex{}, err
	}
	prec := omega.Prec()
	var folded hpa.Complex
	if (l+o)%2 == 0 {
		folded = hpa.NewComplex(raw.Re.MulInt(2), hpa.NewRealPrec(0, prec))
	} else {
		folded = hpa.NewComplex(hpa.NewRealPrec(0, prec), raw.Im.MulInt(2))
	}
	return folded.MulReal(norm), nil
}

func normFactor(u *ppoly.Poly) (hpa.Real, error) {
	overlap, err := u.Overlap(u)
	if err != nil {
		return hpa.Real{}, err
	}
	prec := overlap.Prec()
	two := hpa.NewRealPrec(2, prec)
	return hpa.NewRealPrec(1, prec).Quo(hpa.Sqrt(two.Mul(overlap))), nil
}
