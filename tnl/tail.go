package tnl

import (
	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/ppoly"
)

// numTail returns the number of high-omega tail-series terms to use for
// a basis whose local polynomials have the given order: the largest
// even integer <= min(2*floor(order/2), 4). With the default n_p = 10
// (order 9) this is always 4.
func numTail(order int) int {
	n := 2 * (order / 2)
	if n > 4 {
		n = 4
	}
	return n
}

// signStatistic returns the statistics sign convention of the tail
// formula below: -1 for fermions, +1 for bosons.
func signStatistic(fermionic bool, prec uint) hpa.Real {
	if fermionic {
		return hpa.NewRealPrec(-1, prec)
	}
	return hpa.NewRealPrec(1, prec)
}

// iPow returns i^k for integer k (possibly negative), cycling through
// {1, i, -1, -i}.
func iPow(k int, prec uint) hpa.Complex {
	one := hpa.NewRealPrec(1, prec)
	zero := hpa.NewRealPrec(0, prec)
	negOne := hpa.NewRealPrec(-1, prec)
	switch ((k % 4) + 4) % 4 {
	case 0:
		return hpa.NewComplex(one, zero)
	case 1:
		return hpa.NewComplex(zero, one)
	case 2:
		return hpa.NewComplex(negOne, zero)
	default:
		return hpa.NewComplex(zero, negOne)
	}
}

// tailSum evaluates the high-omega tail series
//
//	T_tail[l,m] = -sqrt(2) * 2^m * i^(m+1) * (signS - (-1)^(l+m)) * u_l^(m)(1) / (2*omega)^(m+1)
//
// where omega = pi*o/2 is the argument (so 2*omega = pi*o),
// summed over m = 0..numTerms-1, at the boundary derivatives of u
// (the half-interval, x in [0,1], representation; x=1 is the shared
// boundary with the full [-1,1] extension, so no Extend is needed).
// The result already includes the even/odd fold and the 1/sqrt(2)
// normalization that the quadrature branch applies separately (the
// -sqrt(2) prefactor here absorbs both), so it is a direct
// approximation of the final Tnl[i,l] entry.
func tailSum(u *ppoly.Poly, l, numTerms int, omega, signS hpa.Real) (hpa.Complex, error) {
	prec := omega.Prec()
	one := hpa.NewRealPrec(1, prec)
	sqrt2 := hpa.Sqrt(hpa.NewRealPrec(2, prec))
	sum := hpa.NewComplex(hpa.NewRealPrec(0, prec), hpa.NewRealPrec(0, prec))

	twoPowM := hpa.NewRealPrec(1, prec)
	piO := omega.MulInt(2)
	omegaPowM1 := piO
	for m := 0; m < numTerms; m++ {
		deriv, err := u.Derivative(one, m)
		if err != nil {
			return hpa.Complex{}, err
		}
		var parity hpa.Real
		if (l+m)%2 == 0 {
			parity = hpa.NewRealPrec(1, prec)
		} else {
			parity = hpa.NewRealPrec(-1, prec)
		}
		factor := signS.Sub(parity)
		coeff := sqrt2.Neg().Mul(twoPowM).Mul(factor).Mul(deriv).Quo(omegaPowM1)
		term := iPow(m+1, prec).MulReal(coeff)
		sum = sum.Add(term)

		twoPowM = twoPowM.MulInt(2)
		omegaPowM1 = omegaPowM1.Mul(piO)
	}
	return sum, nil
}

// tailConverged reports whether the numTerms-term tail agrees with the
// (numTerms-2)-term tail to a relative tolerance of 1e-12, the
// crossover criterion for switching from direct quadrature to the
// tail series.
func tailConverged(full, partial hpa.Complex) bool {
	prec := full.Re.Prec()
	diff := full.Sub(partial).Abs()
	scale := full.Abs()
	tol := hpa.NewRealPrec(1e-12, prec)
	if scale.IsZero() {
		return diff.Less(tol)
	}
	return diff.Quo(scale).Less(tol)
}
