package irbasis

import (
	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/ppoly"
	"github.com/irfit/irbasis-go/quadrature"
)

// legendreDerivAtLeft[l][d] = P̃_l^(d)(-1), the boundary derivatives of
// the normalized Legendre basis at the left edge of the local [-1,1]
// coordinate, shared by every section since the local basis does not
// depend on section width.
func legendreDerivAtLeft(numLocalPoly int, prec uint) [][]hpa.Real {
	negOne := hpa.NewRealPrec(-1, prec)
	out := make([][]hpa.Real, numLocalPoly)
	for l := 0; l < numLocalPoly; l++ {
		out[l] = quadrature.NormalizedLegendrePDerivatives(l, numLocalPoly-1, negOne)
	}
	return out
}

// reconstructPoly converts a stacked SVD singular vector (length
// nSections*numLocalPoly, section-major) into the piecewise-polynomial
// Taylor representation:
//
//	a[s,d] = (1/d!) * sqrt(2/Δx_s) * (2/Δx_s)^d * sum_l vec[s*n_p+l] * P̃_l^(d)(-1)
//
// which is the d-th Taylor coefficient of the section's Legendre
// expansion about its left edge, after the ξ = -1 + 2(x-mesh[s])/Δx_s
// chain rule.
func reconstructPoly(vec []hpa.Real, mesh []hpa.Real, numLocalPoly int, derivAtLeft [][]hpa.Real) (*ppoly.Poly, error) {
	prec := mesh[0].Prec()
	nSections := len(mesh) - 1
	coeff := make([][]hpa.Real, nSections)

	fact := make([]hpa.Real, numLocalPoly)
	fact[0] = hpa.NewRealPrec(1, prec)
	for d := 1; d < numLocalPoly; d++ {
		fact[d] = fact[d-1].MulInt(d)
	}

	for s := 0; s < nSections; s++ {
		dx := mesh[s+1].Sub(mesh[s])
		invDx2 := hpa.NewRealPrec(2, prec).Quo(dx)
		scale := hpa.Sqrt(invDx2)
		row := make([]hpa.Real, numLocalPoly)
		invDx2Pow := hpa.NewRealPrec(1, prec)
		for d := 0; d < numLocalPoly; d++ {
			sum := hpa.NewRealPrec(0, prec)
			for l := 0; l < numLocalPoly; l++ {
				coef := vec[s*numLocalPoly+l]
				sum = sum.Add(coef.Mul(derivAtLeft[l][d]))
			}
			row[d] = scale.Mul(invDx2Pow).Mul(sum).Quo(fact[d])
			invDx2Pow = invDx2Pow.Mul(invDx2)
		}
		coeff[s] = row
	}
	return ppoly.New(mesh, coeff)
}

// applySignConvention flips (u,v) together when u(1) < 0, so that every
// admitted basis function satisfies u_l(1) > 0.
func applySignConvention(u, v *ppoly.Poly, mesh []hpa.Real) (*ppoly.Poly, *ppoly.Poly, error) {
	one := mesh[len(mesh)-1]
	val, err := u.Value(one)
	if err != nil {
		return nil, nil, err
	}
	if val.Sign() >= 0 {
		return u, v, nil
	}
	negOne := hpa.NewRealPrec(-1, val.Prec())
	return u.Scale(negOne), v.Scale(negOne), nil
}
