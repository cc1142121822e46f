package tnl

import (
	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/ppoly"
	"github.com/irfit/irbasis-go/quadrature"
)

const (
	numQuadNodes  = 24
	taylorOrder   = 16
	lowFreqBranch = 0.1 // omega*dx threshold, in units of pi
)

// rawIntegral computes the un-folded, un-normalized integral
//
//	R(omega) = integral_0^1 exp(i*omega*(x+1)) u(x) dx
//
// section by section, choosing the low- or high-frequency branch per
// section by omega*dx against lowFreqBranch*pi. The caller applies the
// even/odd fold and the 1/sqrt(2<u|u>) normalization.
func rawIntegral(u *ppoly.Poly, omega hpa.Real) (hpa.Complex, error) {
	prec := omega.Prec()
	pi := hpa.Pi(prec)
	threshold := pi.Mul(hpa.NewRealPrec(lowFreqBranch, prec))

	nodes, err := quadrature.GaussLegendre(numQuadNodes)
	if err != nil {
		return hpa.Complex{}, err
	}

	total := hpa.NewComplex(hpa.NewRealPrec(0, prec), hpa.NewRealPrec(0, prec))
	mesh := u.Mesh()
	for s := 0; s < u.NumSections(); s++ {
		x0, x1 := mesh[s], mesh[s+1]
		dx := x1.Sub(x0)
		var section hpa.Complex
		if omega.Mul(dx).Abs().Less(threshold) {
			section, err = lowFreqSection(u, s, x0, x1, omega, nodes)
		} else {
			section, err = highFreqSection(u, s, x0, x1, omega)
		}
		if err != nil {
			return hpa.Complex{}, err
		}
		total = total.Add(section)
	}
	return total, nil
}

// lowFreqSection integrates via composite Gauss-Legendre using a
// taylorOrder-term Taylor expansion of exp(i*omega*(x+1)) in place of
// the exact exponential.
func lowFreqSection(u *ppoly.Poly, s int, x0, x1, omega hpa.Real, nodes []quadrature.Node) (hpa.Complex, error) {
	prec := omega.Prec()
	half := hpa.NewRealPrec(0.5, prec)
	mid := x0.Add(x1).Mul(half)
	halfDx := x1.Sub(x0).Mul(half)

	total := hpa.NewComplex(hpa.NewRealPrec(0, prec), hpa.NewRealPrec(0, prec))
	for _, nd := range nodes {
		x := mid.Add(halfDx.Mul(nd.X))
		w := halfDx.Mul(nd.W)
		phase := omega.Mul(x.Add(hpa.NewRealPrec(1, prec)))
		expApprox := taylorExpI(phase, taylorOrder)
		pVal := u.ValueInSection(x, s)
		total = total.Add(expApprox.MulReal(pVal.Mul(w)))
	}
	return total, nil
}

// taylorExpI approximates exp(i*theta) by its order-term Taylor
// polynomial, used (not the exact sin/cos pair) in the low-frequency
// branch.
func taylorExpI(theta hpa.Real, order int) hpa.Complex {
	prec := theta.Prec()
	z := hpa.NewComplex(hpa.NewRealPrec(0, prec), theta)
	term := hpa.NewComplex(hpa.NewRealPrec(1, prec), hpa.NewRealPrec(0, prec))
	sum := term
	for k := 1; k <= order; k++ {
		term = term.Mul(z).MulReal(hpa.NewRealPrec(1, prec).QuoInt(k))
		sum = sum.Add(term)
	}
	return sum
}

// highFreqSection integrates exp(i*omega*(x+1)) against the section
// polynomial exactly via the moment recurrence
//
//	I_0 = (e^{i*omega*x1} - e^{i*omega*x0}) / (i*omega)
//	I_k = (dx^k * e^{i*omega*x1} - k*I_{k-1}) / (i*omega)
//
// then scales by the constant phase e^{i*omega} that converts
// exp(i*omega*x) moments into exp(i*omega*(x+1)) moments.
func highFreqSection(u *ppoly.Poly, s int, x0, x1, omega hpa.Real) (hpa.Complex, error) {
	if omega.IsZero() {
		return hpa.Complex{}, ErrZeroFrequency
	}
	prec := omega.Prec()
	zero := hpa.NewRealPrec(0, prec)
	one := hpa.NewRealPrec(1, prec)
	iOmega := hpa.NewComplex(zero, omega)

	expX1 := hpa.ExpI(omega.Mul(x1))
	expX0 := hpa.ExpI(omega.Mul(x0))
	dx := x1.Sub(x0)

	order := u.Order()
	I := make([]hpa.Complex, order+1)
	I[0] = expX1.Sub(expX0).Quo(iOmega)
	dxPow := one
	for k := 1; k <= order; k++ {
		dxPow = dxPow.Mul(dx)
		num := expX1.MulReal(dxPow).Sub(I[k-1].MulReal(hpa.NewRealPrec(float64(k), prec)))
		I[k] = num.Quo(iOmega)
	}

	sum := hpa.NewComplex(zero, zero)
	for d := 0; d <= order; d++ {
		sum = sum.Add(I[d].MulReal(u.Coefficient(s, d)))
	}
	phase := hpa.ExpI(omega)
	return phase.Mul(sum), nil
}
