package quadrature

import "github.com/irfit/irbasis-go/hpa"

// legendreDerivatives returns the first kMax derivatives of the ordinary
// (un-normalized) Legendre polynomial P_l at x, i.e. result[d] =
// P_l^(d)(x) for d = 0..kMax. It propagates the standard three-term
// recurrence P_{n+1} = ((2n+1) x P_n - n P_{n-1})/(n+1) simultaneously
// through all derivative orders via Leibniz's rule on (x P_n)^(k) =
// x P_n^(k) + k P_n^(k-1), avoiding any symbolic differentiation.
func legendreDerivatives(l, kMax int, x hpa.Real) []hpa.Real {
	prec := x.Prec()
	zero := hpa.NewRealPrec(0, prec)
	one := hpa.NewRealPrec(1, prec)

	mk := func() []hpa.Real {
		d := make([]hpa.Real, kMax+1)
		for i := range d {
			d[i] = zero
		}
		return d
	}

	p0 := mk()
	p0[0] = one

	p1 := mk()
	p1[0] = x
	if kMax >= 1 {
		p1[1] = one
	}

	if l == 0 {
		return p0
	}
	if l == 1 {
		return p1
	}

	pnm1, pn := p0, p1
	for n := 1; n < l; n++ {
		xpn := mk()
		for k := 0; k <= kMax; k++ {
			v := x.Mul(pn[k])
			if k >= 1 {
				v = v.Add(pn[k-1].MulInt(k))
			}
			xpn[k] = v
		}
		pnp1 := mk()
		cN := hpa.NewRealPrec(float64(2*n+1), prec)
		cNm1 := hpa.NewRealPrec(float64(n), prec)
		invNp1 := one.QuoInt(n + 1)
		for k := 0; k <= kMax; k++ {
			pnp1[k] = cN.Mul(xpn[k]).Sub(cNm1.Mul(pnm1[k])).Mul(invNp1)
		}
		pnm1, pn = pn, pnp1
	}
	return pn
}

// NormalizedLegendreP returns P̃_l(x), the degree-l Legendre polynomial
// normalized so that ∫_{-1}^1 P̃_l^2 dx = 1.
func NormalizedLegendreP(l int, x hpa.Real) hpa.Real {
	d := legendreDerivatives(l, 0, x)
	return normFactor(l, x.Prec()).Mul(d[0])
}

// NormalizedLegendrePDerivatives returns the first kMax derivatives of
// P̃_l at x0: result[d] = P̃_l^(d)(x0) for d = 0..kMax.
func NormalizedLegendrePDerivatives(l, kMax int, x0 hpa.Real) []hpa.Real {
	d := legendreDerivatives(l, kMax, x0)
	f := normFactor(l, x0.Prec())
	out := make([]hpa.Real, len(d))
	for i, v := range d {
		out[i] = f.Mul(v)
	}
	return out
}

func normFactor(l int, prec uint) hpa.Real {
	num := hpa.NewRealPrec(float64(2*l+1), prec)
	two := hpa.NewRealPrec(2, prec)
	return hpa.Sqrt(num.Quo(two))
}
