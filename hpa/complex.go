package hpa

// Complex is a pair of Real values with standard complex algebra,
// grounded on
// other_examples/JonasLazardGIT-vSIS-Signature-Scheme__bigcomplex.go's
// BigComplex (a *big.Float pair with Add/Sub/Mul/Conj/Inv), generalized
// here to the package's own Real rather than raw *big.Float.
type Complex struct {
	Re, Im Real
}

// NewComplex builds a Complex from Real parts.
func NewComplex(re, im Real) Complex { return Complex{re, im} }

// ComplexFromFloat builds a Complex from float64 parts at the current
// default precision.
func ComplexFromFloat(re, im float64) Complex {
	return Complex{NewReal(re), NewReal(im)}
}

func (z Complex) Add(w Complex) Complex {
	return Complex{z.Re.Add(w.Re), z.Im.Add(w.Im)}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{z.Re.Sub(w.Re), z.Im.Sub(w.Im)}
}

func (z Complex) Mul(w Complex) Complex {
	ac := z.Re.Mul(w.Re)
	bd := z.Im.Mul(w.Im)
	ad := z.Re.Mul(w.Im)
	bc := z.Im.Mul(w.Re)
	return Complex{ac.Sub(bd), ad.Add(bc)}
}

// MulReal scales z by a real scalar.
func (z Complex) MulReal(s Real) Complex {
	return Complex{z.Re.Mul(s), z.Im.Mul(s)}
}

func (z Complex) Neg() Complex { return Complex{z.Re.Neg(), z.Im.Neg()} }

func (z Complex) Conj() Complex { return Complex{z.Re, z.Im.Neg()} }

// AbsSquared returns |z|^2 as a Real.
func (z Complex) AbsSquared() Real {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// Abs returns |z|.
func (z Complex) Abs() Real { return Sqrt(z.AbsSquared()) }

// Inv returns 1/z.
func (z Complex) Inv() Complex {
	d := z.AbsSquared()
	c := z.Conj()
	return Complex{c.Re.Quo(d), c.Im.Quo(d)}
}

// Quo returns z/w.
func (z Complex) Quo(w Complex) Complex { return z.Mul(w.Inv()) }

// ExpI returns exp(i*theta) = cos(theta) + i*sin(theta).
func ExpI(theta Real) Complex {
	return Complex{Cos(theta), Sin(theta)}
}

// Float64 converts to a native complex128 for host interop / logging.
func (z Complex) Float64() complex128 {
	return complex(z.Re.Float64(), z.Im.Float64())
}
