package hpa

import (
	"math/big"
)

// Real is an arbitrary-precision real number. Precision is a per-value
// attribute; mixed-precision operations adopt the maximum of their
// operands' precisions.
type Real struct {
	v *big.Float
}

// NewReal builds a Real from a float64 at the current default precision.
func NewReal(f float64) Real {
	return Real{new(big.Float).SetPrec(CurrentPrec()).SetFloat64(f)}
}

// NewRealPrec builds a Real from a float64 at an explicit precision.
func NewRealPrec(f float64, prec uint) Real {
	return Real{new(big.Float).SetPrec(prec).SetFloat64(f)}
}

// NewRealInt builds a Real from an int at the current default precision.
func NewRealInt(n int) Real {
	return Real{new(big.Float).SetPrec(CurrentPrec()).SetInt64(int64(n))}
}

// Zero returns 0 at the current default precision.
func Zero() Real { return NewReal(0) }

// One returns 1 at the current default precision.
func One() Real { return NewReal(1) }

// Prec returns the bit precision this value carries.
func (a Real) Prec() uint {
	if a.v == nil {
		return CurrentPrec()
	}
	return a.v.Prec()
}

func (a Real) big() *big.Float {
	if a.v == nil {
		return new(big.Float).SetPrec(CurrentPrec())
	}
	return a.v
}

func binPrec(a, b Real) uint {
	return maxUint(a.Prec(), b.Prec())
}

// Add returns a+b at max(prec(a), prec(b)).
func (a Real) Add(b Real) Real {
	r := new(big.Float).SetPrec(binPrec(a, b))
	r.Add(a.big(), b.big())
	return Real{r}
}

// Sub returns a-b.
func (a Real) Sub(b Real) Real {
	r := new(big.Float).SetPrec(binPrec(a, b))
	r.Sub(a.big(), b.big())
	return Real{r}
}

// Mul returns a*b.
func (a Real) Mul(b Real) Real {
	r := new(big.Float).SetPrec(binPrec(a, b))
	r.Mul(a.big(), b.big())
	return Real{r}
}

// Quo returns a/b.
func (a Real) Quo(b Real) Real {
	r := new(big.Float).SetPrec(binPrec(a, b))
	r.Quo(a.big(), b.big())
	return Real{r}
}

// Neg returns -a.
func (a Real) Neg() Real {
	r := new(big.Float).SetPrec(a.Prec())
	r.Neg(a.big())
	return Real{r}
}

// Abs returns |a|.
func (a Real) Abs() Real {
	r := new(big.Float).SetPrec(a.Prec())
	r.Abs(a.big())
	return Real{r}
}

// MulInt returns a*n exactly (n small).
func (a Real) MulInt(n int) Real {
	return a.Mul(NewRealPrec(float64(n), a.Prec()))
}

// QuoInt returns a/n.
func (a Real) QuoInt(n int) Real {
	return a.Quo(NewRealPrec(float64(n), a.Prec()))
}

// Cmp is bit-exact comparison: comparison operators never apply a
// tolerance.
func (a Real) Cmp(b Real) int {
	return a.big().Cmp(b.big())
}

func (a Real) Less(b Real) bool         { return a.Cmp(b) < 0 }
func (a Real) LessEqual(b Real) bool    { return a.Cmp(b) <= 0 }
func (a Real) Greater(b Real) bool      { return a.Cmp(b) > 0 }
func (a Real) GreaterEqual(b Real) bool { return a.Cmp(b) >= 0 }
func (a Real) Equal(b Real) bool        { return a.Cmp(b) == 0 }

// Sign returns -1, 0, or 1.
func (a Real) Sign() int { return a.big().Sign() }

// IsZero reports whether a is exactly zero.
func (a Real) IsZero() bool { return a.big().Sign() == 0 }

// Float64 converts to an ordinary double.
func (a Real) Float64() float64 {
	f, _ := a.big().Float64()
	return f
}

// Text renders a in the given big.Float format (e.g. 'g') at the given
// number of significant digits, preserving full precision. Used by
// package ppoly's serializer, which must round-trip a value at its
// full working precision rather than through a float64.
func (a Real) Text(format byte, digits int) string {
	return a.big().Text(format, digits)
}

// ParseReal parses a decimal string into a Real at the given precision,
// at full precision (not routed through float64), the counterpart to
// Text above.
func ParseReal(s string, prec uint) (Real, error) {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		return Real{}, err
	}
	return Real{f}, nil
}

// SetPrec returns a copy of a rounded to prec bits.
func (a Real) SetPrec(prec uint) Real {
	r := new(big.Float).SetPrec(prec)
	r.Set(a.big())
	return Real{r}
}

// Copy returns an independent copy of a (Real is otherwise safe to share
// since every operation above allocates a fresh *big.Float).
func (a Real) Copy() Real {
	r := new(big.Float).SetPrec(a.Prec())
	r.Copy(a.big())
	return Real{r}
}

// Max returns the greater of a, b.
func Max(a, b Real) Real {
	if a.Greater(b) {
		return a
	}
	return b
}

// Min returns the lesser of a, b.
func Min(a, b Real) Real {
	if a.Less(b) {
		return a
	}
	return b
}
