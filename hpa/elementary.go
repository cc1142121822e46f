package hpa

import "math/big"

// guardBits pads working precision during series/Newton evaluation so
// the final rounding to the caller's precision is faithful.
const guardBits = 32

// piCache memoises Pi at each precision seen so far, mirroring the
// Gauss-Legendre node cache of package quadrature (keyed there by
// (n, precision)); here keyed by precision alone.
var piCache = map[uint]*big.Float{}

// Pi returns pi rounded to prec bits, computed once per precision via the
// Machin-like formula pi = 16*atan(1/5) - 4*atan(1/239) (atan by Taylor
// series); no arbitrary-precision constant library appears in the
// retrieved corpus, so this classical argument-reduced series is used
// directly against math/big (see DESIGN.md).
func Pi(prec uint) Real {
	if c, ok := piCache[prec]; ok {
		r := new(big.Float).SetPrec(prec)
		r.Set(c)
		return Real{r}
	}
	work := prec + guardBits
	a1 := atanInvTaylor(work, 5)
	a2 := atanInvTaylor(work, 239)
	sixteen := new(big.Float).SetPrec(work).SetInt64(16)
	four := new(big.Float).SetPrec(work).SetInt64(4)
	t1 := new(big.Float).SetPrec(work).Mul(sixteen, a1)
	t2 := new(big.Float).SetPrec(work).Mul(four, a2)
	pi := new(big.Float).SetPrec(work).Sub(t1, t2)
	out := new(big.Float).SetPrec(prec).Set(pi)
	piCache[prec] = new(big.Float).SetPrec(prec).Set(out)
	return Real{out}
}

// atanInvTaylor computes atan(1/n) at the given working precision via the
// alternating Taylor series sum_k (-1)^k (1/n)^(2k+1) / (2k+1).
func atanInvTaylor(prec uint, n int64) *big.Float {
	x := new(big.Float).SetPrec(prec).Quo(
		big.NewFloat(1).SetPrec(prec),
		new(big.Float).SetPrec(prec).SetInt64(n),
	)
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).Set(x)
	sum := new(big.Float).SetPrec(prec).Set(x)
	threshold := thresholdFor(prec)
	neg := true
	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		denom := new(big.Float).SetPrec(prec).SetInt64(2*k + 1)
		contrib := new(big.Float).SetPrec(prec).Quo(term, denom)
		if neg {
			sum.Sub(sum, contrib)
		} else {
			sum.Add(sum, contrib)
		}
		neg = !neg
		if smallerThan(contrib, threshold) {
			break
		}
	}
	return sum
}

func thresholdFor(prec uint) *big.Float {
	t := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec)-4)
	return t
}

func smallerThan(x, threshold *big.Float) bool {
	ax := new(big.Float).SetPrec(x.Prec()).Abs(x)
	return ax.Cmp(threshold) < 0
}

// Sqrt returns the square root of a (a must be >= 0) via Newton's method
// seeded from the float64 approximation, refined to a.Prec() bits.
func Sqrt(a Real) Real {
	if a.IsZero() {
		return Real{new(big.Float).SetPrec(a.Prec())}
	}
	prec := a.Prec() + guardBits
	x := a.big()
	seed, _ := x.Float64()
	y := new(big.Float).SetPrec(prec).SetFloat64(sqrtFloat64(seed))
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	xp := new(big.Float).SetPrec(prec).Set(x)
	for i := 0; i < iterationsFor(prec); i++ {
		// y = 0.5*(y + x/y)
		q := new(big.Float).SetPrec(prec).Quo(xp, y)
		s := new(big.Float).SetPrec(prec).Add(y, q)
		y = new(big.Float).SetPrec(prec).Quo(s, two)
	}
	out := new(big.Float).SetPrec(a.Prec()).Set(y)
	return Real{out}
}

func sqrtFloat64(x float64) float64 {
	if x <= 0 {
		return 0
	}
	// Newton's method from a crude seed; avoids importing math just for Sqrt.
	g := x
	for i := 0; i < 60; i++ {
		g = 0.5 * (g + x/g)
	}
	return g
}

func iterationsFor(prec uint) int {
	// Newton's method doubles correct bits per step; start from ~53 bits
	// of seed accuracy and iterate until we cover prec bits, with margin.
	n := 1
	have := uint(40)
	for have < prec {
		have *= 2
		n++
	}
	return n + 2
}

// Exp returns e^a via range reduction (halving until |a/2^k| < 0.5)
// followed by a Taylor series and k repeated squarings.
func Exp(a Real) Real {
	prec := a.Prec() + guardBits
	x := new(big.Float).SetPrec(prec).Set(a.big())
	k := 0
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	absX := new(big.Float).SetPrec(prec).Abs(x)
	for absX.Cmp(half) > 0 {
		x.Quo(x, big.NewFloat(2).SetPrec(prec))
		absX.Quo(absX, big.NewFloat(2).SetPrec(prec))
		k++
	}
	sum := taylorExp(x, prec)
	for i := 0; i < k; i++ {
		sum.Mul(sum, sum)
	}
	out := new(big.Float).SetPrec(a.Prec()).Set(sum)
	return Real{out}
}

func taylorExp(x *big.Float, prec uint) *big.Float {
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	threshold := thresholdFor(prec)
	for n := int64(1); ; n++ {
		term = new(big.Float).SetPrec(prec).Mul(term, x)
		term = new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetPrec(prec).SetInt64(n))
		sum.Add(sum, term)
		if smallerThan(term, threshold) {
			break
		}
	}
	return sum
}

// Sin returns sin(a), reduced modulo 2*pi before a Taylor series.
func Sin(a Real) Real {
	prec := a.Prec() + guardBits
	r := reduceAngle(a, prec)
	return Real{new(big.Float).SetPrec(a.Prec()).Set(taylorSin(r, prec))}
}

// Cos returns cos(a), reduced modulo 2*pi before a Taylor series.
func Cos(a Real) Real {
	prec := a.Prec() + guardBits
	r := reduceAngle(a, prec)
	return Real{new(big.Float).SetPrec(a.Prec()).Set(taylorCos(r, prec))}
}

// reduceAngle maps a into [-pi, pi] at working precision prec.
func reduceAngle(a Real, prec uint) *big.Float {
	pi := Pi(prec).big()
	twoPi := new(big.Float).SetPrec(prec).Mul(pi, big.NewFloat(2).SetPrec(prec))
	x := new(big.Float).SetPrec(prec).Set(a.big())
	q := new(big.Float).SetPrec(prec).Quo(x, twoPi)
	qf, _ := q.Float64()
	kf := roundFloat(qf)
	k := new(big.Float).SetPrec(prec).SetFloat64(kf)
	adj := new(big.Float).SetPrec(prec).Mul(k, twoPi)
	r := new(big.Float).SetPrec(prec).Sub(x, adj)
	if r.Cmp(pi) > 0 {
		r.Sub(r, twoPi)
	}
	negPi := new(big.Float).SetPrec(prec).Neg(pi)
	if r.Cmp(negPi) < 0 {
		r.Add(r, twoPi)
	}
	return r
}

func roundFloat(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}

func taylorSin(x *big.Float, prec uint) *big.Float {
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).Set(x)
	sum := new(big.Float).SetPrec(prec).Set(x)
	threshold := thresholdFor(prec)
	neg := true
	for n := int64(1); ; n++ {
		term = new(big.Float).SetPrec(prec).Mul(term, x2)
		denom := float64((2*n + 1) * (2 * n))
		d := new(big.Float).SetPrec(prec).SetFloat64(denom)
		term = new(big.Float).SetPrec(prec).Quo(term, d)
		if neg {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		neg = !neg
		if smallerThan(term, threshold) {
			break
		}
	}
	return sum
}

func taylorCos(x *big.Float, prec uint) *big.Float {
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	threshold := thresholdFor(prec)
	neg := true
	for n := int64(1); ; n++ {
		term = new(big.Float).SetPrec(prec).Mul(term, x2)
		denom := float64((2 * n) * (2*n - 1))
		d := new(big.Float).SetPrec(prec).SetFloat64(denom)
		term = new(big.Float).SetPrec(prec).Quo(term, d)
		if neg {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		neg = !neg
		if smallerThan(term, threshold) {
			break
		}
	}
	return sum
}

// Sinh returns sinh(a) = (e^a - e^-a)/2.
func Sinh(a Real) Real {
	ea := Exp(a)
	ena := Exp(a.Neg())
	return ea.Sub(ena).QuoInt(2)
}

// Cosh returns cosh(a) = (e^a + e^-a)/2.
func Cosh(a Real) Real {
	ea := Exp(a)
	ena := Exp(a.Neg())
	return ea.Add(ena).QuoInt(2)
}

// Tanh returns sinh(a)/cosh(a), computed from a single pair of
// exponentials to avoid duplicated work.
func Tanh(a Real) Real {
	ea := Exp(a)
	ena := Exp(a.Neg())
	return ea.Sub(ena).Quo(ea.Add(ena))
}
