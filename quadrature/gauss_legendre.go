package quadrature

import (
	"gonum.org/v1/gonum/mat"

	"github.com/irfit/irbasis-go/hpa"
)

// Node is a single Gauss-Legendre quadrature node/weight pair.
type Node struct {
	X, W hpa.Real
}

type cacheKey struct {
	n    int
	prec uint
}

// nodeCache memoises gauss_legendre(n) keyed by (n, precision),
// computed once per (n, precision) and reused thereafter; the core is
// single-threaded and writes are never concurrent, so a plain map suffices
// (see DESIGN.md).
var nodeCache = map[cacheKey][]Node{}

// GaussLegendre returns n Gauss-Legendre (node, weight) pairs on [-1,1]
// at the current default precision.
func GaussLegendre(n int) ([]Node, error) {
	if n <= 0 {
		return nil, ErrInvalidNodeCount
	}
	prec := hpa.CurrentPrec()
	key := cacheKey{n: n, prec: prec}
	if cached, ok := nodeCache[key]; ok {
		return cached, nil
	}

	seeds := doubleSeeds(n)
	nodes := make([]Node, n)
	for i, seed := range seeds {
		x := refineRoot(n, seed, prec)
		d := legendreDerivatives(n, 1, x)
		one := hpa.NewRealPrec(1, prec)
		denom := one.Sub(x.Mul(x)).Mul(d[1]).Mul(d[1])
		w := hpa.NewRealPrec(2, prec).Quo(denom)
		nodes[i] = Node{X: x, W: w}
	}
	nodeCache[key] = nodes
	return nodes, nil
}

// doubleSeeds returns double-precision approximations to the n roots of
// P_n via the eigenvalues of the symmetric tridiagonal Jacobi matrix for
// Legendre polynomials (alpha = beta = 0), mirroring
// DG1D/elements.go's JacobiGQ (which solves the same eigenproblem for
// general Jacobi weight via gonum's mat.EigenSym).
func doubleSeeds(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	diag := make([]float64, n)
	offdiag := make([]float64, n-1)
	for k := 1; k < n; k++ {
		kf := float64(k)
		offdiag[k-1] = kf / sqrtFloat(4*kf*kf-1)
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, diag[i])
		if i+1 < n {
			sym.SetSym(i, i+1, offdiag[i])
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		panic("quadrature: eigen decomposition failed for GL seed matrix")
	}
	vals := eig.Values(nil)
	return vals
}

func sqrtFloat(x float64) float64 {
	g := x
	for i := 0; i < 60; i++ {
		g = 0.5 * (g + x/g)
	}
	return g
}

// refineRoot polishes a double-precision root of P_n to prec bits via
// Newton's method using legendreDerivatives for value and slope.
func refineRoot(n int, seed float64, prec uint) hpa.Real {
	x := hpa.NewRealPrec(seed, prec)
	for i := 0; i < newtonIterations(prec); i++ {
		d := legendreDerivatives(n, 1, x)
		x = x.Sub(d[0].Quo(d[1]))
	}
	return x
}

func newtonIterations(prec uint) int {
	n := 2
	have := uint(40)
	for have < prec {
		have *= 2
		n++
	}
	return n + 4
}
