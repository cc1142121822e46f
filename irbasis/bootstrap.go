package irbasis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/irfit/irbasis-go/hpa"
)

// bootstrapMesh seeds the initial x and y break-points by discretizing
// K_even at double precision on a double-exponential (DE) grid, taking
// its SVD, and collecting the sign-change positions of the leading
// singular vectors: the initial mesh is seeded from a double-precision
// bootstrap discretization using a DE-substitution quadrature, whose
// singular vectors' sign changes locate the regions needing finer
// resolution. Higher-index basis functions oscillate
// more, so pooling sign changes across the first `dim` vectors gives a
// mesh that is already fine where the true basis needs it, before the
// arbitrary-precision refinement loop takes over.
//
// The sampled kernel is weighted by sqrt(h * deMapPrime(t)) on both
// sides, a double-precision Nystrom discretization of the integral
// operator; it only needs to locate curvature, so its accuracy does not
// limit the refined basis (the adaptive loop below supplies the
// accuracy).
func bootstrapMesh(evalEven func(x, y float64) float64, n, dim int) (xBreaks, yBreaks []float64) {
	const detau = 4.0 // half-width of the t-range in DE coordinates
	ts := make([]float64, n)
	xs := make([]float64, n)
	h := 2 * detau / float64(n-1)
	for i := 0; i < n; i++ {
		t := -detau + float64(i)*h
		ts[i] = t
		xs[i] = deMap(t)
	}
	weights := make([]float64, n)
	for i, t := range ts {
		weights[i] = math.Sqrt(h * deMapPrime(t))
	}

	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, weights[i]*evalEven(xs[i], xs[j])*weights[j])
		}
	}
	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDThin) {
		// Bootstrap seeding is a heuristic; fall back to the trivial
		// mesh and let the refinement loop discover structure on its own.
		return []float64{}, []float64{}
	}
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)

	if dim > n {
		dim = n
	}
	xSet := map[float64]bool{}
	ySet := map[float64]bool{}
	for l := 0; l < dim; l++ {
		for i := 0; i+1 < n; i++ {
			if math.Signbit(U.At(i, l)) != math.Signbit(U.At(i+1, l)) {
				xSet[xs[i]] = true
			}
			if math.Signbit(V.At(i, l)) != math.Signbit(V.At(i+1, l)) {
				ySet[xs[i]] = true
			}
		}
	}
	xBreaks = setToSortedSlice(xSet)
	yBreaks = setToSortedSlice(ySet)
	return xBreaks, yBreaks
}

// deMap is the tanh-sinh double-exponential substitution mapping
// (-inf,inf) onto (0,1), used only to seed the bootstrap grid in
// [0,1], the half-domain after parity splitting.
func deMap(t float64) float64 {
	return 0.5 * (1 + math.Tanh(0.5*math.Pi*math.Sinh(t)))
}

// deMapPrime is d(deMap)/dt.
func deMapPrime(t float64) float64 {
	s := 0.5 * math.Pi * math.Sinh(t)
	sech2 := 1 - math.Tanh(s)*math.Tanh(s)
	return 0.5 * 0.5 * math.Pi * math.Cosh(t) * sech2
}

func setToSortedSlice(m map[float64]bool) []float64 {
	out := make([]float64, 0, len(m))
	for x := range m {
		out = append(out, x)
	}
	sort.Float64s(out)
	return out
}

// buildMeshFromBreaks merges bootstrap break-points into the canonical
// [0,1] endpoints at the working precision, deduplicating near-identical
// points to a given tolerance.
func buildMeshFromBreaks(breaks []float64, prec uint) []hpa.Real {
	const minGap = 1e-6
	sort.Float64s(breaks)
	pts := []float64{0}
	for _, b := range breaks {
		if b <= minGap || b >= 1-minGap {
			continue
		}
		if b-pts[len(pts)-1] < minGap {
			continue
		}
		pts = append(pts, b)
	}
	pts = append(pts, 1)
	out := make([]hpa.Real, len(pts))
	for i, p := range pts {
		out[i] = hpa.NewRealPrec(p, prec)
	}
	return out
}
