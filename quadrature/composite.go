package quadrature

import "github.com/irfit/irbasis-go/hpa"

// Composite maps the n-node Gauss-Legendre rule onto each sub-interval
// of mesh by affine transformation and concatenates the results into a
// single sequence of (x, w) pairs. mesh must have at least two
// break-points.
func Composite(mesh []hpa.Real, local []Node) []Node {
	out := make([]Node, 0, len(local)*(len(mesh)-1))
	half := hpa.NewRealPrec(0.5, localPrec(local))
	for s := 0; s < len(mesh)-1; s++ {
		a, b := mesh[s], mesh[s+1]
		dx := b.Sub(a)
		mid := a.Add(b).Mul(half)
		halfDx := dx.Mul(half)
		for _, nd := range local {
			x := mid.Add(halfDx.Mul(nd.X))
			w := halfDx.Mul(nd.W)
			out = append(out, Node{X: x, W: w})
		}
	}
	return out
}

func localPrec(local []Node) uint {
	if len(local) == 0 {
		return hpa.CurrentPrec()
	}
	return local[0].X.Prec()
}
