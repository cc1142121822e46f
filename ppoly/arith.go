package ppoly

import "github.com/irfit/irbasis-go/hpa"

// Add returns f+g, element-wise on shared sections. f and g must have
// identical meshes (ErrMeshMismatch otherwise); the result has order
// max(orderF, orderG), with the lower-order operand's missing
// coefficients treated as zero.
func (f *Poly) Add(g *Poly) (*Poly, error) { return elementWise(f, g, addReal) }

// Sub returns f-g under the same contract as Add.
func (f *Poly) Sub(g *Poly) (*Poly, error) { return elementWise(f, g, subReal) }

func addReal(a, b hpa.Real) hpa.Real { return a.Add(b) }
func subReal(a, b hpa.Real) hpa.Real { return a.Sub(b) }

func elementWise(f, g *Poly, op func(a, b hpa.Real) hpa.Real) (*Poly, error) {
	if !sameMesh(f.mesh, g.mesh) {
		return nil, ErrMeshMismatch
	}
	order := f.order
	if g.order > order {
		order = g.order
	}
	prec := hpa.CurrentPrec()
	if len(f.mesh) > 0 {
		prec = f.mesh[0].Prec()
	}
	zero := hpa.NewRealPrec(0, prec)
	nSections := f.NumSections()
	coeff := make([][]hpa.Real, nSections)
	for s := 0; s < nSections; s++ {
		row := make([]hpa.Real, order+1)
		for p := 0; p <= order; p++ {
			a := zero
			if p <= f.order {
				a = f.coeff[s][p]
			}
			b := zero
			if p <= g.order {
				b = g.coeff[s][p]
			}
			row[p] = op(a, b)
		}
		coeff[s] = row
	}
	return New(f.mesh, coeff)
}

// Scale returns alpha*f.
func (f *Poly) Scale(alpha hpa.Real) *Poly {
	nSections := f.NumSections()
	coeff := make([][]hpa.Real, nSections)
	for s := 0; s < nSections; s++ {
		row := make([]hpa.Real, f.order+1)
		for p := range row {
			row[p] = alpha.Mul(f.coeff[s][p])
		}
		coeff[s] = row
	}
	out, _ := New(f.mesh, coeff)
	return out
}

// Overlap computes <f|g> = sum_s sum_{p,q} conj(a_{s,p}) b_{s,q}
// dx_s^{p+q+1} / (p+q+1), the bilinear form on Poly. f and g must
// share a mesh. Real scalars have no conjugation effect.
func (f *Poly) Overlap(g *Poly) (hpa.Real, error) {
	if !sameMesh(f.mesh, g.mesh) {
		return hpa.Real{}, ErrMeshMismatch
	}
	prec := hpa.CurrentPrec()
	if len(f.mesh) > 0 {
		prec = f.mesh[0].Prec()
	}
	r := hpa.NewRealPrec(0, prec)
	maxPQ := f.order + g.order + 1
	for s := 0; s < f.NumSections(); s++ {
		dx := f.mesh[s+1].Sub(f.mesh[s])
		dxPow := make([]hpa.Real, maxPQ+2)
		dxPow[0] = hpa.NewRealPrec(1, prec)
		for i := 1; i < len(dxPow); i++ {
			dxPow[i] = dxPow[i-1].Mul(dx)
		}
		for p := 0; p <= f.order; p++ {
			for q := 0; q <= g.order; q++ {
				prod := f.coeff[s][p].Mul(g.coeff[s][q])
				r = r.Add(prod.Mul(dxPow[p+q+1]).QuoInt(p + q + 1))
			}
		}
	}
	return r, nil
}

// Multiply returns f*g of order orderF+orderG on their shared mesh.
// f and g must share a mesh.
func Multiply(f, g *Poly) (*Poly, error) {
	if !sameMesh(f.mesh, g.mesh) {
		return nil, ErrMeshMismatch
	}
	order := f.order + g.order
	nSections := f.NumSections()
	coeff := make([][]hpa.Real, nSections)
	prec := hpa.CurrentPrec()
	if len(f.mesh) > 0 {
		prec = f.mesh[0].Prec()
	}
	zero := hpa.NewRealPrec(0, prec)
	for s := 0; s < nSections; s++ {
		row := make([]hpa.Real, order+1)
		for i := range row {
			row[i] = zero
		}
		for p1 := 0; p1 <= f.order; p1++ {
			for p2 := 0; p2 <= g.order; p2++ {
				row[p1+p2] = row[p1+p2].Add(f.coeff[s][p1].Mul(g.coeff[s][p2]))
			}
		}
		coeff[s] = row
	}
	return New(f.mesh, coeff)
}

// Integrate returns the definite integral of f over its full mesh.
func (f *Poly) Integrate() hpa.Real {
	prec := hpa.CurrentPrec()
	if len(f.mesh) > 0 {
		prec = f.mesh[0].Prec()
	}
	total := hpa.NewRealPrec(0, prec)
	for s := 0; s < f.NumSections(); s++ {
		dx := f.mesh[s+1].Sub(f.mesh[s])
		dxPow := dx
		for p := 0; p <= f.order; p++ {
			total = total.Add(f.coeff[s][p].Mul(dxPow).QuoInt(p + 1))
			dxPow = dxPow.Mul(dx)
		}
	}
	return total
}

// Orthonormalize Gram-Schmidt-orthonormalizes pps in place order,
// returning the orthonormal sequence. All elements must share a mesh.
func Orthonormalize(pps []*Poly) ([]*Poly, error) {
	out := make([]*Poly, len(pps))
	for l := range pps {
		cur := pps[l]
		for l2 := 0; l2 < l; l2++ {
			ov, err := out[l2].Overlap(cur)
			if err != nil {
				return nil, err
			}
			proj := out[l2].Scale(ov)
			cur, err = cur.Sub(proj)
			if err != nil {
				return nil, err
			}
		}
		norm2, err := cur.Overlap(cur)
		if err != nil {
			return nil, err
		}
		norm := hpa.Sqrt(norm2)
		out[l] = cur.Scale(hpa.NewRealPrec(1, norm.Prec()).Quo(norm))
	}
	return out, nil
}

// Extend builds the representation of f on the full [-1,1] domain from
// its half-interval ([0,1]) mesh by mirroring sections, using the
// parity convention f(-x) = (-1)^parity f(x). It is
// used by the parity-invariant tests and by host callers that want the
// full-domain function.
//
// For the new section covering x in [-mesh[s+1], -mesh[s]] (the mirror
// of original section s), the local variable is dy = x + mesh[s+1], and
// the value equals sign * f_old(-x) = sign * sum_p a_{s,p} (Δs - dy)^p
// where Δs = mesh[s+1]-mesh[s]: a binomial (Taylor) shift of the
// original section's coefficients, not a bare sign flip of dy's powers.
func (f *Poly) Extend(parity int) (*Poly, error) {
	n := f.NumSections()
	prec := hpa.CurrentPrec()
	if len(f.mesh) > 0 {
		prec = f.mesh[0].Prec()
	}
	sign := hpa.NewRealPrec(1, prec)
	if parity%2 != 0 {
		sign = hpa.NewRealPrec(-1, prec)
	}
	fullMesh := make([]hpa.Real, 0, 2*n+1)
	for i := n; i >= 0; i-- {
		fullMesh = append(fullMesh, f.mesh[i].Neg())
	}
	fullMesh = fullMesh[:len(fullMesh)-1]
	fullMesh = append(fullMesh, f.mesh...)

	coeff := make([][]hpa.Real, 2*n)
	for i := 0; i < n; i++ {
		s := n - 1 - i
		delta := f.mesh[s+1].Sub(f.mesh[s])
		shifted := reflectShift(f.coeff[s], delta)
		row := make([]hpa.Real, f.order+1)
		for p := range row {
			row[p] = sign.Mul(shifted[p])
		}
		coeff[i] = row
	}
	for s := 0; s < n; s++ {
		coeff[n+s] = append([]hpa.Real(nil), f.coeff[s]...)
	}
	return New(fullMesh, coeff)
}

// reflectShift returns the coefficients, as powers of dy, of
// g(dy) = sum_p a[p] * (delta - dy)^p, via the binomial expansion
// (delta - dy)^p = sum_k C(p,k) delta^{p-k} (-dy)^k.
func reflectShift(a []hpa.Real, delta hpa.Real) []hpa.Real {
	order := len(a) - 1
	prec := delta.Prec()
	zero := hpa.NewRealPrec(0, prec)
	out := make([]hpa.Real, order+1)
	for i := range out {
		out[i] = zero
	}
	deltaPow := make([]hpa.Real, order+1)
	deltaPow[0] = hpa.NewRealPrec(1, prec)
	for i := 1; i <= order; i++ {
		deltaPow[i] = deltaPow[i-1].Mul(delta)
	}
	binom := pascalTriangle(order)
	for p := 0; p <= order; p++ {
		for k := 0; k <= p; k++ {
			term := a[p].MulInt(binom[p][k]).Mul(deltaPow[p-k])
			if k%2 == 1 {
				term = term.Neg()
			}
			out[k] = out[k].Add(term)
		}
	}
	return out
}

// pascalTriangle returns binomial coefficients C(p,k) for 0 <= p <= n,
// 0 <= k <= p.
func pascalTriangle(n int) [][]int {
	rows := make([][]int, n+1)
	for p := 0; p <= n; p++ {
		row := make([]int, p+1)
		row[0] = 1
		row[p] = 1
		for k := 1; k < p; k++ {
			row[k] = rows[p-1][k-1] + rows[p-1][k]
		}
		rows[p] = row
	}
	return rows
}
