// Package ppoly implements the piecewise-polynomial value type P<T>,
// specialised to T = hpa.Real (see DESIGN.md Open Question OQ-1 on why
// this is a concrete struct rather than a generic type). A Poly is
// immutable once constructed: every method that conceptually mutates
// returns a new value, so clones are always explicit.
package ppoly

import (
	"sort"

	"github.com/irfit/irbasis-go/hpa"
)

// Poly is a piecewise polynomial of order k on a mesh of n_s+1
// break-points: on [mesh[s], mesh[s+1]) it is
// sum_{p=0}^{k} coeff[s][p] * (x - mesh[s])^p.
type Poly struct {
	order int
	mesh  []hpa.Real
	coeff [][]hpa.Real // [section][power]
}

// New constructs a Poly from a mesh and a coefficient grid of shape
// (len(mesh)-1, order+1). The mesh and coeff slices are copied so the
// caller's backing arrays remain theirs to mutate.
func New(mesh []hpa.Real, coeff [][]hpa.Real) (*Poly, error) {
	if len(mesh) < 2 {
		return nil, ErrInvalidMesh
	}
	for i := 1; i < len(mesh); i++ {
		if !mesh[i].Greater(mesh[i-1]) {
			return nil, ErrInvalidMesh
		}
	}
	nSections := len(mesh) - 1
	if len(coeff) != nSections {
		return nil, ErrShapeMismatch
	}
	order := len(coeff[0]) - 1
	for _, row := range coeff {
		if len(row) != order+1 {
			return nil, ErrShapeMismatch
		}
	}
	meshCopy := make([]hpa.Real, len(mesh))
	copy(meshCopy, mesh)
	coeffCopy := make([][]hpa.Real, nSections)
	for s := range coeff {
		coeffCopy[s] = make([]hpa.Real, order+1)
		copy(coeffCopy[s], coeff[s])
	}
	return &Poly{order: order, mesh: meshCopy, coeff: coeffCopy}, nil
}

// Zero builds a Poly identically zero on the given mesh at the given
// order.
func Zero(mesh []hpa.Real, order int) (*Poly, error) {
	prec := hpa.CurrentPrec()
	if len(mesh) > 0 {
		prec = mesh[0].Prec()
	}
	z := hpa.NewRealPrec(0, prec)
	nSections := len(mesh) - 1
	coeff := make([][]hpa.Real, nSections)
	for s := range coeff {
		row := make([]hpa.Real, order+1)
		for p := range row {
			row[p] = z
		}
		coeff[s] = row
	}
	return New(mesh, coeff)
}

func (p *Poly) Order() int             { return p.order }
func (p *Poly) NumSections() int       { return len(p.mesh) - 1 }
func (p *Poly) Mesh() []hpa.Real       { out := make([]hpa.Real, len(p.mesh)); copy(out, p.mesh); return out }
func (p *Poly) SectionEdge(i int) hpa.Real { return p.mesh[i] }

// Coefficient returns the coefficient of (x-mesh[s])^power in section s.
func (p *Poly) Coefficient(s, power int) hpa.Real { return p.coeff[s][power] }

// sameMesh reports structural mesh equality (same length, bit-exact edges).
func sameMesh(a, b []hpa.Real) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality on (mesh, order, coefficients).
func (p *Poly) Equal(other *Poly) bool {
	if p.order != other.order || !sameMesh(p.mesh, other.mesh) {
		return false
	}
	for s := range p.coeff {
		for k := range p.coeff[s] {
			if !p.coeff[s][k].Equal(other.coeff[s][k]) {
				return false
			}
		}
	}
	return true
}

// FindSection returns the index of the section containing x, with
// boundary endpoints mapping deterministically: x = mesh[0] -> section
// 0, x = mesh[last] -> the last section.
func (p *Poly) FindSection(x hpa.Real) int {
	n := len(p.mesh)
	if x.Equal(p.mesh[0]) {
		return 0
	}
	if x.Equal(p.mesh[n-1]) {
		return n - 2
	}
	// upper_bound: first index i with mesh[i] > x, section = i-1.
	i := sort.Search(n, func(i int) bool { return p.mesh[i].Greater(x) })
	return i - 1
}

// InDomain reports whether x lies within [mesh[0], mesh[last]].
func (p *Poly) InDomain(x hpa.Real) bool {
	n := len(p.mesh)
	return x.GreaterEqual(p.mesh[0]) && x.LessEqual(p.mesh[n-1])
}

// Value evaluates the polynomial at x, returning ErrOutOfDomain if x
// falls outside the mesh.
func (p *Poly) Value(x hpa.Real) (hpa.Real, error) {
	if !p.InDomain(x) {
		return hpa.Real{}, ErrOutOfDomain
	}
	return p.valueInSection(x, p.FindSection(x)), nil
}

// ValueInSection evaluates the polynomial at x using the polynomial of
// the given section explicitly, overriding the section lookup. Used at
// break-points where callers need the adjacent section's branch.
func (p *Poly) ValueInSection(x hpa.Real, section int) hpa.Real {
	return p.valueInSection(x, section)
}

func (p *Poly) valueInSection(x hpa.Real, s int) hpa.Real {
	dx := x.Sub(p.mesh[s])
	row := p.coeff[s]
	prec := dx.Prec()
	r := hpa.NewRealPrec(0, prec)
	xPow := hpa.NewRealPrec(1, prec)
	for _, a := range row {
		r = r.Add(a.Mul(xPow))
		xPow = xPow.Mul(dx)
	}
	return r
}

// Derivative returns the m-th derivative at x, via coefficient shifting
// (a_p <- (p+1) a_{p+1}) repeated m times. If section is
// given (>= 0) it overrides the section lookup, matching Value's
// ValueInSection override for use at break-points.
func (p *Poly) Derivative(x hpa.Real, m int, section ...int) (hpa.Real, error) {
	if !p.InDomain(x) {
		return hpa.Real{}, ErrOutOfDomain
	}
	s := p.FindSection(x)
	if len(section) > 0 && section[0] >= 0 {
		s = section[0]
	}
	return p.derivativeInSection(x, m, s), nil
}

func (p *Poly) derivativeInSection(x hpa.Real, m, s int) hpa.Real {
	prec := x.Prec()
	row := make([]hpa.Real, p.order+1)
	copy(row, p.coeff[s])
	zero := hpa.NewRealPrec(0, prec)
	for step := 0; step < m; step++ {
		next := make([]hpa.Real, p.order+1)
		for i := 0; i < p.order; i++ {
			next[i] = row[i+1].MulInt(i + 1)
		}
		next[p.order] = zero
		row = next
	}
	dx := x.Sub(p.mesh[s])
	r := zero
	xPow := hpa.NewRealPrec(1, prec)
	for _, a := range row {
		r = r.Add(a.Mul(xPow))
		xPow = xPow.Mul(dx)
	}
	return r
}
