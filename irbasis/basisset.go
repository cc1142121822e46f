// Package irbasis implements the Solver: it discretizes
// a kernel.Kernel on an adaptively refined mesh, splits it into even and
// odd parts, and assembles the IR basis from the interleaved SVD of the
// two halves, returning a BasisSet the host evaluates or feeds to
// package tnl for the Matsubara-frequency transform.
package irbasis

import (
	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/kernel"
	"github.com/irfit/irbasis-go/ppoly"
)

// BasisSet is the immutable result of Compute: a sequence of singular
// values paired with their left (u) and right (v) basis functions,
// ordered by descending singular value.
//
// ComputeTnl and ComputeTbarOl (hooks.go) forward to package tnl through
// a package-level registration hook rather than a direct import, so
// irbasis never imports tnl even though tnl imports irbasis. See
// DESIGN.md for why the straightforward two-way import would cycle.
type BasisSet struct {
	kernel kernel.Kernel
	s      []hpa.Real
	u, v   []*ppoly.Poly
}

func newBasisSet(k kernel.Kernel, triplets []triplet) *BasisSet {
	bs := &BasisSet{
		kernel: k,
		s:      make([]hpa.Real, len(triplets)),
		u:      make([]*ppoly.Poly, len(triplets)),
		v:      make([]*ppoly.Poly, len(triplets)),
	}
	for i, t := range triplets {
		bs.s[i] = t.sigma
		bs.u[i] = t.u
		bs.v[i] = t.v
	}
	return bs
}

// Dim returns the number of admitted basis functions.
func (bs *BasisSet) Dim() int { return len(bs.s) }

// Statistics returns the kernel's statistics.
func (bs *BasisSet) Statistics() kernel.Statistics { return bs.kernel.Statistics() }

// Lambda returns the kernel's Λ parameter.
func (bs *BasisSet) Lambda() hpa.Real { return bs.kernel.Lambda() }

// Kernel exposes the underlying kernel.
func (bs *BasisSet) Kernel() kernel.Kernel { return bs.kernel }

// SingularValue returns s_l.
func (bs *BasisSet) SingularValue(l int) (hpa.Real, error) {
	if l < 0 || l >= len(bs.s) {
		return hpa.Real{}, ErrInvalidIndex
	}
	return bs.s[l], nil
}

// Ulx returns the l-th left (x-domain, [-1,1]) basis function, extended
// from its half-interval mesh by parity (-1)^l about x=0, for both
// fermionic and bosonic kernels.
func (bs *BasisSet) Ulx(l int) (*ppoly.Poly, error) {
	if l < 0 || l >= len(bs.u) {
		return nil, ErrInvalidIndex
	}
	return bs.u[l].Extend(l % 2)
}

// Vly returns the l-th right (y-domain) basis function, extended to
// [-1,1] the same way as Ulx.
func (bs *BasisSet) Vly(l int) (*ppoly.Poly, error) {
	if l < 0 || l >= len(bs.v) {
		return nil, ErrInvalidIndex
	}
	return bs.v[l].Extend(l % 2)
}

// HalfU/HalfV expose the un-extended half-interval ([0,1]) functions,
// which is what package tnl's quadrature and boundary-derivative tail
// series actually operate on: extending to [-1,1] on every Tnl
// quadrature sample would be wasted work since the kernel is already
// symmetrized.
func (bs *BasisSet) HalfU(l int) (*ppoly.Poly, error) {
	if l < 0 || l >= len(bs.u) {
		return nil, ErrInvalidIndex
	}
	return bs.u[l], nil
}

func (bs *BasisSet) HalfV(l int) (*ppoly.Poly, error) {
	if l < 0 || l >= len(bs.v) {
		return nil, ErrInvalidIndex
	}
	return bs.v[l], nil
}

// Value evaluates Ulx(l) at x.
func (bs *BasisSet) Value(x hpa.Real, l int) (hpa.Real, error) {
	u, err := bs.Ulx(l)
	if err != nil {
		return hpa.Real{}, err
	}
	if x.Abs().Greater(hpa.NewRealPrec(1, x.Prec())) {
		return hpa.Real{}, ErrOutOfDomain
	}
	return u.Value(x)
}

// Values evaluates every admitted Ulx at x.
func (bs *BasisSet) Values(x hpa.Real) ([]hpa.Real, error) {
	out := make([]hpa.Real, bs.Dim())
	for l := range out {
		v, err := bs.Value(x, l)
		if err != nil {
			return nil, err
		}
		out[l] = v
	}
	return out, nil
}
