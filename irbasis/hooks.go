package irbasis

import "github.com/irfit/irbasis-go/hpa"

// tnlCompute/tnlComputeTbarOl are wired by package tnl's init() via
// RegisterTnl, letting BasisSet.ComputeTnl/ComputeTbarOl exist as
// methods on BasisSet while irbasis itself never imports tnl (tnl
// imports irbasis for the *BasisSet parameter type, so a direct import
// back would cycle; the indirection keeps the dependency graph one-way,
// see DESIGN.md).
var (
	tnlCompute       func(*BasisSet, []int) (*hpa.ComplexMatrix, error)
	tnlComputeTbarOl func(*BasisSet, []int) (*hpa.ComplexMatrix, error)
)

// RegisterTnl wires package tnl's Compute/ComputeTbarOl functions into
// BasisSet's forwarding methods below. Called once from tnl's init();
// not meant to be called by other code.
func RegisterTnl(compute, computeTbarOl func(*BasisSet, []int) (*hpa.ComplexMatrix, error)) {
	tnlCompute = compute
	tnlComputeTbarOl = computeTbarOl
}

// ComputeTnl forwards to tnl.Compute(bs, nVec).
func (bs *BasisSet) ComputeTnl(nVec []int) (*hpa.ComplexMatrix, error) {
	if tnlCompute == nil {
		return nil, ErrTnlNotLinked
	}
	return tnlCompute(bs, nVec)
}

// ComputeTbarOl forwards to tnl.ComputeTbarOl(bs, oVec).
func (bs *BasisSet) ComputeTbarOl(oVec []int) (*hpa.ComplexMatrix, error) {
	if tnlComputeTbarOl == nil {
		return nil, ErrTnlNotLinked
	}
	return tnlComputeTbarOl(bs, oVec)
}
