package irbasis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/kernel"
)

func smallOptions(prec uint) Options {
	opts := DefaultOptions(prec)
	opts.MaxDim = 6
	opts.NBootstrap = 31
	opts.NumLocalPoly = 4
	opts.NumNodesGL = 12
	return opts
}

func TestComputeRejectsInvalidOptions(t *testing.T) {
	k := kernel.NewFermionic(hpa.NewRealPrec(10, testPrec))
	opts := smallOptions(testPrec)
	opts.NumLocalPoly = 1
	_, err := Compute(k, opts)
	assert.ErrorIs(t, err, ErrLocalPolyTooSmall)
}

func TestComputeAdmitsPositiveMonotoneSingularValues(t *testing.T) {
	k := kernel.NewFermionic(hpa.NewRealPrec(10, testPrec))
	bs, err := Compute(k, smallOptions(testPrec))
	require.NoError(t, err)
	require.Greater(t, bs.Dim(), 0)

	for l := 0; l < bs.Dim(); l++ {
		s, err := bs.SingularValue(l)
		require.NoError(t, err)
		assert.True(t, s.Sign() > 0, "s_%d must be positive", l)
		if l > 0 {
			prev, _ := bs.SingularValue(l - 1)
			assert.True(t, prev.GreaterEqual(s), "singular values must be non-increasing at l=%d", l)
		}
	}
}

func TestComputeAdmittedBasisFunctionsArePositiveAtOne(t *testing.T) {
	k := kernel.NewFermionic(hpa.NewRealPrec(10, testPrec))
	bs, err := Compute(k, smallOptions(testPrec))
	require.NoError(t, err)

	one := hpa.NewRealPrec(1, testPrec)
	for l := 0; l < bs.Dim(); l++ {
		u, err := bs.HalfU(l)
		require.NoError(t, err)
		val, err := u.Value(one)
		require.NoError(t, err)
		assert.True(t, val.Sign() >= 0, "u_%d(1) must be >= 0", l)
	}
}

func TestRefineMeshSplitsSectionsExceedingTolerance(t *testing.T) {
	mesh := []hpa.Real{hpa.NewRealPrec(0, testPrec), hpa.NewRealPrec(1, testPrec)}
	numLocalPoly := 3

	raw := make([]hpa.Real, numLocalPoly)
	for i := range raw {
		raw[i] = hpa.NewRealPrec(0, testPrec)
	}
	raw[numLocalPoly-1] = hpa.NewRealPrec(10, testPrec) // large top coefficient forces a split

	derivAtLeft := legendreDerivAtLeft(numLocalPoly, testPrec)
	u, err := reconstructPoly(raw, mesh, numLocalPoly, derivAtLeft)
	require.NoError(t, err)

	tiny := hpa.NewRealPrec(1e-12, testPrec)
	triplets := []triplet{{sigma: hpa.NewRealPrec(1, testPrec), u: u, v: u, uRaw: raw, vRaw: raw}}

	newMesh, split := refineMesh(mesh, triplets, true, tiny, numLocalPoly)
	assert.True(t, split)
	assert.Greater(t, len(newMesh), len(mesh))
}

func TestRefineMeshLeavesSmallResidualUnsplit(t *testing.T) {
	mesh := []hpa.Real{hpa.NewRealPrec(0, testPrec), hpa.NewRealPrec(1, testPrec)}
	numLocalPoly := 3

	raw := make([]hpa.Real, numLocalPoly)
	for i := range raw {
		raw[i] = hpa.NewRealPrec(0, testPrec)
	}
	raw[0] = hpa.NewRealPrec(1, testPrec)

	derivAtLeft := legendreDerivAtLeft(numLocalPoly, testPrec)
	u, err := reconstructPoly(raw, mesh, numLocalPoly, derivAtLeft)
	require.NoError(t, err)

	loose := hpa.NewRealPrec(1e3, testPrec)
	triplets := []triplet{{sigma: hpa.NewRealPrec(1, testPrec), u: u, v: u, uRaw: raw, vRaw: raw}}

	newMesh, split := refineMesh(mesh, triplets, true, loose, numLocalPoly)
	assert.False(t, split)
	assert.Equal(t, len(mesh), len(newMesh))
}
