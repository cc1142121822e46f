package tnl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/irbasis"
	"github.com/irfit/irbasis-go/kernel"
)

func smallBasis(t *testing.T, fermionic bool) *irbasis.BasisSet {
	t.Helper()
	lambda := hpa.NewRealPrec(10, testPrec)
	var k kernel.Kernel
	if fermionic {
		k = kernel.NewFermionic(lambda)
	} else {
		k = kernel.NewBosonic(lambda)
	}
	opts := irbasis.DefaultOptions(testPrec)
	opts.MaxDim = 6
	opts.NBootstrap = 31
	opts.NumLocalPoly = 4
	opts.NumNodesGL = 12
	bs, err := irbasis.Compute(k, opts)
	require.NoError(t, err)
	return bs
}

func TestValidateAscendingRejectsNonAscending(t *testing.T) {
	assert.ErrorIs(t, validateAscending([]int{1, 1}, false), ErrFrequenciesNotAscending)
	assert.ErrorIs(t, validateAscending([]int{2, 1}, false), ErrFrequenciesNotAscending)
	assert.NoError(t, validateAscending([]int{0, 1, 10}, false))
}

func TestValidateAscendingRejectsNegativeWhenRequired(t *testing.T) {
	assert.ErrorIs(t, validateAscending([]int{-1, 0}, true), ErrNegativeFrequency)
	assert.NoError(t, validateAscending([]int{-1, 0}, false))
}

func TestComputeRejectsNonAscendingFrequencies(t *testing.T) {
	bs := smallBasis(t, true)
	_, err := Compute(bs, []int{1, 1})
	assert.ErrorIs(t, err, ErrFrequenciesNotAscending)
}

func TestComputeErrorsWhenTailTooShort(t *testing.T) {
	bs := smallBasis(t, true) // numLocalPoly=4 -> order 3 -> numTail=2 < 4
	_, err := Compute(bs, []int{0, 1})
	assert.ErrorIs(t, err, ErrTailTooShort)
}

func TestComputeProducesMatrixOfExpectedShape(t *testing.T) {
	lambda := hpa.NewRealPrec(10, testPrec)
	opts := irbasis.DefaultOptions(testPrec)
	opts.MaxDim = 6
	opts.NBootstrap = 31
	opts.NumLocalPoly = 10 // order 9, numTail == 4
	opts.NumNodesGL = 16
	bs, err := irbasis.Compute(kernel.NewFermionic(lambda), opts)
	require.NoError(t, err)

	nVec := []int{0, 1, 5}
	m, err := Compute(bs, nVec)
	require.NoError(t, err)
	rows, cols := m.Dims()
	assert.Equal(t, len(nVec), rows)
	assert.Equal(t, bs.Dim(), cols)
}

func TestComputeTbarOlRejectsNonAscending(t *testing.T) {
	lambda := hpa.NewRealPrec(10, testPrec)
	opts := irbasis.DefaultOptions(testPrec)
	opts.MaxDim = 6
	opts.NBootstrap = 31
	opts.NumLocalPoly = 10
	opts.NumNodesGL = 16
	bs, err := irbasis.Compute(kernel.NewFermionic(lambda), opts)
	require.NoError(t, err)

	// o_vec is allowed to be negative on the raw-frequency entry point,
	// so validateAscending is never given requireNonNegative here; only
	// ascending order is enforced.
	_, err = ComputeTbarOl(bs, []int{3, 1})
	assert.ErrorIs(t, err, ErrFrequenciesNotAscending)
}
