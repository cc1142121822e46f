package irbasis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/kernel"
	"github.com/irfit/irbasis-go/ppoly"
)

func constHalfPoly(t *testing.T, c float64) *ppoly.Poly {
	t.Helper()
	mesh := []hpa.Real{hpa.NewRealPrec(0, testPrec), hpa.NewRealPrec(1, testPrec)}
	p, err := ppoly.New(mesh, [][]hpa.Real{{hpa.NewRealPrec(c, testPrec)}})
	require.NoError(t, err)
	return p
}

func sampleBasisSet(t *testing.T) *BasisSet {
	t.Helper()
	k := kernel.NewFermionic(hpa.NewRealPrec(10, testPrec))
	triplets := []triplet{
		{sigma: hpa.NewRealPrec(1.0, testPrec), u: constHalfPoly(t, 2), v: constHalfPoly(t, 3), isEven: true},
		{sigma: hpa.NewRealPrec(0.5, testPrec), u: constHalfPoly(t, 4), v: constHalfPoly(t, 5), isEven: false},
	}
	return newBasisSet(k, triplets)
}

func TestBasisSetDimAndSingularValue(t *testing.T) {
	bs := sampleBasisSet(t)
	assert.Equal(t, 2, bs.Dim())

	s0, err := bs.SingularValue(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s0.Float64())

	_, err = bs.SingularValue(2)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = bs.SingularValue(-1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestBasisSetStatisticsAndLambda(t *testing.T) {
	bs := sampleBasisSet(t)
	assert.Equal(t, kernel.Fermionic, bs.Statistics())
	assert.Equal(t, float64(10), bs.Lambda().Float64())
}

func TestBasisSetHalfUHalfVReturnRawHalfInterval(t *testing.T) {
	bs := sampleBasisSet(t)
	u, err := bs.HalfU(0)
	require.NoError(t, err)
	v0, err := u.Value(hpa.NewRealPrec(0.7, testPrec))
	require.NoError(t, err)
	assert.Equal(t, float64(2), v0.Float64())

	_, err = bs.HalfU(5)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	vv, err := bs.HalfV(0)
	require.NoError(t, err)
	v1, err := vv.Value(hpa.NewRealPrec(0.2, testPrec))
	require.NoError(t, err)
	assert.Equal(t, float64(3), v1.Float64())
}

func TestBasisSetUlxExtendsWithParity(t *testing.T) {
	bs := sampleBasisSet(t)
	// l=0 is even parity: u0(-x) == u0(x).
	u0, err := bs.Ulx(0)
	require.NoError(t, err)
	pos, err := u0.Value(hpa.NewRealPrec(0.3, testPrec))
	require.NoError(t, err)
	neg, err := u0.Value(hpa.NewRealPrec(-0.3, testPrec))
	require.NoError(t, err)
	assert.InDelta(t, pos.Float64(), neg.Float64(), 1e-20)

	// l=1 is odd parity: u1(-x) == -u1(x).
	u1, err := bs.Ulx(1)
	require.NoError(t, err)
	posOdd, err := u1.Value(hpa.NewRealPrec(0.3, testPrec))
	require.NoError(t, err)
	negOdd, err := u1.Value(hpa.NewRealPrec(-0.3, testPrec))
	require.NoError(t, err)
	assert.InDelta(t, posOdd.Float64(), -negOdd.Float64(), 1e-20)
}

func TestBasisSetValueAndValues(t *testing.T) {
	bs := sampleBasisSet(t)
	v, err := bs.Value(hpa.NewRealPrec(0.5, testPrec), 0)
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.Float64())

	vals, err := bs.Values(hpa.NewRealPrec(0.5, testPrec))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, float64(2), vals[0].Float64())
	assert.Equal(t, float64(4), vals[1].Float64())
}
