package tnl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/ppoly"
)

func TestTaylorExpIMatchesExactAtSmallTheta(t *testing.T) {
	theta := hpa.NewRealPrec(0.05, testPrec)
	got := taylorExpI(theta, taylorOrder)
	want := hpa.ExpI(theta)
	diff := got.Sub(want).Abs().Float64()
	assert.LessOrEqual(t, diff, 1e-20)
}

func TestHighFreqSectionRejectsZeroOmega(t *testing.T) {
	mesh := []hpa.Real{hpa.NewRealPrec(0, testPrec), hpa.NewRealPrec(1, testPrec)}
	u, err := ppoly.New(mesh, [][]hpa.Real{{hpa.NewRealPrec(1, testPrec)}})
	require.NoError(t, err)
	_, err = highFreqSection(u, 0, mesh[0], mesh[1], hpa.NewRealPrec(0, testPrec))
	assert.ErrorIs(t, err, ErrZeroFrequency)
}

func TestHighFreqSectionMatchesConstantMoment(t *testing.T) {
	// For a constant section u(x)=1, integral_{x0}^{x1} exp(i*omega*(x+1)) dx
	// = (e^{i*omega*(x1+1)} - e^{i*omega*(x0+1)}) / (i*omega).
	x0 := hpa.NewRealPrec(0, testPrec)
	x1 := hpa.NewRealPrec(1, testPrec)
	omega := hpa.NewRealPrec(500, testPrec)
	u, err := ppoly.New([]hpa.Real{x0, x1}, [][]hpa.Real{{hpa.NewRealPrec(1, testPrec)}})
	require.NoError(t, err)

	got, err := highFreqSection(u, 0, x0, x1, omega)
	require.NoError(t, err)

	one := hpa.NewRealPrec(1, testPrec)
	iOmega := hpa.NewComplex(hpa.NewRealPrec(0, testPrec), omega)
	phase1 := hpa.ExpI(omega.Mul(x1.Add(one)))
	phase0 := hpa.ExpI(omega.Mul(x0.Add(one)))
	want := phase1.Sub(phase0).Quo(iOmega)

	diff := got.Sub(want).Abs().Float64()
	assert.LessOrEqual(t, diff, 1e-15)
}

func TestRawIntegralLowAndHighBranchesReturnNonZero(t *testing.T) {
	mesh := []hpa.Real{hpa.NewRealPrec(0, testPrec), hpa.NewRealPrec(1, testPrec)}
	u, err := ppoly.New(mesh, [][]hpa.Real{{hpa.NewRealPrec(1, testPrec), hpa.NewRealPrec(0.3, testPrec)}})
	require.NoError(t, err)

	small := hpa.NewRealPrec(0.01, testPrec)
	val, err := rawIntegral(u, small)
	require.NoError(t, err)
	assert.False(t, val.Re.IsZero() && val.Im.IsZero())

	large := hpa.NewRealPrec(5000, testPrec)
	val2, err := rawIntegral(u, large)
	require.NoError(t, err)
	assert.False(t, val2.Re.IsZero() && val2.Im.IsZero())
}
