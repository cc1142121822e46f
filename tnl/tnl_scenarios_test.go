package tnl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/irbasis"
	"github.com/irfit/irbasis-go/kernel"
)

// TestScenarioTnlFermionicLambda10 computes Tnl of a fermionic
// Lambda=10 basis at n_vec=[0,1,10,100,1000] and checks the leading-order
// asymptotic identity
//
//	|Tnl(1000,0)| * (2*1000+1)*pi == sqrt(2) * u0(1) * (1 - sign_s*1)
//
// on the n=1000 entry, whichever branch produced it. sign_s = -1 for
// fermions here, so the right-hand side is 2*sqrt(2)*u0(1); the 1e-2
// relative tolerance leaves room for the higher-order terms of the
// series (see DESIGN.md).
func TestScenarioTnlFermionicLambda10(t *testing.T) {
	lambda := hpa.NewRealPrec(10, testPrec)
	opts := irbasis.DefaultOptions(testPrec)
	opts.MaxDim = 30
	bs, err := irbasis.Compute(kernel.NewFermionic(lambda), opts)
	require.NoError(t, err)

	nVec := []int{0, 1, 10, 100, 1000}
	m, err := Compute(bs, nVec)
	require.NoError(t, err)

	u0, err := bs.HalfU(0)
	require.NoError(t, err)
	one := hpa.NewRealPrec(1, testPrec)
	u0At1, err := u0.Value(one)
	require.NoError(t, err)

	signS := signStatistic(true, testPrec)
	rhs := hpa.Sqrt(hpa.NewRealPrec(2, testPrec)).Mul(u0At1).Mul(hpa.NewRealPrec(1, testPrec).Sub(signS))

	tnl1000_0 := m.At(4, 0)
	twoNPlus1Pi := hpa.NewRealPrec(float64(2*1000+1), testPrec).Mul(hpa.Pi(testPrec))
	lhs := tnl1000_0.Abs().Mul(twoNPlus1Pi)

	diff := lhs.Sub(rhs).Abs().Float64()
	scale := rhs.Abs().Float64()
	if scale < 1 {
		scale = 1
	}
	assert.LessOrEqual(t, diff/scale, 1e-2)
}
