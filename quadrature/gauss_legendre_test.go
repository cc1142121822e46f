package quadrature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
)

const testPrec = 128

func TestGaussLegendreRejectsNonPositiveCount(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		_, err := GaussLegendre(0)
		assert.ErrorIs(t, err, ErrInvalidNodeCount)
		_, err = GaussLegendre(-3)
		assert.ErrorIs(t, err, ErrInvalidNodeCount)
	})
}

func TestGaussLegendreWeightsSumToTwo(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		nodes, err := GaussLegendre(8)
		require.NoError(t, err)
		sum := hpa.NewRealPrec(0, testPrec)
		for _, n := range nodes {
			sum = sum.Add(n.W)
		}
		diff := sum.Sub(hpa.NewRealPrec(2, testPrec)).Abs().Float64()
		assert.LessOrEqual(t, diff, 1e-25)
	})
}

func TestGaussLegendreNodesAreSymmetric(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		nodes, err := GaussLegendre(7)
		require.NoError(t, err)
		n := len(nodes)
		for i := 0; i < n; i++ {
			mirrorSum := nodes[i].X.Add(nodes[n-1-i].X).Abs().Float64()
			assert.LessOrEqual(t, mirrorSum, 1e-25)
		}
	})
}

func TestGaussLegendreIntegratesExactPolynomial(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		// degree-2n-1 exactness: integral of x^4 over [-1,1] is 2/5.
		nodes, err := GaussLegendre(3)
		require.NoError(t, err)
		sum := hpa.NewRealPrec(0, testPrec)
		for _, nd := range nodes {
			x4 := nd.X.Mul(nd.X).Mul(nd.X).Mul(nd.X)
			sum = sum.Add(x4.Mul(nd.W))
		}
		want := hpa.NewRealPrec(2, testPrec).QuoInt(5)
		diff := sum.Sub(want).Abs().Float64()
		assert.LessOrEqual(t, diff, 1e-20)
	})
}

func TestGaussLegendreCachesByPrecisionAndCount(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		a, err := GaussLegendre(5)
		require.NoError(t, err)
		b, err := GaussLegendre(5)
		require.NoError(t, err)
		require.Len(t, b, len(a))
		for i := range a {
			assert.True(t, a[i].X.Equal(b[i].X))
		}
	})
}
