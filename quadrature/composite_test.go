package quadrature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
)

func TestCompositeWeightsSumToMeshLength(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		mesh := []hpa.Real{
			hpa.NewRealPrec(-1, testPrec),
			hpa.NewRealPrec(0, testPrec),
			hpa.NewRealPrec(0.5, testPrec),
			hpa.NewRealPrec(1, testPrec),
		}
		local, err := GaussLegendre(6)
		require.NoError(t, err)

		nodes := Composite(mesh, local)
		require.Len(t, nodes, len(local)*3)

		sum := hpa.NewRealPrec(0, testPrec)
		for _, n := range nodes {
			sum = sum.Add(n.W)
		}
		diff := sum.Sub(mesh[3].Sub(mesh[0])).Abs().Float64()
		assert.LessOrEqual(t, diff, 1e-20)
	})
}

func TestCompositeNodesStayWithinSections(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		mesh := []hpa.Real{
			hpa.NewRealPrec(0, testPrec),
			hpa.NewRealPrec(0.25, testPrec),
			hpa.NewRealPrec(1, testPrec),
		}
		local, err := GaussLegendre(4)
		require.NoError(t, err)
		nodes := Composite(mesh, local)
		for i, n := range nodes {
			section := i / len(local)
			assert.True(t, n.X.GreaterEqual(mesh[section]))
			assert.True(t, n.X.LessEqual(mesh[section+1]))
		}
	})
}
