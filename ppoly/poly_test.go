package ppoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfit/irbasis-go/hpa"
)

const testPrec = 128

func r(f float64) hpa.Real { return hpa.NewRealPrec(f, testPrec) }

func linearPoly(t *testing.T) *Poly {
	t.Helper()
	mesh := []hpa.Real{r(0), r(1), r(2)}
	coeff := [][]hpa.Real{
		{r(1), r(2)}, // section 0: 1 + 2*(x-0)
		{r(3), r(4)}, // section 1: 3 + 4*(x-1)
	}
	p, err := New(mesh, coeff)
	require.NoError(t, err)
	return p
}

func TestNewRejectsBadMeshAndShape(t *testing.T) {
	_, err := New([]hpa.Real{r(0)}, [][]hpa.Real{{r(1)}})
	assert.ErrorIs(t, err, ErrInvalidMesh)

	_, err = New([]hpa.Real{r(1), r(0)}, [][]hpa.Real{{r(1)}})
	assert.ErrorIs(t, err, ErrInvalidMesh)

	_, err = New([]hpa.Real{r(0), r(1), r(2)}, [][]hpa.Real{{r(1)}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestValueWithinSections(t *testing.T) {
	p := linearPoly(t)
	v, err := p.Value(r(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v.Float64(), 1e-12) // 1 + 2*0.5

	v, err = p.Value(r(1.5))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v.Float64(), 1e-12) // 3 + 4*0.5
}

func TestValueOutOfDomain(t *testing.T) {
	p := linearPoly(t)
	_, err := p.Value(r(2.1))
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = p.Value(r(-0.1))
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestFindSectionBoundaryConvention(t *testing.T) {
	p := linearPoly(t)
	assert.Equal(t, 0, p.FindSection(r(0)))
	assert.Equal(t, 1, p.FindSection(r(2)))
	assert.Equal(t, 0, p.FindSection(r(0.999)))
	assert.Equal(t, 1, p.FindSection(r(1)))
}

func TestDerivativeLinear(t *testing.T) {
	p := linearPoly(t)
	d, err := p.Derivative(r(0.5), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d.Float64(), 1e-12)

	d2, err := p.Derivative(r(0.5), 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d2.Float64(), 1e-12)
}

func TestEqual(t *testing.T) {
	a := linearPoly(t)
	b := linearPoly(t)
	assert.True(t, a.Equal(b))

	mesh := []hpa.Real{r(0), r(1), r(2)}
	coeff := [][]hpa.Real{{r(9), r(2)}, {r(3), r(4)}}
	c, err := New(mesh, coeff)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestZeroIsZeroEverywhere(t *testing.T) {
	mesh := []hpa.Real{r(0), r(1)}
	z, err := Zero(mesh, 3)
	require.NoError(t, err)
	v, err := z.Value(r(0.5))
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}
