package hpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixSetGetRowCol(t *testing.T) {
	m := NewMatrix(2, 3, testPrec)
	m.Set(0, 0, NewRealPrec(1, testPrec))
	m.Set(0, 1, NewRealPrec(2, testPrec))
	m.Set(1, 2, NewRealPrec(9, testPrec))

	assert.Equal(t, float64(1), m.At(0, 0).Float64())
	assert.Equal(t, float64(9), m.At(1, 2).Float64())

	row := m.Row(0)
	assert.Equal(t, float64(2), row[1].Float64())

	col := m.Col(2)
	assert.Equal(t, float64(9), col[1].Float64())
}

func TestMatrixMulIdentity(t *testing.T) {
	a := NewMatrix(2, 2, testPrec)
	a.Set(0, 0, NewRealPrec(1, testPrec))
	a.Set(0, 1, NewRealPrec(2, testPrec))
	a.Set(1, 0, NewRealPrec(3, testPrec))
	a.Set(1, 1, NewRealPrec(4, testPrec))

	id := NewMatrix(2, 2, testPrec)
	id.Set(0, 0, NewRealPrec(1, testPrec))
	id.Set(1, 1, NewRealPrec(1, testPrec))

	prod := a.Mul(id)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.True(t, prod.At(i, j).Equal(a.At(i, j)))
		}
	}
}

func TestMatrixTranspose(t *testing.T) {
	a := NewMatrix(2, 3, testPrec)
	a.Set(0, 2, NewRealPrec(7, testPrec))
	at := a.Transpose()
	r, c := at.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, float64(7), at.At(2, 0).Float64())
}

func TestMatrixSetBlock(t *testing.T) {
	dst := NewMatrix(4, 4, testPrec)
	src := NewMatrix(2, 2, testPrec)
	src.Set(0, 0, NewRealPrec(1, testPrec))
	src.Set(1, 1, NewRealPrec(1, testPrec))
	dst.SetBlock(1, 1, src)
	assert.Equal(t, float64(1), dst.At(1, 1).Float64())
	assert.Equal(t, float64(1), dst.At(2, 2).Float64())
	assert.Equal(t, float64(0), dst.At(0, 0).Float64())
}

func TestMatrixColNorm(t *testing.T) {
	a := NewMatrix(2, 1, testPrec)
	a.Set(0, 0, NewRealPrec(3, testPrec))
	a.Set(1, 0, NewRealPrec(4, testPrec))
	closeEnough(t, a.ColNorm(0), 5, 1e-25)
}

func TestSVDReconstructsMatrix(t *testing.T) {
	a := NewMatrix(3, 2, testPrec)
	vals := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	for i, row := range vals {
		for j, v := range row {
			a.Set(i, j, NewRealPrec(v, testPrec))
		}
	}

	U, S, V, err := a.SVD()
	require.NoError(t, err)
	require.Len(t, S, 2)
	assert.True(t, S[0].GreaterEqual(S[1]), "singular values must be non-increasing")

	// Reconstruct A = U * diag(S) * V^T and compare entrywise.
	sigma := NewMatrix(2, 2, testPrec)
	sigma.Set(0, 0, S[0])
	sigma.Set(1, 1, S[1])
	recon := U.Mul(sigma).Mul(V.Transpose())

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			diff := recon.At(i, j).Sub(a.At(i, j)).Abs().Float64()
			assert.LessOrEqual(t, diff, 1e-20, "entry (%d,%d)", i, j)
		}
	}
}

func TestSVDWideMatrixTransposesInternally(t *testing.T) {
	a := NewMatrix(2, 3, testPrec)
	vals := [][]float64{{1, 0, 0}, {0, 2, 0}}
	for i, row := range vals {
		for j, v := range row {
			a.Set(i, j, NewRealPrec(v, testPrec))
		}
	}
	_, S, _, err := a.SVD()
	require.NoError(t, err)
	require.Len(t, S, 2)
	closeEnough(t, S[0], 2, 1e-20)
	closeEnough(t, S[1], 1, 1e-20)
}
