package hpa

// ComplexMatrix is a dense matrix of Complex values, the output type of
// package tnl's Compute / ComputeTbarOl: a dense complex matrix of
// shape (|n_vec|, L).
type ComplexMatrix struct {
	rows, cols int
	data       []Complex
}

func NewComplexMatrix(r, c int) *ComplexMatrix {
	return &ComplexMatrix{rows: r, cols: c, data: make([]Complex, r*c)}
}

func (m *ComplexMatrix) Dims() (int, int) { return m.rows, m.cols }

func (m *ComplexMatrix) At(i, j int) Complex { return m.data[i*m.cols+j] }

func (m *ComplexMatrix) Set(i, j int, v Complex) { m.data[i*m.cols+j] = v }
