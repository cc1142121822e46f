package hpa

// Matrix is a dense matrix of Real values, row-major, grounded on the
// teacher's utils.Matrix (a thin wrapper carrying shape alongside raw
// data, see utils/matrix_extended.go's NewMatrix) but specialised here to
// arbitrary-precision Real instead of float64.
type Matrix struct {
	rows, cols int
	data       []Real
}

// NewMatrix allocates an r x c matrix of zeros at the given precision.
func NewMatrix(r, c int, prec uint) *Matrix {
	data := make([]Real, r*c)
	z := NewRealPrec(0, prec)
	for i := range data {
		data[i] = z
	}
	return &Matrix{rows: r, cols: c, data: data}
}

func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

func (m *Matrix) At(i, j int) Real { return m.data[i*m.cols+j] }

func (m *Matrix) Set(i, j int, v Real) { m.data[i*m.cols+j] = v }

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []Real {
	out := make([]Real, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.At(i, j)
	}
	return out
}

// SetCol overwrites column j.
func (m *Matrix) SetCol(j int, col []Real) {
	for i := 0; i < m.rows; i++ {
		m.Set(i, j, col[i])
	}
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []Real {
	out := make([]Real, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Copy returns an independent deep copy.
func (m *Matrix) Copy() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]Real, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Mul returns m * other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic("hpa: Mul dimension mismatch")
	}
	prec := CurrentPrec()
	if len(m.data) > 0 {
		prec = m.data[0].Prec()
	}
	out := NewMatrix(m.rows, other.cols, prec)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			acc := NewRealPrec(0, prec)
			for k := 0; k < m.cols; k++ {
				acc = acc.Add(m.At(i, k).Mul(other.At(k, j)))
			}
			out.Set(i, j, acc)
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	prec := CurrentPrec()
	if len(m.data) > 0 {
		prec = m.data[0].Prec()
	}
	out := NewMatrix(m.cols, m.rows, prec)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// SetBlock copies src into m starting at (rowOff, colOff), used by the
// Solver's block-matrix assembly.
func (m *Matrix) SetBlock(rowOff, colOff int, src *Matrix) {
	sr, sc := src.Dims()
	for i := 0; i < sr; i++ {
		for j := 0; j < sc; j++ {
			m.Set(rowOff+i, colOff+j, src.At(i, j))
		}
	}
}

// ColNorm returns the Euclidean norm of column j.
func (m *Matrix) ColNorm(j int) Real {
	acc := NewRealPrec(0, m.At(0, j).Prec())
	for i := 0; i < m.rows; i++ {
		v := m.At(i, j)
		acc = acc.Add(v.Mul(v))
	}
	return Sqrt(acc)
}
