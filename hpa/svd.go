package hpa

import "sort"

// maxJacobiSweeps bounds the one-sided Jacobi SVD iteration: a fixed
// cap rather than an unbounded loop. Non-convergence raises
// ErrSVDNonConvergent.
const maxJacobiSweeps = 60

// SVD computes the thin singular value decomposition of an m x n matrix
// A (m >= n) with M = U * diag(S) * V^T, S non-increasing, U and V
// column-orthonormal. It uses one-sided Jacobi rotation:
// the only SVD technique available at arbitrary precision, since no
// big.Float SVD exists anywhere in the retrieved corpus (see DESIGN.md).
// On non-convergence within maxJacobiSweeps sweeps it returns
// ErrSVDNonConvergent.
func (a *Matrix) SVD() (U *Matrix, S []Real, V *Matrix, err error) {
	m, n := a.Dims()
	if m < n {
		// Solve on the transpose and swap U/V, keeping the thin-SVD
		// contract (m >= n) without duplicating the rotation sweep.
		Ut, s, Vt, e := a.Transpose().SVD()
		return Vt, s, Ut, e
	}

	prec := CurrentPrec()
	if len(a.data) > 0 {
		prec = a.data[0].Prec()
	}
	// tolerance ~ 2^-(prec-8)
	tolFloat := 1.0
	for i := uint(0); i+8 < prec; i++ {
		tolFloat /= 2
	}
	tol := NewRealPrec(tolFloat, prec)

	W := a.Copy()
	Vm := NewMatrix(n, n, prec)
	for i := 0; i < n; i++ {
		Vm.Set(i, i, NewRealPrec(1, prec))
	}

	converged := false
	for sweep := 0; sweep < maxJacobiSweeps; sweep++ {
		maxOff := NewRealPrec(0, prec)
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				colP := W.Col(p)
				colQ := W.Col(q)
				alpha := dot(colP, colP)
				beta := dot(colQ, colQ)
				gamma := dot(colP, colQ)

				denom := Sqrt(alpha.Mul(beta))
				var ratio Real
				if denom.IsZero() {
					ratio = NewRealPrec(0, prec)
				} else {
					ratio = gamma.Abs().Quo(denom)
				}
				if ratio.Greater(maxOff) {
					maxOff = ratio
				}
				if ratio.Less(tol) {
					continue
				}

				c, s := jacobiRotation(alpha, beta, gamma, prec)
				rotateColumns(W, p, q, c, s)
				rotateColumns(Vm, p, q, c, s)
			}
		}
		if maxOff.Less(tol) {
			converged = true
			break
		}
	}
	if !converged {
		return nil, nil, nil, ErrSVDNonConvergent
	}

	sigmas := make([]Real, n)
	for j := 0; j < n; j++ {
		sigmas[j] = W.ColNorm(j)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return sigmas[order[i]].Greater(sigmas[order[j]]) })

	Uout := NewMatrix(m, n, prec)
	Vout := NewMatrix(n, n, prec)
	Sout := make([]Real, n)
	for newJ, oldJ := range order {
		sigma := sigmas[oldJ]
		Sout[newJ] = sigma
		col := W.Col(oldJ)
		if !sigma.IsZero() {
			for i := range col {
				col[i] = col[i].Quo(sigma)
			}
		}
		Uout.SetCol(newJ, col)
		Vout.SetCol(newJ, Vm.Col(oldJ))
	}
	return Uout, Sout, Vout, nil
}

func dot(a, b []Real) Real {
	prec := CurrentPrec()
	if len(a) > 0 {
		prec = a[0].Prec()
	}
	acc := NewRealPrec(0, prec)
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc
}

// jacobiRotation computes the cosine/sine of the Jacobi rotation angle
// that annihilates the (p,q) off-diagonal entry of A^T A, given the
// column inner products alpha = <p,p>, beta = <q,q>, gamma = <p,q>.
func jacobiRotation(alpha, beta, gamma Real, prec uint) (c, s Real) {
	two := NewRealPrec(2, prec)
	if gamma.IsZero() {
		return NewRealPrec(1, prec), NewRealPrec(0, prec)
	}
	zeta := beta.Sub(alpha).Quo(two.Mul(gamma))
	one := NewRealPrec(1, prec)
	denomInner := one.Add(zeta.Mul(zeta))
	sq := Sqrt(denomInner)
	var signZeta Real
	if zeta.Sign() < 0 {
		signZeta = NewRealPrec(-1, prec)
	} else {
		signZeta = NewRealPrec(1, prec)
	}
	t := signZeta.Quo(zeta.Abs().Add(sq))
	c = one.Quo(Sqrt(one.Add(t.Mul(t))))
	s = c.Mul(t)
	return c, s
}

// rotateColumns applies the 2x2 Jacobi rotation [[c,-s],[s,c]] to columns
// p and q of m in place.
func rotateColumns(m *Matrix, p, q int, c, s Real) {
	for i := 0; i < m.rows; i++ {
		vp := m.At(i, p)
		vq := m.At(i, q)
		np := c.Mul(vp).Sub(s.Mul(vq))
		nq := s.Mul(vp).Add(c.Mul(vq))
		m.Set(i, p, np)
		m.Set(i, q, nq)
	}
}
