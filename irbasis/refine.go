package irbasis

import "github.com/irfit/irbasis-go/hpa"

// refineMesh estimates the per-section coefficient residual of the
// highest-index admitted triplet (the magnitude of the highest
// Legendre coefficient) against a_tol = r_tol * |u_L(1)| (or, for the
// y-mesh, r_tol * max(|v_L(0)|, |v_L(1)|)), and inserts a mid-point
// into every section whose residual exceeds it. It reports whether any
// section was split.
//
// No integral-equation residual (max_x |u_l(x) - s_l^-1 ∫ K(x,y)
// v_l(y) dy|) is computed or reported, here or elsewhere in the
// package: only the coefficient residual below is computed, and only it
// changes the mesh.
func refineMesh(mesh []hpa.Real, triplets []triplet, isX bool, rTol hpa.Real, numLocalPoly int) ([]hpa.Real, bool) {
	if len(triplets) == 0 {
		return mesh, false
	}
	last := triplets[len(triplets)-1]
	var raw []hpa.Real
	var poly interface {
		Value(hpa.Real) (hpa.Real, error)
	}
	if isX {
		raw = last.uRaw
		poly = last.u
	} else {
		raw = last.vRaw
		poly = last.v
	}

	prec := mesh[0].Prec()
	var aTol hpa.Real
	if isX {
		vEnd, _ := poly.Value(mesh[len(mesh)-1])
		aTol = rTol.Mul(vEnd.Abs())
	} else {
		v0, _ := poly.Value(mesh[0])
		v1, _ := poly.Value(mesh[len(mesh)-1])
		aTol = rTol.Mul(hpa.Max(v0.Abs(), v1.Abs()))
	}

	nSections := len(mesh) - 1
	highestOrderNorm := hpa.Sqrt(hpa.NewRealPrec(float64(2*(numLocalPoly-1)+1), prec))
	needsSplit := make([]bool, nSections)
	any := false
	for s := 0; s < nSections; s++ {
		dx := mesh[s+1].Sub(mesh[s])
		coefResidual := raw[s*numLocalPoly+numLocalPoly-1].Abs().Mul(highestOrderNorm).Quo(hpa.Sqrt(dx))
		if coefResidual.Greater(aTol) {
			needsSplit[s] = true
			any = true
		}
	}
	if !any {
		return mesh, false
	}

	half := hpa.NewRealPrec(0.5, prec)
	newMesh := make([]hpa.Real, 0, len(mesh)+nSections)
	newMesh = append(newMesh, mesh[0])
	for s := 0; s < nSections; s++ {
		if needsSplit[s] {
			mid := mesh[s].Add(mesh[s+1]).Mul(half)
			newMesh = append(newMesh, mid)
		}
		newMesh = append(newMesh, mesh[s+1])
	}
	return newMesh, true
}
