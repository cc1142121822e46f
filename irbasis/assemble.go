package irbasis

import (
	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/quadrature"
)

// kernelFunc is a bare (x,y) -> R callable, used to plug either the raw
// kernel or its even/odd combinations into the assembly routine below
// without giving assembleMatrix a dependency on package kernel.
type kernelFunc func(x, y hpa.Real) hpa.Real

// evenKernel returns K(x,y) + K(x,-y), the even part of k under y -> -y.
func evenKernel(k kernelEval) kernelFunc {
	return func(x, y hpa.Real) hpa.Real {
		return k.Eval(x, y).Add(k.Eval(x, y.Neg()))
	}
}

// oddKernel returns K(x,y) - K(x,-y), the odd part.
func oddKernel(k kernelEval) kernelFunc {
	return func(x, y hpa.Real) hpa.Real {
		return k.Eval(x, y).Sub(k.Eval(x, y.Neg()))
	}
}

// kernelEval is the single method of kernel.Kernel this package needs,
// kept narrow so assemble.go does not have to import package kernel
// directly for the evenKernel/oddKernel helpers.
type kernelEval interface {
	Eval(x, y hpa.Real) hpa.Real
}

// legendreBasis holds the local (mesh-independent) Gauss-Legendre nodes
// and the normalized-Legendre values/weights product used to build every
// per-section Φ block, computed once per (numLocalPoly, numNodesGL, prec)
// triple and shared across the whole refinement loop's matrix assemblies.
type legendreBasis struct {
	nodes []quadrature.Node // local GL rule on [-1,1]
	// phi[l][n] = P̃_l(ξ_n) * w_n, independent of section width.
	phi [][]hpa.Real
}

func buildLegendreBasis(numLocalPoly, numNodesGL int, prec uint) (*legendreBasis, error) {
	nodes, err := quadrature.GaussLegendre(numNodesGL)
	if err != nil {
		return nil, err
	}
	phi := make([][]hpa.Real, numLocalPoly)
	for l := 0; l < numLocalPoly; l++ {
		row := make([]hpa.Real, numNodesGL)
		for n, nd := range nodes {
			row[n] = quadrature.NormalizedLegendreP(l, nd.X).Mul(nd.W)
		}
		phi[l] = row
	}
	return &legendreBasis{nodes: nodes, phi: phi}, nil
}

// sectionBlock returns the (numLocalPoly x numNodesGL) Φ block for a
// section of width dx: Φ[l][n] = sqrt(2/dx) * P̃_l(ξ_n) * w_n.
func (lb *legendreBasis) sectionBlock(dx hpa.Real) *hpa.Matrix {
	prec := dx.Prec()
	nP := len(lb.phi)
	nQ := len(lb.nodes)
	scale := hpa.Sqrt(hpa.NewRealPrec(2, prec).Quo(dx))
	m := hpa.NewMatrix(nP, nQ, prec)
	for l := 0; l < nP; l++ {
		for n := 0; n < nQ; n++ {
			m.Set(l, n, scale.Mul(lb.phi[l][n]))
		}
	}
	return m
}

// assembleMatrix builds the full (len(meshX)-1)*nP x (len(meshY)-1)*nP
// block matrix Φ_x · K_nn · Φ_yᵀ, block by (sectionX, sectionY) pair
// so each block stays a small dense nP x nP product
// instead of materializing the full nQ-sized Knn matrix.
func assembleMatrix(kf kernelFunc, meshX, meshY []hpa.Real, lb *legendreBasis) *hpa.Matrix {
	prec := meshX[0].Prec()
	nP := len(lb.phi)
	nQ := len(lb.nodes)
	nSecX := len(meshX) - 1
	nSecY := len(meshY) - 1
	out := hpa.NewMatrix(nSecX*nP, nSecY*nP, prec)

	// The physical evaluation point of each local GL node, section by
	// section, is exactly quadrature.Composite's affine node mapping; the
	// weights it also returns go unused here since lb.phi already carries
	// the local weight and sectionBlock supplies the section's Jacobian.
	xComposite := quadrature.Composite(meshX, lb.nodes)
	yComposite := quadrature.Composite(meshY, lb.nodes)

	xBlocks := make([]*hpa.Matrix, nSecX)
	xPoints := make([][]hpa.Real, nSecX)
	for sx := 0; sx < nSecX; sx++ {
		dx := meshX[sx+1].Sub(meshX[sx])
		xBlocks[sx] = lb.sectionBlock(dx)
		pts := make([]hpa.Real, nQ)
		for n := 0; n < nQ; n++ {
			pts[n] = xComposite[sx*nQ+n].X
		}
		xPoints[sx] = pts
	}
	yBlocks := make([]*hpa.Matrix, nSecY)
	yPoints := make([][]hpa.Real, nSecY)
	for sy := 0; sy < nSecY; sy++ {
		dy := meshY[sy+1].Sub(meshY[sy])
		yBlocks[sy] = lb.sectionBlock(dy)
		pts := make([]hpa.Real, nQ)
		for n := 0; n < nQ; n++ {
			pts[n] = yComposite[sy*nQ+n].X
		}
		yPoints[sy] = pts
	}

	for sx := 0; sx < nSecX; sx++ {
		for sy := 0; sy < nSecY; sy++ {
			knn := hpa.NewMatrix(nQ, nQ, prec)
			for n := 0; n < nQ; n++ {
				for np := 0; np < nQ; np++ {
					knn.Set(n, np, kf(xPoints[sx][n], yPoints[sy][np]))
				}
			}
			block := xBlocks[sx].Mul(knn).Mul(yBlocks[sy].Transpose())
			out.SetBlock(sx*nP, sy*nP, block)
		}
	}
	return out
}
