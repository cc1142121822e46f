package irbasis

import (
	"log"
	"math"
	"os"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/kernel"
	"github.com/irfit/irbasis-go/ppoly"
)

// triplet is one admitted (singular value, u, v) in the interleaved
// even/odd sequence, carrying both the reconstructed
// piecewise polynomials and the raw SVD vectors the residual estimate
// needs.
type triplet struct {
	sigma  hpa.Real
	u, v   *ppoly.Poly
	uRaw   []hpa.Real
	vRaw   []hpa.Real
	isEven bool
}

// Compute builds the IR basis of k via even/odd kernel decomposition,
// Legendre-Galerkin matrix assembly, arbitrary-precision SVD, and
// adaptive mesh refinement.
func Compute(k kernel.Kernel, opts Options) (*BasisSet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := log.New(os.Stderr, "irbasis: ", 0)
	if !opts.Verbose {
		logger.SetOutput(ioDiscard{})
	}

	prec := k.Lambda().Prec()
	if prec == 0 {
		prec = hpa.CurrentPrec()
	}

	bootstrapPrec := uint(64)
	evalEven := func(x, y float64) float64 {
		xr := hpa.NewRealPrec(x, bootstrapPrec)
		yr := hpa.NewRealPrec(y, bootstrapPrec)
		lamK := withLambdaPrec(k, bootstrapPrec)
		return lamK.Eval(xr, yr).Add(lamK.Eval(xr, yr.Neg())).Float64()
	}
	dim := 30
	if opts.MaxDim > 0 && opts.MaxDim < dim {
		dim = opts.MaxDim
	}
	xBreaks, yBreaks := bootstrapMesh(evalEven, opts.NBootstrap, dim)
	meshX := buildMeshFromBreaks(xBreaks, prec)
	meshY := buildMeshFromBreaks(yBreaks, prec)

	lb, err := buildLegendreBasis(opts.NumLocalPoly, opts.NumNodesGL, prec)
	if err != nil {
		return nil, err
	}
	derivAtLeft := legendreDerivAtLeft(opts.NumLocalPoly, prec)

	maxDim := opts.MaxDim
	if maxDim <= 0 {
		maxDim = math.MaxInt32
	}

	var triplets []triplet
	for iter := 0; iter < maxRefinementIterations; iter++ {
		triplets, err = admitTriplets(k, meshX, meshY, lb, derivAtLeft, opts.Cutoff, maxDim)
		if err != nil {
			return nil, err
		}
		logger.Printf("iteration %d: dim=%d |meshX|=%d |meshY|=%d", iter, len(triplets), len(meshX), len(meshY))

		newMeshX, splitX := refineMesh(meshX, triplets, true, opts.RTol, opts.NumLocalPoly)
		newMeshY, splitY := refineMesh(meshY, triplets, false, opts.RTol, opts.NumLocalPoly)
		if !splitX && !splitY {
			return newBasisSet(k, triplets), nil
		}
		meshX, meshY = newMeshX, newMeshY
	}
	return nil, ErrRefinementStalled
}

// withLambdaPrec rewraps k at bootstrapPrec so the double-precision
// bootstrap step never forces arbitrary-precision arithmetic on Λ.
func withLambdaPrec(k kernel.Kernel, prec uint) kernel.Kernel {
	lam := k.Lambda().SetPrec(prec)
	if k.Statistics() == kernel.Bosonic {
		return kernel.NewBosonic(lam)
	}
	return kernel.NewFermionic(lam)
}

// admitTriplets assembles K_even/K_odd on the current mesh, SVDs each,
// and interleaves singular triplets by descending even/odd alternation
// (index l even draws from K_even, l odd from K_odd) until the relative
// cutoff or maxDim is reached.
func admitTriplets(k kernel.Kernel, meshX, meshY []hpa.Real, lb *legendreBasis, derivAtLeft [][]hpa.Real, cutoff hpa.Real, maxDim int) ([]triplet, error) {
	Me := assembleMatrix(evenKernel(k), meshX, meshY, lb)
	Mo := assembleMatrix(oddKernel(k), meshX, meshY, lb)
	Ue, Se, Ve, err := Me.SVD()
	if err != nil {
		return nil, err
	}
	Uo, So, Vo, err := Mo.SVD()
	if err != nil {
		return nil, err
	}
	if len(Se) == 0 {
		return nil, nil
	}
	s0 := Se[0]
	threshold := cutoff.Mul(s0)

	var out []triplet
	ie, io := 0, 0
	for l := 0; len(out) < maxDim; l++ {
		isEven := l%2 == 0
		var sigma hpa.Real
		var available bool
		if isEven {
			available = ie < len(Se)
			if available {
				sigma = Se[ie]
			}
		} else {
			available = io < len(So)
			if available {
				sigma = So[io]
			}
		}
		if !available || sigma.Less(threshold) {
			break
		}

		var uRaw, vRaw []hpa.Real
		if isEven {
			uRaw = Ue.Col(ie)
			vRaw = Ve.Col(ie)
			ie++
		} else {
			uRaw = Uo.Col(io)
			vRaw = Vo.Col(io)
			io++
		}
		u, err := reconstructPoly(uRaw, meshX, len(derivAtLeft), derivAtLeft)
		if err != nil {
			return nil, err
		}
		v, err := reconstructPoly(vRaw, meshY, len(derivAtLeft), derivAtLeft)
		if err != nil {
			return nil, err
		}
		u, v, err = applySignConvention(u, v, meshX)
		if err != nil {
			return nil, err
		}
		out = append(out, triplet{sigma: sigma, u: u, v: v, uRaw: uRaw, vRaw: vRaw, isEven: isEven})
	}

	for i := 1; i < len(out); i++ {
		if out[i].sigma.Greater(out[i-1].sigma) {
			return nil, ErrNonMonotoneSingularValues
		}
	}
	return out, nil
}

type ioDiscard struct{}

func (ioDiscard) Write(p []byte) (int, error) { return len(p), nil }
