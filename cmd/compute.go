/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/irbasis"
	"github.com/irfit/irbasis-go/kernel"
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the IR basis of a fermionic or bosonic kernel",
	Long: `
compute discretizes the analytic-continuation kernel K(x,y) at the
requested precision, assembles its even/odd Legendre-Galerkin matrix on
an adaptively refined mesh, and writes the resulting basis set.

irbasisctl compute --statistics=fermionic --lambda=10 --max-dim=30 --cutoff=1e-10 --out=basis.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statistics, _ := cmd.Flags().GetString("statistics")
		lambda, _ := cmd.Flags().GetFloat64("lambda")
		maxDim, _ := cmd.Flags().GetInt("max-dim")
		cutoff, _ := cmd.Flags().GetFloat64("cutoff")
		nBootstrap, _ := cmd.Flags().GetInt("n-bootstrap")
		rTol, _ := cmd.Flags().GetFloat64("r-tol")
		numLocalPoly, _ := cmd.Flags().GetInt("n-p")
		numNodesGL, _ := cmd.Flags().GetInt("n-q")
		verbose, _ := cmd.Flags().GetBool("verbose")
		out, _ := cmd.Flags().GetString("out")

		var err error
		hpa.WithPrec(precisionBits, func() {
			var k kernel.Kernel
			lam := hpa.NewRealPrec(lambda, precisionBits)
			switch statistics {
			case "fermionic":
				k = kernel.NewFermionic(lam)
			case "bosonic":
				k = kernel.NewBosonic(lam)
			default:
				err = fmt.Errorf("compute: unknown --statistics %q (want fermionic or bosonic)", statistics)
				return
			}

			opts := irbasis.DefaultOptions(precisionBits)
			opts.MaxDim = maxDim
			opts.Cutoff = hpa.NewRealPrec(cutoff, precisionBits)
			opts.NBootstrap = nBootstrap
			opts.RTol = hpa.NewRealPrec(rTol, precisionBits)
			opts.NumLocalPoly = numLocalPoly
			opts.NumNodesGL = numNodesGL
			opts.Verbose = verbose

			var bs *irbasis.BasisSet
			bs, err = irbasis.Compute(k, opts)
			if err != nil {
				return
			}

			f, ferr := os.Create(out)
			if ferr != nil {
				err = ferr
				return
			}
			defer f.Close()
			err = irbasis.SaveBasisSet(f, bs)
			if err == nil {
				fmt.Fprintf(os.Stderr, "wrote basis of dimension %d to %s\n", bs.Dim(), out)
			}
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().String("statistics", "fermionic", "fermionic or bosonic")
	computeCmd.Flags().Float64("lambda", 10, "dimensionless coupling Lambda")
	computeCmd.Flags().Int("max-dim", -1, "cap on admitted basis functions (-1 = unbounded)")
	computeCmd.Flags().Float64("cutoff", 1e-12, "relative singular-value cutoff")
	computeCmd.Flags().Int("n-bootstrap", 101, "bootstrap discretization size")
	computeCmd.Flags().Float64("r-tol", 1e-8, "adaptive mesh refinement tolerance")
	computeCmd.Flags().Int("n-p", 10, "local Legendre polynomials per section")
	computeCmd.Flags().Int("n-q", 24, "Gauss-Legendre nodes per section")
	computeCmd.Flags().Bool("verbose", false, "log refinement progress")
	computeCmd.Flags().String("out", "basis.txt", "output basis file")
}
