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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/irbasis"
	_ "github.com/irfit/irbasis-go/tnl"
)

// tnlCmd represents the tnl command
var tnlCmd = &cobra.Command{
	Use:   "tnl",
	Short: "Evaluate the Matsubara-frequency transform of a basis set",
	Long: `
tnl loads a basis set written by "irbasisctl compute" and evaluates its
Matsubara-frequency transform Tnl at the requested integer frequencies.

irbasisctl tnl --basis=basis.txt --n=0,1,10,100,1000 --out=tnl.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		basisPath, _ := cmd.Flags().GetString("basis")
		nFlag, _ := cmd.Flags().GetString("n")
		out, _ := cmd.Flags().GetString("out")

		nVec, err := parseIntList(nFlag)
		if err != nil {
			return fmt.Errorf("tnl: --n: %w", err)
		}

		f, err := os.Open(basisPath)
		if err != nil {
			return err
		}
		defer f.Close()
		bs, err := irbasis.LoadBasisSet(f)
		if err != nil {
			return err
		}

		m, err := bs.ComputeTnl(nVec)
		if err != nil {
			return err
		}

		outFile, err := os.Create(out)
		if err != nil {
			return err
		}
		defer outFile.Close()
		if err := writeComplexMatrix(outFile, nVec, m); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote Tnl matrix (%d frequencies x %d basis functions) to %s\n", len(nVec), bs.Dim(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tnlCmd)
	tnlCmd.Flags().String("basis", "", "basis file written by `compute --out`")
	tnlCmd.Flags().String("n", "", "comma-separated ascending Matsubara indices, e.g. 0,1,10,100,1000")
	tnlCmd.Flags().String("out", "tnl.txt", "output Tnl matrix file")
	tnlCmd.MarkFlagRequired("basis")
	tnlCmd.MarkFlagRequired("n")
}

func parseIntList(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// writeComplexMatrix writes one "n l re im" line per (frequency, basis
// index) pair, row-major, the plain-text sibling of SaveBasisSet.
func writeComplexMatrix(w *os.File, nVec []int, m *hpa.ComplexMatrix) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.Dims()
	digits := 17
	for i := 0; i < rows; i++ {
		for l := 0; l < cols; l++ {
			v := m.At(i, l)
			fmt.Fprintf(bw, "%d %d %s %s\n", nVec[i], l, v.Re.Text('g', digits), v.Im.Text('g', digits))
		}
	}
	return bw.Flush()
}
