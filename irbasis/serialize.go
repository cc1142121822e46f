package irbasis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/irfit/irbasis-go/hpa"
	"github.com/irfit/irbasis-go/kernel"
	"github.com/irfit/irbasis-go/ppoly"
)

// recordSep separates the per-triplet blocks written by SaveBasisSet.
// LoadBasisSet reads the whole file into memory and splits on this
// marker before handing each chunk to ppoly.ParseText, rather than
// calling ParseText repeatedly against one shared stream: ParseText's
// bufio.Scanner would read ahead past its own record's bytes on a live
// io.Reader, silently eating the next record.
const recordSep = "===\n"

// SaveBasisSet writes bs in the CLI's persisted basis format: kernel
// statistics and lambda, dimension, then one block per admitted triplet
// (singular value, u.MarshalText(), v.MarshalText()), used by
// `irbasisctl compute --out=...` and read back by `irbasisctl tnl
// --basis=...`.
func SaveBasisSet(w io.Writer, bs *BasisSet) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", bs.Statistics())
	prec := bs.Lambda().Prec()
	digits := hpa.Bits2Digits(prec)
	fmt.Fprintf(bw, "%s\n", bs.Lambda().Text('g', digits))
	fmt.Fprintf(bw, "%d\n", bs.Dim())
	for l := 0; l < bs.Dim(); l++ {
		fmt.Fprintf(bw, "%s\n", bs.s[l].Text('g', digits))
		fmt.Fprint(bw, recordSep)
		uText, err := bs.u[l].MarshalText()
		if err != nil {
			return err
		}
		fmt.Fprint(bw, uText)
		fmt.Fprint(bw, recordSep)
		vText, err := bs.v[l].MarshalText()
		if err != nil {
			return err
		}
		fmt.Fprint(bw, vText)
		fmt.Fprint(bw, recordSep)
	}
	return bw.Flush()
}

// LoadBasisSet reads the format written by SaveBasisSet.
func LoadBasisSet(r io.Reader) (*BasisSet, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.SplitN(string(all), "\n", 4)
	if len(lines) < 4 {
		return nil, ErrParseFailed
	}
	statText, lambdaText, dimText, rest := lines[0], lines[1], lines[2], lines[3]

	dim, err := strconv.Atoi(strings.TrimSpace(dimText))
	if err != nil || dim < 0 {
		return nil, ErrParseFailed
	}

	blocks := strings.Split(rest, recordSep)
	// each triplet contributes 3 blocks (sigma, u, v), plus one trailing
	// empty block from the final separator.
	if len(blocks) < 3*dim {
		return nil, ErrParseFailed
	}

	prec := uint(64)
	if u, err := ppoly.ParseText(strings.NewReader(blockOrEmpty(blocks, 1))); err == nil {
		prec = u.Mesh()[0].Prec()
	}
	lambda, err := hpa.ParseReal(strings.TrimSpace(lambdaText), prec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	var k kernel.Kernel
	switch strings.TrimSpace(statText) {
	case kernel.Fermionic.String():
		k = kernel.NewFermionic(lambda)
	case kernel.Bosonic.String():
		k = kernel.NewBosonic(lambda)
	default:
		return nil, ErrParseFailed
	}

	bs := &BasisSet{kernel: k, s: make([]hpa.Real, dim), u: make([]*ppoly.Poly, dim), v: make([]*ppoly.Poly, dim)}
	for l := 0; l < dim; l++ {
		sigmaText := blocks[3*l]
		sigma, err := hpa.ParseReal(strings.TrimSpace(sigmaText), prec)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		u, err := ppoly.ParseText(strings.NewReader(blocks[3*l+1]))
		if err != nil {
			return nil, err
		}
		v, err := ppoly.ParseText(strings.NewReader(blocks[3*l+2]))
		if err != nil {
			return nil, err
		}
		bs.s[l] = sigma
		bs.u[l] = u
		bs.v[l] = v
	}
	return bs, nil
}

func blockOrEmpty(blocks []string, i int) string {
	if i < len(blocks) {
		return blocks[i]
	}
	return ""
}
