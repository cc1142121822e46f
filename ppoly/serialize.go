package ppoly

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/irfit/irbasis-go/hpa"
)

// MarshalText renders f in a persisted text format: precision,
// order, number of sections, then the break-points, then the
// coefficients in section-major order, one token per line, each real
// value printed at bits2digits(precision) decimal digits.
func (f *Poly) MarshalText() (string, error) {
	prec := hpa.CurrentPrec()
	if len(f.mesh) > 0 {
		prec = f.mesh[0].Prec()
	}
	digits := hpa.Bits2Digits(prec)
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", prec)
	fmt.Fprintf(&b, "%d\n", f.order)
	fmt.Fprintf(&b, "%d\n", f.NumSections())
	for _, x := range f.mesh {
		writeReal(&b, x, digits)
	}
	for s := 0; s < f.NumSections(); s++ {
		for p := 0; p <= f.order; p++ {
			writeReal(&b, f.coeff[s][p], digits)
		}
	}
	return b.String(), nil
}

func writeReal(b *strings.Builder, x hpa.Real, digits int) {
	fmt.Fprintf(b, "%s\n", x.Text('g', digits))
}

// ParseText parses the format written by MarshalText into a Poly. On
// malformed input it returns ErrParseFailed.
func ParseText(r io.Reader) (*Poly, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	readInt := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return 0, false
		}
		return v, true
	}
	readReal := func(prec uint) (hpa.Real, bool) {
		if !sc.Scan() {
			return hpa.Real{}, false
		}
		v, err := hpa.ParseReal(strings.TrimSpace(sc.Text()), prec)
		if err != nil {
			return hpa.Real{}, false
		}
		return v, true
	}

	precInt, ok := readInt()
	if !ok || precInt <= 0 {
		return nil, ErrParseFailed
	}
	prec := uint(precInt)
	order, ok := readInt()
	if !ok || order < 0 {
		return nil, ErrParseFailed
	}
	nSections, ok := readInt()
	if !ok || nSections < 1 {
		return nil, ErrParseFailed
	}
	mesh := make([]hpa.Real, nSections+1)
	for i := range mesh {
		v, ok := readReal(prec)
		if !ok {
			return nil, ErrParseFailed
		}
		mesh[i] = v
	}
	coeff := make([][]hpa.Real, nSections)
	for s := 0; s < nSections; s++ {
		row := make([]hpa.Real, order+1)
		for p := 0; p <= order; p++ {
			v, ok := readReal(prec)
			if !ok {
				return nil, ErrParseFailed
			}
			row[p] = v
		}
		coeff[s] = row
	}
	poly, err := New(mesh, coeff)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return poly, nil
}
