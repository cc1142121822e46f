package quadrature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/irfit/irbasis-go/hpa"
)

func TestNormalizedLegendrePAtEndpoints(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		one := hpa.NewRealPrec(1, testPrec)
		negOne := hpa.NewRealPrec(-1, testPrec)
		for l := 0; l < 5; l++ {
			v := NormalizedLegendreP(l, one)
			// P_l(1) = 1 for the un-normalized polynomial; the normalized
			// value is sqrt((2l+1)/2).
			want := hpa.Sqrt(hpa.NewRealPrec(float64(2*l+1), testPrec).QuoInt(2))
			diff := v.Sub(want).Abs().Float64()
			assert.LessOrEqual(t, diff, 1e-20, "l=%d at x=1", l)

			vNeg := NormalizedLegendreP(l, negOne)
			sign := 1.0
			if l%2 == 1 {
				sign = -1.0
			}
			diffNeg := vNeg.Sub(want.MulInt(int(sign))).Abs().Float64()
			assert.LessOrEqual(t, diffNeg, 1e-20, "l=%d at x=-1", l)
		}
	})
}

func TestNormalizedLegendrePOrthonormal(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		nodes, err := GaussLegendre(24)
		if err != nil {
			t.Fatal(err)
		}
		for l := 0; l < 4; l++ {
			for m := 0; m < 4; m++ {
				acc := hpa.NewRealPrec(0, testPrec)
				for _, nd := range nodes {
					pl := NormalizedLegendreP(l, nd.X)
					pm := NormalizedLegendreP(m, nd.X)
					acc = acc.Add(pl.Mul(pm).Mul(nd.W))
				}
				want := 0.0
				if l == m {
					want = 1.0
				}
				diff := acc.Sub(hpa.NewRealPrec(want, testPrec)).Abs().Float64()
				assert.LessOrEqual(t, diff, 1e-15, "l=%d m=%d", l, m)
			}
		}
	})
}

func TestNormalizedLegendrePDerivativesMatchesFiniteDifference(t *testing.T) {
	hpa.WithPrec(testPrec, func() {
		x0 := hpa.NewRealPrec(0.3, testPrec)
		d := NormalizedLegendrePDerivatives(3, 2, x0)
		eps := hpa.NewRealPrec(1e-12, testPrec)
		plus := NormalizedLegendreP(3, x0.Add(eps))
		minus := NormalizedLegendreP(3, x0.Sub(eps))
		fd := plus.Sub(minus).Quo(eps.MulInt(2))
		diff := fd.Sub(d[1]).Abs().Float64()
		assert.LessOrEqual(t, diff, 1e-4)
	})
}
