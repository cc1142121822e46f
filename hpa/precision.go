// Package hpa supplies arbitrary-precision real and complex scalars, small
// dense matrices over them, and a Jacobi-rotation singular value
// decomposition. All values are backed by math/big.Float; no third-party
// arbitrary-precision or SVD library exists anywhere in the retrieved
// example corpus, so the elementary functions and the SVD below are
// implemented directly against math/big (see DESIGN.md).
package hpa

// DefaultPrecBits is the precision used when no WithPrec scope is active.
const DefaultPrecBits uint = 128

// precStack implements scoped precision: WithPrec pushes a working
// precision for the duration of a callback. The core is single-threaded
// and synchronous, so this stack is not protected by a mutex, on the
// same terms the quadrature memoisation cache in package quadrature is
// not.
var precStack = []uint{DefaultPrecBits}

// CurrentPrec returns the precision, in bits, that new values default to.
func CurrentPrec() uint {
	return precStack[len(precStack)-1]
}

// WithPrec runs fn with the default precision temporarily set to p bits.
// The previous default is restored on every exit path of fn, including a
// panic unwinding through it, because the pop is deferred immediately
// after the push.
func WithPrec(p uint, fn func()) {
	precStack = append(precStack, p)
	defer func() {
		precStack = precStack[:len(precStack)-1]
	}()
	fn()
}

// bits2digits mirrors the reference source's mpfr::bits2digits: the number
// of base-10 digits that can be faithfully round-tripped at the given bit
// precision, used by both the PPoly text format and by diagnostic
// logging.
func bits2digits(prec uint) int {
	// digits = prec * log10(2), plus one guard digit.
	d := int(float64(prec)*0.30102999566398119521373889472449) + 1
	if d < 1 {
		d = 1
	}
	return d
}

// Bits2Digits exports bits2digits for callers outside the package (the
// PPoly serializer in package ppoly and irbasis.SaveBasisSet).
func Bits2Digits(prec uint) int {
	return bits2digits(prec)
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
