package quadrature

import (
	"errors"

	"github.com/irfit/irbasis-go/irerr"
)

// ErrInvalidNodeCount is returned when gauss_legendre(n) is asked for a
// non-positive number of nodes.
var ErrInvalidNodeCount = errors.New("quadrature: node count must be positive")

func init() {
	irerr.Register(ErrInvalidNodeCount, irerr.InvalidArgument)
}
