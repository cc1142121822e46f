// Package irerr classifies the sentinel errors scattered across hpa,
// quadrature, ppoly, kernel, irbasis, and tnl into five error kinds, so
// a host application can branch on category (InvalidArgument vs
// NumericalFailure, etc.) without importing every leaf package's
// sentinels or string-matching error text.
package irerr

import "errors"

// Kind is one of the five error categories.
type Kind int

const (
	Unknown Kind = iota
	InvalidArgument
	OutOfDomain
	MeshMismatch
	NumericalFailure
	Io
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfDomain:
		return "OutOfDomain"
	case MeshMismatch:
		return "MeshMismatch"
	case NumericalFailure:
		return "NumericalFailure"
	case Io:
		return "Io"
	default:
		return "Unknown"
	}
}

// registry maps a sentinel error to its Kind. Leaf packages register
// their own sentinels in their init() via Register, so irerr never
// imports hpa/quadrature/ppoly/kernel/irbasis/tnl (which would create an
// import cycle back into irerr from irbasis/tnl).
var registry = map[error]Kind{}

// Register associates a sentinel error with its Kind. Intended to be
// called from a leaf package's init().
func Register(err error, kind Kind) {
	registry[err] = kind
}

// KindOf classifies err by walking the registry with errors.Is, so a
// wrapped error (fmt.Errorf("...: %w", sentinel)) still classifies
// correctly.
func KindOf(err error) Kind {
	for sentinel, kind := range registry {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return Unknown
}
