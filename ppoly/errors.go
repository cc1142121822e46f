package ppoly

import (
	"errors"

	"github.com/irfit/irbasis-go/irerr"
)

// Sentinel errors for package ppoly, following the per-package errors.go
// convention of katalvlaran/lvlath's matrix/errors.go.
var (
	// ErrOutOfDomain is returned by Value/Derivative when x falls outside
	// the polynomial's mesh.
	ErrOutOfDomain = errors.New("ppoly: x outside mesh domain")

	// ErrMeshMismatch is returned by Add/Sub/Overlap/Multiply when the two
	// operands do not share identical break-points.
	ErrMeshMismatch = errors.New("ppoly: operands have different mesh break-points")

	// ErrInvalidMesh is returned when a mesh is not strictly increasing or
	// has fewer than two break-points.
	ErrInvalidMesh = errors.New("ppoly: mesh must be strictly increasing with at least two break-points")

	// ErrShapeMismatch is returned when a coefficient matrix's shape does
	// not match (num_sections, order+1).
	ErrShapeMismatch = errors.New("ppoly: coefficient shape does not match mesh/order")

	// ErrParseFailed is returned by ParseText on malformed input.
	ErrParseFailed = errors.New("ppoly: failed to parse serialized polynomial")
)

func init() {
	irerr.Register(ErrOutOfDomain, irerr.OutOfDomain)
	irerr.Register(ErrMeshMismatch, irerr.MeshMismatch)
	irerr.Register(ErrInvalidMesh, irerr.InvalidArgument)
	irerr.Register(ErrShapeMismatch, irerr.InvalidArgument)
	irerr.Register(ErrParseFailed, irerr.Io)
}
