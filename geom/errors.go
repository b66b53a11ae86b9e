package geom

import "github.com/pkg/errors"

// ConstructionError is the panic payload raised for inputs a constructor
// cannot make sense of under any tolerance — a NaN coordinate, currently
// the only such case — as opposed to NewSegment's ordinary ok=false
// path for a horizontal pair, which is an expected outcome a caller is
// meant to handle. Threading this up through every caller as a second
// error return would add a return value to every geometric constructor
// for a condition that should never occur on well-formed input; instead
// it panics, grounded on triangulate's throw-then-recover-at-the-public-
// boundary convention (internal/throw.go's TriangulateError).
type ConstructionError struct{ error }

// throwf panics with a ConstructionError built from format and args.
func throwf(format string, args ...interface{}) {
	panic(ConstructionError{errors.Errorf(format, args...)})
}

// Recover converts a panicking ConstructionError captured by a deferred
// recover() into a plain error. Any other panic value is re-raised,
// matching triangulate's HandleTriangulatePanicRecover.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(ConstructionError); ok {
		return err
	}
	panic(r)
}
