package internal

import "github.com/pkg/errors"

// Threading errors through every predicate call during insertion and dual
// construction would add a lot of noise to the geometry code. Instead, the
// internals panic with a meshError, and the public API recovers to convert it
// back into an error.

var (
	// Three collinear vertices, so there is no circumcircle.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// A point fell exactly on a circumcircle, so cavity membership is ambiguous.
	ErrNumericalInstability = errors.New("numerical instability")
	// Too few points, duplicates, or a super-triangle that does not enclose
	// the input.
	ErrInvalidInput = errors.New("invalid input")
)

// Wraps errors raised by fatalf so that they can be told apart from genuine
// runtime panics during recovery.
type meshError struct {
	error
}

func (e meshError) Unwrap() error {
	return e.error
}

// Panic with a meshError wrapping the given sentinel.
func fatalf(kind error, format string, args ...interface{}) {
	panic(meshError{errors.Wrapf(kind, format, args...)})
}

// Panic with an already constructed error.
func throw(err error) {
	panic(meshError{err})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(meshError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
