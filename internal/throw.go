package internal

import "github.com/pkg/errors"

// Threading errors through every step of a triangulation would clutter the
// clipping loop. Instead, we use panics, and the public API recovers to convert
// to an error.

// Raised when a polygon with more than three vertices has no ear. For a simple
// polygon this cannot happen, so it means the input was not simple or the
// classification state has been corrupted.
var ErrInvariantViolation = errors.New("invariant violation")

// Raised when a whole triangulation is requested for fewer than three points.
var ErrDegenerate = errors.New("degenerate polygon")

// Wrapper that marks a panic as one of ours. Anything else that panics (an out
// of range index, say) is a real bug and is re-panicked by the recover helper.
type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

func (e TriangulateError) Cause() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping the given sentinel.
func throw(sentinel error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(sentinel, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
