package ndarray

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure returned by the engine wraps exactly one of these.
var (
	ErrAllocation       = errors.New("allocation failed")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrDtypeMismatch    = errors.New("dtype mismatch")
	ErrAxisOutOfRange   = errors.New("axis out of range")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnsupportedDtype = errors.New("unsupported dtype")
	ErrInvalidOperator  = errors.New("invalid operator")
	ErrRank             = errors.New("unsupported rank")
	ErrSampleSize       = errors.New("sample size exceeds rows")
	ErrIO               = errors.New("i/o error")
	ErrParse            = errors.New("parse error")
	ErrReleased         = errors.New("array has been released")
)

// OpError describes a failed operation.
type OpError struct {
	Op      string // Operation name (e.g., "add", "concat")
	Err     error  // One of the sentinel errors above
	Details string // Additional details
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Details)
}

// Unwrap returns the underlying sentinel error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Errorf builds an *OpError for op wrapping err.
func Errorf(op string, err error, format string, args ...any) error {
	return &OpError{Op: op, Err: err, Details: fmt.Sprintf(format, args...)}
}
