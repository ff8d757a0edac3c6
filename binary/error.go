package binary

import "fmt"

// errors of sizing.
var (
	// ErrOutOfRange is wrapped when a magnitude needs more bytes than the
	// requested width allows, e.g. a value beyond int64 passed to Int64Size.
	ErrOutOfRange = NewSizeError(nil, "magnitude out of range")

	// ErrNotInteger is wrapped when text or a float does not hold an exact
	// integer: empty or malformed literals, fractions, NaN and infinities.
	ErrNotInteger = NewSizeError(nil, "input is not an integer")
)

// ErrSize represents errors while sizing a number.
type ErrSize struct {
	inner error
	msg   string
}

// NewSizeError constructs a size error.
func NewSizeError(inner error, msg string) *ErrSize {
	return &ErrSize{
		inner: inner,
		msg:   msg,
	}
}

// Error function.
func (r *ErrSize) Error() string {
	if r.inner != nil {
		return fmt.Sprintf("bytesize: %s: %s", r.msg, r.inner.Error())
	}

	return fmt.Sprintf("bytesize: %s", r.msg)
}

// Unwrap function.
func (r *ErrSize) Unwrap() error {
	return r.inner
}
