package stack

import "fmt"

// errors of stack operations.
var (
	// ErrStackOverflow is wrapped when pushing onto a stack holding MaxSize items.
	ErrStackOverflow = NewStackError(nil, "overflow")

	// ErrStackUnderflow is wrapped when popping or peeking an empty stack.
	ErrStackUnderflow = NewStackError(nil, "underflow")
)

// ErrStack represents errors of stack operations.
type ErrStack struct {
	inner error
	msg   string
}

// NewStackError constructs a stack error.
func NewStackError(inner error, msg string) *ErrStack {
	return &ErrStack{
		inner: inner,
		msg:   msg,
	}
}

// Error function.
func (r *ErrStack) Error() string {
	if r.inner != nil {
		return fmt.Sprintf("evm stack: %s: %s", r.msg, r.inner.Error())
	}

	return fmt.Sprintf("evm stack: %s", r.msg)
}

// Unwrap function.
func (r *ErrStack) Unwrap() error {
	return r.inner
}
