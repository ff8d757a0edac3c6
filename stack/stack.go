// Package stack implements the bounded word stack of the EVM.
package stack

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxSize is the maximum number of items a Stack holds.
const MaxSize = 1024

// Stack is a LIFO of 32-bit words bounded by MaxSize.
// It is not safe for concurrent use.
type Stack struct {
	items []int32
}

// New constructor.
func New() *Stack {
	return &Stack{}
}

// Push puts value on top of the stack.
func (s *Stack) Push(value int32) error {
	if len(s.items) == MaxSize {
		return NewStackError(ErrStackOverflow, fmt.Sprintf("push %d at depth %d", value, MaxSize))
	}

	s.items = append(s.items, value)

	return nil
}

// Pop removes and returns the top of the stack.
func (s *Stack) Pop() (int32, error) {
	top, err := s.Peek()
	if err != nil {
		return 0, NewStackError(ErrStackUnderflow, "pop")
	}

	s.items = s.items[:len(s.items)-1]

	return top, nil
}

// Peek returns the top of the stack without removing it.
func (s *Stack) Peek() (int32, error) {
	if len(s.items) == 0 {
		return 0, NewStackError(ErrStackUnderflow, "peek")
	}

	return s.items[len(s.items)-1], nil
}

func (s *Stack) Len() int {
	return len(s.items)
}

// String renders one item per line from bottom to top. The bottom item is
// suffixed with "<first" and, when there are two or more, the top with "<last".
func (s *Stack) String() string {
	lines := make([]string, len(s.items))
	for i, v := range s.items {
		lines[i] = strconv.FormatInt(int64(v), 10)

		switch {
		case i == 0:
			lines[i] += "<first"
		case i == len(s.items)-1:
			lines[i] += "<last"
		}
	}

	return strings.Join(lines, "\n")
}
