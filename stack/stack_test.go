package stack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T, values ...int32) *Stack {
	t.Helper()

	s := New()
	for _, v := range values {
		require.NoError(t, s.Push(v))
	}

	return s
}

func TestStack_Push(t *testing.T) {
	tests := []struct {
		name    string
		depth   int
		wantErr error
	}{
		{name: "empty", depth: 0},
		{name: "one below limit", depth: MaxSize - 1},
		{name: "full", depth: MaxSize, wantErr: ErrStackOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for i := 0; i < tt.depth; i++ {
				require.NoError(t, s.Push(int32(i)))
			}

			err := s.Push(42)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, MaxSize, s.Len())
				assert.Equal(t, "evm stack: push 42 at depth 1024: evm stack: overflow", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.depth+1, s.Len())

			top, err := s.Peek()
			require.NoError(t, err)
			assert.Equal(t, int32(42), top)
		})
	}
}

func TestStack_Pop(t *testing.T) {
	tests := []struct {
		name    string
		values  []int32
		want    int32
		wantLen int
		wantErr error
	}{
		{name: "empty", wantErr: ErrStackUnderflow},
		{name: "single", values: []int32{7}, want: 7},
		{name: "top of three", values: []int32{1, 2, 3}, want: 3, wantLen: 2},
		{name: "negative", values: []int32{-1}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filled(t, tt.values...)

			got, err := s.Pop()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, s.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLen, s.Len())
		})
	}
}

func TestStack_PopUntilUnderflow(t *testing.T) {
	s := filled(t, 1, 2)

	for _, want := range []int32{2, 1} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.False(t, errors.Is(err, ErrStackOverflow))

	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStack_String(t *testing.T) {
	tests := []struct {
		name   string
		values []int32
		want   string
	}{
		{name: "empty", want: ""},
		{name: "single", values: []int32{1}, want: "1<first"},
		{name: "two", values: []int32{1, 2}, want: "1<first\n2<last"},
		{name: "three", values: []int32{1, 2, 3}, want: "1<first\n2\n3<last"},
		{name: "negative", values: []int32{-5, 0, 9, -2147483648}, want: "-5<first\n0\n9\n-2147483648<last"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filled(t, tt.values...).String())
		})
	}
}
