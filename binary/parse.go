package binary

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// ParseSize sizes the base-10 integer literal in s. Surrounding whitespace
// and a leading sign are accepted; anything else fails with ErrNotInteger.
func ParseSize(s string) (int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return 0, NewSizeError(ErrNotInteger, fmt.Sprintf("parse %q", s))
	}

	return SizeInBytesBig(n), nil
}

// SizeInBytesFloat64 sizes f when it holds an exact integer value.
// NaN, infinities and fractional values fail with ErrNotInteger.
func SizeInBytesFloat64(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, NewSizeError(ErrNotInteger, fmt.Sprintf("%v", f))
	}

	if f >= math.MinInt64 && f < math.MaxInt64 {
		return SizeInBytes(int64(f)), nil
	}

	n, _ := new(big.Float).SetFloat64(f).Int(nil)

	return SizeInBytesBig(n), nil
}
