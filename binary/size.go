package binary

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Integer is the set of built-in integer types SizeOf accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SizeInBytes returns the minimum number of bytes needed to hold the
// magnitude of number in unsigned binary form. Zero occupies one byte.
func SizeInBytes(number int64) int {
	return SizeInBytesUint64(magnitude(number))
}

// SizeInBytesUint64 is SizeInBytes for unsigned 64-bit values.
func SizeInBytesUint64(u uint64) int {
	return bytesForBits(bits.Len64(u))
}

// SizeOf is SizeInBytes for any built-in integer type.
func SizeOf[T Integer](v T) int {
	if v < 0 {
		return SizeInBytes(int64(v))
	}

	return SizeInBytesUint64(uint64(v))
}

// SizeInBytesBig is SizeInBytes with arbitrary precision. A nil n counts as zero.
func SizeInBytesBig(n *big.Int) int {
	if n == nil {
		return MinSizeBytes
	}

	return bytesForBits(n.BitLen())
}

// SizeInBytesWithin sizes n and fails with ErrOutOfRange when the result
// does not fit in maxBytes.
func SizeInBytesWithin(n *big.Int, maxBytes int) (int, error) {
	size := SizeInBytesBig(n)
	if size > maxBytes {
		return 0, NewSizeError(ErrOutOfRange, fmt.Sprintf("%d bytes exceed limit of %d", size, maxBytes))
	}

	return size, nil
}

// Int64Size sizes n as a standard 64-bit signed integer.
func Int64Size(n *big.Int) (int, error) {
	if n == nil {
		return MinSizeBytes, nil
	}

	if !n.IsInt64() {
		return 0, NewSizeError(ErrOutOfRange, fmt.Sprintf("%s does not fit in int64", n.String()))
	}

	return SizeInBytes(n.Int64()), nil
}

// BitLen returns the number of significant bits of the magnitude of number.
// BitLen(0) is 0.
func BitLen(number int64) int {
	return bits.Len64(magnitude(number))
}

// magnitude returns |n| without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}

func bytesForBits(n int) int {
	if n == 0 {
		return MinSizeBytes
	}

	return (n + bitsPerByte - 1) / bitsPerByte
}
