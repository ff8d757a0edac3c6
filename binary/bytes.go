package binary

import "math/bits"

// Fixed-width sizes of Go integer types.
const (
	SizeOfUint8Bytes  = 1
	SizeOfUint16Bytes = 2
	SizeOfUint32Bytes = 4
	SizeOfUint64Bytes = 8
	SizeOfInt8Bytes   = 1
	SizeOfInt16Bytes  = 2
	SizeOfInt32Bytes  = 4
	SizeOfInt64Bytes  = 8

	sizeOfUintBytes = bits.UintSize / bitsPerByte
)

// Bits per byte.
const bitsPerByte = 8

// MinSizeBytes is the size reported for zero.
const MinSizeBytes = 1

// FixedSizeOf returns the bytes a value of data's type always occupies,
// whatever its magnitude. Pointers to integers report the pointee's width.
// It returns zero for anything that is not an integer.
func FixedSizeOf(data interface{}) int {
	switch data.(type) {
	case int8, *int8:
		return SizeOfInt8Bytes
	case uint8, *uint8:
		return SizeOfUint8Bytes
	case int16, *int16:
		return SizeOfInt16Bytes
	case uint16, *uint16:
		return SizeOfUint16Bytes
	case int32, *int32:
		return SizeOfInt32Bytes
	case uint32, *uint32:
		return SizeOfUint32Bytes
	case int64, *int64:
		return SizeOfInt64Bytes
	case uint64, *uint64:
		return SizeOfUint64Bytes
	case int, uint, uintptr, *int, *uint, *uintptr:
		return sizeOfUintBytes
	}

	return 0
}
