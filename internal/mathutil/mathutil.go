package mathutil

import (
	"math/bits"
	"unsafe"
)

const bitsInUint64 = int(8 * unsafe.Sizeof(uint64(0)))

// BinaryDigits returns the number of significant binary digits in 'value'.
func BinaryDigits(value uint64) int {
	return bitsInUint64 - bits.LeadingZeros64(value)
}

// ShiftRight returns value >> n.
// Shifts of 64 or more bits produce zero.
func ShiftRight(value, n uint64) uint64 {
	if n >= uint64(bitsInUint64) {
		return 0
	}
	return value >> n
}

// ShiftLeft returns value << n.
// Shifts of 64 or more bits produce zero.
func ShiftLeft(value, n uint64) uint64 {
	if n >= uint64(bitsInUint64) {
		return 0
	}
	return value << n
}

// Uint64Cmp compares two numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func Uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
