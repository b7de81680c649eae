package mem

import (
	"unsafe"
)

// FixedSize returns the size in bytes of T's value representation.
// For types containing strings or slices only the header bytes count;
// the backing arrays are not followed.
func FixedSize[T any]() uint64 {
	var v T
	return uint64(unsafe.Sizeof(v))
}

// SliceFixedSize returns the bytes occupied by the elements of a slice of
// n values of T, excluding the slice header and any heap data the
// elements point to.
func SliceFixedSize[T any](n int) uint64 {
	return uint64(n) * FixedSize[T]() //nolint:gosec // n is a slice length, never negative
}
