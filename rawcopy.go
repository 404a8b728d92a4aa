package anyvec

import (
	"math"
	"unsafe"
)

type buf *[math.MaxInt32]byte

// bytesOf returns the raw representation of the value behind ptr as a byte
// slice of the given size.
func bytesOf(ptr unsafe.Pointer, size uintptr) []byte {
	return (*(buf)(ptr))[:size]
}

// zeroBase backs pointers to zero sized values. The arena holds no bytes for
// them, and a nil pointer must not escape to the caller.
var zeroBase struct{}

// pointerInto returns a pointer to the bytes at offset within data. Only
// valid for offset < len(data).
func pointerInto(data []byte, offset int) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(data[offset:]))
}
