package anyvec

import (
	"math"
	"slices"
)

// slot describes one logical element's span within the arena.
type slot struct {
	// offset is the start of the element's bytes within the arena. Slots are
	// tightly packed: offset equals the sum of the sizes of all earlier slots.
	offset int

	// typ is the interned identity of the element's concrete type.
	typ *TypeInfo

	// size is the number of arena bytes the element occupies.
	size int
}

// Vec is a growable vector with dynamic typing.
//
// It owns two parallel buffers: a byte arena holding every element's raw
// representation in logical order, and a slot table with one metadata record
// per element. The zero value is an empty vector ready for use.
type Vec struct {
	data []byte
	meta []slot
}

// New returns a new, empty vector.
func New() *Vec {
	return &Vec{}
}

// WithCapacity returns a new, empty vector with space reserved for count
// elements of avgSize bytes each.
//
// Element sizes are not known ahead of time, so avgSize is a hint; the
// resulting capacity in elements of a concrete size must be queried via
// Capacity.
func WithCapacity(count, avgSize int) *Vec {
	return &Vec{
		data: make([]byte, 0, mustMul(count, avgSize)),
		meta: make([]slot, 0, count),
	}
}

// Capacity returns the number of elements of the given byte size the vector
// can hold without reallocating.
func (v *Vec) Capacity(typeSize int) int {
	if typeSize <= 0 {
		// zero sized elements take no arena space
		return cap(v.meta)
	}

	return min(cap(v.meta), cap(v.data)/typeSize)
}

// Reserve grows the vector to hold at least additional more elements of
// avgSize bytes each. It may over-allocate to amortize future growth.
//
// Panics if the required arena size overflows int.
func (v *Vec) Reserve(additional, avgSize int) {
	v.data = slices.Grow(v.data, mustMul(additional, avgSize))
	v.meta = slices.Grow(v.meta, additional)
}

// ReserveExact grows the vector to hold exactly additional more elements of
// avgSize bytes each, without over-allocating.
//
// Panics if the required arena size overflows int.
func (v *Vec) ReserveExact(additional, avgSize int) {
	extraBytes := mustMul(additional, avgSize)

	if cap(v.data)-len(v.data) < extraBytes {
		data := make([]byte, len(v.data), len(v.data)+extraBytes)
		copy(data, v.data)
		v.data = data
	}

	if cap(v.meta)-len(v.meta) < additional {
		meta := make([]slot, len(v.meta), len(v.meta)+additional)
		copy(meta, v.meta)
		v.meta = meta
	}
}

// ShrinkToFit reallocates both buffers to their logical lengths, releasing
// unused capacity. Contents and offsets are unchanged.
func (v *Vec) ShrinkToFit() {
	if cap(v.data) > len(v.data) {
		data := make([]byte, len(v.data))
		copy(data, v.data)
		v.data = data
	}

	if cap(v.meta) > len(v.meta) {
		meta := make([]slot, len(v.meta))
		copy(meta, v.meta)
		v.meta = meta
	}
}

// Truncate shortens the vector to n elements, dropping the arena bytes of
// every later slot. It is a no-op if the vector holds n or fewer elements.
func (v *Vec) Truncate(n int) {
	if n >= len(v.meta) {
		return
	}

	v.data = v.data[:v.meta[n].offset]
	v.meta = v.meta[:n]
}

// RemoveAt discards the element at index without producing a typed value.
//
// Panics if index is out of bounds.
func (v *Vec) RemoveAt(index int) {
	m := v.meta[index]

	// close the gap in the arena, copy handles the overlap
	copy(v.data[m.offset:], v.data[m.offset+m.size:])
	v.data = v.data[:len(v.data)-m.size]

	v.meta = slices.Delete(v.meta, index, index+1)
	for i := index; i < len(v.meta); i++ {
		v.meta[i].offset -= m.size
	}
}

// TypeAt returns the identity of the element at index, or false if the index
// is out of bounds.
func (v *Vec) TypeAt(index int) (*TypeInfo, bool) {
	if index < 0 || index >= len(v.meta) {
		return nil, false
	}

	return v.meta[index].typ, true
}

// Append moves all elements of other onto the end of v, leaving other empty.
// Offsets of the moved slots are re-based by v's prior arena length.
func (v *Vec) Append(other *Vec) {
	base := len(v.data)
	start := len(v.meta)

	v.meta = append(v.meta, other.meta...)
	for i := start; i < len(v.meta); i++ {
		v.meta[i].offset += base
	}

	v.data = append(v.data, other.data...)

	other.Clear()
}

// SplitOff splits the vector at the given index. v keeps the elements in
// [0, at), the returned vector owns [at, len) with offsets re-based to zero.
//
// Panics if at is greater than the vector's length.
func (v *Vec) SplitOff(at int) *Vec {
	if at < 0 || at > len(v.meta) {
		panic("anyvec: split index out of range")
	}

	dataAt := len(v.data)
	if at < len(v.meta) {
		dataAt = v.meta[at].offset
	}

	other := &Vec{
		data: append([]byte(nil), v.data[dataAt:]...),
		meta: append([]slot(nil), v.meta[at:]...),
	}

	for i := range other.meta {
		other.meta[i].offset -= dataAt
	}

	v.data = v.data[:dataAt]
	v.meta = v.meta[:at]

	return other
}

// Clear removes all elements. Capacity is retained.
func (v *Vec) Clear() {
	v.data = v.data[:0]
	v.meta = v.meta[:0]
}

// Len returns the number of elements in the vector.
func (v *Vec) Len() int {
	return len(v.meta)
}

// IsEmpty returns whether the vector holds no elements.
func (v *Vec) IsEmpty() bool {
	return len(v.meta) == 0
}

// arenaLen returns the logical size of the arena in bytes.
func (v *Vec) arenaLen() int {
	return len(v.data)
}

func mustMul(a, b int) int {
	if a < 0 || b < 0 {
		panic("anyvec: negative capacity")
	}

	if b != 0 && a > math.MaxInt/b {
		panic("anyvec: capacity overflow")
	}

	return a * b
}
