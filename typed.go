package anyvec

import (
	"slices"
	"unsafe"
)

// Insert inserts value at position index, shifting all later elements to
// the right.
//
// Panics if index is greater than the vector's length, or if T contains
// pointers (see the package documentation).
func Insert[T any](v *Vec, index int, value T) {
	ti := TypeOf[T]()
	if ti.hasPointers {
		panic("anyvec: type " + ti.Name + " contains pointers")
	}

	if index < 0 || index > len(v.meta) {
		panic("anyvec: insert index out of range")
	}

	size := int(ti.size)

	offset := len(v.data)
	if index < len(v.meta) {
		offset = v.meta[index].offset
	}

	for i := index; i < len(v.meta); i++ {
		v.meta[i].offset += size
	}
	v.meta = slices.Insert(v.meta, index, slot{
		offset: offset,
		typ:    ti,
		size:   size,
	})

	if size == 0 {
		return
	}

	// open a gap of size bytes at offset, copy handles the overlap
	v.data = slices.Grow(v.data, size)[:len(v.data)+size]
	copy(v.data[offset+size:], v.data[offset:])

	copy(v.data[offset:offset+size], bytesOf(unsafe.Pointer(&value), ti.size))
}

// Push appends value to the back of the vector.
func Push[T any](v *Vec, value T) {
	Insert(v, len(v.meta), value)
}

// Remove removes and returns the element at position index, shifting all
// later elements to the left.
//
// If the slot holds a value of a different type, a TypeMismatchError is
// returned and the vector is left unmodified. Panics if index is out of
// bounds.
func Remove[T any](v *Vec, index int) (T, error) {
	m := v.meta[index]
	ti := TypeOf[T]()

	var value T
	if m.typ != ti {
		return value, newTypeMismatchError(ti, m.typ)
	}

	if m.size > 0 {
		copy(bytesOf(unsafe.Pointer(&value), ti.size), v.data[m.offset:m.offset+m.size])
	}

	v.RemoveAt(index)

	return value, nil
}

// Pop removes and returns the last element. It returns ok == false on an
// empty vector, and a TypeMismatchError if the last slot holds a value of a
// different type.
func Pop[T any](v *Vec) (value T, ok bool, err error) {
	if v.IsEmpty() {
		return value, false, nil
	}

	value, err = Remove[T](v, len(v.meta)-1)
	return value, err == nil, err
}

// Is reports whether the element at position index is of type T. It returns
// ok == false if the index is out of bounds.
func Is[T any](v *Vec, index int) (matches, ok bool) {
	if index < 0 || index >= len(v.meta) {
		return false, false
	}

	return v.meta[index].typ == TypeOf[T](), true
}

// Get returns a pointer to the element at position index, or nil if the
// index is out of bounds. The pointer aliases the live arena bytes: writes
// through it mutate the element in place, and it is invalidated by the next
// structural mutation of the vector.
//
// If the slot holds a value of a different type, a TypeMismatchError is
// returned and the slot is left undisturbed.
func Get[T any](v *Vec, index int) (*T, error) {
	if index < 0 || index >= len(v.meta) {
		return nil, nil
	}

	m := &v.meta[index]
	ti := TypeOf[T]()
	if m.typ != ti {
		return nil, newTypeMismatchError(ti, m.typ)
	}

	if m.size == 0 {
		return (*T)(unsafe.Pointer(&zeroBase)), nil
	}

	return (*T)(pointerInto(v.data, m.offset)), nil
}

// Value returns a copy of the element at position index. Unlike the pointer
// returned by Get, the copy stays valid across later mutations of the
// vector. The error contract is the same as for Get.
func Value[T any](v *Vec, index int) (value T, ok bool, err error) {
	ptr, err := Get[T](v, index)
	if ptr == nil || err != nil {
		return value, false, err
	}

	return *ptr, true, nil
}
