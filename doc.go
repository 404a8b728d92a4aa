// Package anyvec provides a growable vector that can hold values of many
// different concrete types in a single contiguous allocation.
//
// Elements are stored back-to-back in one byte arena; a parallel slot table
// records the byte offset, type identity and byte size of each element.
// Typed access is validated against the identity recorded at insertion time,
// so retrieving an element with the wrong type yields a TypeMismatchError
// instead of garbage.
//
// Element types must be free of pointers (no string, slice, map, chan,
// pointer, interface or func fields). The arena is a plain byte buffer that
// the garbage collector does not scan, so pointer-carrying values could lose
// their referents while logically alive. Insert panics on such types.
//
// A Vec is not safe for concurrent use. Pointers returned by Get alias the
// arena and are invalidated by the next structural mutation.
package anyvec
