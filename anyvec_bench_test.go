package anyvec

import (
	"math/rand/v2"
	"testing"
)

type benchValue struct {
	A uint64
	B float64
}

func BenchmarkVec_InsertFront(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		v := New()
		for range 1000 {
			Insert(v, 0, benchValue{A: 1})
		}
	}
}

func BenchmarkVec_InsertMiddle(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		v := New()
		for i := range 1000 {
			Insert(v, i/2, benchValue{A: 1})
		}
	}
}

func BenchmarkVec_Push(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		v := New()
		for range 1000 {
			Push(v, benchValue{A: 1})
		}
	}
}

func BenchmarkVec_Get1k(b *testing.B) {
	v := New()
	for range 1000 {
		Push(v, benchValue{A: rand.Uint64(), B: rand.Float64()})
	}

	b.ReportAllocs()
	b.ResetTimer()

	var dummy uint64

	for b.Loop() {
		for i := range 1000 {
			ptr, _ := Get[benchValue](v, i)
			dummy += ptr.A
		}
	}
}

// baselines against a slice of boxed values, the layout this package is
// meant to replace

func BenchmarkAnySlice_InsertFront(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		var s []any
		for range 1000 {
			s = append(s, nil)
			copy(s[1:], s)
			s[0] = benchValue{A: 1}
		}
	}
}

func BenchmarkAnySlice_Push(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		var s []any
		for range 1000 {
			s = append(s, benchValue{A: 1})
		}
	}
}

func BenchmarkAnySlice_Get1k(b *testing.B) {
	var s []any
	for range 1000 {
		s = append(s, benchValue{A: rand.Uint64(), B: rand.Float64()})
	}

	b.ReportAllocs()
	b.ResetTimer()

	var dummy uint64

	for b.Loop() {
		for i := range 1000 {
			dummy += s[i].(benchValue).A
		}
	}
}
