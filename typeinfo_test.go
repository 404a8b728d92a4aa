package anyvec

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeOf_Interned(t *testing.T) {
	a := TypeOf[testData]()
	b := TypeOf[testData]()
	require.Same(t, a, b)

	require.NotSame(t, a, TypeOf[uint64]())
}

func TestTypeOf_Fields(t *testing.T) {
	ti := TypeOf[testData]()
	require.Equal(t, "anyvec.testData", ti.Name)
	require.Equal(t, reflect.TypeFor[testData](), ti.Type)
	require.Equal(t, int(reflect.TypeFor[testData]().Size()), ti.Size())
	require.NotZero(t, ti.Id)
}

func TestTypeOf_Concurrent(t *testing.T) {
	type fresh struct{ X uint32 }

	var wg sync.WaitGroup
	infos := make([]*TypeInfo, 16)

	for i := range infos {
		wg.Add(1)
		go func() {
			defer wg.Done()
			infos[i] = TypeOf[fresh]()
		}()
	}
	wg.Wait()

	for _, ti := range infos[1:] {
		require.Same(t, infos[0], ti)
	}
}

func TestTypeHasPointers(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"uint64", reflect.TypeFor[uint64](), false},
		{"float64", reflect.TypeFor[float64](), false},
		{"plain struct", reflect.TypeFor[testData](), false},
		{"byte array", reflect.TypeFor[[8]byte](), false},
		{"empty struct", reflect.TypeFor[struct{}](), false},
		{"string", reflect.TypeFor[string](), true},
		{"slice", reflect.TypeFor[[]byte](), true},
		{"pointer", reflect.TypeFor[*uint64](), true},
		{"map", reflect.TypeFor[map[int]int](), true},
		{"nested pointer field", reflect.TypeFor[struct{ Inner struct{ P *int } }](), true},
		{"array of strings", reflect.TypeFor[[2]string](), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, typeHasPointers(tc.typ))
		})
	}
}
