package anyvec

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"
)

type TypeId uint16

// TypeInfo describes one concrete element type. Instances are interned in a
// process-wide registry, so two TypeInfo pointers compare equal exactly if
// they describe the same type.
type TypeInfo struct {
	Name string
	Type reflect.Type

	// The Id of the type, in registration order.
	Id TypeId

	// size of a value of the type in bytes.
	size uintptr

	// hasPointers indicates that a value of the type contains pointers,
	// e.g. by having a field of type *T, a string, a slice or a map value.
	hasPointers bool
}

func (t *TypeInfo) String() string {
	return t.Name
}

// Size returns the number of arena bytes one value of the type occupies.
func (t *TypeInfo) Size() int {
	return int(t.size)
}

var typeInfos atomic.Pointer[map[unsafe.Pointer]*TypeInfo]

func init() {
	// initialize the lookup table
	typeInfos.Store(&map[unsafe.Pointer]*TypeInfo{})
}

// TypeOf returns the interned TypeInfo for T, registering it on first use.
func TypeOf[T any]() *TypeInfo {
	reflectType := reflect.TypeFor[T]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*typeInfos.Load())[ptrToType]; ok {
		return cached
	}

	return ensureTypeInfo(ptrToType, func(id TypeId) *TypeInfo {
		return &TypeInfo{
			Id:          id,
			Name:        reflectType.String(),
			Type:        reflectType,
			size:        reflectType.Size(),
			hasPointers: typeHasPointers(reflectType),
		}
	})
}

func ensureTypeInfo(ptrToType unsafe.Pointer, makeType func(id TypeId) *TypeInfo) *TypeInfo {
	for {
		previousTypes := typeInfos.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached
		}

		newTypeId := TypeId(len(*previousTypes) + 1)

		newType := makeType(newTypeId)

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if typeInfos.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New element type registered",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false

	case reflect.Array:
		return typeHasPointers(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}

		return false

	default:
		// string, slice, map, chan, pointer, interface, func
		return true
	}
}
