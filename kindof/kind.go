// Package kindof classifies reflect types into the closed kind enums the
// accessor layer dispatches on: what a property's value is (scalar, value
// aggregate, reference, address-sized handle, stack-only) and how its owner
// is held (by value or by reference).
package kindof

import (
	"reflect"
	"sync"
)

//go:generate go tool stringer -type=ValueKindEnum -output=kind_string.go

type ValueKindEnum int

const (
	_ ValueKindEnum = iota // skip zero value, use it as a default (invalid) value for ValueKindEnum

	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindValueAggregate // struct, array, complex: copied by value on assignment
	KindReference      // map, slice, chan, func, interface: shared by identity
	KindHandle         // address-sized: uintptr, unsafe.Pointer, and normalized pointers
	KindStackOnly      // copy-hostile: must not travel through a boxed uniform contract

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k ValueKindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindString,
		KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k ValueKindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsBoxable reports whether a value of this kind may be carried through an
// any-typed get/set contract.
func (k ValueKindEnum) IsBoxable() bool {
	return k != 0 && k != KindStackOnly
}

// FromReflectType classifies a value type. Pointer-like types collapse to
// KindHandle; stack-only detection wins over every other classification.
// A nil type classifies as the invalid zero kind.
func FromReflectType(rtype reflect.Type) ValueKindEnum {
	if rtype == nil {
		return 0
	}

	if IsStackOnly(rtype) {
		return KindStackOnly
	}

	switch rtype.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		return KindString
	case reflect.Struct, reflect.Array, reflect.Complex64, reflect.Complex128:
		return KindValueAggregate
	case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return KindReference
	case reflect.Pointer, reflect.Uintptr, reflect.UnsafePointer:
		return KindHandle
	default:
		return 0
	}
}

// lockerTypes are copy-hostile by construction: copying one tears its
// internal state, so values containing them never cross the boxed contract.
var lockerTypes = map[reflect.Type]struct{}{
	reflect.TypeOf(sync.Mutex{}):     {},
	reflect.TypeOf(sync.RWMutex{}):   {},
	reflect.TypeOf(sync.Once{}):      {},
	reflect.TypeOf(sync.WaitGroup{}): {},
	reflect.TypeOf(sync.Cond{}):      {},
	reflect.TypeOf(sync.Pool{}):      {},
}

var (
	stackOnlyMu  sync.RWMutex
	stackOnlyReg = map[reflect.Type]struct{}{}
)

// RegisterStackOnly marks a type as stack-only regardless of its structure.
// Intended for framework init time, before accessors are built.
func RegisterStackOnly(rtype reflect.Type) {
	if rtype == nil {
		return
	}

	stackOnlyMu.Lock()
	stackOnlyReg[rtype] = struct{}{}
	stackOnlyMu.Unlock()
}

// IsStackOnly reports whether rtype was registered as stack-only or embeds a
// copy-hostile sync primitive anywhere in its value layout.
func IsStackOnly(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	stackOnlyMu.RLock()
	_, registered := stackOnlyReg[rtype]
	stackOnlyMu.RUnlock()

	return registered || copyHostile(rtype)
}

func copyHostile(rtype reflect.Type) bool {
	if _, ok := lockerTypes[rtype]; ok {
		return true
	}

	switch rtype.Kind() {
	default:
		return false
	case reflect.Struct:
		for i := 0; i < rtype.NumField(); i++ {
			if copyHostile(rtype.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Array:
		return copyHostile(rtype.Elem())
	}
}
