package scan

import (
	"go/types"

	"accessor-engine/kindof"
)

// syncLockerNames are the copy-hostile sync primitives; a struct embedding
// one anywhere in its value layout is stack-only, same as at runtime.
var syncLockerNames = map[string]struct{}{
	"Mutex":     {},
	"RWMutex":   {},
	"Once":      {},
	"WaitGroup": {},
	"Cond":      {},
	"Pool":      {},
}

// valueKindOf classifies a go/types type the same way
// kindof.FromReflectType classifies a reflect type.
func valueKindOf(t types.Type) kindof.ValueKindEnum {
	if stackOnly(t, map[types.Type]bool{}) {
		return kindof.KindStackOnly
	}

	switch u := t.Underlying().(type) {
	default:
		return 0

	case *types.Basic:
		switch u.Kind() {
		default:
			return 0
		case types.Bool:
			return kindof.KindBool
		case types.Int:
			return kindof.KindInt
		case types.Int8:
			return kindof.KindInt8
		case types.Int16:
			return kindof.KindInt16
		case types.Int32:
			return kindof.KindInt32
		case types.Int64:
			return kindof.KindInt64
		case types.Uint:
			return kindof.KindUint
		case types.Uint8:
			return kindof.KindUint8
		case types.Uint16:
			return kindof.KindUint16
		case types.Uint32:
			return kindof.KindUint32
		case types.Uint64:
			return kindof.KindUint64
		case types.Float32:
			return kindof.KindFloat32
		case types.Float64:
			return kindof.KindFloat64
		case types.String:
			return kindof.KindString
		case types.Complex64, types.Complex128:
			return kindof.KindValueAggregate
		case types.Uintptr, types.UnsafePointer:
			return kindof.KindHandle
		}

	case *types.Pointer:
		return kindof.KindHandle
	case *types.Struct, *types.Array:
		return kindof.KindValueAggregate
	case *types.Map, *types.Slice, *types.Chan, *types.Signature, *types.Interface:
		return kindof.KindReference
	}
}

func stackOnly(t types.Type, seen map[types.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "sync" {
			if _, hostile := syncLockerNames[obj.Name()]; hostile {
				return true
			}
		}
	}

	switch u := t.Underlying().(type) {
	default:
		return false

	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if stackOnly(u.Field(i).Type(), seen) {
				return true
			}
		}
		return false

	case *types.Array:
		return stackOnly(u.Elem(), seen)
	}
}
