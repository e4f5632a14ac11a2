package kindof_test

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"accessor-engine/kindof"
)

func Example() {
	type Point struct{ X, Y int }
	type Guarded struct {
		mu sync.Mutex
		n  int
	}

	fmt.Println(kindof.FromReflectType(reflect.TypeOf(int32(0))))
	fmt.Println(kindof.FromReflectType(reflect.TypeOf("")))
	fmt.Println(kindof.FromReflectType(reflect.TypeOf(Point{})))
	fmt.Println(kindof.FromReflectType(reflect.TypeOf(&Point{})))
	fmt.Println(kindof.FromReflectType(reflect.TypeOf(unsafe.Pointer(nil))))
	fmt.Println(kindof.FromReflectType(reflect.TypeOf([]byte(nil))))
	fmt.Println(kindof.FromReflectType(reflect.TypeOf(Guarded{})))
	fmt.Println(kindof.FromReflectType(nil))
	// Output:
	// KindInt32
	// KindString
	// KindValueAggregate
	// KindHandle
	// KindHandle
	// KindReference
	// KindStackOnly
	// ValueKindEnum(0)
}

func ExampleOwnerKindOf() {
	type Account struct{ Balance int64 }

	fmt.Println(kindof.OwnerKindOf(reflect.TypeOf(Account{})))
	fmt.Println(kindof.OwnerKindOf(reflect.TypeOf(&Account{})))
	fmt.Println(kindof.OwnerKindOf(reflect.TypeOf(map[string]int{})))
	fmt.Println(kindof.OwnerKindOf(nil))
	// Output:
	// value
	// reference
	// unknown
	// unknown
}

func ExampleRegisterStackOnly() {
	type BufferView struct {
		data []byte
		off  int
	}

	before := kindof.FromReflectType(reflect.TypeOf(BufferView{}))
	kindof.RegisterStackOnly(reflect.TypeOf(BufferView{}))
	after := kindof.FromReflectType(reflect.TypeOf(BufferView{}))

	fmt.Println(before, after)
	// Output:
	// KindValueAggregate KindStackOnly
}
