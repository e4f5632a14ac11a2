package meta

import "reflect"

// RawProperty is the raw, unvalidated metadata for one property as handed
// over by the surrounding framework. It is the input to NewDescriptor and is
// kept reachable from the descriptor for introspection; the descriptor never
// mutates it.
type RawProperty struct {
	// Name identifies the property within its owner's namespace.
	Name string

	// Owner is the declaring type: a struct T for a value-type owner, or a
	// *T for a reference-type owner.
	Owner reflect.Type

	// Value is the declared value type. May be nil, in which case it is
	// inferred from Field, Getter, or StaticVar. For a by-reference property
	// this is the alias type *E; the descriptor normalizes it to E.
	Value reflect.Type

	// Field names the backing struct field, if the property is field-backed.
	// Mutually exclusive with Static.
	Field string

	// Getter and Setter are optional bound accessor functions. Instance
	// shapes: func(T) V, func(*T) V and func(*T, V); static shapes: func() V
	// and func(V). A trailing error result is accepted on either.
	Getter any
	Setter any

	// StaticVar is an optional pointer to package-level storage backing a
	// static property. Requires Static.
	StaticVar any

	// Static is true iff the operations are associated with the owner type
	// itself rather than an instance.
	Static bool

	// ByRef is true iff the property yields an alias into existing storage
	// rather than a value. The declared value type must then be a pointer.
	ByRef bool
}
