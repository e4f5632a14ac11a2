package kindof

import "reflect"

// OwnerKindEnum describes how a declaring entity is held: copied by value on
// assignment, or shared by identity.
type OwnerKindEnum int

const (
	OwnerUnknown OwnerKindEnum = iota
	OwnerValue                 // value aggregate: struct-like, copied on assignment
	OwnerReference             // reference aggregate: accessed through shared identity

	// OwnerTotal is a constant that represents the total number of owner kinds defined
	OwnerTotal = int(iota)
)

// String returns a human-readable representation of the OwnerKindEnum.
func (k OwnerKindEnum) String() string {
	switch k {
	case OwnerValue:
		return "value"
	case OwnerReference:
		return "reference"
	default:
		return "unknown"
	}
}

// OwnerKindOf classifies an owner type: a struct is a value aggregate, a
// pointer to struct is a reference aggregate. Anything else cannot declare
// properties and classifies as OwnerUnknown.
func OwnerKindOf(rtype reflect.Type) OwnerKindEnum {
	if rtype == nil {
		return OwnerUnknown
	}

	switch rtype.Kind() {
	default:
		return OwnerUnknown
	case reflect.Struct:
		return OwnerValue
	case reflect.Pointer:
		if rtype.Elem().Kind() == reflect.Struct {
			return OwnerReference
		}
		return OwnerUnknown
	}
}

// Base strips the reference wrapper from an owner type: *T yields T, a plain
// struct is returned unchanged, anything else yields nil.
func Base(rtype reflect.Type) reflect.Type {
	switch OwnerKindOf(rtype) {
	default:
		return nil
	case OwnerValue:
		return rtype
	case OwnerReference:
		return rtype.Elem()
	}
}
