package accessor

import (
	"errors"
	"fmt"
	"reflect"

	"accessor-engine/meta"
)

var (
	// ErrUnsupportedShape reports a value kind that cannot be carried through
	// the uniform contract. Raised on first use, never at construction.
	ErrUnsupportedShape = errors.New("property shape cannot be accessed through the uniform contract")

	// ErrNotInstanceMember reports an instance operation invoked on a static
	// property.
	ErrNotInstanceMember = errors.New("property is not an instance member")

	// ErrNotStaticMember reports a static operation invoked on an instance
	// property.
	ErrNotStaticMember = errors.New("property is not a static member")

	// ErrMissingAccessor reports that the requested direction (read or write)
	// was never resolved: absent in the source metadata, or excluded by the
	// access options.
	ErrMissingAccessor = errors.New("property accessor is not resolved")

	// ErrOwnerMismatch reports an owner instance whose type does not fit the
	// declaring type.
	ErrOwnerMismatch = errors.New("owner instance does not match the declaring type")

	// ErrOwnerNotAddressable reports a write on a value-type owner that was
	// passed by value: the mutation would land in a transient copy and be
	// silently lost to the caller.
	ErrOwnerNotAddressable = errors.New("value-type owner must be passed by pointer for writes")

	// ErrValueMismatch reports a value whose type does not fit the property's
	// value type.
	ErrValueMismatch = errors.New("value does not fit the property's value type")
)

// Accessor is the uniform read/write handle produced for one property
// descriptor. Immutable after construction; concurrent calls against the
// same Accessor for different owner instances are safe without locking.
type Accessor interface {
	// Name returns the property name.
	Name() string

	// Descriptor returns the descriptor this accessor was built from.
	Descriptor() *meta.PropertyDescriptor

	// GetInstance reads the property from an owner instance. Static
	// properties reject it with ErrNotInstanceMember.
	GetInstance(owner any) (any, error)

	// SetInstance writes the property on an owner instance. For value-type
	// owners the instance must be passed by pointer.
	SetInstance(owner, value any) error

	// GetStatic reads a static property. Instance properties reject it with
	// ErrNotStaticMember.
	GetStatic() (any, error)

	// SetStatic writes a static property.
	SetStatic(value any) error
}

// property carries the state shared by every variant.
type property struct {
	desc *meta.PropertyDescriptor
}

func (p *property) Name() string { return p.desc.Name() }

func (p *property) Descriptor() *meta.PropertyDescriptor { return p.desc }

func (p *property) requireRead() error {
	if !p.desc.ReadHandle().Resolved() {
		return fmt.Errorf("%w: %s has no read operation", ErrMissingAccessor, p.desc)
	}
	return nil
}

func (p *property) requireWrite() error {
	if !p.desc.WriteHandle().Resolved() {
		return fmt.Errorf("%w: %s has no write operation", ErrMissingAccessor, p.desc)
	}
	return nil
}

// checkValue unboxes an incoming value and verifies it fits the property's
// value type. A nil value maps to the zero value for nilable kinds.
func (p *property) checkValue(value any) (reflect.Value, error) {
	want := p.desc.ValueType()

	if value == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface, reflect.UnsafePointer:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: %s cannot hold nil", ErrValueMismatch, p.desc)
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("%w: %s holds %s, got %s", ErrValueMismatch, p.desc, want, rv.Type())
	}

	return rv, nil
}
