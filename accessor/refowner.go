package accessor

import (
	"fmt"
	"reflect"
)

// referenceOwnerAccessor serves properties declared on reference aggregates:
// the owner argument already denotes shared identity, so reads and writes
// dereference it directly with no aliasing concern.
type referenceOwnerAccessor struct {
	property
}

func (a *referenceOwnerAccessor) resolveOwner(owner any) (reflect.Value, error) {
	rv := reflect.ValueOf(owner)
	if !rv.IsValid() || rv.Type() != a.desc.OwnerType() {
		return reflect.Value{}, fmt.Errorf("%w: %s wants %s", ErrOwnerMismatch, a.desc, a.desc.OwnerType())
	}
	if rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %s got a nil owner", ErrOwnerMismatch, a.desc)
	}

	return rv.Elem(), nil
}

func (a *referenceOwnerAccessor) GetInstance(owner any) (any, error) {
	if err := a.requireRead(); err != nil {
		return nil, err
	}

	ov, err := a.resolveOwner(owner)
	if err != nil {
		return nil, err
	}

	v, err := a.desc.ReadHandle().Read(ov)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

func (a *referenceOwnerAccessor) SetInstance(owner, value any) error {
	if err := a.requireWrite(); err != nil {
		return err
	}

	ov, err := a.resolveOwner(owner)
	if err != nil {
		return err
	}

	rv, err := a.checkValue(value)
	if err != nil {
		return err
	}

	return a.desc.WriteHandle().Write(ov, rv)
}

func (a *referenceOwnerAccessor) GetStatic() (any, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotStaticMember, a.desc)
}

func (a *referenceOwnerAccessor) SetStatic(any) error {
	return fmt.Errorf("%w: %s", ErrNotStaticMember, a.desc)
}
