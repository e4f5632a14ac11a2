package accessor

import (
	"fmt"
	"reflect"
)

// valueOwnerAccessor serves properties declared on value aggregates. Reads
// operate on the exact instance passed in; writes require the owner by
// pointer so the mutation is observed by the caller's copy rather than a
// transient one.
type valueOwnerAccessor struct {
	property
}

func (a *valueOwnerAccessor) GetInstance(owner any) (any, error) {
	if err := a.requireRead(); err != nil {
		return nil, err
	}

	base := a.desc.BaseOwner()

	rv := reflect.ValueOf(owner)
	var ov reflect.Value
	switch {
	case rv.IsValid() && rv.Type() == base:
		ov = rv
	case rv.IsValid() && rv.Type() == reflect.PointerTo(base):
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: %s got a nil owner", ErrOwnerMismatch, a.desc)
		}
		ov = rv.Elem()
	default:
		return nil, fmt.Errorf("%w: %s wants %s or *%s", ErrOwnerMismatch, a.desc, base, base)
	}

	v, err := a.desc.ReadHandle().Read(ov)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

func (a *valueOwnerAccessor) SetInstance(owner, value any) error {
	if err := a.requireWrite(); err != nil {
		return err
	}

	base := a.desc.BaseOwner()

	rv := reflect.ValueOf(owner)
	switch {
	case rv.IsValid() && rv.Type() == reflect.PointerTo(base):
		if rv.IsNil() {
			return fmt.Errorf("%w: %s got a nil owner", ErrOwnerMismatch, a.desc)
		}
	case rv.IsValid() && rv.Type() == base:
		// Writing into a by-value copy would be silently lost to the caller.
		return fmt.Errorf("%w: %s", ErrOwnerNotAddressable, a.desc)
	default:
		return fmt.Errorf("%w: %s wants *%s", ErrOwnerMismatch, a.desc, base)
	}

	vv, err := a.checkValue(value)
	if err != nil {
		return err
	}

	return a.desc.WriteHandle().Write(rv.Elem(), vv)
}

func (a *valueOwnerAccessor) GetStatic() (any, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotStaticMember, a.desc)
}

func (a *valueOwnerAccessor) SetStatic(any) error {
	return fmt.Errorf("%w: %s", ErrNotStaticMember, a.desc)
}
