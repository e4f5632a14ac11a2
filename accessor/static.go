package accessor

import (
	"fmt"
	"reflect"
)

// staticAccessor binds read/write operations that need no owner instance.
type staticAccessor struct {
	property
}

func (a *staticAccessor) GetInstance(any) (any, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotInstanceMember, a.desc)
}

func (a *staticAccessor) SetInstance(any, any) error {
	return fmt.Errorf("%w: %s", ErrNotInstanceMember, a.desc)
}

func (a *staticAccessor) GetStatic() (any, error) {
	if err := a.requireRead(); err != nil {
		return nil, err
	}

	v, err := a.desc.ReadHandle().Read(reflect.Value{})
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

func (a *staticAccessor) SetStatic(value any) error {
	if err := a.requireWrite(); err != nil {
		return err
	}

	rv, err := a.checkValue(value)
	if err != nil {
		return err
	}

	return a.desc.WriteHandle().Write(reflect.Value{}, rv)
}
