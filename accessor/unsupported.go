package accessor

import "fmt"

// unsupportedAccessor stands in for properties whose value kind cannot cross
// the uniform contract. It exists so the factory always produces an accessor
// for a well-formed descriptor: describing a member does not require it to be
// operable, so failure is deferred to first use.
type unsupportedAccessor struct {
	property
}

func (a *unsupportedAccessor) fail() error {
	return fmt.Errorf("%w: %s has stack-only value type %s", ErrUnsupportedShape, a.desc, a.desc.ValueType())
}

func (a *unsupportedAccessor) GetInstance(any) (any, error) { return nil, a.fail() }

func (a *unsupportedAccessor) SetInstance(any, any) error { return a.fail() }

func (a *unsupportedAccessor) GetStatic() (any, error) { return nil, a.fail() }

func (a *unsupportedAccessor) SetStatic(any) error { return a.fail() }
