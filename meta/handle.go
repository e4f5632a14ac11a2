package meta

import (
	"fmt"
	"reflect"
	"unsafe"
)

type handleMode int

const (
	handleNone  handleMode = iota
	handleField            // backing struct field, reached by index path
	handleFunc             // bound accessor function
	handleSlot             // pointer to static storage
	handleAlias            // write-through: resolve the read alias, store through it
)

// Handle is one resolved low-level read or write operation. The zero value is
// an unresolved handle; a resolved handle is write-once at descriptor
// construction and safe for concurrent use afterwards.
type Handle struct {
	mode   handleMode
	fn     reflect.Value
	field  []int
	slot   reflect.Value
	name   string
	byRef  bool
	unexp  bool
	hasErr bool    // fn carries a trailing error result
	inner  *Handle // read handle producing the alias, for handleAlias
}

// Resolved reports whether the handle was bound to an operation.
func (h *Handle) Resolved() bool {
	return h != nil && h.mode != handleNone
}

// Name returns the diagnostic name of the bound operation, e.g. the backing
// field name or the bound function's name.
func (h *Handle) Name() string {
	if h == nil {
		return ""
	}

	return h.name
}

// Read performs the read operation. For instance handles the owner must be
// the base struct value (addressable when the handle needs address material);
// static handles ignore the owner argument.
func (h *Handle) Read(owner reflect.Value) (reflect.Value, error) {
	v, err := h.resolve(owner)
	if err != nil {
		return reflect.Value{}, err
	}

	if h.byRef {
		if v.Kind() != reflect.Pointer {
			return reflect.Value{}, fmt.Errorf("%s: by-reference read yielded non-pointer %s", h.name, v.Type())
		}
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%s: by-reference alias is nil", h.name)
		}

		v = v.Elem()
	}

	return v, nil
}

// Write performs the write operation. Instance handles require an addressable
// owner; the caller is responsible for having passed the owner by pointer.
func (h *Handle) Write(owner, value reflect.Value) error {
	switch h.mode {
	default:
		return fmt.Errorf("%s: handle is not writable", h.name)

	case handleField:
		fv, err := h.fieldValue(owner)
		if err != nil {
			return err
		}
		return h.store(fv, value)

	case handleFunc:
		args := []reflect.Value{value}
		if h.fn.Type().NumIn() == 2 {
			shaped, err := shapeOwnerArg(owner, h.fn.Type().In(0))
			if err != nil {
				return fmt.Errorf("%s: %w", h.name, err)
			}
			args = []reflect.Value{shaped, value}
		}

		outs := h.fn.Call(args)
		if h.hasErr {
			if errv := outs[len(outs)-1]; !errv.IsNil() {
				return errv.Interface().(error)
			}
		}
		return nil

	case handleSlot:
		return h.store(h.slot.Elem(), value)

	case handleAlias:
		alias, err := h.inner.resolve(owner)
		if err != nil {
			return err
		}
		return h.store(alias, value)
	}
}

// resolve produces the raw operation result before any by-reference
// normalization.
func (h *Handle) resolve(owner reflect.Value) (reflect.Value, error) {
	switch h.mode {
	default:
		return reflect.Value{}, fmt.Errorf("%s: handle is not readable", h.name)

	case handleField:
		fv, err := h.fieldValue(owner)
		if err != nil {
			return reflect.Value{}, err
		}
		return fv, nil

	case handleFunc:
		var args []reflect.Value
		if h.fn.Type().NumIn() == 1 {
			shaped, err := shapeOwnerArg(owner, h.fn.Type().In(0))
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%s: %w", h.name, err)
			}
			args = []reflect.Value{shaped}
		}

		outs := h.fn.Call(args)
		if h.hasErr {
			if errv := outs[len(outs)-1]; !errv.IsNil() {
				return reflect.Value{}, errv.Interface().(error)
			}
		}
		return outs[0], nil

	case handleSlot:
		return h.slot.Elem(), nil
	}
}

// fieldValue locates the backing field on the owner, boxing non-public
// fields through their address so the value can cross the uniform contract.
func (h *Handle) fieldValue(owner reflect.Value) (reflect.Value, error) {
	if !owner.IsValid() {
		return reflect.Value{}, fmt.Errorf("%s: field handle requires an owner instance", h.name)
	}

	if h.unexp && !owner.CanAddr() {
		// Reads from a non-addressable copy still need address material:
		// work on a private addressable copy of the owner.
		tmp := reflect.New(owner.Type()).Elem()
		tmp.Set(owner)
		owner = tmp
	}

	fv := owner.FieldByIndex(h.field)
	if h.unexp {
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}

	return fv, nil
}

// store writes value into dst, going through the alias for by-reference
// handles.
func (h *Handle) store(dst, value reflect.Value) error {
	if h.byRef {
		if dst.Kind() != reflect.Pointer {
			return fmt.Errorf("%s: by-reference write target is not a pointer", h.name)
		}
		if dst.IsNil() {
			return fmt.Errorf("%s: by-reference alias is nil", h.name)
		}

		dst.Elem().Set(value)
		return nil
	}

	if !dst.CanSet() {
		return fmt.Errorf("%s: write target is not settable", h.name)
	}

	dst.Set(value)
	return nil
}

// shapeOwnerArg adapts the owner value to the parameter type a bound
// accessor function expects (T or *T).
func shapeOwnerArg(owner reflect.Value, want reflect.Type) (reflect.Value, error) {
	if !owner.IsValid() {
		return reflect.Value{}, fmt.Errorf("bound function requires an owner instance")
	}

	if owner.Type() == want {
		return owner, nil
	}

	if want.Kind() == reflect.Pointer && want.Elem() == owner.Type() {
		if owner.CanAddr() {
			return owner.Addr(), nil
		}

		// Read-only path: hand the function a pointer to a private copy.
		tmp := reflect.New(owner.Type())
		tmp.Elem().Set(owner)
		return tmp, nil
	}

	return reflect.Value{}, fmt.Errorf("owner %s does not fit parameter %s", owner.Type(), want)
}
