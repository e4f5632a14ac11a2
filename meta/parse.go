package meta

import (
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"accessor-engine/utils"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// funcName extracts a short diagnostic name for a bound function, e.g.
// "samples.(*Account).Balance-fm".
func funcName(fn reflect.Value) string {
	pc := runtime.FuncForPC(fn.Pointer())
	if pc == nil {
		return "func"
	}

	alias, name := utils.Unpack2(strings.SplitN(pc.Name(), ".", 2))
	if name == "" {
		return alias
	}

	return utils.Second(path.Split(alias)) + "." + name
}

// parseGetter validates a bound getter against the property shape and binds
// it into a read handle. Accepted shapes:
//   - static:   func() V, func() (V, error)
//   - instance: func(T) V, func(*T) V, plus an optional trailing error
//
// For a by-reference property V is the alias type *E. The produced value
// type V is returned so the descriptor can infer or cross-check it.
func parseGetter(raw any, base reflect.Type, static bool) (Handle, reflect.Type, error) {
	fn := reflect.ValueOf(raw)
	if fn.Kind() != reflect.Func {
		return Handle{}, nil, fmt.Errorf("%w: getter is not a function", ErrMalformedProperty)
	}

	ft := fn.Type()
	name := funcName(fn)

	wantIn := 1
	if static {
		wantIn = 0
	}
	if ft.NumIn() != wantIn {
		return Handle{}, nil, fmt.Errorf("%w: getter %s has %d parameters, want %d", ErrMalformedProperty, name, ft.NumIn(), wantIn)
	}

	if !static {
		if in := ft.In(0); in != base && in != reflect.PointerTo(base) {
			return Handle{}, nil, fmt.Errorf("%w: getter %s receives %s, want %s or *%s", ErrMalformedProperty, name, in, base, base)
		}
	}

	hasErr := false
	switch ft.NumOut() {
	default:
		return Handle{}, nil, fmt.Errorf("%w: getter %s has %d results, want 1 or (value, error)", ErrMalformedProperty, name, ft.NumOut())
	case 1:
	case 2:
		if ft.Out(1) != errType {
			return Handle{}, nil, fmt.Errorf("%w: getter %s second result is %s, want error", ErrMalformedProperty, name, ft.Out(1))
		}
		hasErr = true
	}

	return Handle{mode: handleFunc, fn: fn, name: name, hasErr: hasErr}, ft.Out(0), nil
}

// parseSetter validates a bound setter and binds it into a write handle.
// Accepted shapes:
//   - static:   func(V), func(V) error
//   - instance: func(*T, V), func(*T, V) error
//
// The owner parameter of an instance setter must be a pointer: a setter that
// receives the owner by value writes into a transient copy and would lose
// the write for the caller.
func parseSetter(raw any, base reflect.Type, static bool) (Handle, reflect.Type, error) {
	fn := reflect.ValueOf(raw)
	if fn.Kind() != reflect.Func {
		return Handle{}, nil, fmt.Errorf("%w: setter is not a function", ErrMalformedProperty)
	}

	ft := fn.Type()
	name := funcName(fn)

	wantIn := 2
	if static {
		wantIn = 1
	}
	if ft.NumIn() != wantIn {
		return Handle{}, nil, fmt.Errorf("%w: setter %s has %d parameters, want %d", ErrMalformedProperty, name, ft.NumIn(), wantIn)
	}

	if !static {
		if in := ft.In(0); in != reflect.PointerTo(base) {
			return Handle{}, nil, fmt.Errorf("%w: setter %s receives %s, want *%s", ErrMalformedProperty, name, in, base)
		}
	}

	switch ft.NumOut() {
	default:
		return Handle{}, nil, fmt.Errorf("%w: setter %s has %d results, want none or error", ErrMalformedProperty, name, ft.NumOut())
	case 0:
		return Handle{mode: handleFunc, fn: fn, name: name}, ft.In(wantIn - 1), nil
	case 1:
		if ft.Out(0) != errType {
			return Handle{}, nil, fmt.Errorf("%w: setter %s result is %s, want error", ErrMalformedProperty, name, ft.Out(0))
		}
		return Handle{mode: handleFunc, fn: fn, name: name, hasErr: true}, ft.In(wantIn - 1), nil
	}
}
