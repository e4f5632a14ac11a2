package meta

import (
	"errors"
	"fmt"
	"reflect"

	"accessor-engine/access"
	"accessor-engine/kindof"
)

// ErrMalformedProperty reports raw metadata that is absent or internally
// inconsistent. It is the only construction-time failure of this package:
// shape limitations never fail construction.
var ErrMalformedProperty = errors.New("malformed property metadata")

// PropertyDescriptor is the canonical record of one property's identity and
// shape. Immutable after NewDescriptor: the shape facts and the bound handles
// are fixed at construction, so a descriptor is safe for concurrent use.
type PropertyDescriptor struct {
	name      string
	owner     reflect.Type // as declared: T or *T
	base      reflect.Type // the owner struct type
	ownerKind kindof.OwnerKindEnum
	value     reflect.Type // normalized: the pointee for by-reference properties
	valueKind kindof.ValueKindEnum
	static    bool
	byRef     bool
	read      Handle
	write     Handle
	opts      access.Enum
	raw       *RawProperty
}

// NewDescriptor validates raw metadata, normalizes exotic value kinds, and
// resolves the read/write handles honoring the access options. A member that
// exists but is inaccessible under the options is treated as absent, not as
// an error.
func NewDescriptor(raw *RawProperty, opts access.Enum) (*PropertyDescriptor, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: raw metadata is absent", ErrMalformedProperty)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("%w: property has no name", ErrMalformedProperty)
	}

	ownerKind := kindof.OwnerKindOf(raw.Owner)
	if ownerKind == kindof.OwnerUnknown {
		return nil, fmt.Errorf("%w: %q owner %v cannot declare properties", ErrMalformedProperty, raw.Name, raw.Owner)
	}
	base := kindof.Base(raw.Owner)

	if raw.Static && raw.Field != "" {
		return nil, fmt.Errorf("%w: %q is static but names backing field %q", ErrMalformedProperty, raw.Name, raw.Field)
	}
	if raw.StaticVar != nil && !raw.Static {
		return nil, fmt.Errorf("%w: %q has static storage but is not static", ErrMalformedProperty, raw.Name)
	}

	declared := raw.Value

	var read Handle

	if raw.Getter != nil {
		h, got, err := parseGetter(raw.Getter, base, raw.Static)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", raw.Name, err)
		}
		if declared == nil {
			declared = got
		} else if got != declared {
			return nil, fmt.Errorf("%w: %q getter yields %s, declared %s", ErrMalformedProperty, raw.Name, got, declared)
		}
		read = h
	}

	var (
		write   Handle
		written reflect.Type
	)
	if raw.Setter != nil {
		h, got, err := parseSetter(raw.Setter, base, raw.Static)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", raw.Name, err)
		}

		write, written = h, got
		if declared == nil {
			// A setter receives the normalized value; reconstruct the
			// declared alias type for by-reference properties.
			declared = got
			if raw.ByRef {
				declared = reflect.PointerTo(got)
			}
		}
	}

	var backing reflect.StructField
	haveBacking := false
	if raw.Field != "" {
		sf, ok := base.FieldByName(raw.Field)
		if !ok {
			return nil, fmt.Errorf("%w: %q names unknown backing field %q on %s", ErrMalformedProperty, raw.Name, raw.Field, base)
		}
		if declared == nil {
			declared = sf.Type
		} else if sf.Type != declared {
			return nil, fmt.Errorf("%w: %q backing field %q holds %s, declared %s", ErrMalformedProperty, raw.Name, raw.Field, sf.Type, declared)
		}

		backing, haveBacking = sf, true
		if !sf.IsExported() && !opts.Has(access.IncludeNonPublic) {
			haveBacking = false // inaccessible under current options: treated as absent
		}
	}

	var slot reflect.Value
	if raw.StaticVar != nil {
		slot = reflect.ValueOf(raw.StaticVar)
		if slot.Kind() != reflect.Pointer || slot.IsNil() {
			return nil, fmt.Errorf("%w: %q static storage must be a non-nil pointer", ErrMalformedProperty, raw.Name)
		}
		if declared == nil {
			declared = slot.Type().Elem()
		} else if slot.Type().Elem() != declared {
			return nil, fmt.Errorf("%w: %q static storage holds %s, declared %s", ErrMalformedProperty, raw.Name, slot.Type().Elem(), declared)
		}
	}

	if declared == nil {
		return nil, fmt.Errorf("%w: %q value type cannot be determined", ErrMalformedProperty, raw.Name)
	}

	// Normalize: a by-reference property declares the alias type *E but its
	// value kind is classified from the pointee E.
	value := declared
	if raw.ByRef {
		if declared.Kind() != reflect.Pointer {
			return nil, fmt.Errorf("%w: %q is by-reference but declares non-pointer %s", ErrMalformedProperty, raw.Name, declared)
		}
		value = declared.Elem()
	}

	if write.Resolved() && written != value {
		return nil, fmt.Errorf("%w: %q setter writes %s, want %s", ErrMalformedProperty, raw.Name, written, value)
	}

	if haveBacking {
		fh := Handle{mode: handleField, field: backing.Index, name: raw.Field, unexp: !backing.IsExported()}
		if !read.Resolved() {
			read = fh
		}
		if !write.Resolved() {
			write = fh
		}
	}

	if slot.IsValid() {
		sh := Handle{mode: handleSlot, slot: slot, name: "static " + raw.Name}
		if !read.Resolved() {
			read = sh
		}
		if !write.Resolved() {
			write = sh
		}
	}

	if raw.ByRef {
		if read.Resolved() {
			read.byRef = true
		}
		if write.mode == handleField || write.mode == handleSlot {
			write.byRef = true
		}
		if !write.Resolved() && read.Resolved() {
			// A by-reference property without an explicit setter is still
			// writable: store through the alias its read yields.
			inner := read
			write = Handle{mode: handleAlias, inner: &inner, byRef: true, name: read.name}
		}
	}

	// Members out of scope under the current options resolve to nothing.
	if (raw.Static && opts.Has(access.InstanceOnly) && !opts.Has(access.StaticOnly)) ||
		(!raw.Static && opts.Has(access.StaticOnly) && !opts.Has(access.InstanceOnly)) {
		read, write = Handle{}, Handle{}
	}

	return &PropertyDescriptor{
		name:      raw.Name,
		owner:     raw.Owner,
		base:      base,
		ownerKind: ownerKind,
		value:     value,
		valueKind: kindof.FromReflectType(value),
		static:    raw.Static,
		byRef:     raw.ByRef,
		read:      read,
		write:     write,
		opts:      opts,
		raw:       raw,
	}, nil
}

// Name returns the property name, unique within its owner's namespace.
func (d *PropertyDescriptor) Name() string { return d.name }

// OwnerType returns the declaring type as declared: T or *T.
func (d *PropertyDescriptor) OwnerType() reflect.Type { return d.owner }

// BaseOwner returns the owner struct type with any reference wrapper removed.
func (d *PropertyDescriptor) BaseOwner() reflect.Type { return d.base }

// OwnerKind reports whether the owner is held by value or by reference.
func (d *PropertyDescriptor) OwnerKind() kindof.OwnerKindEnum { return d.ownerKind }

// ValueType returns the normalized value type (the pointee for by-reference
// properties).
func (d *PropertyDescriptor) ValueType() reflect.Type { return d.value }

// ValueKind returns the classified value kind.
func (d *PropertyDescriptor) ValueKind() kindof.ValueKindEnum { return d.valueKind }

// IsStatic reports whether the operations belong to the owner type itself.
func (d *PropertyDescriptor) IsStatic() bool { return d.static }

// IsByReference reports whether the property yields an alias into existing
// storage rather than a value.
func (d *PropertyDescriptor) IsByReference() bool { return d.byRef }

// ReadHandle returns the resolved read operation; check Resolved.
func (d *PropertyDescriptor) ReadHandle() *Handle { return &d.read }

// WriteHandle returns the resolved write operation; check Resolved.
func (d *PropertyDescriptor) WriteHandle() *Handle { return &d.write }

// Options returns the access options the handles were resolved under.
func (d *PropertyDescriptor) Options() access.Enum { return d.opts }

// Raw returns the original raw metadata handle.
func (d *PropertyDescriptor) Raw() *RawProperty { return d.raw }

// String identifies the property as owner.name, e.g. "samples.Person.Age".
func (d *PropertyDescriptor) String() string {
	return d.base.String() + "." + d.name
}
