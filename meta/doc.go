// Package meta holds the canonical, immutable description of one property:
// its identity, its classified shape, and the resolved low-level read/write
// operation handles.
//
// Key types:
//   - RawProperty: the raw metadata supplied by the surrounding framework
//   - PropertyDescriptor: validated, normalized shape facts + bound handles
//   - Handle: one resolved read or write operation (field, func, or slot)
//
// A descriptor is fully resolved at construction and never changes. Shape
// never fails construction; only absent or internally inconsistent raw
// metadata does (ErrMalformedProperty).
package meta
