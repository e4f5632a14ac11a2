// Package accessor builds specialized read/write accessors for described
// properties. The shape classifier maps each property descriptor to one of a
// closed set of strategies (static, value-owner, reference-owner,
// unsupported); the factory binds the selected variant behind one uniform
// Accessor interface.
//
// Building never fails for shape reasons: an accessor is produced for every
// well-formed descriptor, and shape limitations surface lazily on the first
// operation that hits them.
package accessor
