package access

// Enum is a bit set of binding options applied while resolving the read and
// write operations of a property. The set is extensible: the surrounding
// framework may define further bits, and this layer ignores bits it does not
// recognize.
type Enum int

const (
	IncludeNonPublic Enum = 1 << iota // widen resolution to non-public (unexported) members
	StaticOnly                        // resolve only static members; instance members are treated as absent
	InstanceOnly                      // resolve only instance members; static members are treated as absent

	All     Enum = (1 << iota) - 1 // all recognized options combined
	Default Enum = 0               // public members only, both static and instance
)

// Has returns true if every bit of opt is set in e.
func (e Enum) Has(opt Enum) bool {
	return e&opt == opt
}
