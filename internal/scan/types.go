package scan

import (
	"accessor-engine/accessor"
	"accessor-engine/internal/diagnostic"
	"accessor-engine/kindof"
)

// TypeID uniquely identifies an owner type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "accessor-engine/samples"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Property is one discovered property of an owner type.
type Property struct {
	// Owner is the declaring struct type.
	Owner TypeID
	// Name of the property within the owner's namespace.
	Name string
	// ValueName is the rendered value type, e.g. "int32" or "*samples.Wallet".
	ValueName string
	// ValueKind is the classified value kind, matching the runtime classifier.
	ValueKind kindof.ValueKindEnum
	// Strategy the property would bind to with the owner held by reference.
	Strategy accessor.StrategyEnum
	// CanRead / CanWrite report which directions are available.
	CanRead  bool
	CanWrite bool
	// ReadVia / WriteVia name the backing operation ("field" or "method").
	ReadVia  string
	WriteVia string
}

// OwnerReport groups the properties of one owner type.
type OwnerReport struct {
	ID    TypeID
	Props []Property
}

// Report is the full output of one audit run.
type Report struct {
	Owners []OwnerReport
	Diags  diagnostic.Diagnostics
}
