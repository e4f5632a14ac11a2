package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-engine/access"
	"accessor-engine/accessor"
	"accessor-engine/kindof"
)

func loadSamples(t *testing.T, opts access.Enum) *Report {
	t.Helper()

	rep, err := NewScanner(opts).Scan("accessor-engine/samples")
	require.NoError(t, err)
	require.NotNil(t, rep)

	return rep
}

func findOwner(t *testing.T, rep *Report, name string) OwnerReport {
	t.Helper()

	for _, o := range rep.Owners {
		if o.ID.Name == name {
			return o
		}
	}

	t.Fatalf("owner %s not found in report", name)
	return OwnerReport{}
}

func findProp(t *testing.T, o OwnerReport, name string) Property {
	t.Helper()

	for _, p := range o.Props {
		if p.Name == name {
			return p
		}
	}

	t.Fatalf("property %s not found on %s", name, o.ID)
	return Property{}
}

func TestScannerDiscoversProperties(t *testing.T) {
	rep := loadSamples(t, access.Default)

	person := findOwner(t, rep, "Person")

	age := findProp(t, person, "Age")
	assert.Equal(t, kindof.KindInt32, age.ValueKind)
	assert.Equal(t, accessor.StrategyReferenceOwner, age.Strategy)
	assert.True(t, age.CanRead)
	assert.True(t, age.CanWrite)
	assert.Equal(t, "field", age.ReadVia)

	// Note is backed by a getter/setter method pair.
	note := findProp(t, person, "Note")
	assert.Equal(t, kindof.KindString, note.ValueKind)
	assert.True(t, note.CanRead)
	assert.True(t, note.CanWrite)
	assert.Equal(t, "method", note.ReadVia)
	assert.Equal(t, "method", note.WriteVia)

	point := findOwner(t, rep, "Point")

	// Norm2 is a getter-only property.
	norm2 := findProp(t, point, "Norm2")
	assert.True(t, norm2.CanRead)
	assert.False(t, norm2.CanWrite)

	// A field property shadows the setter-only method of the same name.
	x := findProp(t, point, "X")
	assert.Equal(t, "field", x.WriteVia)

	// BalanceRef yields an alias: classified as an address-sized handle.
	wallet := findOwner(t, rep, "Wallet")
	balance := findProp(t, wallet, "BalanceRef")
	assert.Equal(t, kindof.KindHandle, balance.ValueKind)
	assert.True(t, balance.CanRead)
	assert.False(t, balance.CanWrite)
}

func TestScannerFlagsStackOnly(t *testing.T) {
	rep := loadSamples(t, access.Default)

	pipeline := findOwner(t, rep, "Pipeline")
	view := findProp(t, pipeline, "View")
	assert.Equal(t, kindof.KindStackOnly, view.ValueKind)
	assert.Equal(t, accessor.StrategyUnsupported, view.Strategy)

	var found bool
	for _, d := range rep.Diags.Warnings {
		if d.Code == "stack-only" && d.Property == "View" {
			found = true
		}
	}
	assert.True(t, found, "expected a stack-only warning for Pipeline.View")
}

func TestScannerFlagsLostWrites(t *testing.T) {
	rep := loadSamples(t, access.Default)

	odometer := findOwner(t, rep, "Odometer")
	reading := findProp(t, odometer, "Reading")
	assert.True(t, reading.CanRead)
	// The by-value setter does not count as a write operation.
	assert.False(t, reading.CanWrite)

	var found bool
	for _, d := range rep.Diags.Warnings {
		if d.Code == "lost-write" && d.Property == "Reading" {
			found = true
		}
	}
	assert.True(t, found, "expected a lost-write warning for Odometer.SetReading")
}

func TestScannerNonPublicMembers(t *testing.T) {
	rep := loadSamples(t, access.Default)
	person := findOwner(t, rep, "Person")
	for _, p := range person.Props {
		assert.NotEqual(t, "note", p.Name, "unexported field leaked into default scan")
	}

	rep = loadSamples(t, access.IncludeNonPublic)
	person = findOwner(t, rep, "Person")
	note := findProp(t, person, "note")
	assert.Equal(t, kindof.KindString, note.ValueKind)
}

func TestValueKindMirror(t *testing.T) {
	rep := loadSamples(t, access.Default)

	person := findOwner(t, rep, "Person")
	name := findProp(t, person, "Name")
	assert.Equal(t, kindof.KindString, name.ValueKind)
	assert.Equal(t, "string", name.ValueName)

	pipeline := findOwner(t, rep, "Pipeline")
	assert.Equal(t, "BufferView", findProp(t, pipeline, "View").ValueName)
}
