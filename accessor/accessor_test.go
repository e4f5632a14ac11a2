package accessor_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-engine/access"
	"accessor-engine/accessor"
	"accessor-engine/meta"
	"accessor-engine/samples"
)

func personAge() *meta.RawProperty {
	return &meta.RawProperty{
		Name:  "Age",
		Owner: reflect.TypeOf(&samples.Person{}),
		Field: "Age",
	}
}

// Scenario: reference-owner instance property with both handles resolved.
func TestReferenceOwnerRoundTrip(t *testing.T) {
	acc, err := accessor.Build(personAge(), access.Default)
	require.NoError(t, err)
	assert.Equal(t, "Age", acc.Name())

	p := &samples.Person{}
	require.NoError(t, acc.SetInstance(p, int32(42)))

	got, err := acc.GetInstance(p)
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)

	_, err = acc.GetStatic()
	assert.ErrorIs(t, err, accessor.ErrNotStaticMember)
	assert.ErrorIs(t, acc.SetStatic(int32(1)), accessor.ErrNotStaticMember)
}

func TestReferenceOwnerMethodBacked(t *testing.T) {
	acc, err := accessor.Build(&meta.RawProperty{
		Name:   "Note",
		Owner:  reflect.TypeOf(&samples.Person{}),
		Getter: (*samples.Person).Note,
		Setter: (*samples.Person).SetNote,
	}, access.Default)
	require.NoError(t, err)

	p := &samples.Person{}
	require.NoError(t, acc.SetInstance(p, "remember"))

	got, err := acc.GetInstance(p)
	require.NoError(t, err)
	assert.Equal(t, "remember", got)
}

func TestReferenceOwnerRejectsForeignOwner(t *testing.T) {
	acc, err := accessor.Build(personAge(), access.Default)
	require.NoError(t, err)

	_, err = acc.GetInstance(&samples.Wallet{})
	assert.ErrorIs(t, err, accessor.ErrOwnerMismatch)

	_, err = acc.GetInstance((*samples.Person)(nil))
	assert.ErrorIs(t, err, accessor.ErrOwnerMismatch)

	assert.ErrorIs(t, acc.SetInstance(42, int32(1)), accessor.ErrOwnerMismatch)
}

// The one subtlety of the value-owner variant: a write must reach the
// caller's instance, never a transient copy.
func TestValueOwnerWriteReachesCaller(t *testing.T) {
	acc, err := accessor.Build(&meta.RawProperty{
		Name:  "X",
		Owner: reflect.TypeOf(samples.Point{}),
		Field: "X",
	}, access.Default)
	require.NoError(t, err)

	pt := samples.Point{X: 1, Y: 2}

	// A by-value owner is rejected outright rather than silently written to
	// a discarded copy.
	assert.ErrorIs(t, acc.SetInstance(pt, 8.0), accessor.ErrOwnerNotAddressable)
	assert.Equal(t, 1.0, pt.X)

	require.NoError(t, acc.SetInstance(&pt, 8.0))
	assert.Equal(t, 8.0, pt.X)

	// Reads operate on the exact instance passed in, value or pointer.
	got, err := acc.GetInstance(pt)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)

	got, err = acc.GetInstance(&pt)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)

	_, err = acc.GetStatic()
	assert.ErrorIs(t, err, accessor.ErrNotStaticMember)
}

func TestValueOwnerMethodBacked(t *testing.T) {
	acc, err := accessor.Build(&meta.RawProperty{
		Name:   "X",
		Owner:  reflect.TypeOf(samples.Point{}),
		Value:  reflect.TypeOf(float64(0)),
		Getter: func(p samples.Point) float64 { return p.X },
		Setter: (*samples.Point).SetX,
	}, access.Default)
	require.NoError(t, err)

	pt := samples.Point{}
	require.NoError(t, acc.SetInstance(&pt, 3.5))
	assert.Equal(t, 3.5, pt.X)

	got, err := acc.GetInstance(pt)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)
}

// Scenario: static property, both handles resolved.
func TestStaticRoundTrip(t *testing.T) {
	acc, err := accessor.Build(&meta.RawProperty{
		Name:   "Counter",
		Owner:  reflect.TypeOf(&samples.Person{}),
		Static: true,
		Getter: samples.Orders,
		Setter: samples.SetOrders,
	}, access.Default)
	require.NoError(t, err)

	require.NoError(t, acc.SetStatic(int32(7)))

	got, err := acc.GetStatic()
	require.NoError(t, err)
	assert.Equal(t, int32(7), got)

	_, err = acc.GetInstance(&samples.Person{})
	assert.ErrorIs(t, err, accessor.ErrNotInstanceMember)
	assert.ErrorIs(t, acc.SetInstance(&samples.Person{}, int32(1)), accessor.ErrNotInstanceMember)
}

func TestStaticSlotBacked(t *testing.T) {
	acc, err := accessor.Build(&meta.RawProperty{
		Name:      "Counter",
		Owner:     reflect.TypeOf(&samples.Person{}),
		Static:    true,
		StaticVar: samples.OrdersVar(),
	}, access.Default)
	require.NoError(t, err)

	require.NoError(t, acc.SetStatic(int32(31)))
	assert.Equal(t, int32(31), samples.Orders())

	got, err := acc.GetStatic()
	require.NoError(t, err)
	assert.Equal(t, int32(31), got)
}

// Scenario: stack-only value kind. Construction succeeds; every operation
// fails, naming the property.
func TestUnsupportedShapeFailsLazily(t *testing.T) {
	acc, err := accessor.Build(&meta.RawProperty{
		Name:  "Span",
		Owner: reflect.TypeOf(&samples.Person{}),
		Value: reflect.TypeOf(samples.BufferView{}),
	}, access.Default)
	require.NoError(t, err)

	p := &samples.Person{}

	_, err = acc.GetInstance(p)
	assert.ErrorIs(t, err, accessor.ErrUnsupportedShape)
	assert.Contains(t, err.Error(), "Span")

	assert.ErrorIs(t, acc.SetInstance(p, samples.BufferView{}), accessor.ErrUnsupportedShape)

	_, err = acc.GetStatic()
	assert.ErrorIs(t, err, accessor.ErrUnsupportedShape)
	assert.ErrorIs(t, acc.SetStatic(nil), accessor.ErrUnsupportedShape)
}

func TestMissingDirection(t *testing.T) {
	t.Run("read-only", func(t *testing.T) {
		acc, err := accessor.Build(&meta.RawProperty{
			Name:   "Norm2",
			Owner:  reflect.TypeOf(samples.Point{}),
			Getter: samples.Point.Norm2,
		}, access.Default)
		require.NoError(t, err)

		pt := samples.Point{X: 3, Y: 4}
		got, err := acc.GetInstance(pt)
		require.NoError(t, err)
		assert.Equal(t, 25.0, got)

		err = acc.SetInstance(&pt, 1.0)
		assert.ErrorIs(t, err, accessor.ErrMissingAccessor)
		assert.Contains(t, err.Error(), "Norm2")
	})

	t.Run("write-only", func(t *testing.T) {
		acc, err := accessor.Build(&meta.RawProperty{
			Name:   "X",
			Owner:  reflect.TypeOf(samples.Point{}),
			Setter: (*samples.Point).SetX,
		}, access.Default)
		require.NoError(t, err)

		pt := samples.Point{}
		require.NoError(t, acc.SetInstance(&pt, 2.0))
		assert.Equal(t, 2.0, pt.X)

		_, err = acc.GetInstance(pt)
		assert.ErrorIs(t, err, accessor.ErrMissingAccessor)
	})

	t.Run("excluded by options", func(t *testing.T) {
		acc, err := accessor.Build(personAge(), access.StaticOnly)
		require.NoError(t, err)

		_, err = acc.GetInstance(&samples.Person{})
		assert.ErrorIs(t, err, accessor.ErrMissingAccessor)
	})
}

func TestValueMismatch(t *testing.T) {
	acc, err := accessor.Build(personAge(), access.Default)
	require.NoError(t, err)

	err = acc.SetInstance(&samples.Person{}, "forty-two")
	assert.ErrorIs(t, err, accessor.ErrValueMismatch)

	err = acc.SetInstance(&samples.Person{}, nil)
	assert.ErrorIs(t, err, accessor.ErrValueMismatch)
}

func TestByReferenceWriteThroughAlias(t *testing.T) {
	t.Run("getter alias", func(t *testing.T) {
		acc, err := accessor.Build(&meta.RawProperty{
			Name:   "Balance",
			Owner:  reflect.TypeOf(&samples.Wallet{}),
			Getter: (*samples.Wallet).BalanceRef,
			ByRef:  true,
		}, access.Default)
		require.NoError(t, err)

		w := samples.NewWallet(100)
		require.NoError(t, acc.SetInstance(w, int64(250)))

		got, err := acc.GetInstance(w)
		require.NoError(t, err)
		assert.Equal(t, int64(250), got)
	})

	t.Run("aliasing field", func(t *testing.T) {
		acc, err := accessor.Build(&meta.RawProperty{
			Name:  "Cap",
			Owner: reflect.TypeOf(&samples.Wallet{}),
			Field: "Cap",
			ByRef: true,
		}, access.Default)
		require.NoError(t, err)

		limit := int64(500)
		w := samples.NewWallet(0)
		w.Cap = &limit

		require.NoError(t, acc.SetInstance(w, int64(750)))
		// The write lands in the aliased storage, not the field.
		assert.Equal(t, int64(750), limit)

		got, err := acc.GetInstance(w)
		require.NoError(t, err)
		assert.Equal(t, int64(750), got)
	})

	t.Run("static slot alias", func(t *testing.T) {
		storage := int64(100)
		alias := &storage

		acc, err := accessor.Build(&meta.RawProperty{
			Name:      "Rate",
			Owner:     reflect.TypeOf(&samples.Wallet{}),
			Static:    true,
			StaticVar: &alias,
			ByRef:     true,
		}, access.Default)
		require.NoError(t, err)

		got, err := acc.GetStatic()
		require.NoError(t, err)
		assert.Equal(t, int64(100), got)

		require.NoError(t, acc.SetStatic(int64(250)))
		assert.Equal(t, int64(250), storage)

		got, err = acc.GetStatic()
		require.NoError(t, err)
		assert.Equal(t, int64(250), got)
	})
}

// One accessor, many owners, no locking: the accessor itself carries no
// mutable state after construction.
func TestConcurrentUse(t *testing.T) {
	acc, err := accessor.Build(personAge(), access.Default)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			p := &samples.Person{}
			for j := 0; j < 100; j++ {
				if err := acc.SetInstance(p, int32(i)); err != nil {
					t.Error(err)
					return
				}
				got, err := acc.GetInstance(p)
				if err != nil {
					t.Error(err)
					return
				}
				if got != int32(i) {
					t.Errorf("got %v, want %d", got, i)
					return
				}
			}
		}()
	}
	wg.Wait()
}
