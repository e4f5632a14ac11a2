package accessor_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"accessor-engine/access"
	"accessor-engine/accessor"
	"accessor-engine/meta"
	"accessor-engine/samples"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		raw  *meta.RawProperty
		want accessor.StrategyEnum
	}{
		{
			name: "reference owner",
			raw:  personAge(),
			want: accessor.StrategyReferenceOwner,
		},
		{
			name: "value owner",
			raw: &meta.RawProperty{
				Name:  "X",
				Owner: reflect.TypeOf(samples.Point{}),
				Field: "X",
			},
			want: accessor.StrategyValueOwner,
		},
		{
			name: "static",
			raw: &meta.RawProperty{
				Name:      "Counter",
				Owner:     reflect.TypeOf(&samples.Person{}),
				Static:    true,
				StaticVar: samples.OrdersVar(),
			},
			want: accessor.StrategyStatic,
		},
		{
			// Stack-only wins over static: ordering is part of the contract.
			name: "static stack-only",
			raw: &meta.RawProperty{
				Name:   "Scratch",
				Owner:  reflect.TypeOf(&samples.Person{}),
				Static: true,
				Value:  reflect.TypeOf(samples.BufferView{}),
			},
			want: accessor.StrategyUnsupported,
		},
		{
			name: "value-owner stack-only",
			raw: &meta.RawProperty{
				Name:  "View",
				Owner: reflect.TypeOf(samples.Point{}),
				Value: reflect.TypeOf(samples.BufferView{}),
			},
			want: accessor.StrategyUnsupported,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := meta.NewDescriptor(tc.raw, access.Default)
			require.NoError(t, err)
			require.Equal(t, tc.want, accessor.Classify(d))
		})
	}

	require.Equal(t, accessor.StrategyUnknown, accessor.Classify(nil))
}

func ExampleBuild() {
	acc, err := accessor.Build(&meta.RawProperty{
		Name:  "Age",
		Owner: reflect.TypeOf(&samples.Person{}),
		Field: "Age",
	}, access.Default)
	if err != nil {
		panic(err)
	}

	p := &samples.Person{Name: "Ada"}
	_ = acc.SetInstance(p, int32(42))

	v, _ := acc.GetInstance(p)
	fmt.Println(acc.Name(), v)
	// Output:
	// Age 42
}
