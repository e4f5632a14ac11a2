package accessor

import (
	"accessor-engine/access"
	"accessor-engine/meta"
)

// Build is the single entry point of the factory: it validates and
// normalizes the raw metadata, resolves the read/write handles honoring
// opts, classifies the shape, and binds the selected variant.
//
// Construction fails only for malformed input (meta.ErrMalformedProperty).
// Shape-driven limitations never fail Build; they surface as per-operation
// errors on the returned accessor.
func Build(raw *meta.RawProperty, opts access.Enum) (Accessor, error) {
	desc, err := meta.NewDescriptor(raw, opts)
	if err != nil {
		return nil, err
	}

	return FromDescriptor(desc), nil
}

// FromDescriptor binds the variant selected by Classify to an already
// constructed descriptor.
func FromDescriptor(desc *meta.PropertyDescriptor) Accessor {
	p := property{desc: desc}

	switch Classify(desc) {
	case StrategyStatic:
		return &staticAccessor{p}
	case StrategyValueOwner:
		return &valueOwnerAccessor{p}
	case StrategyReferenceOwner:
		return &referenceOwnerAccessor{p}
	default:
		return &unsupportedAccessor{p}
	}
}
