package accessor

import (
	"accessor-engine/kindof"
	"accessor-engine/meta"
)

//go:generate go tool stringer -type=StrategyEnum -output=strategy_string.go

type StrategyEnum int

const (
	StrategyUnknown StrategyEnum = iota
	StrategyStatic
	StrategyValueOwner
	StrategyReferenceOwner
	StrategyUnsupported

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// Classify maps a descriptor's shape to its accessor strategy.
func Classify(d *meta.PropertyDescriptor) StrategyEnum {
	if d == nil {
		return StrategyUnknown
	}

	return ClassifyShape(d.ValueKind(), d.OwnerKind(), d.IsStatic())
}

// ClassifyShape is the pure decision rule behind Classify, usable without a
// descriptor (the static auditor mirrors the runtime classification through
// it). The decision order is a contract, not an accident: a stack-only value
// kind wins over static and owner kind, since no variant can hold or return
// such a value through the boxed uniform contract.
func ClassifyShape(value kindof.ValueKindEnum, owner kindof.OwnerKindEnum, static bool) StrategyEnum {
	switch {
	case !value.IsBoxable():
		return StrategyUnsupported
	case static:
		return StrategyStatic
	case owner == kindof.OwnerValue:
		return StrategyValueOwner
	default:
		return StrategyReferenceOwner
	}
}
