package rules

import (
	"fmt"

	"github.com/verdictkit/verdict"
)

// Numeric is the constraint shared by the numeric bound rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a numeric value is at least min. Strict: bound checks
// must actively reject values that cannot be compared.
func Min[T Numeric](min T) *verdict.Rule[T] {
	return verdict.NewStrictRule(func(v T) bool {
		return v >= min
	}, fmt.Sprintf("must be at least %v", min))
}

// Max validates that a numeric value does not exceed max.
func Max[T Numeric](max T) *verdict.Rule[T] {
	return verdict.NewStrictRule(func(v T) bool {
		return v <= max
	}, fmt.Sprintf("must not exceed %v", max))
}

// Between validates that a numeric value falls within [min, max].
func Between[T Numeric](min, max T) *verdict.Rule[T] {
	return verdict.NewStrictRule(func(v T) bool {
		return v >= min && v <= max
	}, fmt.Sprintf("must be between %v and %v", min, max))
}
