package rules

import (
	"fmt"

	"github.com/verdictkit/verdict"
)

// MinLen validates that a string is at least min characters long.
func MinLen(min int) *verdict.Rule[string] {
	return verdict.NewStrictRule(func(v string) bool {
		return len(v) >= min
	}, fmt.Sprintf("must be at least %d characters long", min))
}

// MaxLen validates that a string is at most max characters long.
func MaxLen(max int) *verdict.Rule[string] {
	return verdict.NewStrictRule(func(v string) bool {
		return len(v) <= max
	}, fmt.Sprintf("must be at most %d characters long", max))
}

// LenBetween validates that a string's length falls within [min, max].
func LenBetween(min, max int) *verdict.Rule[string] {
	return verdict.NewStrictRule(func(v string) bool {
		return len(v) >= min && len(v) <= max
	}, fmt.Sprintf("must be between %d and %d characters long", min, max))
}
