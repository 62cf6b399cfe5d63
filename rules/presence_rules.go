package rules

import (
	"strings"

	"github.com/verdictkit/verdict"
)

// NotZero validates that a comparable value is not its zero value. Strict: a
// panicking comparison counts as a violation, since this rule exists to
// reject absence.
func NotZero[T comparable]() *verdict.Rule[T] {
	var zero T
	return verdict.NewStrictRule(func(v T) bool {
		return v != zero
	}, "must be provided")
}

// NotNil validates that a pointer is non-nil.
func NotNil[T any]() *verdict.Rule[*T] {
	return verdict.NewStrictRule(func(v *T) bool {
		return v != nil
	}, "must not be null")
}

// NotNilValue is NotNil for untyped payload values, as produced by
// verdict.Path[any].
func NotNilValue() *verdict.Rule[any] {
	return verdict.NewStrictRule(func(v any) bool {
		return v != nil
	}, "must not be null")
}

// NotEmpty validates that a string has content after trimming whitespace.
func NotEmpty() *verdict.Rule[string] {
	return verdict.NewStrictRule(func(v string) bool {
		return strings.TrimSpace(v) != ""
	}, "must not be empty")
}
