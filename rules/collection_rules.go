package rules

import (
	"fmt"

	"github.com/verdictkit/verdict"
)

// MinItems validates that a slice has at least min items. Strict, so a nil
// slice substituted for an unresolvable collection still reports.
func MinItems[T any](min int) *verdict.Rule[[]T] {
	return verdict.NewStrictRule(func(v []T) bool {
		return len(v) >= min
	}, fmt.Sprintf("must have at least %d items", min))
}

// MaxItems validates that a slice has at most max items.
func MaxItems[T any](max int) *verdict.Rule[[]T] {
	return verdict.NewStrictRule(func(v []T) bool {
		return len(v) <= max
	}, fmt.Sprintf("must have at most %d items", max))
}

// Unique validates that no two items of a slice are equal.
func Unique[T comparable](what string) *verdict.Rule[[]T] {
	return UniqueBy(func(v T) any { return v }, what)
}

// UniqueBy validates that no two items project to the same key. A panicking
// projection substitutes a nil absence marker before distinctness is
// computed, so two items that both fail to project collide as duplicates of
// each other. The what argument names the projected quality in the failure
// message, e.g. "ids".
func UniqueBy[T any](project func(T) any, what string) *verdict.Rule[[]T] {
	return verdict.NewStrictRule(func(items []T) bool {
		seen := make(map[any]struct{}, len(items))
		for _, item := range items {
			k := safeProject(project, item)
			if _, dup := seen[k]; dup {
				return false
			}
			seen[k] = struct{}{}
		}
		return true
	}, fmt.Sprintf("must not contain duplicate %s", what))
}

func safeProject[T any](project func(T) any, item T) (key any) {
	defer func() {
		if recover() != nil {
			key = nil
		}
	}()
	return project(item)
}
