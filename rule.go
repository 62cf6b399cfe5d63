package verdict

import "reflect"

// Predicate is the business condition a Rule tests.
type Predicate[T any] func(T) bool

// Rule is a single reusable condition over values of type T: a predicate, a
// failure message, an error-fallback policy, and an optional list of values
// that satisfy the rule without the predicate ever running.
//
// Rules hold no per-run state, so a fully constructed Rule may be shared
// across fields and run from many goroutines. Construction is not
// synchronized: finish all OrItIs calls before the first Run.
type Rule[T any] struct {
	predicate Predicate[T]
	message   string
	// fallback is the satisfaction substituted when the predicate panics.
	fallback        bool
	explicitlyValid []T
}

// NewRule builds a Rule whose predicate failure at runtime counts as
// satisfied. This is the right default for most rules: a length check that
// panics on malformed input should stay quiet and leave the rejection to a
// dedicated presence rule.
//
// The message should read naturally with a field name prepended, e.g.
// "must be at least 3 characters long".
func NewRule[T any](predicate Predicate[T], message string) *Rule[T] {
	return &Rule[T]{predicate: predicate, message: message, fallback: true}
}

// NewStrictRule builds a Rule whose predicate failure at runtime counts as a
// violation. Presence and bound checks that must actively reject absent or
// malformed values use this form.
func NewStrictRule[T any](predicate Predicate[T], message string) *Rule[T] {
	return &Rule[T]{predicate: predicate, message: message}
}

// OrItIs appends values that always satisfy the rule, bypassing the
// predicate entirely. Used to whitelist sentinel or legacy values. Returns
// the receiver for chaining; call only during construction (see type doc).
func (r *Rule[T]) OrItIs(values ...T) *Rule[T] {
	r.explicitlyValid = append(r.explicitlyValid, values...)
	return r
}

// Run evaluates the rule against value. A satisfied rule yields Success; an
// unsatisfied one yields a DataError Status with prefix+message recorded
// under key. Run never panics: a panicking predicate resolves to the rule's
// configured fallback instead.
func (r *Rule[T]) Run(value T, key, prefix string) Status {
	if r.satisfied(value) {
		return Success()
	}
	return Failure(DataError).WithMessage(prefix+r.message, key)
}

func (r *Rule[T]) satisfied(value T) (ok bool) {
	for _, v := range r.explicitlyValid {
		if reflect.DeepEqual(v, value) {
			return true
		}
	}
	defer func() {
		if recover() != nil {
			ok = r.fallback
		}
	}()
	return r.predicate(value)
}
