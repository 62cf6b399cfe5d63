package verdict

// Supplier resolves a value lazily. The engine only ever calls a Supplier
// behind a recover, so a Supplier is free to panic when the value cannot be
// produced; the zero value of T is substituted and validation continues.
type Supplier[T any] func() T

// Field binds a grouping key to an ordered list of rules and runs them
// against one deferred value. Rule order affects message order only: every
// rule is evaluated and every failure accumulates.
//
// A Field is assembled once via chaining and then run; treat an instance as
// single-use per validation pass.
type Field[T any] struct {
	key   string
	rules []*Rule[T]
}

// NewField starts a field declaration. Every message produced by this
// field's rules is grouped under key.
func NewField[T any](key string) *Field[T] {
	return &Field[T]{key: key}
}

// AddRule appends a rule and returns the receiver for chaining. Rules may be
// shared across fields; the field only reads them.
func (f *Field[T]) AddRule(r *Rule[T]) *Field[T] {
	f.rules = append(f.rules, r)
	return f
}

// AddPredicate appends an ad-hoc rule from a zero-argument check, for
// side-conditions that are not a function of the field's value. A panicking
// check counts as satisfied; use AddRule with NewStrictRule when it must
// count as a violation.
func (f *Field[T]) AddPredicate(check func() bool, message string) *Field[T] {
	return f.AddRule(NewRule(func(T) bool { return check() }, message))
}

// Run resolves the value from supplier and evaluates every rule against it,
// merging the per-rule Statuses into one. If the supplier panics or is nil,
// the zero value of T is used so presence rules still get to report. Run
// never panics.
func (f *Field[T]) Run(supplier Supplier[T]) Status {
	return f.RunWithPrefix(supplier, "")
}

// RunWithPrefix is Run with a prefix prepended to every failure message,
// typically a human-readable field name.
func (f *Field[T]) RunWithPrefix(supplier Supplier[T], prefix string) Status {
	value := resolve(supplier)
	statuses := make([]Status, 0, len(f.rules))
	for _, r := range f.rules {
		statuses = append(statuses, r.Run(value, f.key, prefix))
	}
	return MergeAll(statuses...)
}

func resolve[T any](supplier Supplier[T]) (value T) {
	defer func() {
		_ = recover() // keep the zero value
	}()
	if supplier == nil {
		return
	}
	return supplier()
}
