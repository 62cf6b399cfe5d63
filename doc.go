// Package verdict is an embeddable rule-evaluation and result-aggregation
// engine for validating structured data against business rules.
//
// A caller declares, per logical field, an ordered set of predicate-based
// rules, runs them against a lazily-resolved value, and merges the outcomes
// into a single Status that keeps per-field error messages and a worst-case
// severity classification. Nested and collection-shaped data compose through
// the same merge algebra.
//
// # Architecture
//
// Three building blocks, leaves first:
//
//   - Status   – severity (Valid < DataError < ParseError) plus messages
//     grouped by key, with an associative Merge whose identity is Success
//   - Rule     – a typed predicate, a failure message, an explicit-exception
//     list (OrItIs), and a per-rule policy for predicate panics
//   - Field    – binds a key and an ordered rule list to a deferred value
//     supplier and merges the per-rule Statuses
//
// The companion rules subpackage supplies ready-made rule constructors for
// common checks; it is a pure consumer of the three types above.
//
// The engine is side-effect-free and never panics out of a validation run:
// a panicking value supplier degrades to the zero value, and a panicking
// predicate degrades to the rule's configured fallback, so every run returns
// a Status.
//
// # Usage
//
//	status := verdict.MergeAll(
//		verdict.NewField[string]("name").
//			AddRule(rules.NotEmpty()).
//			AddRule(rules.MinLen(3)).
//			Run(verdict.Path[string](payload, "name")),
//		verdict.NewField[int]("age").
//			AddRule(rules.Between(18, 130)).
//			Run(verdict.Path[int](payload, "age")),
//	)
//	if !status.IsSuccess() {
//		for key, msgs := range status.Messages() {
//			// render msgs under key
//		}
//	}
//
// # Concurrency
//
// Fully constructed Rules are immutable and safe to share across goroutines.
// OrItIs mutates the rule and belongs to the construction phase only. A
// Field is assembled and run once per validation pass.
package verdict
