// Package rules provides ready-made rule constructors for the verdict
// engine, grouped one file per family: presence, string length, numeric
// bounds, format, and collection checks.
//
// Every exported function simply constructs and returns a *verdict.Rule;
// there is no hidden state, so the package is allocation-light and safe for
// concurrent use once a rule is fully constructed (including any OrItIs
// chaining done by the caller).
//
// Messages are phrased to read naturally with a field name prepended via
// Field.RunWithPrefix, e.g. "name must be at least 3 characters long".
package rules
