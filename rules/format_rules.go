package rules

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/verdictkit/verdict"
)

// Matches validates a string against a regular expression, compiled once at
// construction. Panics on an invalid pattern, like regexp.MustCompile —
// patterns are programmer input, not data.
func Matches(pattern string) *verdict.Rule[string] {
	re := regexp.MustCompile(pattern)
	return verdict.NewRule(func(v string) bool {
		return re.MatchString(v)
	}, "has an invalid format")
}

// ValidUUID validates standard UUID format with pre-validation to avoid
// expensive parsing.
func ValidUUID() *verdict.Rule[string] {
	return verdict.NewRule(func(v string) bool {
		// Fast rejection: check length and hyphen positions before parsing
		if len(v) != 36 {
			return false
		}
		if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	}, "must be a valid UUID")
}
