package verdict_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/verdictkit/verdict"
	"github.com/verdictkit/verdict/rules"
)

// validateOrder is the shape a caller composes out of the engine: one Status
// per field or collection, merged into a single answer for the payload.
func validateOrder(payload map[string]any) verdict.Status {
	return verdict.MergeAll(
		verdict.NewField[string]("id").
			AddRule(rules.NotEmpty()).
			AddRule(rules.ValidUUID()).
			Run(verdict.Path[string](payload, "id")),
		verdict.NewField[string]("customer.name").
			AddRule(rules.NotEmpty()).
			AddRule(rules.MinLen(3)).
			Run(verdict.Path[string](payload, "customer.name")),
		verdict.NewField[int]("customer.age").
			AddRule(rules.Between(18, 130)).
			Run(verdict.Path[int](payload, "customer.age")),
		verdict.ForEach(verdict.Items(payload, "items"), func(item any, i int) verdict.Status {
			return verdict.NewField[string](fmt.Sprintf("items[%d].sku", i)).
				AddRule(rules.NotEmpty()).
				AddRule(rules.Matches(`^[A-Z]{3}-\d{3}$`)).
				Run(func() string { return item.(map[string]any)["sku"].(string) })
		}),
	)
}

func decodeOrder(t *testing.T, doc string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &payload))
	return payload
}

func TestValidateOrder(t *testing.T) {
	t.Run("well-formed order passes", func(t *testing.T) {
		payload := decodeOrder(t, `
id: 550e8400-e29b-41d4-a716-446655440000
customer:
  name: Alice
  age: 34
items:
  - sku: ABC-123
  - sku: XYZ-999
`)
		st := validateOrder(payload)
		assert.True(t, st.IsSuccess())
		assert.Empty(t, st.Messages())
	})

	t.Run("violations are grouped per field with worst-case severity", func(t *testing.T) {
		payload := decodeOrder(t, `
id: not-a-uuid
customer:
  name: ab
  age: 17
items:
  - sku: ABC-123
  - sku: bad sku
`)
		st := validateOrder(payload)
		assert.Equal(t, verdict.DataError, st.Severity())
		assert.Equal(t, map[string][]string{
			"id":            {"must be a valid UUID"},
			"customer.name": {"must be at least 3 characters long"},
			"customer.age":  {"must be between 18 and 130"},
			"items[1].sku":  {"has an invalid format"},
		}, st.Messages())
	})

	t.Run("missing fields degrade to zero values and still report", func(t *testing.T) {
		payload := decodeOrder(t, `
customer:
  name: Alice
`)
		st := validateOrder(payload)
		assert.Equal(t, verdict.DataError, st.Severity())
		// Absent id resolves to "" and both rules report on it.
		assert.Equal(t, []string{"must not be empty", "must be a valid UUID"}, st.MessagesFor("id"))
		assert.Equal(t, []string{"must be between 18 and 130"}, st.MessagesFor("customer.age"))
		// Missing items collection merges as success.
		assert.Nil(t, st.MessagesFor("items[0].sku"))
	})

	t.Run("malformed document is a parse error that outranks data errors", func(t *testing.T) {
		var payload map[string]any
		err := yaml.Unmarshal([]byte("{not yaml: ["), &payload)
		require.Error(t, err)

		st := verdict.Merge(
			verdict.Failure(verdict.ParseError).WithMessage("document is not valid YAML", ""),
			verdict.Failure(verdict.DataError).WithMessage("irrelevant", "field"),
		)
		assert.Equal(t, verdict.ParseError, st.Severity())
		assert.Equal(t, []string{"document is not valid YAML"}, st.MessagesFor(""))
	})

	t.Run("malformed item element degrades without panicking", func(t *testing.T) {
		payload := decodeOrder(t, `
id: 550e8400-e29b-41d4-a716-446655440000
customer:
  name: Alice
  age: 34
items:
  - sku: ABC-123
  - just-a-string
`)
		st := validateOrder(payload)
		// The element supplier panics on the type assertion, the runner
		// substitutes "", and the strict rules report.
		assert.Equal(t, verdict.DataError, st.Severity())
		assert.Equal(t, []string{"must not be empty", "has an invalid format"}, st.MessagesFor("items[1].sku"))
	})
}
