package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

var requiredEdgeFields = []string{"source", "target", "relation", "weight"}

// ValidateDocument checks a generically decoded input document and returns
// every problem it can find as a human-readable message. An empty result
// means the document is valid. It never panics, whatever the input shape.
//
// A malformed top level (not an object, missing keys, non-array nodes or
// edges) stops validation early since deeper checks would be meaningless.
func ValidateDocument(doc any) []string {
	problems := make([]string, 0)

	obj, ok := doc.(map[string]any)
	if !ok {
		return append(problems, "Input must be a JSON object")
	}

	rawNodes, hasNodes := obj["nodes"]
	rawEdges, hasEdges := obj["edges"]
	if !hasNodes {
		problems = append(problems, "Missing required key: 'nodes'")
	}
	if !hasEdges {
		problems = append(problems, "Missing required key: 'edges'")
	}
	if len(problems) > 0 {
		return problems
	}

	nodes, ok := rawNodes.([]any)
	if !ok {
		return append(problems, "'nodes' must be an array")
	}

	nodeSet := make(map[string]struct{}, len(nodes))
	for i, n := range nodes {
		name, ok := n.(string)
		if !ok {
			problems = append(problems, fmt.Sprintf("nodes[%d]: expected string, got %s", i, jsonType(n)))
			continue
		}
		nodeSet[name] = struct{}{}
	}

	edges, ok := rawEdges.([]any)
	if !ok {
		return append(problems, "'edges' must be an array")
	}

	for i, e := range edges {
		problems = append(problems, validateEdge(i, e, nodeSet)...)
	}

	return problems
}

func validateEdge(i int, e any, nodeSet map[string]struct{}) []string {
	fields, ok := e.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("edges[%d]: expected object, got %s", i, jsonType(e))}
	}

	var missing []string
	for _, f := range requiredEdgeFields {
		if _, ok := fields[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		quoted := make([]string, len(missing))
		for j, f := range missing {
			quoted[j] = "'" + f + "'"
		}
		return []string{fmt.Sprintf("edges[%d]: missing required fields: [%s]", i, strings.Join(quoted, ", "))}
	}

	var problems []string
	for _, end := range []string{"source", "target"} {
		name, ok := fields[end].(string)
		if !ok {
			problems = append(problems, fmt.Sprintf("edges[%d].%s: expected string, got %s", i, end, jsonType(fields[end])))
			continue
		}
		if _, ok := nodeSet[name]; !ok {
			problems = append(problems, fmt.Sprintf("edges[%d].%s: '%s' not found in nodes", i, end, name))
		}
	}

	if _, ok := fields["relation"].(string); !ok {
		problems = append(problems, fmt.Sprintf("edges[%d].relation: expected string, got %s", i, jsonType(fields["relation"])))
	}

	weight, ok := number(fields["weight"])
	switch {
	case !ok:
		problems = append(problems, fmt.Sprintf("edges[%d].weight: expected number, got %s", i, jsonType(fields["weight"])))
	case math.IsNaN(weight) || math.IsInf(weight, 0):
		problems = append(problems, fmt.Sprintf("edges[%d].weight: must be finite, got %s", i, formatFloat(weight)))
	case weight < 0:
		problems = append(problems, fmt.Sprintf("edges[%d].weight: must be non-negative, got %s", i, formatFloat(weight)))
	}

	return problems
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// jsonType names the JSON type of a decoded value.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ValidateStruct checks a struct against its `validate` tags and returns one
// message per violated field.
func ValidateStruct(s any) []string {
	if s == nil {
		return []string{"value cannot be nil"}
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		problems = append(problems, formatFieldError(e))
	}
	return problems
}

// formatFieldError converts a validator field error to a user-friendly message
func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field is required", field)
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s, got %v", field, param, e.Value())
	case "gte", "min":
		return fmt.Sprintf("%s: must be at least %s, got %v", field, param, e.Value())
	case "lte", "max":
		return fmt.Sprintf("%s: must not exceed %s, got %v", field, param, e.Value())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s], got %v", field, param, e.Value())
	default:
		return fmt.Sprintf("%s: validation failed (%s)", field, e.Tag())
	}
}
