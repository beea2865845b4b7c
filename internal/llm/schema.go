package llm

import "github.com/marketlens/marketlens/internal/fields"

// BuildEnvelopeJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the {summary, structured} envelope, with every schema field required so
// the model cannot omit keys.
func BuildEnvelopeJSONSchema(schema fields.Schema) map[string]any {
	structuredProps := map[string]any{}
	required := make([]string, 0, len(schema))
	for _, f := range schema {
		structuredProps[f.Name] = map[string]any{"type": "string"}
		required = append(required, f.Name)
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"structured": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
				"properties":           structuredProps,
				"required":             required,
			},
		},
		"required": []string{"summary", "structured"},
	}
}
