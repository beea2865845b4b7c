package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema checks a model reply against the envelope schema
// built by BuildEnvelopeJSONSchema. Callers treat a mismatch as a malformed
// reply, not a fatal scan error.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("encode envelope schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("envelope.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("register envelope schema: %w", err)
	}
	schema, err := compiler.Compile("envelope.schema.json")
	if err != nil {
		return fmt.Errorf("compile envelope schema: %w", err)
	}

	var reply any
	if err := json.Unmarshal(data, &reply); err != nil {
		return fmt.Errorf("reply is not valid JSON: %w", err)
	}
	if err := schema.Validate(reply); err != nil {
		return fmt.Errorf("reply does not match envelope shape: %w", err)
	}
	return nil
}
