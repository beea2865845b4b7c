// Package fields builds the extraction instruction schema sent to the LLM.
package fields

import (
	"strings"

	"github.com/marketlens/marketlens/constants"
)

// Field pairs a field name with its extraction instruction.
type Field struct {
	Name        string
	Instruction string
}

// Schema is an ordered list of extraction fields. Order is preserved from
// the input so prompts are reproducible.
type Schema []Field

// Build turns a target's configured field list into an extraction schema.
// An empty list substitutes the default field set, and the brands field is
// always present exactly once. Pure and deterministic.
func Build(custom []string) Schema {
	names := custom
	if len(names) == 0 {
		names = constants.DefaultFields
	}

	schema := make(Schema, 0, len(names)+1)
	seen := map[string]struct{}{}
	hasBrands := false
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if name == constants.BrandsField {
			hasBrands = true
			schema = append(schema, Field{Name: name, Instruction: brandsInstruction})
			continue
		}
		schema = append(schema, Field{Name: name, Instruction: genericInstruction(name)})
	}
	if !hasBrands {
		schema = append(schema, Field{Name: constants.BrandsField, Instruction: brandsInstruction})
	}
	return schema
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Has reports whether the schema contains the named field.
func (s Schema) Has(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

const brandsInstruction = "List all payment network names detected on the page " +
	"(e.g. Visa, Mastercard, American Express) as a comma-separated list. " +
	"Use \"N/A\" if none are mentioned."

func genericInstruction(name string) string {
	return "Extract the value for \"" + name + "\" exactly as stated on the page. " +
		"Use \"N/A\" if it cannot be found."
}
