package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/fields"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildEnvelopeJSONSchema(fields.Build([]string{"APR"}))

	assert.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"summary":"s","structured":{"APR":"10%","Card Brands":"Visa"}}`)))

	err := ValidateJSONAgainstSchema(schema, []byte(`{"summary":"s"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "envelope shape")

	err = ValidateJSONAgainstSchema(schema, []byte(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
