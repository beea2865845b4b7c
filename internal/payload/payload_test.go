package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Envelope(t *testing.T) {
	p := Parse(`{"summary":"great card","structured":{"APR":"19.99%","Benefits":"lounge"}}`)

	assert.Equal(t, KindStructured, p.Kind)
	assert.Equal(t, "great card", p.Envelope.Summary)
	assert.Equal(t, "19.99%", p.Envelope.Structured["APR"])
	assert.Equal(t, "lounge", p.Envelope.Structured["Benefits"])
}

func TestParse_LegacyFlat(t *testing.T) {
	p := Parse(`{"APR":"10%","Benefits":"none"}`)

	assert.Equal(t, KindLegacyFlat, p.Kind)
	assert.Equal(t, "", p.Envelope.Summary)
	assert.Equal(t, map[string]string{"APR": "10%", "Benefits": "none"}, p.Envelope.Structured)
}

func TestParse_LegacyFlatLiftsSummary(t *testing.T) {
	p := Parse(`{"summary":"old text","APR":"12%"}`)

	assert.Equal(t, KindLegacyFlat, p.Kind)
	assert.Equal(t, "old text", p.Envelope.Summary)
	assert.Equal(t, map[string]string{"APR": "12%"}, p.Envelope.Structured)
	_, ok := p.Envelope.Structured["summary"]
	assert.False(t, ok)
}

func TestParse_RawText(t *testing.T) {
	raw := "The model replied with prose instead of JSON."
	p := Parse(raw)

	assert.Equal(t, KindRaw, p.Kind)
	assert.Equal(t, raw, p.Raw)
	assert.Empty(t, p.Envelope.Structured)
}

func TestParse_Empty(t *testing.T) {
	p := Parse("")

	assert.Equal(t, KindStructured, p.Kind)
	assert.Equal(t, Empty(), p.Envelope)
}

func TestParse_LegacyFlatNonStringValues(t *testing.T) {
	p := Parse(`{"APR":19.99,"Active":true}`)

	assert.Equal(t, KindLegacyFlat, p.Kind)
	assert.Equal(t, "19.99", p.Envelope.Structured["APR"])
	assert.Equal(t, "true", p.Envelope.Structured["Active"])
}

func TestEncode_Deterministic(t *testing.T) {
	env := Envelope{Summary: "s", Structured: map[string]string{"B": "2", "A": "1"}}

	first, err := env.Encode()
	require.NoError(t, err)
	second, err := env.Encode()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.JSONEq(t, `{"summary":"s","structured":{"A":"1","B":"2"}}`, first)
}

func TestEncode_RoundTrip(t *testing.T) {
	env := Envelope{Summary: "x", Structured: map[string]string{"APR": "10%"}}
	encoded, err := env.Encode()
	require.NoError(t, err)

	p := Parse(encoded)
	assert.Equal(t, KindStructured, p.Kind)
	assert.Equal(t, env, p.Envelope)
}
