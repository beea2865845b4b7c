package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/fields"
)

type stubChat struct {
	reply string
	err   error
	last  CompletionRequest
}

func (s *stubChat) Complete(_ context.Context, req CompletionRequest) (string, error) {
	s.last = req
	return s.reply, s.err
}

func TestExtract_WellFormedEnvelope(t *testing.T) {
	chat := &stubChat{reply: `{"summary":"a travel card","structured":{"APR":"19.99%","Card Brands":"Visa"}}`}
	ex := NewFieldExtractor(chat, nil)

	res, err := ex.Extract(context.Background(), ExtractRequest{
		Text:   "page text",
		Schema: fields.Build([]string{"APR"}),
	})
	require.NoError(t, err)

	assert.False(t, res.Malformed)
	require.NotNil(t, res.Envelope)
	assert.Equal(t, "a travel card", res.Envelope.Summary)
	assert.Equal(t, "19.99%", res.Envelope.Structured["APR"])
	assert.True(t, chat.last.JSONMode)
}

func TestExtract_NonJSONReplyIsSoftFailure(t *testing.T) {
	chat := &stubChat{reply: "I could not find structured data on this page."}
	ex := NewFieldExtractor(chat, nil)

	res, err := ex.Extract(context.Background(), ExtractRequest{Schema: fields.Build(nil)})
	require.NoError(t, err)

	assert.True(t, res.Malformed)
	assert.Equal(t, chat.reply, res.Raw)
	assert.Nil(t, res.Envelope)
}

func TestExtract_FlatJSONReplyIsSoftFailure(t *testing.T) {
	chat := &stubChat{reply: `{"APR":"10%"}`}
	ex := NewFieldExtractor(chat, nil)

	res, err := ex.Extract(context.Background(), ExtractRequest{Schema: fields.Build([]string{"APR"})})
	require.NoError(t, err)

	assert.True(t, res.Malformed)
	assert.Equal(t, chat.reply, res.Raw)
}

func TestExtract_MissingSchemaKeyIsSoftFailure(t *testing.T) {
	// "Card Brands" is in the schema but absent from the reply.
	chat := &stubChat{reply: `{"summary":"s","structured":{"APR":"10%"}}`}
	ex := NewFieldExtractor(chat, nil)

	res, err := ex.Extract(context.Background(), ExtractRequest{Schema: fields.Build([]string{"APR"})})
	require.NoError(t, err)

	assert.True(t, res.Malformed)
	// best-effort envelope still available for downstream consumers
	require.NotNil(t, res.Envelope)
	assert.Equal(t, "10%", res.Envelope.Structured["APR"])
}

func TestExtract_TransportErrorIsHard(t *testing.T) {
	chat := &stubChat{err: errors.New("connection refused")}
	ex := NewFieldExtractor(chat, nil)

	_, err := ex.Extract(context.Background(), ExtractRequest{Schema: fields.Build(nil)})

	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Contains(t, exErr.Error(), "connection refused")
}

func TestBuildSystemPrompt_ListsAllFields(t *testing.T) {
	schema := fields.Build([]string{"APR", "Annual Fee"})
	sys := BuildSystemPrompt(schema)

	assert.Contains(t, sys, `"N/A"`)
	assert.Contains(t, sys, "APR")
	assert.Contains(t, sys, "Annual Fee")
	assert.Contains(t, sys, "Card Brands")
}

func TestBuildUserPrompt_DefaultInstructions(t *testing.T) {
	user := BuildUserPrompt("", "some text")
	assert.Contains(t, user, "Extract the main value proposition")
	assert.Contains(t, user, "some text")

	custom := BuildUserPrompt("Focus on fees.", "some text")
	assert.Contains(t, custom, "Focus on fees.")
}
