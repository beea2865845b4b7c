package llm

import (
	"context"
	"fmt"

	"github.com/marketlens/marketlens/internal/fields"
	"github.com/marketlens/marketlens/internal/payload"
)

// CompletionRequest is one system+user exchange. JSONMode asks the provider
// to constrain output to a JSON object.
type CompletionRequest struct {
	System   string
	User     string
	JSONMode bool
}

// ChatClient is the injected LLM capability. It is shared by the extraction
// client, the discovery service, and the value-proposition generator.
type ChatClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ExtractionError means the remote call itself failed (network, auth, quota,
// timeout). Terminal for the current scan.
type ExtractionError struct {
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Cause)
	}
	return "extraction failed: " + e.Reason
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// ExtractRequest carries the rendered page text plus the target's
// configuration into the extraction client.
type ExtractRequest struct {
	Text         string
	Instructions string // target-specific prompt, may be empty
	Schema       fields.Schema
}

// ExtractResult is what came back. Raw is always the verbatim model reply
// and is what gets persisted; Envelope is set only when the reply parsed as
// the expected shape. Malformed replies are a soft failure: downstream
// consumers must re-validate through the payload package before treating the
// data as structured.
type ExtractResult struct {
	Raw       string
	Envelope  *payload.Envelope
	Malformed bool
}

// Extractor is the interface the scan pipeline depends on.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (ExtractResult, error)
}
