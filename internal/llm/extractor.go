package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/internal/payload"
)

// FieldExtractor turns rendered page text into the envelope payload using a
// ChatClient. A malformed reply is NOT an error: the raw text is returned
// for storage and the result is flagged Malformed.
type FieldExtractor struct {
	chat   ChatClient
	logger *slog.Logger
}

func NewFieldExtractor(chat ChatClient, logger *slog.Logger) *FieldExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldExtractor{chat: chat, logger: logger}
}

func (e *FieldExtractor) Extract(ctx context.Context, req ExtractRequest) (ExtractResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	e.logger.Info("llm.extract.start",
		"req_id", rid,
		"text_len", len(req.Text),
		"schema_fields", len(req.Schema),
		"has_instructions", strings.TrimSpace(req.Instructions) != "",
	)

	content, err := e.chat.Complete(ctx, CompletionRequest{
		System:   BuildSystemPrompt(req.Schema),
		User:     BuildUserPrompt(req.Instructions, req.Text),
		JSONMode: true,
	})
	if err != nil {
		e.logger.Error("llm.extract.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ExtractResult{}, &ExtractionError{Reason: "llm call failed", Cause: err}
	}

	content = strings.TrimSpace(content)
	parsed := payload.Parse(content)
	if parsed.Kind != payload.KindStructured {
		// Soft failure: keep the raw reply, let downstream re-validate.
		e.logger.Warn("llm.extract.malformed_response",
			"req_id", rid, "kind", int(parsed.Kind), "bytes", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ExtractResult{Raw: content, Malformed: true}, nil
	}

	if err := ValidateJSONAgainstSchema(BuildEnvelopeJSONSchema(req.Schema), []byte(content)); err != nil {
		e.logger.Warn("llm.extract.schema_mismatch",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ExtractResult{Raw: content, Envelope: &parsed.Envelope, Malformed: true}, nil
	}

	e.logger.Info("llm.extract.ok",
		"req_id", rid,
		"fields", len(parsed.Envelope.Structured),
		"summary_len", len(parsed.Envelope.Summary),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ExtractResult{Raw: content, Envelope: &parsed.Envelope}, nil
}
