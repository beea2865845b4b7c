// Package scan sequences fetch → extract → persist for a single target.
package scan

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/internal/fetch"
	"github.com/marketlens/marketlens/internal/fields"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/repository"
)

// snippetLen bounds the raw-text excerpt stored with each scan.
const snippetLen = 5000

// Result is what a pipeline run reports back to its caller.
type Result struct {
	Success bool
	ScanID  uuid.UUID
	Data    string // raw extracted payload when Success
	Error   string // error message when !Success
}

// Pipeline orchestrates one scan. It is a hard error boundary: every fetch
// or extract failure becomes a FAILED ScanResult row plus a Result, never a
// returned error. The returned error is reserved for precondition and
// persistence failures (missing target, DB down).
type Pipeline struct {
	targets   repository.TargetRepository
	scans     repository.ScanRepository
	renderer  fetch.Renderer
	extractor llm.Extractor
	logger    *slog.Logger
}

func NewPipeline(
	targets repository.TargetRepository,
	scans repository.ScanRepository,
	renderer fetch.Renderer,
	extractor llm.Extractor,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		targets:   targets,
		scans:     scans,
		renderer:  renderer,
		extractor: extractor,
		logger:    logger,
	}
}

// Run executes one scan for targetID. Exactly one ScanResult row is written
// per invocation, success or failure. Ownership checks are the caller's
// responsibility. No retry happens here.
func (p *Pipeline) Run(ctx context.Context, targetID uuid.UUID) (Result, error) {
	start := time.Now()

	target, err := p.targets.GetByID(ctx, targetID)
	if err != nil {
		// Precondition failure: no row is written for a missing target.
		return Result{}, err
	}

	p.logger.Info("scan.start", "target_id", targetID, "url", target.URL)

	rendered, err := p.renderer.Render(ctx, target.URL)
	if err != nil {
		return p.fail(ctx, targetID, err.Error(), start)
	}

	schema := fields.Build(target.CustomFields)
	extracted, err := p.extractor.Extract(ctx, llm.ExtractRequest{
		Text:         rendered.Text,
		Instructions: target.PromptOrDefault(),
		Schema:       schema,
	})
	if err != nil {
		return p.fail(ctx, targetID, err.Error(), start)
	}
	if extracted.Malformed {
		p.logger.Warn("scan.extract.malformed", "target_id", targetID)
	}

	var screenshot *string
	if len(rendered.Screenshot) > 0 {
		encoded := base64.StdEncoding.EncodeToString(rendered.Screenshot)
		screenshot = &encoded
	}

	row, err := p.scans.CreateSuccess(ctx, targetID, extracted.Raw, fetch.Snippet(rendered.Text, snippetLen), screenshot)
	if err != nil {
		return Result{}, err
	}

	p.logger.Info("scan.ok",
		"target_id", targetID,
		"scan_id", row.ID,
		"malformed", extracted.Malformed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Success: true, ScanID: row.ID, Data: extracted.Raw}, nil
}

func (p *Pipeline) fail(ctx context.Context, targetID uuid.UUID, message string, start time.Time) (Result, error) {
	row, err := p.scans.CreateFailure(ctx, targetID, message)
	if err != nil {
		return Result{}, err
	}
	p.logger.Warn("scan.failed",
		"target_id", targetID,
		"scan_id", row.ID,
		"error", message,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Success: false, ScanID: row.ID, Error: message}, nil
}
