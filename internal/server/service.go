// Package server exposes the dashboard over gRPC. Handlers are thin: they
// authenticate the caller, validate arguments, and delegate to the domain
// services.
package server

import (
	"errors"
	"log/slog"
	"time"

	marketlensv1 "github.com/marketlens/marketlens/gen/proto/marketlens/v1"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/discovery"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/export"
	"github.com/marketlens/marketlens/internal/generator"
	"github.com/marketlens/marketlens/internal/repository"
	"github.com/marketlens/marketlens/internal/review"
	"github.com/marketlens/marketlens/internal/scan"
	"github.com/marketlens/marketlens/internal/scheduler"
)

type TrackerService struct {
	marketlensv1.UnimplementedTrackerServiceServer

	targets   repository.TargetRepository
	scans     repository.ScanRepository
	pipeline  *scan.Pipeline
	batch     *scheduler.Scheduler
	review    *review.Service
	discovery *discovery.Service
	generator *generator.Service
	export    *export.Service
	logger    *slog.Logger
}

func NewTrackerService(
	targets repository.TargetRepository,
	scans repository.ScanRepository,
	pipeline *scan.Pipeline,
	batch *scheduler.Scheduler,
	reviewSvc *review.Service,
	discoverySvc *discovery.Service,
	generatorSvc *generator.Service,
	exportSvc *export.Service,
	logger *slog.Logger,
) *TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackerService{
		targets:   targets,
		scans:     scans,
		pipeline:  pipeline,
		batch:     batch,
		review:    reviewSvc,
		discovery: discoverySvc,
		generator: generatorSvc,
		export:    exportSvc,
		logger:    logger,
	}
}

// toStatus maps domain errors to gRPC status errors without leaking
// internals.
func toStatus(err error) error {
	var app *common.AppError
	msg := err.Error()
	if errors.As(err, &app) {
		msg = app.Message
	}
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(msg)
	case errors.Is(err, common.ErrUnauthorized):
		return common.PermissionDeniedError(msg)
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(msg)
	default:
		return common.InternalError("internal error")
	}
}

func toProtoTarget(t *entity.Target) *marketlensv1.Target {
	out := &marketlensv1.Target{
		Id:           t.ID.String(),
		Url:          t.URL,
		Name:         t.Name,
		Schedule:     t.Schedule,
		CustomFields: t.CustomFields,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339Nano),
	}
	if t.Prompt != nil {
		out.Prompt = *t.Prompt
	}
	if t.MasterData != nil {
		out.MasterData = *t.MasterData
	}
	return out
}

func toProtoScan(sc *entity.ScanResult) *marketlensv1.ScanResult {
	out := &marketlensv1.ScanResult{
		Id:           sc.ID.String(),
		TargetId:     sc.TargetID.String(),
		Status:       sc.Status,
		ReviewStatus: sc.ReviewStatus,
		CreatedAt:    sc.CreatedAt.Format(time.RFC3339Nano),
	}
	if sc.Content != nil {
		out.Content = *sc.Content
	}
	if sc.ExtractedData != nil {
		out.ExtractedData = *sc.ExtractedData
	}
	if sc.Screenshot != nil {
		out.Screenshot = *sc.Screenshot
	}
	if sc.ErrorMessage != nil {
		out.ErrorMessage = *sc.ErrorMessage
	}
	return out
}

func toProtoProposal(p *entity.ProposedTarget) *marketlensv1.Proposal {
	out := &marketlensv1.Proposal{
		Id:           p.ID.String(),
		Url:          p.URL,
		Title:        p.Title,
		SourcePrompt: p.SourcePrompt,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339Nano),
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	return out
}
