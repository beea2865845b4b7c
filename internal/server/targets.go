package server

import (
	"context"
	"slices"
	"strings"

	marketlensv1 "github.com/marketlens/marketlens/gen/proto/marketlens/v1"
	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/repository"

	"github.com/google/uuid"
)

func (s *TrackerService) CreateTarget(ctx context.Context, req *marketlensv1.CreateTargetRequest) (*marketlensv1.CreateTargetResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSpace(req.GetUrl())
	name := strings.TrimSpace(req.GetName())
	if url == "" || !strings.HasPrefix(url, "http") {
		return nil, common.InvalidArgumentError("url must be an absolute http(s) URL")
	}
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	schedule := req.GetSchedule()
	if schedule != "" && !slices.Contains(constants.Schedules, schedule) {
		return nil, common.InvalidArgumentError("schedule must be one of daily, weekly, monthly")
	}

	t := &entity.Target{
		UserID:       userID,
		URL:          url,
		Name:         name,
		Schedule:     schedule,
		CustomFields: req.GetCustomFields(),
	}
	if p := strings.TrimSpace(req.GetPrompt()); p != "" {
		t.Prompt = &p
	}

	created, err := s.targets.Create(ctx, t)
	if err != nil {
		s.logger.Error("rpc.create_target", "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.CreateTargetResponse{Target: toProtoTarget(created)}, nil
}

func (s *TrackerService) GetTarget(ctx context.Context, req *marketlensv1.GetTargetRequest) (*marketlensv1.GetTargetResponse, error) {
	_, target, err := s.ownedTarget(ctx, req.GetTargetId())
	if err != nil {
		return nil, err
	}
	return &marketlensv1.GetTargetResponse{Target: toProtoTarget(target)}, nil
}

func (s *TrackerService) ListTargets(ctx context.Context, _ *marketlensv1.ListTargetsRequest) (*marketlensv1.ListTargetsResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := s.targets.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("rpc.list_targets", "err", err)
		return nil, toStatus(err)
	}
	out := make([]*marketlensv1.Target, len(targets))
	for i, t := range targets {
		out[i] = toProtoTarget(t)
	}
	return &marketlensv1.ListTargetsResponse{Targets: out}, nil
}

func (s *TrackerService) UpdateTargetConfig(ctx context.Context, req *marketlensv1.UpdateTargetConfigRequest) (*marketlensv1.UpdateTargetConfigResponse, error) {
	targetID, _, err := s.ownedTarget(ctx, req.GetTargetId())
	if err != nil {
		return nil, err
	}
	schedule := req.GetSchedule()
	if !slices.Contains(constants.Schedules, schedule) {
		return nil, common.InvalidArgumentError("schedule must be one of daily, weekly, monthly")
	}

	upd := repository.TargetConfigUpdate{
		Schedule:     schedule,
		CustomFields: req.GetCustomFields(),
		Active:       req.GetActive(),
	}
	if p := strings.TrimSpace(req.GetPrompt()); p != "" {
		upd.Prompt = &p
	}

	if err := s.targets.UpdateConfig(ctx, targetID, upd); err != nil {
		s.logger.Error("rpc.update_target_config", "target_id", targetID, "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.UpdateTargetConfigResponse{}, nil
}

func (s *TrackerService) DeleteTarget(ctx context.Context, req *marketlensv1.DeleteTargetRequest) (*marketlensv1.DeleteTargetResponse, error) {
	targetID, _, err := s.ownedTarget(ctx, req.GetTargetId())
	if err != nil {
		return nil, err
	}
	// Scan history goes with the target (cascade).
	if err := s.targets.Delete(ctx, targetID); err != nil {
		s.logger.Error("rpc.delete_target", "target_id", targetID, "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.DeleteTargetResponse{}, nil
}

func (s *TrackerService) ListScans(ctx context.Context, req *marketlensv1.ListScansRequest) (*marketlensv1.ListScansResponse, error) {
	targetID, _, err := s.ownedTarget(ctx, req.GetTargetId())
	if err != nil {
		return nil, err
	}
	scans, err := s.scans.ListByTarget(ctx, targetID, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("rpc.list_scans", "target_id", targetID, "err", err)
		return nil, toStatus(err)
	}
	out := make([]*marketlensv1.ScanResult, len(scans))
	for i, sc := range scans {
		out[i] = toProtoScan(sc)
	}
	return &marketlensv1.ListScansResponse{Scans: out}, nil
}

// ownedTarget authenticates the caller, parses the id, and verifies
// ownership in one step.
func (s *TrackerService) ownedTarget(ctx context.Context, rawID string) (uuid.UUID, *entity.Target, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return uuid.Nil, nil, err
	}
	targetID, err := parseUUID(rawID, "target_id")
	if err != nil {
		return uuid.Nil, nil, err
	}
	target, err := s.targets.GetByID(ctx, targetID)
	if err != nil {
		return uuid.Nil, nil, toStatus(err)
	}
	if target.UserID != userID {
		return uuid.Nil, nil, common.PermissionDeniedError("target does not belong to caller")
	}
	return targetID, target, nil
}
