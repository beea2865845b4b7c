package server

import (
	"context"

	"github.com/google/uuid"

	marketlensv1 "github.com/marketlens/marketlens/gen/proto/marketlens/v1"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/payload"
)

func (s *TrackerService) TriggerScan(ctx context.Context, req *marketlensv1.TriggerScanRequest) (*marketlensv1.TriggerScanResponse, error) {
	targetID, _, err := s.ownedTarget(ctx, req.GetTargetId())
	if err != nil {
		return nil, err
	}

	res, err := s.pipeline.Run(ctx, targetID)
	if err != nil {
		s.logger.Error("rpc.trigger_scan", "target_id", targetID, "err", err)
		return nil, toStatus(err)
	}

	out := &marketlensv1.TriggerScanResponse{Success: res.Success}
	if res.ScanID != uuid.Nil {
		out.ScanId = res.ScanID.String()
	}
	if !res.Success {
		out.Error = res.Error
	}
	return out, nil
}

func (s *TrackerService) ScanAllTargets(ctx context.Context, req *marketlensv1.ScanAllTargetsRequest) (*marketlensv1.ScanAllTargetsResponse, error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	run := s.batch.RunDue
	if req.GetIgnoreSchedule() {
		run = s.batch.RunAll
	}
	sum, err := run(ctx)
	if err != nil {
		s.logger.Error("rpc.scan_all", "err", err)
		return nil, toStatus(err)
	}

	results := make([]*marketlensv1.ScanOutcome, len(sum.Results))
	for i, o := range sum.Results {
		out := &marketlensv1.ScanOutcome{
			TargetId:   o.TargetID.String(),
			TargetName: o.Name,
			Success:    o.Success,
			Error:      o.Error,
		}
		if o.ScanID != uuid.Nil {
			out.ScanId = o.ScanID.String()
		}
		results[i] = out
	}
	return &marketlensv1.ScanAllTargetsResponse{
		Scanned: int32(sum.Scanned),
		Results: results,
	}, nil
}

func (s *TrackerService) ApproveScan(ctx context.Context, req *marketlensv1.ApproveScanRequest) (*marketlensv1.ApproveScanResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	scanID, err := parseUUID(req.GetScanId(), "scan_id")
	if err != nil {
		return nil, err
	}
	if err := s.review.Approve(ctx, userID, scanID); err != nil {
		s.logger.Error("rpc.approve_scan", "scan_id", scanID, "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.ApproveScanResponse{}, nil
}

func (s *TrackerService) RejectScan(ctx context.Context, req *marketlensv1.RejectScanRequest) (*marketlensv1.RejectScanResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	scanID, err := parseUUID(req.GetScanId(), "scan_id")
	if err != nil {
		return nil, err
	}
	if err := s.review.Reject(ctx, userID, scanID); err != nil {
		s.logger.Error("rpc.reject_scan", "scan_id", scanID, "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.RejectScanResponse{}, nil
}

func (s *TrackerService) PromoteFields(ctx context.Context, req *marketlensv1.PromoteFieldsRequest) (*marketlensv1.PromoteFieldsResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	scanID, err := parseUUID(req.GetScanId(), "scan_id")
	if err != nil {
		return nil, err
	}
	fields := req.GetFields()
	if len(fields) == 0 {
		return nil, common.InvalidArgumentError("at least one field is required")
	}

	env, err := s.review.PromoteFields(ctx, userID, scanID, fields)
	if err != nil {
		s.logger.Error("rpc.promote_fields", "scan_id", scanID, "err", err)
		return nil, toStatus(err)
	}
	encoded, err := env.Encode()
	if err != nil {
		return nil, toStatus(err)
	}
	return &marketlensv1.PromoteFieldsResponse{MasterData: encoded}, nil
}

func (s *TrackerService) AddBrand(ctx context.Context, req *marketlensv1.BrandRequest) (*marketlensv1.BrandResponse, error) {
	return s.brandOp(ctx, req, s.review.AddBrand)
}

func (s *TrackerService) RemoveBrand(ctx context.Context, req *marketlensv1.BrandRequest) (*marketlensv1.BrandResponse, error) {
	return s.brandOp(ctx, req, s.review.RemoveBrand)
}

func (s *TrackerService) brandOp(
	ctx context.Context,
	req *marketlensv1.BrandRequest,
	op func(context.Context, uuid.UUID, uuid.UUID, string) (*payload.Envelope, error),
) (*marketlensv1.BrandResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	scanID, err := parseUUID(req.GetScanId(), "scan_id")
	if err != nil {
		return nil, err
	}
	if req.GetBrand() == "" {
		return nil, common.InvalidArgumentError("brand is required")
	}

	env, err := op(ctx, userID, scanID, req.GetBrand())
	if err != nil {
		s.logger.Error("rpc.brand_op", "scan_id", scanID, "err", err)
		return nil, toStatus(err)
	}
	encoded, err := env.Encode()
	if err != nil {
		return nil, toStatus(err)
	}
	return &marketlensv1.BrandResponse{MasterData: encoded}, nil
}
