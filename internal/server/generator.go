package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	marketlensv1 "github.com/marketlens/marketlens/gen/proto/marketlens/v1"
)

func (s *TrackerService) ListAvailableScans(ctx context.Context, req *marketlensv1.ListAvailableScansRequest) (*marketlensv1.ListAvailableScansResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	scans, err := s.generator.ListAvailable(ctx, userID, req.GetQuery())
	if err != nil {
		s.logger.Error("rpc.list_available_scans", "err", err)
		return nil, toStatus(err)
	}
	out := make([]*marketlensv1.AvailableScan, len(scans))
	for i, sc := range scans {
		out[i] = &marketlensv1.AvailableScan{
			TargetId:   sc.TargetID.String(),
			TargetName: sc.TargetName,
			TargetUrl:  sc.TargetURL,
			ScanId:     sc.ScanID.String(),
			ScanDate:   sc.ScanDate.Format(time.RFC3339Nano),
		}
	}
	return &marketlensv1.ListAvailableScansResponse{Scans: out}, nil
}

func (s *TrackerService) GenerateValueProposition(ctx context.Context, req *marketlensv1.GenerateValuePropositionRequest) (*marketlensv1.GenerateValuePropositionResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	scanIDs := make([]uuid.UUID, 0, len(req.GetScanIds()))
	for _, raw := range req.GetScanIds() {
		id, err := parseUUID(raw, "scan_ids")
		if err != nil {
			return nil, err
		}
		scanIDs = append(scanIDs, id)
	}

	markdown, err := s.generator.Generate(ctx, userID, scanIDs)
	if err != nil {
		s.logger.Error("rpc.generate_value_proposition", "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.GenerateValuePropositionResponse{Markdown: markdown}, nil
}
