package server

import (
	"context"
	"fmt"
	"time"

	marketlensv1 "github.com/marketlens/marketlens/gen/proto/marketlens/v1"
)

func (s *TrackerService) ExportMaster(ctx context.Context, _ *marketlensv1.ExportMasterRequest) (*marketlensv1.ExportMasterResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.export.ExportMasterXLSX(ctx, userID)
	if err != nil {
		s.logger.Error("rpc.export_master", "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.ExportMasterResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("master-data-%s.xlsx", time.Now().UTC().Format("2006-01-02")),
	}, nil
}
