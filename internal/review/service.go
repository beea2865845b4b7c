// Package review applies user verdicts to scans: approving promotes data
// into the target's master record, rejecting only flags the scan.
package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/master"
	"github.com/marketlens/marketlens/internal/payload"
	"github.com/marketlens/marketlens/internal/repository"
)

type Service struct {
	targets    repository.TargetRepository
	scans      repository.ScanRepository
	reconciler *master.Reconciler
	logger     *slog.Logger
}

func NewService(
	targets repository.TargetRepository,
	scans repository.ScanRepository,
	reconciler *master.Reconciler,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{targets: targets, scans: scans, reconciler: reconciler, logger: logger}
}

// Approve replaces the target's master data with the scan's extracted data
// and marks the scan APPROVED. Parseable payloads are stored in envelope
// form; free text from a malformed extraction is kept verbatim, consumers
// parse defensively.
func (s *Service) Approve(ctx context.Context, userID, scanID uuid.UUID) error {
	scan, err := s.ownedScan(ctx, userID, scanID)
	if err != nil {
		return err
	}
	if scan.ExtractedData == nil {
		return common.NewAppError("NO_DATA_TO_PROMOTE", scanID.String(), common.ErrInvalidInput)
	}

	stored := *scan.ExtractedData
	if p := payload.Parse(stored); p.Kind != payload.KindRaw {
		if stored, err = p.Envelope.Encode(); err != nil {
			return err
		}
	}

	// Replace goes through the reconciler so the write serializes with any
	// concurrent field promotion for the same target.
	if err := s.reconciler.Replace(ctx, scan.TargetID, stored); err != nil {
		return err
	}
	if err := s.scans.SetReviewStatus(ctx, scanID, constants.ReviewApproved); err != nil {
		return err
	}

	s.logger.Info("review.approve", "scan_id", scanID, "target_id", scan.TargetID)
	return nil
}

// Reject marks the scan REJECTED. Master data is untouched.
func (s *Service) Reject(ctx context.Context, userID, scanID uuid.UUID) error {
	scan, err := s.ownedScan(ctx, userID, scanID)
	if err != nil {
		return err
	}
	if err := s.scans.SetReviewStatus(ctx, scanID, constants.ReviewRejected); err != nil {
		return err
	}
	s.logger.Info("review.reject", "scan_id", scanID, "target_id", scan.TargetID)
	return nil
}

// PromoteFields merges selected fields from the scan's target into master
// data after verifying the caller owns the scan.
func (s *Service) PromoteFields(ctx context.Context, userID, scanID uuid.UUID, fields map[string]string) (*payload.Envelope, error) {
	scan, err := s.ownedScan(ctx, userID, scanID)
	if err != nil {
		return nil, err
	}
	return s.reconciler.PromoteFields(ctx, scan.TargetID, fields)
}

// AddBrand unions one brand into the scan's target master brand list.
func (s *Service) AddBrand(ctx context.Context, userID, scanID uuid.UUID, brand string) (*payload.Envelope, error) {
	scan, err := s.ownedScan(ctx, userID, scanID)
	if err != nil {
		return nil, err
	}
	return s.reconciler.AddBrand(ctx, scan.TargetID, brand)
}

// RemoveBrand drops one brand from the scan's target master brand list.
func (s *Service) RemoveBrand(ctx context.Context, userID, scanID uuid.UUID, brand string) (*payload.Envelope, error) {
	scan, err := s.ownedScan(ctx, userID, scanID)
	if err != nil {
		return nil, err
	}
	return s.reconciler.RemoveBrand(ctx, scan.TargetID, brand)
}

func (s *Service) ownedScan(ctx context.Context, userID, scanID uuid.UUID) (*entity.ScanResult, error) {
	scan, err := s.scans.GetByID(ctx, scanID)
	if err != nil {
		return nil, err
	}
	target, err := s.targets.GetByID(ctx, scan.TargetID)
	if err != nil {
		return nil, err
	}
	if target.UserID != userID {
		return nil, common.NewAppError("SCAN_FORBIDDEN", scanID.String(), common.ErrUnauthorized)
	}
	return scan, nil
}
