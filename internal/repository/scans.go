package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/gen/ent"
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
)

type ScanRepository interface {
	// CreateSuccess writes the single SUCCESS row for a pipeline run.
	CreateSuccess(ctx context.Context, targetID uuid.UUID, extractedData, content string, screenshot *string) (*entity.ScanResult, error)
	// CreateFailure writes the single FAILED row for a pipeline run.
	CreateFailure(ctx context.Context, targetID uuid.UUID, errorMessage string) (*entity.ScanResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanResult, error)
	// LatestForTarget returns (nil, nil) when the target has never been scanned.
	LatestForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error)
	LatestSuccessForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error)
	ListByTarget(ctx context.Context, targetID uuid.UUID, limit int) ([]*entity.ScanResult, error)
	SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus) error
}

type scanRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewScanRepository(client *ent.Client, logger *slog.Logger) ScanRepository {
	return &scanRepo{client: client, logger: logger}
}

func (r *scanRepo) CreateSuccess(ctx context.Context, targetID uuid.UUID, extractedData, content string, screenshot *string) (*entity.ScanResult, error) {
	builder := r.client.ScanResult.Create().
		SetTargetID(targetID).
		SetStatus(string(constants.ScanStatusSuccess)).
		SetExtractedData(extractedData).
		SetContent(content)
	if screenshot != nil {
		builder = builder.SetScreenshot(*screenshot)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("scan_result create(SUCCESS) failed", "target_id", targetID, "err", err)
		return nil, err
	}
	r.logger.Info("scan_result created", "scan_id", row.ID, "target_id", targetID, "status", row.Status)
	return toScan(row), nil
}

func (r *scanRepo) CreateFailure(ctx context.Context, targetID uuid.UUID, errorMessage string) (*entity.ScanResult, error) {
	row, err := r.client.ScanResult.Create().
		SetTargetID(targetID).
		SetStatus(string(constants.ScanStatusFailed)).
		SetErrorMessage(errorMessage).
		Save(ctx)
	if err != nil {
		r.logger.Error("scan_result create(FAILED) failed", "target_id", targetID, "err", err)
		return nil, err
	}
	r.logger.Warn("scan_result created", "scan_id", row.ID, "target_id", targetID, "status", row.Status, "error", errorMessage)
	return toScan(row), nil
}

func (r *scanRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanResult, error) {
	row, err := r.client.ScanResult.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("SCAN_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toScan(row), nil
}

func (r *scanRepo) LatestForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error) {
	row, err := r.client.ScanResult.Query().
		Where(scanresult.TargetID(targetID)).
		Order(ent.Desc(scanresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toScan(row), nil
}

func (r *scanRepo) LatestSuccessForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error) {
	row, err := r.client.ScanResult.Query().
		Where(
			scanresult.TargetID(targetID),
			scanresult.Status(string(constants.ScanStatusSuccess)),
		).
		Order(ent.Desc(scanresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toScan(row), nil
}

func (r *scanRepo) ListByTarget(ctx context.Context, targetID uuid.UUID, limit int) ([]*entity.ScanResult, error) {
	q := r.client.ScanResult.Query().
		Where(scanresult.TargetID(targetID)).
		Order(ent.Desc(scanresult.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("scan_result list failed", "target_id", targetID, "err", err)
		return nil, err
	}
	out := make([]*entity.ScanResult, len(rows))
	for i, row := range rows {
		out[i] = toScan(row)
	}
	return out, nil
}

// SetReviewStatus is the only mutation allowed on a scan after creation.
func (r *scanRepo) SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus) error {
	if _, err := r.client.ScanResult.UpdateOneID(id).SetReviewStatus(string(status)).Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("SCAN_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.logger.Error("review status update failed", "scan_id", id, "err", err)
		return err
	}
	r.logger.Info("review status updated", "scan_id", id, "review_status", status)
	return nil
}

func toScan(row *ent.ScanResult) *entity.ScanResult {
	return &entity.ScanResult{
		ID:            row.ID,
		TargetID:      row.TargetID,
		Status:        row.Status,
		Content:       row.Content,
		ExtractedData: row.ExtractedData,
		Screenshot:    row.Screenshot,
		ErrorMessage:  row.ErrorMessage,
		ReviewStatus:  row.ReviewStatus,
		CreatedAt:     row.CreatedAt,
	}
}
