package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/gen/ent"
	"github.com/marketlens/marketlens/gen/ent/proposedtarget"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
)

type ProposalRepository interface {
	CreateBatch(ctx context.Context, proposals []*entity.ProposedTarget) ([]*entity.ProposedTarget, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProposedTarget, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProposedTarget, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ProposalStatus) error
}

type proposalRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProposalRepository(client *ent.Client, logger *slog.Logger) ProposalRepository {
	return &proposalRepo{client: client, logger: logger}
}

func (r *proposalRepo) CreateBatch(ctx context.Context, proposals []*entity.ProposedTarget) ([]*entity.ProposedTarget, error) {
	builders := make([]*ent.ProposedTargetCreate, len(proposals))
	for i, p := range proposals {
		b := r.client.ProposedTarget.Create().
			SetUserID(p.UserID).
			SetURL(p.URL).
			SetTitle(p.Title).
			SetSourcePrompt(p.SourcePrompt)
		if p.Description != nil {
			b = b.SetDescription(*p.Description)
		}
		builders[i] = b
	}
	rows, err := r.client.ProposedTarget.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("proposal batch create failed", "count", len(proposals), "err", err)
		return nil, err
	}
	r.logger.Info("proposals created", "count", len(rows))
	out := make([]*entity.ProposedTarget, len(rows))
	for i, row := range rows {
		out[i] = toProposal(row)
	}
	return out, nil
}

func (r *proposalRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProposedTarget, error) {
	row, err := r.client.ProposedTarget.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("PROPOSAL_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toProposal(row), nil
}

func (r *proposalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProposedTarget, error) {
	rows, err := r.client.ProposedTarget.Query().
		Where(proposedtarget.UserID(userID)).
		Order(ent.Desc(proposedtarget.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("proposal list failed", "user_id", userID, "err", err)
		return nil, err
	}
	out := make([]*entity.ProposedTarget, len(rows))
	for i, row := range rows {
		out[i] = toProposal(row)
	}
	return out, nil
}

func (r *proposalRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.ProposalStatus) error {
	if _, err := r.client.ProposedTarget.UpdateOneID(id).SetStatus(string(status)).Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("PROPOSAL_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.logger.Error("proposal status update failed", "proposal_id", id, "err", err)
		return err
	}
	return nil
}

func toProposal(row *ent.ProposedTarget) *entity.ProposedTarget {
	return &entity.ProposedTarget{
		ID:           row.ID,
		UserID:       row.UserID,
		URL:          row.URL,
		Title:        row.Title,
		Description:  row.Description,
		SourcePrompt: row.SourcePrompt,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
	}
}
