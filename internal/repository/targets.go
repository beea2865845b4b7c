package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/gen/ent"
	"github.com/marketlens/marketlens/gen/ent/target"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
)

// TargetConfigUpdate carries the mutable configuration of a target.
// CustomFields stays untouched when nil (vs. cleared when empty).
type TargetConfigUpdate struct {
	Schedule     string
	Prompt       *string
	CustomFields []string
	Active       bool
}

type TargetRepository interface {
	Create(ctx context.Context, t *entity.Target) (*entity.Target, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Target, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Target, error)
	ListActive(ctx context.Context) ([]*entity.Target, error)
	UpdateConfig(ctx context.Context, id uuid.UUID, upd TargetConfigUpdate) error
	SetMasterData(ctx context.Context, id uuid.UUID, data string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type targetRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTargetRepository(client *ent.Client, logger *slog.Logger) TargetRepository {
	return &targetRepo{client: client, logger: logger}
}

func (r *targetRepo) Create(ctx context.Context, t *entity.Target) (*entity.Target, error) {
	builder := r.client.Target.Create().
		SetUserID(t.UserID).
		SetURL(t.URL).
		SetName(t.Name)
	if t.Prompt != nil {
		builder = builder.SetPrompt(*t.Prompt)
	}
	if t.Schedule != "" {
		builder = builder.SetSchedule(t.Schedule)
	}
	if t.CustomFields != nil {
		builder = builder.SetCustomFields(t.CustomFields)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("target create failed", "url", t.URL, "err", err)
		return nil, err
	}
	r.logger.Info("target created", "target_id", row.ID, "url", row.URL)
	return toTarget(row), nil
}

func (r *targetRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	row, err := r.client.Target.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toTarget(row), nil
}

func (r *targetRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Target, error) {
	rows, err := r.client.Target.Query().
		Where(target.UserID(userID)).
		Order(ent.Desc(target.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("target list failed", "user_id", userID, "err", err)
		return nil, err
	}
	return toTargets(rows), nil
}

func (r *targetRepo) ListActive(ctx context.Context) ([]*entity.Target, error) {
	rows, err := r.client.Target.Query().
		Where(target.Active(true)).
		Order(ent.Asc(target.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("active target list failed", "err", err)
		return nil, err
	}
	return toTargets(rows), nil
}

func (r *targetRepo) UpdateConfig(ctx context.Context, id uuid.UUID, upd TargetConfigUpdate) error {
	builder := r.client.Target.UpdateOneID(id).
		SetSchedule(upd.Schedule).
		SetActive(upd.Active)
	if upd.Prompt != nil {
		builder = builder.SetPrompt(*upd.Prompt)
	} else {
		builder = builder.ClearPrompt()
	}
	if upd.CustomFields != nil {
		builder = builder.SetCustomFields(upd.CustomFields)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.logger.Error("target config update failed", "target_id", id, "err", err)
		return err
	}
	r.logger.Info("target config updated", "target_id", id, "schedule", upd.Schedule, "active", upd.Active)
	return nil
}

func (r *targetRepo) SetMasterData(ctx context.Context, id uuid.UUID, data string) error {
	if _, err := r.client.Target.UpdateOneID(id).SetMasterData(data).Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.logger.Error("master data write failed", "target_id", id, "err", err)
		return err
	}
	return nil
}

// Delete removes the target; the schema cascades to its scan history.
func (r *targetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Target.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.logger.Error("target delete failed", "target_id", id, "err", err)
		return err
	}
	r.logger.Info("target deleted", "target_id", id)
	return nil
}

func toTarget(row *ent.Target) *entity.Target {
	return &entity.Target{
		ID:           row.ID,
		UserID:       row.UserID,
		URL:          row.URL,
		Name:         row.Name,
		Prompt:       row.Prompt,
		Schedule:     row.Schedule,
		CustomFields: row.CustomFields,
		Active:       row.Active,
		MasterData:   row.MasterData,
		CreatedAt:    row.CreatedAt,
	}
}

func toTargets(rows []*ent.Target) []*entity.Target {
	out := make([]*entity.Target, len(rows))
	for i, row := range rows {
		out[i] = toTarget(row)
	}
	return out
}
