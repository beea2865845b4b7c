// Package master merges reviewed scan fields into a target's canonical record.
package master

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/payload"
	"github.com/marketlens/marketlens/internal/repository"
)

// Reconciler applies field promotions to a target's master data. Promotion
// is a read-modify-write of one text column, so runs for the same target are
// serialized through a per-target lock; different targets proceed in
// parallel.
type Reconciler struct {
	targets repository.TargetRepository
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewReconciler(targets repository.TargetRepository, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		targets: targets,
		logger:  logger,
		locks:   make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *Reconciler) lockFor(targetID uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[targetID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[targetID] = l
	}
	return l
}

// PromoteFields merges the given field values into the target's master data
// and returns the updated envelope.
//
// The stored value is normalized to envelope form first, whatever shape it
// is in (current envelope, legacy flat object, or absent). A "summary" key
// replaces the envelope summary wholesale; every other key is written into
// the structured map, last write wins. Keys not mentioned are untouched.
// Brand-list fields are re-normalized to a deduplicated comma list before
// storage.
func (r *Reconciler) PromoteFields(ctx context.Context, targetID uuid.UUID, promoted map[string]string) (*payload.Envelope, error) {
	lock := r.lockFor(targetID)
	lock.Lock()
	defer lock.Unlock()
	return r.promoteLocked(ctx, targetID, promoted)
}

// promoteLocked is the read-merge-write body. Callers must hold the
// target's lock.
func (r *Reconciler) promoteLocked(ctx context.Context, targetID uuid.UUID, promoted map[string]string) (*payload.Envelope, error) {
	env, err := r.loadEnvelope(ctx, targetID)
	if err != nil {
		return nil, err
	}

	for name, value := range promoted {
		if name == "summary" {
			env.Summary = value
			continue
		}
		if constants.IsBrandField(name) {
			value = JoinBrandList(ParseBrandList(value))
		}
		env.Structured[name] = value
	}

	encoded, err := env.Encode()
	if err != nil {
		return nil, err
	}
	if err := r.targets.SetMasterData(ctx, targetID, encoded); err != nil {
		return nil, err
	}

	r.logger.Info("master.promote",
		"target_id", targetID,
		"fields", len(promoted),
	)
	return &env, nil
}

// AddBrand unions one brand into the target's stored brand list.
func (r *Reconciler) AddBrand(ctx context.Context, targetID uuid.UUID, brand string) (*payload.Envelope, error) {
	return r.updateBrands(ctx, targetID, func(brands []string) []string {
		return AddBrand(brands, brand)
	})
}

// RemoveBrand drops one brand from the target's stored brand list.
func (r *Reconciler) RemoveBrand(ctx context.Context, targetID uuid.UUID, brand string) (*payload.Envelope, error) {
	return r.updateBrands(ctx, targetID, func(brands []string) []string {
		return RemoveBrand(brands, brand)
	})
}

// updateBrands holds the target's lock across the whole read-merge-write so
// a concurrent brand promotion cannot work from a stale list.
func (r *Reconciler) updateBrands(ctx context.Context, targetID uuid.UUID, apply func([]string) []string) (*payload.Envelope, error) {
	lock := r.lockFor(targetID)
	lock.Lock()
	defer lock.Unlock()

	env, err := r.loadEnvelope(ctx, targetID)
	if err != nil {
		return nil, err
	}

	current := ParseBrandList(env.Structured[constants.BrandsField])
	updated := apply(current)

	return r.promoteLocked(ctx, targetID, map[string]string{
		constants.BrandsField: JoinBrandList(updated),
	})
}

// Replace overwrites the target's master data wholesale under the same
// per-target lock promotions use.
func (r *Reconciler) Replace(ctx context.Context, targetID uuid.UUID, data string) error {
	lock := r.lockFor(targetID)
	lock.Lock()
	defer lock.Unlock()

	if err := r.targets.SetMasterData(ctx, targetID, data); err != nil {
		return err
	}
	r.logger.Info("master.replace", "target_id", targetID)
	return nil
}

func (r *Reconciler) loadEnvelope(ctx context.Context, targetID uuid.UUID) (payload.Envelope, error) {
	target, err := r.targets.GetByID(ctx, targetID)
	if err != nil {
		return payload.Envelope{}, err
	}
	var stored string
	if target.MasterData != nil {
		stored = *target.MasterData
	}
	return payload.Parse(stored).Envelope, nil
}
