package master

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/repository"
)

// fakeTargets is an in-memory TargetRepository covering the read-modify-write
// cycle the reconciler exercises. readDelay widens the window between a
// reader's GetByID and its SetMasterData so unserialized writers collide.
type fakeTargets struct {
	mu        sync.Mutex
	targets   map[uuid.UUID]*entity.Target
	writes    int
	readDelay time.Duration
}

func newFakeTargets(targets ...*entity.Target) *fakeTargets {
	f := &fakeTargets{targets: make(map[uuid.UUID]*entity.Target)}
	for _, t := range targets {
		f.targets[t.ID] = t
	}
	return f
}

func (f *fakeTargets) Create(ctx context.Context, t *entity.Target) (*entity.Target, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.targets[t.ID] = t
	return t, nil
}

func (f *fakeTargets) GetByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	f.mu.Lock()
	t, ok := f.targets[id]
	if !ok {
		f.mu.Unlock()
		return nil, common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	copied := *t
	f.mu.Unlock()
	if f.readDelay > 0 {
		time.Sleep(f.readDelay)
	}
	return &copied, nil
}

func (f *fakeTargets) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Target, error) {
	return nil, nil
}

func (f *fakeTargets) ListActive(ctx context.Context) ([]*entity.Target, error) {
	return nil, nil
}

func (f *fakeTargets) UpdateConfig(ctx context.Context, id uuid.UUID, upd repository.TargetConfigUpdate) error {
	return nil
}

func (f *fakeTargets) SetMasterData(ctx context.Context, id uuid.UUID, data string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.targets[id]
	if !ok {
		return common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	t.MasterData = &data
	f.writes++
	return nil
}

func (f *fakeTargets) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeTargets) masterData(id uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.targets[id]
	if t == nil || t.MasterData == nil {
		return ""
	}
	return *t.MasterData
}

func targetWithMaster(master string) *entity.Target {
	t := &entity.Target{
		ID:     uuid.New(),
		UserID: uuid.New(),
		URL:    "https://example.com",
		Name:   "Example",
	}
	if master != "" {
		t.MasterData = &master
	}
	return t
}

func TestPromoteFields_EmptyMasterStartsFromEmptyEnvelope(t *testing.T) {
	target := targetWithMaster("")
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"APR": "19.99%"})
	require.NoError(t, err)

	assert.Equal(t, "", env.Summary)
	assert.Equal(t, "19.99%", env.Structured["APR"])
	assert.JSONEq(t, `{"summary":"","structured":{"APR":"19.99%"}}`, repo.masterData(target.ID))
}

func TestPromoteFields_MergePreservesUntouchedFields(t *testing.T) {
	target := targetWithMaster(`{"summary":"x","structured":{"APR":"10%","Benefits":"lounge"}}`)
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"APR": "12%"})
	require.NoError(t, err)

	assert.Equal(t, "x", env.Summary)
	assert.Equal(t, "12%", env.Structured["APR"])
	assert.Equal(t, "lounge", env.Structured["Benefits"])
}

func TestPromoteFields_SummaryReplacedWholesale(t *testing.T) {
	target := targetWithMaster(`{"summary":"old","structured":{"APR":"10%"}}`)
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"summary": "new"})
	require.NoError(t, err)

	assert.Equal(t, "new", env.Summary)
	assert.Equal(t, "10%", env.Structured["APR"])
	assert.NotContains(t, env.Structured, "summary")
}

func TestPromoteFields_Idempotent(t *testing.T) {
	target := targetWithMaster("")
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	_, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"APR": "19.99%"})
	require.NoError(t, err)
	first := repo.masterData(target.ID)

	_, err = r.PromoteFields(context.Background(), target.ID, map[string]string{"APR": "19.99%"})
	require.NoError(t, err)

	assert.Equal(t, first, repo.masterData(target.ID))
}

func TestPromoteFields_LegacyFlatMasterNormalized(t *testing.T) {
	target := targetWithMaster(`{"APR":"10%","Benefits":"none"}`)
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"Rewards Rate": "2x"})
	require.NoError(t, err)

	assert.Equal(t, "", env.Summary)
	assert.Equal(t, "10%", env.Structured["APR"])
	assert.Equal(t, "none", env.Structured["Benefits"])
	assert.Equal(t, "2x", env.Structured["Rewards Rate"])
}

func TestPromoteFields_BrandValueDeduplicated(t *testing.T) {
	target := targetWithMaster("")
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{
		"Card Brands": "Visa, visa, Mastercard,, Visa",
	})
	require.NoError(t, err)

	assert.Equal(t, "Visa, Mastercard", env.Structured["Card Brands"])
}

func TestPromoteFields_MissingTarget(t *testing.T) {
	repo := newFakeTargets()
	r := NewReconciler(repo, nil)

	_, err := r.PromoteFields(context.Background(), uuid.New(), map[string]string{"APR": "1%"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Zero(t, repo.writes)
}

func TestAddBrand_UnionNoDuplicate(t *testing.T) {
	target := targetWithMaster(`{"summary":"","structured":{"Card Brands":"Visa"}}`)
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	env, err := r.AddBrand(context.Background(), target.ID, "Mastercard")
	require.NoError(t, err)
	assert.Equal(t, "Visa, Mastercard", env.Structured["Card Brands"])

	env, err = r.AddBrand(context.Background(), target.ID, "mastercard")
	require.NoError(t, err)
	assert.Equal(t, "Visa, Mastercard", env.Structured["Card Brands"])
}

func TestRemoveBrand_SetDifference(t *testing.T) {
	target := targetWithMaster(`{"summary":"","structured":{"Card Brands":"Visa, Mastercard, Amex"}}`)
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	env, err := r.RemoveBrand(context.Background(), target.ID, "mastercard")
	require.NoError(t, err)
	assert.Equal(t, "Visa, Amex", env.Structured["Card Brands"])

	env, err = r.RemoveBrand(context.Background(), target.ID, "Discover")
	require.NoError(t, err)
	assert.Equal(t, "Visa, Amex", env.Structured["Card Brands"])
}

func TestAddBrand_ConcurrentAddsAllLand(t *testing.T) {
	target := targetWithMaster(`{"summary":"","structured":{"Card Brands":"Visa"}}`)
	repo := newFakeTargets(target)
	repo.readDelay = 2 * time.Millisecond
	r := NewReconciler(repo, nil)

	brands := []string{"Mastercard", "Amex", "Discover", "JCB"}
	var wg sync.WaitGroup
	for _, brand := range brands {
		wg.Add(1)
		go func(brand string) {
			defer wg.Done()
			_, err := r.AddBrand(context.Background(), target.ID, brand)
			assert.NoError(t, err)
		}(brand)
	}
	wg.Wait()

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"summary": "done"})
	require.NoError(t, err)

	got := ParseBrandList(env.Structured["Card Brands"])
	assert.ElementsMatch(t, append([]string{"Visa"}, brands...), got)
}

func TestRemoveBrand_ConcurrentRemovesAllLand(t *testing.T) {
	target := targetWithMaster(`{"summary":"","structured":{"Card Brands":"Visa, Mastercard, Amex, Discover"}}`)
	repo := newFakeTargets(target)
	repo.readDelay = 2 * time.Millisecond
	r := NewReconciler(repo, nil)

	var wg sync.WaitGroup
	for _, brand := range []string{"Mastercard", "Discover"} {
		wg.Add(1)
		go func(brand string) {
			defer wg.Done()
			_, err := r.RemoveBrand(context.Background(), target.ID, brand)
			assert.NoError(t, err)
		}(brand)
	}
	wg.Wait()

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"summary": "done"})
	require.NoError(t, err)

	assert.Equal(t, "Visa, Amex", env.Structured["Card Brands"])
}

func TestReplace_OverwritesWholesale(t *testing.T) {
	target := targetWithMaster(`{"summary":"old","structured":{"APR":"10%"}}`)
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	require.NoError(t, r.Replace(context.Background(), target.ID,
		`{"summary":"new","structured":{"APR":"12%"}}`))

	assert.JSONEq(t, `{"summary":"new","structured":{"APR":"12%"}}`, repo.masterData(target.ID))
}

func TestPromoteFields_ConcurrentPromotionsAllLand(t *testing.T) {
	target := targetWithMaster("")
	repo := newFakeTargets(target)
	r := NewReconciler(repo, nil)

	names := []string{"APR", "Annual Fee", "Intro Offer", "Rewards Rate", "Benefits"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := r.PromoteFields(context.Background(), target.ID, map[string]string{name: "v"})
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()

	env, err := r.PromoteFields(context.Background(), target.ID, map[string]string{"summary": "done"})
	require.NoError(t, err)
	for _, name := range names {
		assert.Equal(t, "v", env.Structured[name], name)
	}
}
