package review

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/master"
	"github.com/marketlens/marketlens/internal/repository"
)

type fakeStore struct {
	mu      sync.Mutex
	targets map[uuid.UUID]*entity.Target
	scans   map[uuid.UUID]*entity.ScanResult
	reviews map[uuid.UUID]constants.ReviewStatus
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		targets: map[uuid.UUID]*entity.Target{},
		scans:   map[uuid.UUID]*entity.ScanResult{},
		reviews: map[uuid.UUID]constants.ReviewStatus{},
	}
}

func (f *fakeStore) Create(ctx context.Context, t *entity.Target) (*entity.Target, error) {
	return nil, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.targets[id]
	if !ok {
		return nil, common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	copied := *t
	return &copied, nil
}

func (f *fakeStore) ListByUser(context.Context, uuid.UUID) ([]*entity.Target, error) {
	return nil, nil
}
func (f *fakeStore) ListActive(context.Context) ([]*entity.Target, error) { return nil, nil }
func (f *fakeStore) UpdateConfig(context.Context, uuid.UUID, repository.TargetConfigUpdate) error {
	return nil
}

func (f *fakeStore) SetMasterData(ctx context.Context, id uuid.UUID, data string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.targets[id]
	if !ok {
		return common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	t.MasterData = &data
	return nil
}

func (f *fakeStore) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeStore) CreateSuccess(context.Context, uuid.UUID, string, string, *string) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeStore) CreateFailure(context.Context, uuid.UUID, string) (*entity.ScanResult, error) {
	return nil, nil
}

func (f *fakeStore) GetScanByID(ctx context.Context, id uuid.UUID) (*entity.ScanResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sc, ok := f.scans[id]
	if !ok {
		return nil, common.NewAppError("SCAN_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return sc, nil
}

func (f *fakeStore) LatestForTarget(context.Context, uuid.UUID) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeStore) LatestSuccessForTarget(context.Context, uuid.UUID) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeStore) ListByTarget(context.Context, uuid.UUID, int) ([]*entity.ScanResult, error) {
	return nil, nil
}

func (f *fakeStore) SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews[id] = status
	return nil
}

// scanRepoView adapts fakeStore to repository.ScanRepository (GetByID name
// collides with the target side).
type scanRepoView struct{ *fakeStore }

func (v scanRepoView) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanResult, error) {
	return v.GetScanByID(ctx, id)
}

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*Service, *fakeStore, *entity.Target, *entity.ScanResult) {
	t.Helper()
	store := newFakeStore()
	target := &entity.Target{ID: uuid.New(), UserID: uuid.New(), Name: "Acme Card"}
	scan := &entity.ScanResult{
		ID:            uuid.New(),
		TargetID:      target.ID,
		Status:        string(constants.ScanStatusSuccess),
		ExtractedData: strPtr(`{"summary":"great","structured":{"APR":"15%"}}`),
	}
	store.targets[target.ID] = target
	store.scans[scan.ID] = scan

	rec := master.NewReconciler(store, nil)
	return NewService(store, scanRepoView{store}, rec, nil), store, target, scan
}

func TestApprove_PromotesWholePayloadAndMarksApproved(t *testing.T) {
	svc, store, target, scan := setup(t)

	require.NoError(t, svc.Approve(context.Background(), target.UserID, scan.ID))

	require.NotNil(t, store.targets[target.ID].MasterData)
	assert.JSONEq(t, `{"summary":"great","structured":{"APR":"15%"}}`, *store.targets[target.ID].MasterData)
	assert.Equal(t, constants.ReviewApproved, store.reviews[scan.ID])
}

func TestApprove_LegacyFlatDataNormalized(t *testing.T) {
	svc, store, target, scan := setup(t)
	scan.ExtractedData = strPtr(`{"APR":"10%","Benefits":"none"}`)

	require.NoError(t, svc.Approve(context.Background(), target.UserID, scan.ID))

	assert.JSONEq(t, `{"summary":"","structured":{"APR":"10%","Benefits":"none"}}`,
		*store.targets[target.ID].MasterData)
}

func TestApprove_RawTextKeptVerbatim(t *testing.T) {
	svc, store, target, scan := setup(t)
	scan.ExtractedData = strPtr("prose the model produced")

	require.NoError(t, svc.Approve(context.Background(), target.UserID, scan.ID))

	assert.Equal(t, "prose the model produced", *store.targets[target.ID].MasterData)
}

func TestApprove_NoDataRejected(t *testing.T) {
	svc, store, target, scan := setup(t)
	scan.ExtractedData = nil

	err := svc.Approve(context.Background(), target.UserID, scan.ID)
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Nil(t, store.targets[target.ID].MasterData)
}

func TestApprove_ForeignScanRejected(t *testing.T) {
	svc, store, _, scan := setup(t)

	err := svc.Approve(context.Background(), uuid.New(), scan.ID)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Empty(t, store.reviews)
}

func TestReject_OnlyFlagsScan(t *testing.T) {
	svc, store, target, scan := setup(t)

	require.NoError(t, svc.Reject(context.Background(), target.UserID, scan.ID))

	assert.Equal(t, constants.ReviewRejected, store.reviews[scan.ID])
	assert.Nil(t, store.targets[target.ID].MasterData)
}

func TestPromoteFields_ThroughScanOwnership(t *testing.T) {
	svc, store, target, scan := setup(t)

	env, err := svc.PromoteFields(context.Background(), target.UserID, scan.ID,
		map[string]string{"APR": "12%"})
	require.NoError(t, err)

	assert.Equal(t, "12%", env.Structured["APR"])
	assert.JSONEq(t, `{"summary":"","structured":{"APR":"12%"}}`, *store.targets[target.ID].MasterData)
}

func TestApprove_SerializesWithConcurrentPromotion(t *testing.T) {
	svc, store, target, scan := setup(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.Approve(context.Background(), target.UserID, scan.ID))
	}()
	go func() {
		defer wg.Done()
		_, err := svc.PromoteFields(context.Background(), target.UserID, scan.ID,
			map[string]string{"Annual Fee": "$95"})
		assert.NoError(t, err)
	}()
	wg.Wait()

	// Both serial orders are valid end states: promote-then-approve leaves
	// the approved payload, approve-then-promote leaves it plus the merged
	// field. A torn interleave (the promotion applied to pre-approval data
	// surviving the approval's replacement) is not.
	require.NotNil(t, store.targets[target.ID].MasterData)
	got := *store.targets[target.ID].MasterData
	assert.Contains(t, []string{
		`{"summary":"great","structured":{"APR":"15%"}}`,
		`{"summary":"great","structured":{"APR":"15%","Annual Fee":"$95"}}`,
	}, got)
}

func TestBrandOperationsThroughScan(t *testing.T) {
	svc, store, target, scan := setup(t)
	existing := `{"summary":"","structured":{"Card Brands":"Visa"}}`
	store.targets[target.ID].MasterData = &existing

	env, err := svc.AddBrand(context.Background(), target.UserID, scan.ID, "Mastercard")
	require.NoError(t, err)
	assert.Equal(t, "Visa, Mastercard", env.Structured["Card Brands"])

	env, err = svc.RemoveBrand(context.Background(), target.UserID, scan.ID, "Visa")
	require.NoError(t, err)
	assert.Equal(t, "Mastercard", env.Structured["Card Brands"])
}
