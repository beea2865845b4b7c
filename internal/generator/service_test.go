package generator

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/repository"
)

type stubChat struct {
	reply   string
	lastReq llm.CompletionRequest
}

func (s *stubChat) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.lastReq = req
	return s.reply, nil
}

type fakeTargets struct {
	byUser map[uuid.UUID][]*entity.Target
	byID   map[uuid.UUID]*entity.Target
}

func newFakeTargets(targets ...*entity.Target) *fakeTargets {
	f := &fakeTargets{byUser: map[uuid.UUID][]*entity.Target{}, byID: map[uuid.UUID]*entity.Target{}}
	for _, t := range targets {
		f.byUser[t.UserID] = append(f.byUser[t.UserID], t)
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeTargets) Create(context.Context, *entity.Target) (*entity.Target, error) {
	return nil, nil
}

func (f *fakeTargets) GetByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, common.NewAppError("TARGET_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return t, nil
}

func (f *fakeTargets) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Target, error) {
	return f.byUser[userID], nil
}

func (f *fakeTargets) ListActive(context.Context) ([]*entity.Target, error) { return nil, nil }
func (f *fakeTargets) UpdateConfig(context.Context, uuid.UUID, repository.TargetConfigUpdate) error {
	return nil
}
func (f *fakeTargets) SetMasterData(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeTargets) Delete(context.Context, uuid.UUID) error                { return nil }

type fakeScans struct {
	byID          map[uuid.UUID]*entity.ScanResult
	latestSuccess map[uuid.UUID]*entity.ScanResult
}

func newFakeScans(scans ...*entity.ScanResult) *fakeScans {
	f := &fakeScans{byID: map[uuid.UUID]*entity.ScanResult{}, latestSuccess: map[uuid.UUID]*entity.ScanResult{}}
	for _, sc := range scans {
		f.byID[sc.ID] = sc
		if sc.Status == string(constants.ScanStatusSuccess) {
			f.latestSuccess[sc.TargetID] = sc
		}
	}
	return f
}

func (f *fakeScans) CreateSuccess(context.Context, uuid.UUID, string, string, *string) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeScans) CreateFailure(context.Context, uuid.UUID, string) (*entity.ScanResult, error) {
	return nil, nil
}

func (f *fakeScans) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanResult, error) {
	sc, ok := f.byID[id]
	if !ok {
		return nil, common.NewAppError("SCAN_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return sc, nil
}

func (f *fakeScans) LatestForTarget(context.Context, uuid.UUID) (*entity.ScanResult, error) {
	return nil, nil
}

func (f *fakeScans) LatestSuccessForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error) {
	return f.latestSuccess[targetID], nil
}

func (f *fakeScans) ListByTarget(context.Context, uuid.UUID, int) ([]*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeScans) SetReviewStatus(context.Context, uuid.UUID, constants.ReviewStatus) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestListAvailable_SkipsTargetsWithoutSuccess(t *testing.T) {
	userID := uuid.New()
	scanned := &entity.Target{ID: uuid.New(), UserID: userID, Name: "Acme Card", URL: "https://acme.example"}
	unscanned := &entity.Target{ID: uuid.New(), UserID: userID, Name: "Globex Card", URL: "https://globex.example"}

	latest := &entity.ScanResult{
		ID: uuid.New(), TargetID: scanned.ID,
		Status:    string(constants.ScanStatusSuccess),
		CreatedAt: time.Now(),
	}

	svc := NewService(&stubChat{}, newFakeTargets(scanned, unscanned), newFakeScans(latest), nil)

	out, err := svc.ListAvailable(context.Background(), userID, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, scanned.ID, out[0].TargetID)
	assert.Equal(t, latest.ID, out[0].ScanID)
}

func TestListAvailable_FiltersByName(t *testing.T) {
	userID := uuid.New()
	a := &entity.Target{ID: uuid.New(), UserID: userID, Name: "Acme Card"}
	b := &entity.Target{ID: uuid.New(), UserID: userID, Name: "Globex Card"}
	scans := newFakeScans(
		&entity.ScanResult{ID: uuid.New(), TargetID: a.ID, Status: string(constants.ScanStatusSuccess)},
		&entity.ScanResult{ID: uuid.New(), TargetID: b.ID, Status: string(constants.ScanStatusSuccess)},
	)

	svc := NewService(&stubChat{}, newFakeTargets(a, b), scans, nil)

	out, err := svc.ListAvailable(context.Background(), userID, "globex")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Globex Card", out[0].TargetName)
}

func TestGenerate_BuildsInputsAndReturnsMarkdown(t *testing.T) {
	userID := uuid.New()
	target := &entity.Target{ID: uuid.New(), UserID: userID, Name: "Acme Card"}
	scan := &entity.ScanResult{
		ID: uuid.New(), TargetID: target.ID,
		Status:        string(constants.ScanStatusSuccess),
		ExtractedData: strPtr(`{"summary":"great card","structured":{"APR":"15%"}}`),
	}

	chat := &stubChat{reply: "# Value Proposition Summary\n..."}
	svc := NewService(chat, newFakeTargets(target), newFakeScans(scan), nil)

	out, err := svc.Generate(context.Background(), userID, []uuid.UUID{scan.ID})
	require.NoError(t, err)

	assert.Equal(t, "# Value Proposition Summary\n...", out)
	assert.Contains(t, chat.lastReq.System, "MEDIAN")
	assert.Contains(t, chat.lastReq.User, "Target: Acme Card")
	assert.Contains(t, chat.lastReq.User, `"APR":"15%"`)
	assert.False(t, chat.lastReq.JSONMode)
}

func TestGenerate_EmptySelectionRejected(t *testing.T) {
	svc := NewService(&stubChat{}, newFakeTargets(), newFakeScans(), nil)

	_, err := svc.Generate(context.Background(), uuid.New(), nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGenerate_ForeignScanRejected(t *testing.T) {
	owner := uuid.New()
	target := &entity.Target{ID: uuid.New(), UserID: owner, Name: "Acme Card"}
	scan := &entity.ScanResult{ID: uuid.New(), TargetID: target.ID, Status: string(constants.ScanStatusSuccess)}

	svc := NewService(&stubChat{}, newFakeTargets(target), newFakeScans(scan), nil)

	_, err := svc.Generate(context.Background(), uuid.New(), []uuid.UUID{scan.ID})
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestGenerate_MissingDataBecomesPlaceholder(t *testing.T) {
	userID := uuid.New()
	target := &entity.Target{ID: uuid.New(), UserID: userID, Name: "Acme Card"}
	scan := &entity.ScanResult{ID: uuid.New(), TargetID: target.ID, Status: string(constants.ScanStatusSuccess)}

	chat := &stubChat{reply: "ok"}
	svc := NewService(chat, newFakeTargets(target), newFakeScans(scan), nil)

	_, err := svc.Generate(context.Background(), userID, []uuid.UUID{scan.ID})
	require.NoError(t, err)
	assert.Contains(t, chat.lastReq.User, "Data: No data")
}
