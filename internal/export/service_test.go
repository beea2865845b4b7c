package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/repository"
)

type fakeTargets struct {
	byUser map[uuid.UUID][]*entity.Target
}

func (f *fakeTargets) Create(context.Context, *entity.Target) (*entity.Target, error) {
	return nil, nil
}
func (f *fakeTargets) GetByID(context.Context, uuid.UUID) (*entity.Target, error) {
	return nil, nil
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
	latest map[uuid.UUID]*entity.ScanResult
}

func (f *fakeScans) CreateSuccess(context.Context, uuid.UUID, string, string, *string) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeScans) CreateFailure(context.Context, uuid.UUID, string) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeScans) GetByID(context.Context, uuid.UUID) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeScans) LatestForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error) {
	return f.latest[targetID], nil
}
func (f *fakeScans) LatestSuccessForTarget(context.Context, uuid.UUID) (*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeScans) ListByTarget(context.Context, uuid.UUID, int) ([]*entity.ScanResult, error) {
	return nil, nil
}
func (f *fakeScans) SetReviewStatus(context.Context, uuid.UUID, constants.ReviewStatus) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestExportMasterXLSX(t *testing.T) {
	userID := uuid.New()
	a := &entity.Target{
		ID: uuid.New(), UserID: userID,
		Name: "Acme Card", URL: "https://acme.example", Schedule: "daily",
		MasterData: strPtr(`{"summary":"great card","structured":{"APR":"15%","Card Brands":"Visa"}}`),
	}
	b := &entity.Target{
		ID: uuid.New(), UserID: userID,
		Name: "Globex Card", URL: "https://globex.example", Schedule: "monthly",
	}

	scanAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	scans := &fakeScans{latest: map[uuid.UUID]*entity.ScanResult{
		a.ID: {ID: uuid.New(), TargetID: a.ID, CreatedAt: scanAt},
	}}

	svc := NewService(&fakeTargets{byUser: map[uuid.UUID][]*entity.Target{userID: {a, b}}}, scans, nil)

	out, err := svc.ExportMasterXLSX(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Master Data")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Target", "URL", "Schedule", "Last Scan", "Summary", "APR", "Card Brands"}, rows[0])

	assert.Equal(t, "Acme Card", rows[1][0])
	assert.Equal(t, "2025-06-01 09:30", rows[1][3])
	assert.Equal(t, "great card", rows[1][4])
	assert.Equal(t, "15%", rows[1][5])
	assert.Equal(t, "Visa", rows[1][6])

	assert.Equal(t, "Globex Card", rows[2][0])
	assert.Equal(t, "https://globex.example", rows[2][1])
}

func TestExportMasterXLSX_NoTargets(t *testing.T) {
	svc := NewService(&fakeTargets{byUser: map[uuid.UUID][]*entity.Target{}}, &fakeScans{}, nil)

	out, err := svc.ExportMasterXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Master Data")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
