package scan

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/fetch"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/repository"
)

// MockTargets is a mock implementation of repository.TargetRepository.
type MockTargets struct {
	mock.Mock
}

func (m *MockTargets) Create(ctx context.Context, t *entity.Target) (*entity.Target, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(*entity.Target), args.Error(1)
}

func (m *MockTargets) GetByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Target), args.Error(1)
}

func (m *MockTargets) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Target, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Target), args.Error(1)
}

func (m *MockTargets) ListActive(ctx context.Context) ([]*entity.Target, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Target), args.Error(1)
}

func (m *MockTargets) UpdateConfig(ctx context.Context, id uuid.UUID, upd repository.TargetConfigUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockTargets) SetMasterData(ctx context.Context, id uuid.UUID, data string) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *MockTargets) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockScans is a mock implementation of repository.ScanRepository.
type MockScans struct {
	mock.Mock
}

func (m *MockScans) CreateSuccess(ctx context.Context, targetID uuid.UUID, extractedData, content string, screenshot *string) (*entity.ScanResult, error) {
	args := m.Called(ctx, targetID, extractedData, content, screenshot)
	return args.Get(0).(*entity.ScanResult), args.Error(1)
}

func (m *MockScans) CreateFailure(ctx context.Context, targetID uuid.UUID, errorMessage string) (*entity.ScanResult, error) {
	args := m.Called(ctx, targetID, errorMessage)
	return args.Get(0).(*entity.ScanResult), args.Error(1)
}

func (m *MockScans) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.ScanResult), args.Error(1)
}

func (m *MockScans) LatestForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScanResult), args.Error(1)
}

func (m *MockScans) LatestSuccessForTarget(ctx context.Context, targetID uuid.UUID) (*entity.ScanResult, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScanResult), args.Error(1)
}

func (m *MockScans) ListByTarget(ctx context.Context, targetID uuid.UUID, limit int) ([]*entity.ScanResult, error) {
	args := m.Called(ctx, targetID, limit)
	return args.Get(0).([]*entity.ScanResult), args.Error(1)
}

func (m *MockScans) SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type stubRenderer struct {
	result *fetch.Result
	err    error
}

func (s *stubRenderer) Render(context.Context, string) (*fetch.Result, error) {
	return s.result, s.err
}

type stubExtractor struct {
	result llm.ExtractResult
	err    error
}

func (s *stubExtractor) Extract(context.Context, llm.ExtractRequest) (llm.ExtractResult, error) {
	return s.result, s.err
}

func testTarget(id uuid.UUID) *entity.Target {
	return &entity.Target{
		ID:       id,
		UserID:   uuid.New(),
		URL:      "https://example.com/card",
		Name:     "Example Card",
		Schedule: string(constants.ScheduleDaily),
		Active:   true,
	}
}

func TestRun_SuccessWritesExactlyOneSuccessRow(t *testing.T) {
	targetID := uuid.New()
	scanID := uuid.New()

	targets := new(MockTargets)
	targets.On("GetByID", mock.Anything, targetID).Return(testTarget(targetID), nil)

	scans := new(MockScans)
	scans.On("CreateSuccess", mock.Anything, targetID, `{"summary":"s","structured":{"Card Brands":"Visa"}}`, "rendered text", mock.Anything).
		Return(&entity.ScanResult{ID: scanID, TargetID: targetID, Status: string(constants.ScanStatusSuccess)}, nil)

	p := NewPipeline(targets, scans,
		&stubRenderer{result: &fetch.Result{StatusCode: 200, Text: "rendered text", Screenshot: []byte{1, 2, 3}}},
		&stubExtractor{result: llm.ExtractResult{Raw: `{"summary":"s","structured":{"Card Brands":"Visa"}}`}},
		nil)

	res, err := p.Run(context.Background(), targetID)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, scanID, res.ScanID)
	scans.AssertNumberOfCalls(t, "CreateSuccess", 1)
	scans.AssertNotCalled(t, "CreateFailure", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_FetchErrorWritesExactlyOneFailureRow(t *testing.T) {
	targetID := uuid.New()
	fetchErr := &fetch.Error{URL: "https://example.com/card", StatusCode: 500, Reason: "http error status"}

	targets := new(MockTargets)
	targets.On("GetByID", mock.Anything, targetID).Return(testTarget(targetID), nil)

	scans := new(MockScans)
	scans.On("CreateFailure", mock.Anything, targetID, fetchErr.Error()).
		Return(&entity.ScanResult{ID: uuid.New(), TargetID: targetID, Status: string(constants.ScanStatusFailed)}, nil)

	p := NewPipeline(targets, scans, &stubRenderer{err: fetchErr}, &stubExtractor{}, nil)

	res, err := p.Run(context.Background(), targetID)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, fetchErr.Error(), res.Error)
	scans.AssertNumberOfCalls(t, "CreateFailure", 1)
	scans.AssertNotCalled(t, "CreateSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_Soft404WritesFailureRow(t *testing.T) {
	targetID := uuid.New()
	fetchErr := &fetch.Error{URL: "https://example.com/gone", StatusCode: 200, Reason: "page renders a not-found message (soft 404)"}

	targets := new(MockTargets)
	targets.On("GetByID", mock.Anything, targetID).Return(testTarget(targetID), nil)

	scans := new(MockScans)
	scans.On("CreateFailure", mock.Anything, targetID, fetchErr.Error()).
		Return(&entity.ScanResult{ID: uuid.New(), TargetID: targetID, Status: string(constants.ScanStatusFailed)}, nil)

	p := NewPipeline(targets, scans, &stubRenderer{err: fetchErr}, &stubExtractor{}, nil)

	res, err := p.Run(context.Background(), targetID)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not-found")
	scans.AssertNumberOfCalls(t, "CreateFailure", 1)
}

func TestRun_ExtractionErrorWritesFailureRow(t *testing.T) {
	targetID := uuid.New()
	exErr := &llm.ExtractionError{Reason: "llm call failed"}

	targets := new(MockTargets)
	targets.On("GetByID", mock.Anything, targetID).Return(testTarget(targetID), nil)

	scans := new(MockScans)
	scans.On("CreateFailure", mock.Anything, targetID, exErr.Error()).
		Return(&entity.ScanResult{ID: uuid.New(), TargetID: targetID, Status: string(constants.ScanStatusFailed)}, nil)

	p := NewPipeline(targets, scans,
		&stubRenderer{result: &fetch.Result{StatusCode: 200, Text: "text"}},
		&stubExtractor{err: exErr},
		nil)

	res, err := p.Run(context.Background(), targetID)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, exErr.Error(), res.Error)
	scans.AssertNumberOfCalls(t, "CreateFailure", 1)
}

func TestRun_MalformedExtractionStillSucceeds(t *testing.T) {
	targetID := uuid.New()
	raw := "prose reply, not JSON"

	targets := new(MockTargets)
	targets.On("GetByID", mock.Anything, targetID).Return(testTarget(targetID), nil)

	scans := new(MockScans)
	scans.On("CreateSuccess", mock.Anything, targetID, raw, "text", mock.Anything).
		Return(&entity.ScanResult{ID: uuid.New(), TargetID: targetID, Status: string(constants.ScanStatusSuccess)}, nil)

	p := NewPipeline(targets, scans,
		&stubRenderer{result: &fetch.Result{StatusCode: 200, Text: "text"}},
		&stubExtractor{result: llm.ExtractResult{Raw: raw, Malformed: true}},
		nil)

	res, err := p.Run(context.Background(), targetID)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, raw, res.Data)
}

func TestRun_MissingTargetWritesNoRow(t *testing.T) {
	targetID := uuid.New()

	targets := new(MockTargets)
	targets.On("GetByID", mock.Anything, targetID).
		Return(nil, common.NewAppError("TARGET_NOT_FOUND", targetID.String(), common.ErrNotFound))

	scans := new(MockScans)

	p := NewPipeline(targets, scans, &stubRenderer{}, &stubExtractor{}, nil)

	_, err := p.Run(context.Background(), targetID)
	require.ErrorIs(t, err, common.ErrNotFound)

	scans.AssertNotCalled(t, "CreateSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	scans.AssertNotCalled(t, "CreateFailure", mock.Anything, mock.Anything, mock.Anything)
}
