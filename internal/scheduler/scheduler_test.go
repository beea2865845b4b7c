package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/repository"
	"github.com/marketlens/marketlens/internal/scan"
)

type fakeTargets struct {
	active []*entity.Target
	err    error
}

func (f *fakeTargets) Create(context.Context, *entity.Target) (*entity.Target, error) {
	return nil, nil
}
func (f *fakeTargets) GetByID(context.Context, uuid.UUID) (*entity.Target, error) {
	return nil, nil
}
func (f *fakeTargets) ListByUser(context.Context, uuid.UUID) ([]*entity.Target, error) {
	return nil, nil
}
func (f *fakeTargets) ListActive(context.Context) ([]*entity.Target, error) {
	return f.active, f.err
}
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

type fakeRunner struct {
	mu      sync.Mutex
	ran     []uuid.UUID
	results map[uuid.UUID]scan.Result
	errs    map[uuid.UUID]error

	inFlight int32
	maxSeen  int32
}

func (f *fakeRunner) Run(ctx context.Context, targetID uuid.UUID) (scan.Result, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	for {
		seen := atomic.LoadInt32(&f.maxSeen)
		if cur <= seen || atomic.CompareAndSwapInt32(&f.maxSeen, seen, cur) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	atomic.AddInt32(&f.inFlight, -1)

	f.mu.Lock()
	f.ran = append(f.ran, targetID)
	f.mu.Unlock()

	if err := f.errs[targetID]; err != nil {
		return scan.Result{}, err
	}
	if res, ok := f.results[targetID]; ok {
		return res, nil
	}
	return scan.Result{Success: true, ScanID: uuid.New()}, nil
}

func newTarget(schedule constants.Schedule) *entity.Target {
	return &entity.Target{ID: uuid.New(), Name: "t", Schedule: string(schedule), Active: true}
}

func TestDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ago := func(h int) *time.Time {
		ts := now.Add(-time.Duration(h) * time.Hour)
		return &ts
	}

	tests := []struct {
		name     string
		schedule constants.Schedule
		last     *time.Time
		want     bool
	}{
		{"never scanned always due", constants.ScheduleMonthly, nil, true},
		{"daily at 23h not due", constants.ScheduleDaily, ago(23), false},
		{"daily at 24h due", constants.ScheduleDaily, ago(24), true},
		{"weekly at 167h not due", constants.ScheduleWeekly, ago(167), false},
		{"weekly at 168h due", constants.ScheduleWeekly, ago(168), true},
		{"monthly at 719h not due", constants.ScheduleMonthly, ago(719), false},
		{"monthly at 720h due", constants.ScheduleMonthly, ago(720), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Due(tc.schedule, tc.last, now))
		})
	}
}

func TestRunDue_OnlyDueTargetsScanned(t *testing.T) {
	now := time.Now()
	recent := now.Add(-1 * time.Hour)
	stale := now.Add(-25 * time.Hour)

	fresh := newTarget(constants.ScheduleDaily)
	overdue := newTarget(constants.ScheduleDaily)
	unscanned := newTarget(constants.ScheduleMonthly)

	runner := &fakeRunner{}
	s := New(
		&fakeTargets{active: []*entity.Target{fresh, overdue, unscanned}},
		&fakeScans{latest: map[uuid.UUID]*entity.ScanResult{
			fresh.ID:   {ID: uuid.New(), TargetID: fresh.ID, CreatedAt: recent},
			overdue.ID: {ID: uuid.New(), TargetID: overdue.ID, CreatedAt: stale},
		}},
		runner, 2, nil)
	s.now = func() time.Time { return now }

	sum, err := s.RunDue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Scanned)
	assert.ElementsMatch(t, []uuid.UUID{overdue.ID, unscanned.ID}, runner.ran)
}

func TestRunAll_IgnoresCadenceAndIsolatesFailures(t *testing.T) {
	ok := newTarget(constants.ScheduleDaily)
	failed := newTarget(constants.ScheduleDaily)
	broken := newTarget(constants.ScheduleDaily)

	runner := &fakeRunner{
		results: map[uuid.UUID]scan.Result{
			failed.ID: {Success: false, ScanID: uuid.New(), Error: "render timeout"},
		},
		errs: map[uuid.UUID]error{
			broken.ID: errors.New("db down"),
		},
	}
	s := New(&fakeTargets{active: []*entity.Target{ok, failed, broken}}, &fakeScans{}, runner, 2, nil)

	sum, err := s.RunAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, sum.Scanned)
	require.Len(t, sum.Results, 3)

	byID := map[uuid.UUID]Outcome{}
	for _, o := range sum.Results {
		byID[o.TargetID] = o
	}
	assert.True(t, byID[ok.ID].Success)
	assert.False(t, byID[failed.ID].Success)
	assert.Equal(t, "render timeout", byID[failed.ID].Error)
	assert.False(t, byID[broken.ID].Success)
	assert.Equal(t, "db down", byID[broken.ID].Error)
}

func TestRunAll_RespectsConcurrencyCap(t *testing.T) {
	targets := make([]*entity.Target, 8)
	for i := range targets {
		targets[i] = newTarget(constants.ScheduleDaily)
	}

	runner := &fakeRunner{}
	s := New(&fakeTargets{active: targets}, &fakeScans{}, runner, 2, nil)

	sum, err := s.RunAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, sum.Scanned)
	assert.LessOrEqual(t, runner.maxSeen, int32(2))
}
