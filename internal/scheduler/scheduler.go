// Package scheduler triggers scans for targets whose cadence has elapsed.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/repository"
	"github.com/marketlens/marketlens/internal/scan"
)

// DefaultConcurrency bounds simultaneous headless-browser instances.
const DefaultConcurrency = 2

// Outcome reports how one target fared in a batch run.
type Outcome struct {
	TargetID uuid.UUID
	Name     string
	Success  bool
	ScanID   uuid.UUID
	Error    string
}

// Summary aggregates a batch run.
type Summary struct {
	Scanned int
	Results []Outcome
}

// Runner is the part of the scan pipeline the scheduler drives.
type Runner interface {
	Run(ctx context.Context, targetID uuid.UUID) (scan.Result, error)
}

// Scheduler polls active targets and scans the ones that are due. One tick
// scans each due target at most once; per-target failures are collected in
// the summary, never propagated.
type Scheduler struct {
	targets     repository.TargetRepository
	scans       repository.ScanRepository
	runner      Runner
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
}

func New(
	targets repository.TargetRepository,
	scans repository.ScanRepository,
	runner Runner,
	concurrency int,
	logger *slog.Logger,
) *Scheduler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		targets:     targets,
		scans:       scans,
		runner:      runner,
		concurrency: concurrency,
		logger:      logger,
		now:         time.Now,
	}
}

// Due reports whether a target on the given schedule needs a scan: the time
// since its most recent scan meets or exceeds the schedule's interval. A
// target never scanned is always due.
func Due(schedule constants.Schedule, lastScanAt *time.Time, now time.Time) bool {
	if lastScanAt == nil {
		return true
	}
	return now.Sub(*lastScanAt) >= schedule.Interval()
}

// RunDue scans every active target whose cadence has elapsed.
func (s *Scheduler) RunDue(ctx context.Context) (Summary, error) {
	return s.run(ctx, true)
}

// RunAll scans every active target regardless of cadence.
func (s *Scheduler) RunAll(ctx context.Context) (Summary, error) {
	return s.run(ctx, false)
}

func (s *Scheduler) run(ctx context.Context, dueOnly bool) (Summary, error) {
	targets, err := s.targets.ListActive(ctx)
	if err != nil {
		return Summary{}, err
	}

	now := s.now()
	due := targets[:0:0]
	for _, t := range targets {
		if !dueOnly {
			due = append(due, t)
			continue
		}
		last, err := s.scans.LatestForTarget(ctx, t.ID)
		if err != nil {
			return Summary{}, err
		}
		var lastAt *time.Time
		if last != nil {
			lastAt = &last.CreatedAt
		}
		if Due(constants.Schedule(t.Schedule), lastAt, now) {
			due = append(due, t)
		}
	}

	s.logger.Info("scheduler.tick", "active", len(targets), "due", len(due))

	results := make([]Outcome, len(due))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, t := range due {
		g.Go(func() error {
			res, err := s.runner.Run(gctx, t.ID)
			out := Outcome{TargetID: t.ID, Name: t.Name}
			switch {
			case err != nil:
				// Precondition or persistence failure; the target is
				// reported failed but the batch continues.
				out.Error = err.Error()
				s.logger.Error("scheduler.scan.error", "target_id", t.ID, "err", err)
			case res.Success:
				out.Success = true
				out.ScanID = res.ScanID
			default:
				out.ScanID = res.ScanID
				out.Error = res.Error
			}
			results[i] = out
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; failures live in results

	return Summary{Scanned: len(due), Results: results}, nil
}

// Start ticks RunDue at the given interval until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	s.logger.Info("scheduler.start", "tick", tick, "concurrency", s.concurrency)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler.stop")
			return
		case <-ticker.C:
			if _, err := s.RunDue(ctx); err != nil {
				s.logger.Error("scheduler.tick.error", "err", err)
			}
		}
	}
}
