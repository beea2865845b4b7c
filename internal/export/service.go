package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/marketlens/marketlens/internal/payload"
	"github.com/marketlens/marketlens/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// master-data exports.
type Service struct {
	targets repository.TargetRepository
	scans   repository.ScanRepository
	logger  *slog.Logger
}

func NewService(targets repository.TargetRepository, scans repository.ScanRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{targets: targets, scans: scans, logger: logger}
}

// ExportMasterXLSX returns an XLSX workbook (as bytes) with one row per
// target the user owns: identity, schedule, last scan time, master summary,
// then one column per structured field seen across any target's master data.
func (s *Service) ExportMasterXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	targets, err := s.targets.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query targets: %w", err)
	}

	type row struct {
		name, url, schedule, lastScan, summary string
		structured                             map[string]string
	}

	rows := make([]row, 0, len(targets))
	fieldSet := map[string]struct{}{}
	for _, t := range targets {
		r := row{name: t.Name, url: t.URL, schedule: t.Schedule}

		latest, err := s.scans.LatestForTarget(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("query scans: %w", err)
		}
		if latest != nil {
			r.lastScan = latest.CreatedAt.UTC().Format("2006-01-02 15:04")
		}

		if t.MasterData != nil {
			env := payload.Parse(*t.MasterData).Envelope
			r.summary = env.Summary
			r.structured = env.Structured
			for k := range env.Structured {
				fieldSet[k] = struct{}{}
			}
		}
		rows = append(rows, r)
	}

	fieldCols := make([]string, 0, len(fieldSet))
	for k := range fieldSet {
		fieldCols = append(fieldCols, k)
	}
	sort.Strings(fieldCols)

	f := excelize.NewFile()
	const sheet = "Master Data"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := append([]string{"Target", "URL", "Schedule", "Last Scan", "Summary"}, fieldCols...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.name)
		write(2, r.url)
		write(3, r.schedule)
		write(4, r.lastScan)
		write(5, truncate(r.summary, 200))
		for j, field := range fieldCols {
			write(6+j, r.structured[field])
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // target name
	_ = f.SetColWidth(sheet, "B", "B", 48) // url
	_ = f.SetColWidth(sheet, "C", "D", 16) // schedule, last scan
	_ = f.SetColWidth(sheet, "E", "E", 60) // summary

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(rows),
		"fields", len(fieldCols),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
