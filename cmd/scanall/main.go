// Command scanall runs one scheduler batch from the CLI: every active target
// (or only the due ones) is fetched, extracted, and persisted, then a
// per-target summary is printed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/fetch"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/llm/openai"
	"github.com/marketlens/marketlens/internal/repository"
	"github.com/marketlens/marketlens/internal/scan"
	"github.com/marketlens/marketlens/internal/scheduler"
)

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database instead of DB_URL")
		dueOnly = flag.Bool("due-only", false, "scan only targets whose cadence has elapsed")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: OPENAI_API_KEY is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		targets repository.TargetRepository
		scans   repository.ScanRepository
	)
	if *inmem {
		entc, err := repository.OpenSQLiteInMemory(ctx, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening in-memory database: %v\n", err)
			os.Exit(1)
		}
		defer entc.Close()
		targets = repository.NewTargetRepository(entc, logger)
		scans = repository.NewScanRepository(entc, logger)
	} else {
		if cfg.Database.DSN == "" {
			fmt.Fprintln(os.Stderr, "Error: DB_URL is required (or pass -inmem)")
			os.Exit(2)
		}
		entc, pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening database: %v\n", err)
			os.Exit(1)
		}
		defer repository.Close(entc, pool, logger)
		targets = repository.NewTargetRepository(entc, logger)
		scans = repository.NewScanRepository(entc, logger)
	}

	chat := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	renderer := fetch.NewChromeRenderer(fetch.Config{
		Timeout:    cfg.Render.Timeout,
		TextBudget: cfg.Render.TextBudget,
		ExecPath:   cfg.Render.ExecPath,
	}, logger)
	pipeline := scan.NewPipeline(targets, scans, renderer, llm.NewFieldExtractor(chat, logger), logger)
	batch := scheduler.New(targets, scans, pipeline, cfg.Scheduler.Concurrency, logger)

	run := batch.RunAll
	if *dueOnly {
		run = batch.RunDue
	}
	sum, err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: batch scan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("scanned %d target(s)\n", sum.Scanned)
	for _, o := range sum.Results {
		if o.Success {
			fmt.Printf("  OK   %s (%s) scan=%s\n", o.Name, o.TargetID, o.ScanID)
		} else {
			fmt.Printf("  FAIL %s (%s): %s\n", o.Name, o.TargetID, o.Error)
		}
	}
}
