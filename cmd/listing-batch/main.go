package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/async"
	"github.com/homescribe/listinggen/internal/common"
	"github.com/homescribe/listinggen/internal/enrich"
	"github.com/homescribe/listinggen/internal/enrich/tavily"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/export"
	"github.com/homescribe/listinggen/internal/guardrails"
	"github.com/homescribe/listinggen/internal/llm/openai"
	"github.com/homescribe/listinggen/internal/pipeline"
	repo "github.com/homescribe/listinggen/internal/repository"
	"github.com/homescribe/listinggen/internal/services/listing"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	_ = godotenv.Load()

	var (
		in      = flag.String("in", "", "JSON file holding an array of listing requests (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to the input's directory)")
		dbPath  = flag.String("db", "", "SQLite file for run history (ignored when DB_URL is set; empty means in-memory)")
		workers = flag.Int("workers", 4, "concurrent generation workers")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*in), "listings.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY env var is required\n")
		os.Exit(2)
	}

	requests, err := readRequests(*in)
	if err != nil {
		logger.Error("failed to read requests", "path", *in, "error", err)
		os.Exit(1)
	}
	if len(requests) == 0 {
		logger.Error("no requests in input file", "path", *in)
		os.Exit(1)
	}

	dbConfig := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	dbResult, err := repo.InitDatabase(ctx, dbConfig, *dbPath, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	runsRepo := repo.NewListingRepository(dbResult.Client, logger)

	var provider enrich.SearchProvider
	if cfg.Search.APIKey != "" {
		tav, err := tavily.NewClient(tavily.Config{
			APIKey:      cfg.Search.APIKey,
			BaseURL:     cfg.Search.BaseURL,
			MaxResults:  cfg.Search.MaxResults,
			SearchDepth: cfg.Search.SearchDepth,
			Timeout:     cfg.Search.Timeout,
		}, logger)
		if err != nil {
			logger.Error("failed to build search client", "error", err)
			os.Exit(1)
		}
		provider = tav
	} else {
		logger.Warn("TAVILY_API_KEY not set, enrichment disabled")
	}
	engine, err := enrich.NewEngine(enrich.Config{
		SearchTimeout: cfg.Enrich.SearchTimeout,
		CacheSize:     cfg.Enrich.CacheSize,
	}, provider, logger)
	if err != nil {
		logger.Error("failed to build enrichment engine", "error", err)
		os.Exit(1)
	}

	generator := openai.NewClient(openai.Config{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	orchestrator := pipeline.New(guardrails.NewRulePolicy(guardrails.DefaultConfig()), engine, generator, logger)
	svc := listing.NewService(orchestrator, runsRepo, logger)

	queue := async.NewRunnerQueue(svc, logger,
		async.WithWorkers(*workers),
		async.WithQueueSize(2*len(requests)),
	)

	// Pre-insert every run as QUEUED so the history shows the whole batch
	// even if generation dies midway.
	enqueued := 0
	for i, raw := range requests {
		req := listing.CoerceInput(raw)
		run, err := runsRepo.CreateRun(ctx, &req, constants.RunStatusQueued)
		if err != nil {
			logger.Error("failed to create run row", "index", i, "error", err)
			continue
		}
		_ = queue.Enqueue(ctx, async.Job{RunID: run.ID, Request: req})
		enqueued++
	}

	queue.Shutdown(ctx)

	// Tally outcomes from the store rather than from worker returns
	filter := repo.ListRunsFilter{Limit: len(requests)}
	runs, err := runsRepo.ListRuns(ctx, filter)
	if err != nil {
		logger.Error("failed to list runs for summary", "error", err)
		os.Exit(1)
	}
	succeeded, failed := 0, 0
	for _, r := range runs {
		switch r.Status {
		case string(constants.RunStatusSucceeded):
			succeeded++
		case string(constants.RunStatusFailed):
			failed++
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exporter := export.NewService(runsRepo, logger)
	xlsxBytes, err := exporter.ExportRunsXLSX(ctx, filter)
	if err != nil {
		logger.Error("failed to export runs", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch generation complete",
		"requests", len(requests),
		"enqueued", enqueued,
		"succeeded", succeeded,
		"failed", failed,
		"output_file", *out)

	fmt.Printf("Batch generation complete!\n")
	fmt.Printf("- Requests: %d\n", len(requests))
	fmt.Printf("- Succeeded: %d\n", succeeded)
	fmt.Printf("- Failed: %d\n", failed)
	fmt.Printf("- Output: %s\n", *out)
}

func readRequests(path string) ([]entity.PropertyInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var requests []entity.PropertyInput
	if err := json.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("parse requests: %w", err)
	}
	return requests, nil
}
