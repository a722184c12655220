package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	listingpb "github.com/homescribe/listinggen/gen/proto/listing/v1"

	"github.com/homescribe/listinggen/internal/common"
	"github.com/homescribe/listinggen/internal/enrich"
	"github.com/homescribe/listinggen/internal/enrich/tavily"
	"github.com/homescribe/listinggen/internal/export"
	"github.com/homescribe/listinggen/internal/guardrails"
	"github.com/homescribe/listinggen/internal/llm/openai"
	"github.com/homescribe/listinggen/internal/pipeline"
	repo "github.com/homescribe/listinggen/internal/repository"
	"github.com/homescribe/listinggen/internal/server"
	"github.com/homescribe/listinggen/internal/services/listing"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	runsRepo := repo.NewListingRepository(entc, logger)

	// Search provider is optional: without it enrichment degrades to a
	// per-run configuration error instead of blocking startup.
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

	listingSvc := listing.NewService(orchestrator, runsRepo, logger)
	exporter := export.NewService(runsRepo, logger)

	listingServer := server.NewListingServer(listingSvc, runsRepo, exporter, logger)
	listingpb.RegisterListingServiceServer(grpcServer, listingServer)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	logger.Info("listingd listening", "addr", addr, "model", cfg.LLM.Model)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
