package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/homescribe/listinggen/internal/common"
	"github.com/homescribe/listinggen/internal/enrich"
	"github.com/homescribe/listinggen/internal/enrich/tavily"
	"github.com/homescribe/listinggen/internal/entity"
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
	// .env is optional; real runs usually export the keys directly
	_ = godotenv.Load()

	var (
		jsonPath     = flag.String("json", "", "read the request from a JSON file instead of flags (use - for stdin)")
		address      = flag.String("address", "", "property address")
		listingType  = flag.String("type", "", "listing type: sale or rent")
		propertyType = flag.String("property-type", "", "property type, e.g. Apartment")
		region       = flag.String("region", "", "region code (US, CA, UK, AU), defaults to US")
		bedrooms     = flag.Int("bedrooms", 0, "number of bedrooms")
		bathrooms    = flag.Float64("bathrooms", 0, "number of bathrooms")
		sqft         = flag.Int("sqft", 0, "interior area in square feet")
		price        = flag.Float64("price", 0, "asking price (sale) or periodic rent")
		notes        = flag.String("notes", "", "freeform notes about the property")
		landmarks    = flag.String("landmarks", "", "comma-separated landmark names")
		dbPath       = flag.String("db", "", "SQLite file to record the run in (optional)")
	)
	flag.Parse()

	// logs go to stderr so stdout stays clean for the listing itself
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY env var is required\n")
		os.Exit(2)
	}

	var req entity.PropertyInput
	if *jsonPath != "" {
		var err error
		req, err = readRequest(*jsonPath)
		if err != nil {
			printError("Error: reading request: %v\n", err)
			os.Exit(1)
		}
	} else {
		req = entity.PropertyInput{
			Address:      *address,
			ListingType:  *listingType,
			PropertyType: *propertyType,
			Region:       *region,
			Notes:        *notes,
		}
		// only flags the user actually passed become set fields, so zero
		// stays distinguishable from absent
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "bedrooms":
				req.Bedrooms = bedrooms
			case "bathrooms":
				req.Bathrooms = bathrooms
			case "sqft":
				req.Sqft = sqft
			case "price":
				req.Price = price
			}
		})
		for _, l := range strings.Split(*landmarks, ",") {
			if l = strings.TrimSpace(l); l != "" {
				req.Landmarks = append(req.Landmarks, l)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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
			printError("Error: building search client: %v\n", err)
			os.Exit(1)
		}
		provider = tav
	}
	engine, err := enrich.NewEngine(enrich.Config{
		SearchTimeout: cfg.Enrich.SearchTimeout,
		CacheSize:     cfg.Enrich.CacheSize,
	}, provider, logger)
	if err != nil {
		printError("Error: building enrichment engine: %v\n", err)
		os.Exit(1)
	}

	generator := openai.NewClient(openai.Config{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	orchestrator := pipeline.New(guardrails.NewRulePolicy(guardrails.DefaultConfig()), engine, generator, logger)

	var res *entity.ListingResult
	if *dbPath != "" {
		dbResult, err := repo.InitDatabase(ctx, repo.Config{}, *dbPath, logger)
		if err != nil {
			printError("Error: opening database: %v\n", err)
			os.Exit(1)
		}
		defer dbResult.Cleanup()

		runsRepo := repo.NewListingRepository(dbResult.Client, logger)
		svc := listing.NewService(orchestrator, runsRepo, logger)

		var run *entity.RunRecord
		res, run = svc.Generate(ctx, req)
		if run != nil {
			logger.Info("run recorded", "run_id", run.ID, "db", *dbPath)
		}
	} else {
		res, _ = orchestrator.Run(ctx, listing.CoerceInput(req))
	}

	if res.Success {
		fmt.Println(res.Listing.FormattedListing)
	}
	if res.PredictedPrice != nil {
		fmt.Printf("\nPredicted price: %s", strconv.FormatFloat(*res.PredictedPrice, 'f', -1, 64))
		if res.PredictedPriceReasoning != "" {
			fmt.Printf(" (%s)", res.PredictedPriceReasoning)
		}
		fmt.Println()
	}
	if len(res.Errors) > 0 {
		printError("\nErrors:\n")
		for _, e := range res.Errors {
			printError("- %s\n", e)
		}
	}
	if !res.Success {
		os.Exit(1)
	}
}

func readRequest(path string) (entity.PropertyInput, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return entity.PropertyInput{}, err
	}

	var req entity.PropertyInput
	if err := json.Unmarshal(data, &req); err != nil {
		return entity.PropertyInput{}, fmt.Errorf("parse request: %w", err)
	}
	return req, nil
}
