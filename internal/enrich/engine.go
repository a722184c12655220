package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/homescribe/listinggen/internal/entity"
)

const (
	defaultSearchTimeout = 30 * time.Second
	defaultAmenityCap    = 3
	defaultCacheSize     = 256
)

// Engine runs the two-search enrichment flow against a provider, caching
// result sets by query.
type Engine struct {
	cfg      Config
	provider SearchProvider
	cache    *lru.Cache[string, []SearchResult]
	logger   *slog.Logger
}

// NewEngine builds an engine with config defaults filled in. A nil provider
// is allowed: Enrich then reports ErrNotConfigured on every call, which the
// pipeline surfaces as a non-blocking configuration error.
func NewEngine(cfg Config, provider SearchProvider, logger *slog.Logger) (*Engine, error) {
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = defaultSearchTimeout
	}
	if cfg.AmenityCap <= 0 {
		cfg.AmenityCap = defaultAmenityCap
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, []SearchResult](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create search cache: %w", err)
	}
	return &Engine{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		logger:   logger,
	}, nil
}

// Enrich resolves facts for the address with exactly two provider searches,
// run concurrently under individual timeouts. The ZIP code is parsed from
// the address itself, never searched for, and request landmarks pass
// through untouched. A blank address yields (nil, nil): there is nothing to
// search for.
func (e *Engine) Enrich(ctx context.Context, address string, landmarks []string) (*entity.EnrichmentData, error) {
	if e.provider == nil {
		return nil, ErrNotConfigured
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}

	start := time.Now()
	amenitiesQuery := BuildAmenitiesQuery(address)
	qualityQuery := BuildQualityQuery(address)

	e.logger.Info("enrich.start",
		"address_len", len(address),
		"landmarks", len(landmarks),
	)

	data := &entity.EnrichmentData{
		ZipCode:   ParseZipCode(address),
		Landmarks: slices.Clone(landmarks),
	}

	var (
		amenities    map[string][]string
		quality      *entity.NeighborhoodQuality
		neighborhood string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results := e.search(gctx, amenitiesQuery)
		amenities = ExtractAmenities(results, e.cfg.AmenityCap)
		return nil
	})
	g.Go(func() error {
		results := e.search(gctx, qualityQuery)
		quality = ExtractQuality(results)
		neighborhood = ExtractNeighborhood(results)
		return nil
	})
	// both tasks swallow their own failures
	_ = g.Wait()

	data.KeyAmenities = amenities
	data.Quality = quality
	data.Neighborhood = neighborhood

	e.logger.Info("enrich.done",
		"zip_found", data.ZipCode != "",
		"neighborhood_found", data.Neighborhood != "",
		"schools", len(amenities["schools"]),
		"supermarkets", len(amenities["supermarkets"]),
		"parks", len(amenities["parks"]),
		"transportation", len(amenities["transportation"]),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

// search runs one provider query under the per-search budget. Failures are
// logged and come back as no results; only successful non-empty result sets
// are cached.
func (e *Engine) search(ctx context.Context, query string) []SearchResult {
	if cached, ok := e.cache.Get(query); ok {
		e.logger.Debug("enrich.search.cache_hit", "query", query)
		return cached
	}

	sctx, cancel := context.WithTimeout(ctx, e.cfg.SearchTimeout)
	defer cancel()

	results, err := e.provider.Search(sctx, query)
	if err != nil {
		e.logger.Warn("enrich.search.error", "query", query, "error", err.Error())
		return nil
	}
	if len(results) > 0 {
		e.cache.Add(query, results)
	}
	return results
}
