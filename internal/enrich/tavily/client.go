package tavily

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homescribe/listinggen/internal/common"
	"github.com/homescribe/listinggen/internal/enrich"
)

var _ enrich.SearchProvider = (*Client)(nil)

// Search implements enrich.SearchProvider over POST /search. Tavily's answer
// summary is requested for context but not consumed; extraction works on the
// per-result content.
func (c *Client) Search(ctx context.Context, query string) ([]enrich.SearchResult, error) {
	reqID := uuid.New().String()
	start := time.Now()

	c.logger.Info("tavily.search.start",
		"req_id", reqID,
		"query_len", len(query),
		"max_results", c.cfg.MaxResults,
	)

	body := map[string]any{
		"api_key":        c.cfg.APIKey,
		"query":          query,
		"max_results":    c.cfg.MaxResults,
		"search_depth":   c.cfg.SearchDepth,
		"include_answer": true,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/search"
	raw, status, err := common.SendJSON(ctx, c.client, endpoint, body, nil, c.logger)
	if err != nil {
		c.logger.Error("tavily.search.http_error",
			"req_id", reqID,
			"status", status,
			"error", err.Error(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("tavily search: %w", err)
	}

	var decoded struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		c.logger.Error("tavily.search.decode_error",
			"req_id", reqID,
			"error", err.Error(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode tavily response: %w", err)
	}

	results := make([]enrich.SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, enrich.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
		})
	}

	c.logger.Info("tavily.search.ok",
		"req_id", reqID,
		"results", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return results, nil
}
