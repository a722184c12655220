package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/internal/enrich"
)

func TestSearchParsesResults(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"answer": "Chelsea is a residential area in Manhattan.",
			"results": [
				{"title": "Chelsea Guide", "url": "https://example.com/chelsea", "content": "Located in Chelsea, Manhattan.", "score": 0.97}
			]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "tvly-test", BaseURL: server.URL}, nil)
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "chelsea quality of life")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, enrich.SearchResult{
		Title:   "Chelsea Guide",
		URL:     "https://example.com/chelsea",
		Content: "Located in Chelsea, Manhattan.",
	}, results[0])

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "tvly-test", gotBody["api_key"])
	assert.Equal(t, "chelsea quality of life", gotBody["query"])
	assert.Equal(t, float64(2), gotBody["max_results"])
	assert.Equal(t, "advanced", gotBody["search_depth"])
	assert.Equal(t, true, gotBody["include_answer"])
}

func TestSearchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "tvly-test", BaseURL: server.URL}, nil)
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx status: 429")
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "")

	_, err := NewClient(Config{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing API key")
}

func TestNewClientEnvFallback(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-env")

	client, err := NewClient(Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "tvly-env", client.cfg.APIKey)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "tvly-test"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.tavily.com", client.cfg.BaseURL)
	assert.Equal(t, 2, client.cfg.MaxResults)
	assert.Equal(t, "advanced", client.cfg.SearchDepth)
}
