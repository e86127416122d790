package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", 2*time.Second)
	c.http.SetBaseURL(srv.URL)
	return c
}

func TestShoppingReturnsFirstResultPrice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google_shopping_light", r.URL.Query().Get("engine"))
		_ = json.NewEncoder(w).Encode(shoppingResponse{
			ShoppingResults: []shoppingResult{{Title: "Denim Jacket", ExtractedPrice: 89.0}},
		})
	})

	hit, ok := c.Shopping(context.Background(), "https://example.com/p?pid=1")
	require.True(t, ok)
	assert.Equal(t, "Denim Jacket", hit.Title)
	assert.Equal(t, 89.0, hit.Price)
}

func TestShoppingRetriesWithNormalizedPathWhenFirstEmpty(t *testing.T) {
	var queries []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if len(queries) == 1 {
			_ = json.NewEncoder(w).Encode(shoppingResponse{})
			return
		}
		_ = json.NewEncoder(w).Encode(shoppingResponse{
			ShoppingResults: []shoppingResult{{Title: "Found on retry", Price: "$10"}},
		})
	})

	hit, ok := c.Shopping(context.Background(), "https://example.com/en-US/p/foo?pid=1")
	require.True(t, ok)
	assert.Equal(t, "Found on retry", hit.Title)
	assert.Len(t, queries, 2)
	assert.NotEqual(t, queries[0], queries[1])
}

func TestShoppingNoRetryWhenNormalizedPathMatchesQuery(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(shoppingResponse{})
	})

	_, ok := c.Shopping(context.Background(), "https://example.com/foo-bar")
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestImageSearchByURLMatchesNormalizedLink(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(imageResponse{
			ImagesResults: []imageResult{
				{Link: "https://example.com/fr_FR/p/foo-bar", Original: "https://cdn.example.com/img.jpg"},
			},
		})
	})

	img, ok := c.ImageSearchByURL(context.Background(), "https://www.example.com/en-US/p/foo-bar")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/img.jpg", img)
}

func TestImageSearchByURLNoMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(imageResponse{
			ImagesResults: []imageResult{
				{Link: "https://unrelated.com/x", Original: "https://cdn.example.com/img.jpg"},
			},
		})
	})

	_, ok := c.ImageSearchByURL(context.Background(), "https://www.example.com/p/foo-bar")
	assert.False(t, ok)
}

func TestImageSearchByTitleUsesSiteQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode(imageResponse{
			ImagesResults: []imageResult{{Original: "https://cdn.example.com/a.jpg"}},
		})
	})

	img, ok := c.ImageSearchByTitle(context.Background(), "Denim Jacket", "example.com")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/a.jpg", img)
	assert.Equal(t, `"Denim Jacket" site:example.com`, gotQuery)
}

func TestGetReturnsErrorOnServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, ok := c.ImageSearchByTitle(context.Background(), "x", "example.com")
	assert.False(t, ok)
}
