package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserFetcherFollowsRedirects(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>done</html>"))
	}))
	defer final.Close()

	hop := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusFound)
	}))
	defer hop.Close()

	f := NewBrowserFetcher(5 * time.Second)
	result := f.Fetch(context.Background(), hop.URL)

	require.True(t, result.OK)
	assert.Contains(t, result.HTML, "done")
}

func TestBrowserFetcherGivesUpOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewBrowserFetcher(5 * time.Second)
	result := f.Fetch(context.Background(), srv.URL)

	assert.False(t, result.OK)
}

func TestPlainFetcherOnlyAcceptsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewPlainFetcher(5 * time.Second)
	result := f.Fetch(context.Background(), srv.URL)

	assert.False(t, result.OK)
}
