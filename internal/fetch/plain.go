package fetch

import (
	"context"
	"net/http"
	"time"
)

// PlainFetcher issues a single request with the default transport and
// returns the body only on a 2xx response; anything else is absence.
type PlainFetcher struct {
	client *http.Client
}

func NewPlainFetcher(timeout time.Duration) *PlainFetcher {
	return &PlainFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *PlainFetcher) Fetch(ctx context.Context, target string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; fashionscrape/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return Result{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Status: resp.StatusCode}
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return Result{Status: resp.StatusCode}
	}
	return Result{HTML: string(body), Status: resp.StatusCode, OK: true}
}
