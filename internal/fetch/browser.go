package fetch

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muambr/fashionscrape/internal/obs"
)

const maxRedirectHops = 3

// BrowserFetcher sends Chrome 131 request headers over Go's standard
// crypto/tls stack; its TLS/JA3 fingerprint is Go's own, not Chrome's. On a
// 403 it retries once with a mobile user-agent, and it follows 3xx Location headers
// itself (resolved against the current URL) up to three hops rather than
// letting net/http's CheckRedirect do it, so the same retry-on-403 policy
// applies at every hop.
type BrowserFetcher struct {
	client  *http.Client
	timeout time.Duration
}

func NewBrowserFetcher(timeout time.Duration) *BrowserFetcher {
	return &BrowserFetcher{
		client: &http.Client{
			Transport: newBrowserTransport(),
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		timeout: timeout,
	}
}

// Fetch performs the browser-TLS GET. currentURL is mutated hop by hop as
// redirects are followed; therealreal.com hosts fall back to a subprocess
// curl-impersonate invocation when the HTTP path gives up.
func (f *BrowserFetcher) Fetch(ctx context.Context, target string) Result {
	currentURL := target

	for hop := 0; hop <= maxRedirectHops; hop++ {
		resp, body, status, err := f.doRequest(ctx, currentURL, false)
		if err != nil {
			obs.Warn("browser fetch request failed", obs.String("url", currentURL), obs.Err(err))
			return f.fallback(ctx, target)
		}

		if status == http.StatusForbidden {
			resp2, body2, status2, err2 := f.doRequest(ctx, currentURL, true)
			if err2 == nil && status2 >= 200 && status2 < 300 {
				return Result{HTML: string(body2), Status: status2, OK: true}
			}
			if resp2 != nil {
				resp2.Body.Close()
			}
			return f.fallback(ctx, target)
		}

		if status >= 200 && status < 300 {
			return Result{HTML: string(body), Status: status, OK: true}
		}

		if status >= 300 && status < 400 {
			location := resp.Header.Get("Location")
			if location == "" {
				return f.fallback(ctx, target)
			}
			next, err := resolveRedirect(currentURL, location)
			if err != nil {
				return f.fallback(ctx, target)
			}
			currentURL = next
			continue
		}

		return f.fallback(ctx, target)
	}

	return f.fallback(ctx, target)
}

func (f *BrowserFetcher) doRequest(ctx context.Context, target string, mobile bool) (*http.Response, []byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, 0, err
	}
	applyBrowserHeaders(req, mobile)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		return resp, nil, resp.StatusCode, err
	}
	return resp, body, resp.StatusCode, nil
}

func resolveRedirect(currentURL, location string) (string, error) {
	base, err := url.Parse(currentURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

func (f *BrowserFetcher) fallback(ctx context.Context, target string) Result {
	u, err := url.Parse(target)
	if err != nil || !strings.Contains(u.Hostname(), "therealreal.com") {
		return Result{}
	}
	return fetchViaSubprocess(ctx, target)
}
