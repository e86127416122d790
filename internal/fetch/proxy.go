package fetch

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"
)

// ProxiedBrowserFetcher is identical to BrowserFetcher except every
// request is routed through an HTTP(S) proxy.
type ProxiedBrowserFetcher struct {
	*BrowserFetcher
}

// NewProxiedBrowserFetcher builds a browser-TLS fetcher whose transport
// dials through proxyURL. An invalid proxyURL falls back to no proxy
// rather than failing construction, since the caller only constructs this
// fetcher when a proxy URL was configured at all.
func NewProxiedBrowserFetcher(timeout time.Duration, proxyURL string) *ProxiedBrowserFetcher {
	transport := newBrowserTransport()
	if parsed, err := url.Parse(proxyURL); err == nil {
		transport.Proxy = http.ProxyURL(parsed)
	}
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS13,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &ProxiedBrowserFetcher{BrowserFetcher: &BrowserFetcher{client: client, timeout: timeout}}
}
