// Package fetch implements the typed adapters that turn a URL into a raw
// HTML string or a JSON record: a browser-TLS client, a proxied variant, a
// plain client, and a remote-worker JSON client. None of them ever return
// an error for a failed page load; a fetch that didn't work returns
// ok=false so the calling approach can try something else.
package fetch

import (
	"compress/gzip"
	"io"
	"net/http"

	"github.com/dsnet/compress/brotli"

	"github.com/muambr/fashionscrape/internal/obs"
)

// Result is what a fetcher hands back: either an HTML body or nothing.
type Result struct {
	HTML   string
	Status int
	OK     bool
}

func readResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			obs.Warn("gzip reader failed, reading raw", obs.Err(err))
			return io.ReadAll(resp.Body)
		}
		defer gzipReader.Close()
		reader = gzipReader
	case "br":
		brotliReader, err := brotli.NewReader(resp.Body, nil)
		if err != nil {
			obs.Warn("brotli reader failed, reading raw", obs.Err(err))
			return io.ReadAll(resp.Body)
		}
		defer brotliReader.Close()
		reader = brotliReader
	}

	return io.ReadAll(reader)
}
