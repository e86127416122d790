// Package normalize implements the URL and price canonicalization rules
// that let two sources' answers be compared for "same product". It is a
// pure package: no network or logging dependency.
package normalize

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

var localeSegment = regexp.MustCompile(`^[a-zA-Z]{2}[-_][a-zA-Z]{2}$`)

// productIDKeys is the whitelist of query keys clean_product_url keeps,
// compared case-insensitively.
var productIDKeys = map[string]bool{
	"pid":         true,
	"productid":   true,
	"product_id":  true,
	"id":          true,
	"item":        true,
	"itemid":      true,
	"product_no":  true,
	"products_id": true,
	"main_page":   true,
}

// NormalizeDomain returns the lowercased host with any leading "www."
// stripped.
func NormalizeDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www."), nil
}

// NormalizeURLPath drops the query and fragment, then drops any path
// segment that looks like a locale (exactly 5 chars: two letters, a
// separator, two letters), e.g. "en-US" or "fr_FR".
func NormalizeURLPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	segments := strings.Split(u.Path, "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if isLocaleSegment(seg) {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, "/"), nil
}

func isLocaleSegment(seg string) bool {
	return len(seg) == 5 && localeSegment.MatchString(seg)
}

// CleanProductURL drops the query string and fragment except for
// whitelisted product-identifier keys, which are re-emitted
// percent-encoded, sorted for deterministic output.
func CleanProductURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	kept := url.Values{}
	for key, values := range u.Query() {
		if productIDKeys[strings.ToLower(key)] {
			for _, v := range values {
				kept.Add(key, v)
			}
		}
	}
	u.Fragment = ""
	if len(kept) == 0 {
		u.RawQuery = ""
		return u.String(), nil
	}
	u.RawQuery = encodeSorted(kept)
	return u.String(), nil
}

func encodeSorted(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		for j, v := range values[k] {
			if i > 0 || j > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// URLsMatchProduct reports whether two URLs refer to the same product:
// equal normalized domain AND equal normalized path.
func URLsMatchProduct(u1, u2 string) bool {
	d1, err1 := NormalizeDomain(u1)
	d2, err2 := NormalizeDomain(u2)
	if err1 != nil || err2 != nil || d1 != d2 {
		return false
	}
	p1, err1 := NormalizeURLPath(u1)
	p2, err2 := NormalizeURLPath(u2)
	if err1 != nil || err2 != nil {
		return false
	}
	return p1 == p2
}
