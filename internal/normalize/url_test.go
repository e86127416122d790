package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDomainStripsWWW(t *testing.T) {
	d, err := NormalizeDomain("https://WWW.Example.com/path")
	require.NoError(t, err)
	assert.Equal(t, "example.com", d)
}

func TestNormalizeURLPathDropsLocaleSegments(t *testing.T) {
	p, err := NormalizeURLPath("https://example.com/en-US/shirts/foo-bar?x=1")
	require.NoError(t, err)
	assert.Equal(t, "/shirts/foo-bar", p)

	p2, err := NormalizeURLPath("https://example.com/fr_FR/shirts")
	require.NoError(t, err)
	assert.Equal(t, "/shirts", p2)
}

func TestNormalizeURLPathKeepsNonLocaleLookingSegment(t *testing.T) {
	p, err := NormalizeURLPath("https://example.com/foo-bar")
	require.NoError(t, err)
	assert.Equal(t, "/foo-bar", p)
}

func TestNormalizeURLPathIsIdempotent(t *testing.T) {
	u := "https://example.com/en-US/shirts/foo-bar?x=1#frag"
	once, err := NormalizeURLPath(u)
	require.NoError(t, err)
	twice, err := NormalizeURLPath(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestCleanProductURLKeepsWhitelistedKeysOnly(t *testing.T) {
	cleaned, err := CleanProductURL("https://example.com/p?pid=123&utm_source=ig&ID=456")
	require.NoError(t, err)
	assert.Contains(t, cleaned, "ID=456")
	assert.Contains(t, cleaned, "pid=123")
	assert.NotContains(t, cleaned, "utm_source")
}

func TestURLsMatchProductSameURL(t *testing.T) {
	u := "https://example.com/p/foo-bar?x=1"
	assert.True(t, URLsMatchProduct(u, u))
}

func TestURLsMatchProductDifferentLocale(t *testing.T) {
	assert.True(t, URLsMatchProduct(
		"https://example.com/en-US/p/foo-bar",
		"https://www.example.com/fr_FR/p/foo-bar",
	))
}
