package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeStrongerSourceOverridesWeaker(t *testing.T) {
	m := New()

	m.Merge("serpapi_google", map[string]interface{}{"product_name": "Weak Name"})
	m.Merge("curlcffi_gemini", map[string]interface{}{"product_name": "Strong Name"})

	snap := m.Snapshot()
	require.NotNil(t, snap.ProductName)
	assert.Equal(t, "Strong Name", *snap.ProductName)
}

func TestMergeWeakerSourceDoesNotOverrideStronger(t *testing.T) {
	m := New()

	m.Merge("curlcffi_gemini", map[string]interface{}{"product_name": "Strong Name"})
	m.Merge("serpapi_google", map[string]interface{}{"product_name": "Weak Name"})

	snap := m.Snapshot()
	require.NotNil(t, snap.ProductName)
	assert.Equal(t, "Strong Name", *snap.ProductName)
}

func TestMergeImagesLongerListWins(t *testing.T) {
	m := New()

	m.Merge("serpapi_images_url", map[string]interface{}{"image_urls": []interface{}{"a", "b"}})
	m.Merge("curlcffi_gemini", map[string]interface{}{"image_urls": []interface{}{"c", "d", "e"}})

	snap := m.Snapshot()
	assert.Equal(t, []string{"c", "d", "e"}, snap.ImageURLs)
}

func TestMergeImagesDedupPreservesOrder(t *testing.T) {
	m := New()
	m.Merge("curlcffi_gemini", map[string]interface{}{"image_urls": []interface{}{"a", "b", "a", "", "c"}})

	snap := m.Snapshot()
	assert.Equal(t, []string{"a", "b", "c"}, snap.ImageURLs)
}

func TestMergePriceRequiresAmount(t *testing.T) {
	m := New()
	m.Merge("curlcffi_gemini", map[string]interface{}{"price": "$45.00"})

	snap := m.Snapshot()
	require.NotNil(t, snap.Price)
	require.NotNil(t, snap.Price.Amount)
	assert.Equal(t, int64(45), *snap.Price.Amount)
	assert.Equal(t, "USD", *snap.Price.Currency)
}

func TestHasStrongSource(t *testing.T) {
	m := New()
	assert.False(t, m.HasStrongSource())

	m.Merge("serpapi_google", map[string]interface{}{"brand": "Acme"})
	assert.False(t, m.HasStrongSource())

	m.Merge("cloudflare_gemini", map[string]interface{}{"brand": "Acme"})
	assert.True(t, m.HasStrongSource())
}
