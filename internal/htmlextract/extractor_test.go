package htmlextract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNoImagesNoJSONLD(t *testing.T) {
	html := `<html><head><title>Plain Page</title></head><body><p>nothing here</p></body></html>`
	out := Extract("https://example.com/p", html, 50000)

	assert.Empty(t, out.Images)
	assert.Empty(t, out.StructuredData.JSONLD)
	assert.Equal(t, "Plain Page", out.Content.Title)
}

func TestExtractJSONLDProductImage(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">
	{"@type":"Product","name":"Linen Shirt","image":"https://cdn.example.com/a.jpg"}
	</script>
	</head><body></body></html>`

	out := Extract("https://example.com/p", html, 50000)
	require.Len(t, out.StructuredData.JSONLD, 1)
	require.Len(t, out.Images, 1)
	assert.Equal(t, "https://cdn.example.com/a.jpg", out.Images[0].Src)
}

func TestExtractImageSizeBoundary(t *testing.T) {
	html := `<html><body>
	<img class="product-gallery" src="https://cdn.example.com/small.jpg" width="99" height="500" alt="a product detail shot">
	<img class="product-gallery" itemprop="image" src="https://cdn.example.com/ok.jpg" width="100" height="100" alt="a product detail shot">
	</body></html>`

	out := Extract("https://example.com/p", html, 50000)

	var srcs []string
	for _, img := range out.Images {
		srcs = append(srcs, img.Src)
	}
	assert.NotContains(t, srcs, "https://cdn.example.com/small.jpg")
	assert.Contains(t, srcs, "https://cdn.example.com/ok.jpg")
}

func TestExtractImageExclusionKeyword(t *testing.T) {
	html := `<html><body>
	<img class="product-gallery" itemprop="image" src="https://cdn.example.com/facebook-share.jpg" alt="a product detail shot">
	</body></html>`

	out := Extract("https://example.com/p", html, 50000)
	assert.Empty(t, out.Images)
}

func TestExtractInlineJSONLengthBoundary(t *testing.T) {
	marker := "window.__NEXT_DATA__"
	payload := `{"images":["https://cdn.example.com/x.jpg"]}`

	pad499 := marker + strings.Repeat("x", 500-len(marker)-len(payload)-1) + payload
	pad500 := marker + strings.Repeat("x", 500-len(marker)-len(payload)) + payload

	require.Equal(t, 499, len(pad499))
	require.Equal(t, 500, len(pad500))

	htmlFor := func(script string) string {
		return `<html><body><script>` + script + `</script></body></html>`
	}

	out499 := Extract("https://example.com/p", htmlFor(pad499), 50000)
	assert.Empty(t, out499.Images)

	out500 := Extract("https://example.com/p", htmlFor(pad500), 50000)
	require.Len(t, out500.Images, 1)
	assert.Equal(t, "https://cdn.example.com/x.jpg", out500.Images[0].Src)
}

func TestExtractInlineJSONImageParamsSubstitution(t *testing.T) {
	marker := "window.__NEXT_DATA__"
	payload := `{"images":["https://cdn.example.com/x__IMAGE_PARAMS__.jpg"]}`
	script := marker + strings.Repeat("x", 520) + payload

	out := Extract("https://example.com/p", `<html><body><script>`+script+`</script></body></html>`, 50000)
	require.Len(t, out.Images, 1)
	assert.Equal(t, "https://cdn.example.com/xf_auto.jpg", out.Images[0].Src)
}

func TestExtractTokenBudgetTrim(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<html><body>`)
	for i := 0; i < 30; i++ {
		b.WriteString(`<div class="product-description">` + strings.Repeat("lorem ipsum dolor sit amet ", 20) + `</div>`)
		b.WriteString(`<div class="spec-attribute">` + strings.Repeat("a size fit material note ", 10) + `</div>`)
		b.WriteString(`<img class="product-gallery" itemprop="image" src="https://cdn.example.com/img` + strings.Repeat("0", 1) + `.jpg" alt="a product detail shot">`)
	}
	b.WriteString(`</body></html>`)

	out := Extract("https://example.com/p", b.String(), 10)

	assert.LessOrEqual(t, len(out.Content.Descriptions), 2)
	assert.LessOrEqual(t, len(out.Content.Specifications), 2)
	assert.LessOrEqual(t, len(out.Images), 8)
}

func TestExtractLocaleAgnosticBreadcrumbCollapsesWhitespace(t *testing.T) {
	html := `<html><body><nav class="breadcrumb">  Home  /  Shirts  /  Linen  </nav></body></html>`
	out := Extract("https://example.com/p", html, 50000)
	require.Len(t, out.Content.Breadcrumbs, 1)
	assert.Equal(t, "Home / Shirts / Linen", out.Content.Breadcrumbs[0])
}
