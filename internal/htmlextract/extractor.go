package htmlextract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract parses a raw HTML document fetched from pageURL into the
// compact snapshot the LLM full-extraction call consumes. It never
// returns an error: a document that fails to parse yields an
// all-empty-containers HTMLExtract rather than aborting the approach that
// called it.
func Extract(pageURL, html string, maxTokens int) HTMLExtract {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return HTMLExtract{
			URL: pageURL,
			StructuredData: StructuredData{
				MetaTags:    map[string]string{},
				OpenGraph:   map[string]string{},
				TwitterCard: map[string]string{},
			},
		}
	}

	jsonLD := extractJSONLD(doc)
	metaTags, openGraph, twitterCard := extractMeta(doc)
	inlineImages := extractInlineJSONImages(doc)
	priceSignals := extractPriceSignals(doc)
	rankedImages := rankImages(doc, pageURL)
	content := extractContent(doc)

	jsonLDImages := flattenJSONLDImages(jsonLD)
	preloadImages := extractPreloadImages(doc, pageURL)
	images := aggregateImages(rankedImages, jsonLDImages, inlineImages, preloadImages)

	extract := HTMLExtract{
		URL: pageURL,
		StructuredData: StructuredData{
			JSONLD:      jsonLD,
			MetaTags:    metaTags,
			OpenGraph:   openGraph,
			TwitterCard: twitterCard,
		},
		PriceSignals: priceSignals,
		Images:       images,
		Content:      content,
	}

	trimToTokenBudget(&extract, maxTokens)
	return extract
}
