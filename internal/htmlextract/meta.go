package htmlextract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractMeta buckets every <meta> tag by key prefix: "og:" -> open_graph,
// "twitter:" -> twitter_card, else a key that case-insensitively contains
// "product" or "price" -> meta_tags. Tags with an empty key or content are
// skipped.
func extractMeta(doc *goquery.Document) (metaTags, openGraph, twitterCard map[string]string) {
	metaTags = map[string]string{}
	openGraph = map[string]string{}
	twitterCard = map[string]string{}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, exists := s.Attr("name")
		if !exists || name == "" {
			name, _ = s.Attr("property")
		}
		content, _ := s.Attr("content")
		if name == "" || content == "" {
			return
		}

		switch {
		case strings.HasPrefix(name, "og:"):
			openGraph[name] = content
		case strings.HasPrefix(name, "twitter:"):
			twitterCard[name] = content
		case strings.Contains(strings.ToLower(name), "product"), strings.Contains(strings.ToLower(name), "price"):
			metaTags[name] = content
		}
	})

	return metaTags, openGraph, twitterCard
}
