package htmlextract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	perSelectorCap = 20
	totalPriceCap  = 10
)

var priceSelectors = []string{
	`[class*="price" i]`,
	`[id*="price" i]`,
	`[data-price]`,
	`[itemprop="price"]`,
	`span`,
	`div`,
	`p`,
}

var priceSymbolPattern = regexp.MustCompile(`[\$£€¥₹]\s*[\d,]+\.?\d*\+?`)
var priceCodePattern = regexp.MustCompile(`\d+[.,]\d+\s*(?:USD|EUR|GBP|INR|CAD|AUD)`)

func looksLikePrice(text string) bool {
	return priceSymbolPattern.MatchString(text) || priceCodePattern.MatchString(text)
}

// extractPriceSignals scans a fixed list of CSS selectors, in order, for
// element text that matches a price pattern, capping each selector at 20
// matches and the combined, deduplicated, order-preserving result at 10
// strings of at most 100 characters.
func extractPriceSignals(doc *goquery.Document) []string {
	seen := map[string]bool{}
	var signals []string

	for _, selector := range priceSelectors {
		count := 0
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if count >= perSelectorCap {
				return false
			}
			text := collapseWhitespace(s.Text())
			if !looksLikePrice(text) {
				return true
			}
			count++
			if len(text) > 100 {
				text = text[:100]
			}
			if text == "" || seen[text] {
				return true
			}
			seen[text] = true
			signals = append(signals, text)
			return len(signals) < totalPriceCap
		})
		if len(signals) >= totalPriceCap {
			break
		}
	}

	return signals
}
