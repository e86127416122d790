package htmlextract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var breadcrumbSelectors = []string{
	`[class*="breadcrumb" i]`,
	`[id*="breadcrumb" i]`,
	`[itemtype*="BreadcrumbList"]`,
	`nav`,
}

var descriptionSelectors = []string{
	`[class*="description" i]`,
	`[id*="description" i]`,
	`[itemprop="description"]`,
	`[class*="product-info" i]`,
	`[class*="product-detail" i]`,
}

var specificationSelectors = []string{
	`[class*="spec" i]`,
	`[class*="feature" i]`,
	`[class*="attribute" i]`,
	`table`,
	`dl`,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// extractContent mines the page's free-text signals: the document title,
// the first five short headings, a collapsed breadcrumb trail, and
// length-bounded description/specification snippets gathered per selector
// class.
func extractContent(doc *goquery.Document) Content {
	return Content{
		Title:          strings.TrimSpace(doc.Find("title").First().Text()),
		Headings:       extractHeadings(doc),
		Breadcrumbs:    extractBreadcrumbs(doc),
		Descriptions:   extractBounded(doc, descriptionSelectors, 20, 1000),
		Specifications: extractBounded(doc, specificationSelectors, 10, 500),
	}
}

func extractHeadings(doc *goquery.Document) []string {
	var headings []string
	doc.Find("h1, h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(headings) >= 5 {
			return false
		}
		text := strings.TrimSpace(s.Text())
		if text != "" && len(text) <= 200 {
			headings = append(headings, text)
		}
		return true
	})
	return headings
}

func extractBreadcrumbs(doc *goquery.Document) []string {
	for i, selector := range breadcrumbSelectors {
		if i >= 2 {
			break
		}
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := collapseWhitespace(sel.Text())
		if text == "" {
			continue
		}
		if len(text) > 300 {
			text = text[:300]
		}
		return []string{text}
	}
	return nil
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// extractBounded gathers the first 3 matches per selector whose
// whitespace-collapsed text length falls strictly between min and max.
func extractBounded(doc *goquery.Document, selectors []string, min, max int) []string {
	var out []string
	for _, selector := range selectors {
		count := 0
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if count >= 3 {
				return false
			}
			text := collapseWhitespace(s.Text())
			count++
			if len(text) > min && len(text) < max {
				out = append(out, text)
			}
			return true
		})
	}
	return out
}
