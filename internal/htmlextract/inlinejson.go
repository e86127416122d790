package htmlextract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var inlineJSONIndicators = []string{
	"window.INITIAL_STATE",
	"window.__INITIAL_DATA__",
	"window.__NEXT_DATA__",
	"window.__PRODUCT_DATA__",
	"__INITIAL_STATE__",
}

var inlineJSONArrayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"images?"\s*:\s*\[([^\]]+)\]`),
	regexp.MustCompile(`"imageUrls?"\s*:\s*\[([^\]]+)\]`),
	regexp.MustCompile(`"img"\s*:\s*\[([^\]]+)\]`),
}

var inlineImageURLPattern = regexp.MustCompile(`https?://[^"']+\.(?:jpg|jpeg|png|webp)`)

// extractInlineJSONImages mines image URLs out of unmarked bundle scripts:
// any <script> with no "type" attribute, at least 500 chars of text,
// containing one of the known SSR-state markers. Duplicates are allowed at
// this stage; deduplication happens later during image aggregation.
func extractInlineJSONImages(doc *goquery.Document) []string {
	var images []string

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if _, hasType := s.Attr("type"); hasType {
			return
		}
		text := s.Text()
		if len(text) < 500 {
			return
		}
		if !containsAny(text, inlineJSONIndicators) {
			return
		}

		for _, re := range inlineJSONArrayPatterns {
			for _, match := range re.FindAllStringSubmatch(text, -1) {
				arrayBody := decodeJSONStringBestEffort(match[1])
				for _, imgURL := range inlineImageURLPattern.FindAllString(arrayBody, -1) {
					images = append(images, strings.ReplaceAll(imgURL, "__IMAGE_PARAMS__", "f_auto"))
				}
			}
		}
	})

	return images
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// decodeJSONStringBestEffort treats the captured array body as the content
// of a JSON string literal, so that \u-escapes and similar are decoded. If
// the content does not form a valid JSON string (common, since it's really
// an array body, not a string), the original text is returned unchanged.
func decodeJSONStringBestEffort(arrayBody string) string {
	var decoded string
	if err := json.Unmarshal([]byte(`"`+arrayBody+`"`), &decoded); err == nil {
		return decoded
	}
	return arrayBody
}
