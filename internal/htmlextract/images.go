package htmlextract

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var imageExclusionKeywords = []string{
	"logo", "icon", "favicon", "sprite", "loading", "placeholder", "social",
	"facebook", "twitter", "instagram", "youtube", "payment", "visa",
	"mastercard", "paypal", "stripe", "shipping", "delivery", "banner",
	"advertisement",
}

var linkPreloadExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "webp": true,
}

// rankImages walks the first 50 <img> tags, scoring each as a product-image
// candidate. Images scoring below 2 are dropped; survivors are sorted
// descending by score (ties keep their original relative order) and
// truncated to 15.
func rankImages(doc *goquery.Document, baseURL string) []Image {
	base, _ := url.Parse(baseURL)

	var candidates []Image
	count := 0
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if count >= 50 {
			return false
		}
		count++

		src := firstNonEmptyAttr(s, "src", "data-src", "data-lazy-src")
		if src == "" {
			return true
		}
		resolved := resolveURL(base, src)
		if resolved == "" {
			return true
		}
		lower := strings.ToLower(resolved)
		for _, kw := range imageExclusionKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		if widthHeightTooSmall(s) {
			return true
		}

		alt, _ := s.Attr("alt")
		score := scoreImage(s, resolved, alt)
		if score < 2 {
			return true
		}
		candidates = append(candidates, Image{Src: resolved, Alt: alt, Score: score})
		return true
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > 15 {
		candidates = candidates[:15]
	}
	return candidates
}

func widthHeightTooSmall(s *goquery.Selection) bool {
	w, wOK := parseIntAttr(s, "width")
	h, hOK := parseIntAttr(s, "height")
	if !wOK || !hOK {
		return false
	}
	return w < 100 || h < 100
}

func parseIntAttr(s *goquery.Selection, attr string) (int, bool) {
	raw, exists := s.Attr(attr)
	if !exists {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func scoreImage(s *goquery.Selection, resolvedURL, alt string) int {
	score := 0
	lower := strings.ToLower(resolvedURL)

	if strings.Contains(lower, "product") || strings.Contains(lower, "item") || strings.Contains(lower, "gallery") {
		score += 2
	}
	if len(strings.TrimSpace(alt)) > 10 {
		score += 2
	}
	if strings.Contains(lower, "cdn") || strings.Contains(lower, "media") || strings.Contains(lower, "assets") || strings.Contains(lower, "images") {
		score += 1
	}
	if itemprop, _ := s.Attr("itemprop"); itemprop == "image" {
		score += 3
	}
	if ancestorHasProductClass(s) {
		score += 2
	}
	return score
}

func ancestorHasProductClass(s *goquery.Selection) bool {
	node := s.Parent()
	for i := 0; i < 3 && node.Length() > 0; i++ {
		class, _ := node.Attr("class")
		lower := strings.ToLower(class)
		if strings.Contains(lower, "product") || strings.Contains(lower, "gallery") {
			return true
		}
		node = node.Parent()
	}
	return false
}

func firstNonEmptyAttr(s *goquery.Selection, attrs ...string) string {
	for _, a := range attrs {
		if v, exists := s.Attr(a); exists && v != "" {
			return v
		}
	}
	return ""
}

func resolveURL(base *url.URL, ref string) string {
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base == nil {
		return refURL.String()
	}
	return base.ResolveReference(refURL).String()
}

// extractPreloadImages collects <link rel="preload" as="image" href=...>
// sources, resolved against the base URL and filtered to known image
// extensions.
func extractPreloadImages(doc *goquery.Document, baseURL string) []string {
	base, _ := url.Parse(baseURL)
	var out []string
	doc.Find(`link[rel="preload"][as="image"]`).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		ext := strings.ToLower(strings.TrimPrefix(strings.ToLower(extOf(resolved)), "."))
		if linkPreloadExtensions[ext] {
			out = append(out, resolved)
		}
	})
	return out
}

func extOf(rawURL string) string {
	path := rawURL
	if idx := strings.IndexAny(path, "?#"); idx != -1 {
		path = path[:idx]
	}
	idx := strings.LastIndex(path, ".")
	if idx == -1 {
		return ""
	}
	return path[idx+1:]
}

// aggregateImages unions, in order, scored <img> sources, flattened
// JSON-LD images, inline-JSON images, and filtered <link rel=preload>
// images, deduplicating by exact string equality and skipping empties.
// Each surviving entry becomes a placeholder {src, alt:"", score:0} since
// per-image scoring only applies within the <img> ranking step.
func aggregateImages(ranked []Image, jsonLDImages, inlineImages, preloadImages []string) []Image {
	seen := map[string]bool{}
	var out []Image

	add := func(src string) {
		if src == "" || seen[src] {
			return
		}
		seen[src] = true
		out = append(out, Image{Src: src})
	}

	for _, img := range ranked {
		add(img.Src)
	}
	for _, src := range jsonLDImages {
		add(src)
	}
	for _, src := range inlineImages {
		add(src)
	}
	for _, src := range preloadImages {
		add(src)
	}

	return out
}
