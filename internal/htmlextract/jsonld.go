package htmlextract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var jsonLDTypes = map[string]bool{
	"Product":        true,
	"Offer":          true,
	"AggregateOffer": true,
	"ProductGroup":   true,
}

var graphTypes = map[string]bool{
	"Product":      true,
	"Offer":        true,
	"ProductGroup": true,
}

// extractJSONLD parses every <script type="application/ld+json"> block,
// keeping top-level objects typed Product/Offer/AggregateOffer/
// ProductGroup, and recursing exactly one level into "@graph" arrays.
// Parse errors are ignored silently.
func extractJSONLD(doc *goquery.Document) []map[string]interface{} {
	var out []map[string]interface{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		var data interface{}
		if err := json.Unmarshal([]byte(text), &data); err != nil {
			return
		}
		switch v := data.(type) {
		case map[string]interface{}:
			appendJSONLDObject(&out, v)
		case []interface{}:
			for _, item := range v {
				if obj, ok := item.(map[string]interface{}); ok {
					appendJSONLDObject(&out, obj)
				}
			}
		}
	})

	return out
}

func appendJSONLDObject(out *[]map[string]interface{}, obj map[string]interface{}) {
	if t, ok := obj["@type"].(string); ok && jsonLDTypes[t] {
		*out = append(*out, obj)
		return
	}
	graph, ok := obj["@graph"].([]interface{})
	if !ok {
		return
	}
	for _, item := range graph {
		itemObj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if t, ok := itemObj["@type"].(string); ok && graphTypes[t] {
			*out = append(*out, itemObj)
		}
	}
}

// flattenJSONLDImages pulls every image URL out of the "image" field of
// each kept JSON-LD object, handling the three shapes it may take: a bare
// string, a {contentUrl|url} object, or an array of either.
func flattenJSONLDImages(jsonLD []map[string]interface{}) []string {
	var images []string
	for _, obj := range jsonLD {
		field, ok := obj["image"]
		if !ok {
			continue
		}
		images = append(images, flattenImageField(field)...)
	}
	return images
}

func flattenImageField(field interface{}) []string {
	switch v := field.(type) {
	case string:
		return []string{v}
	case map[string]interface{}:
		if u := imageObjectURL(v); u != "" {
			return []string{u}
		}
	case []interface{}:
		var out []string
		for _, item := range v {
			switch iv := item.(type) {
			case string:
				out = append(out, iv)
			case map[string]interface{}:
				if u := imageObjectURL(iv); u != "" {
					out = append(out, u)
				}
			}
		}
		return out
	}
	return nil
}

func imageObjectURL(obj map[string]interface{}) string {
	if u, ok := obj["contentUrl"].(string); ok && u != "" {
		return u
	}
	if u, ok := obj["url"].(string); ok && u != "" {
		return u
	}
	return ""
}
