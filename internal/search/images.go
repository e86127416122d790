package search

import (
	"context"
	"fmt"

	"github.com/muambr/fashionscrape/internal/normalize"
)

type imageResult struct {
	Link     string `json:"link"`
	Original string `json:"original"`
}

type imageResponse struct {
	ImagesResults []imageResult `json:"images_results"`
}

// ImageSearchByURL queries SerpAPI's image engine with the raw page URL
// and returns the first result whose link matches it (same normalized
// domain and path), taking that result's "original" image.
func (c *Client) ImageSearchByURL(ctx context.Context, pageURL string) (string, bool) {
	var resp imageResponse
	if err := c.get(ctx, "google_images_light", pageURL, nil, &resp); err != nil {
		return "", false
	}
	for _, r := range resp.ImagesResults {
		if normalize.URLsMatchProduct(r.Link, pageURL) && r.Original != "" {
			return r.Original, true
		}
	}
	return "", false
}

// ImageSearchByTitle queries `"<name>" site:<domain>` and takes the first
// result's "original" image.
func (c *Client) ImageSearchByTitle(ctx context.Context, name, domain string) (string, bool) {
	query := fmt.Sprintf(`"%s" site:%s`, name, domain)
	var resp imageResponse
	if err := c.get(ctx, "google_images_light", query, nil, &resp); err != nil {
		return "", false
	}
	if len(resp.ImagesResults) == 0 || resp.ImagesResults[0].Original == "" {
		return "", false
	}
	return resp.ImagesResults[0].Original, true
}
