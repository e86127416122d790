package search

import (
	"context"
	"net/url"

	"github.com/muambr/fashionscrape/internal/normalize"
)

type shoppingResult struct {
	Title          string      `json:"title"`
	Price          interface{} `json:"price"`
	ExtractedPrice interface{} `json:"extracted_price"`
}

type shoppingResponse struct {
	ShoppingResults []shoppingResult `json:"shopping_results"`
}

// ShoppingHit is the mapped result of a shopping search: a title to use
// as product_name and whichever price field SerpAPI populated.
type ShoppingHit struct {
	Title string
	Price interface{}
}

// Shopping queries SerpAPI's shopping engine with clean_product_url(url).
// If the response has no shopping_results, it retries once with
// normalize_url_path(clean_product_url(url)), but only if that differs
// from the path component of the first query.
func (c *Client) Shopping(ctx context.Context, pageURL string) (ShoppingHit, bool) {
	cleaned, err := normalize.CleanProductURL(pageURL)
	if err != nil {
		return ShoppingHit{}, false
	}

	hit, ok := c.shoppingQuery(ctx, cleaned)
	if ok {
		return hit, true
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return ShoppingHit{}, false
	}
	pathNormalized, err := normalize.NormalizeURLPath(cleaned)
	if err != nil || pathNormalized == parsed.Path {
		return ShoppingHit{}, false
	}
	return c.shoppingQuery(ctx, pathNormalized)
}

func (c *Client) shoppingQuery(ctx context.Context, query string) (ShoppingHit, bool) {
	var resp shoppingResponse
	extra := map[string]string{"google_domain": "google.com"}
	if err := c.get(ctx, "google_shopping_light", query, extra, &resp); err != nil {
		return ShoppingHit{}, false
	}
	if len(resp.ShoppingResults) == 0 {
		return ShoppingHit{}, false
	}

	first := resp.ShoppingResults[0]
	price := first.Price
	if price == nil {
		price = first.ExtractedPrice
	}
	return ShoppingHit{Title: first.Title, Price: price}, true
}
