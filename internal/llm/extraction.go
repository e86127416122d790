package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muambr/fashionscrape/internal/htmlextract"
	"github.com/muambr/fashionscrape/internal/obs"
)

// ExtractionResult is the full-extraction call's mapped output. Price is
// left as a raw JSON value (string or record) since the merge layer's
// parse_price dispatches on its dynamic shape.
type ExtractionResult struct {
	ProductName *string         `json:"product_name"`
	Brand       *string         `json:"brand"`
	Price       json.RawMessage `json:"price"`
	GarmentType *string         `json:"garment_type"`
	ImageURLs   []string        `json:"image_urls"`
}

type fullExtractionResponse struct {
	IsProductPage bool            `json:"is_product_page"`
	ProductName   *string         `json:"product_name"`
	Brand         *string         `json:"brand"`
	Price         json.RawMessage `json:"price"`
	GarmentType   *string         `json:"garment_type"`
	ImageURLs     []string        `json:"image_urls"`
}

// FullExtraction sends the HTML snapshot to the extraction model and maps
// its response. A false is_product_page (or its absence, or any parse
// failure) is reported as ok=false, never as an error: the orchestrator
// treats this call the same as any other approach that found nothing.
func (c *Client) FullExtraction(ctx context.Context, extract htmlextract.HTMLExtract) (ExtractionResult, bool) {
	payload, err := json.Marshal(extract)
	if err != nil {
		return ExtractionResult{}, false
	}

	prompt := fmt.Sprintf("Extract fashion product data from this page snapshot:\n\n%s", string(payload))

	text, err := c.generateStructured(ctx, extractionModel, prompt, extractionSchema())
	if err != nil {
		obs.Warn("full extraction call failed", obs.Err(err))
		return ExtractionResult{}, false
	}

	var resp fullExtractionResponse
	if !unmarshalWithRepair(text, &resp) {
		obs.Warn("full extraction response was not valid JSON", obs.String("response", text))
		return ExtractionResult{}, false
	}
	if !resp.IsProductPage {
		return ExtractionResult{}, false
	}

	return ExtractionResult{
		ProductName: resp.ProductName,
		Brand:       resp.Brand,
		Price:       resp.Price,
		GarmentType: resp.GarmentType,
		ImageURLs:   resp.ImageURLs,
	}, true
}
