package llm

import "google.golang.org/genai"

// extractionSchema constrains the full-extraction call's response shape.
// The schema types price as a string; the response decoder keeps price as
// raw JSON (ExtractionResult.Price), so a record is accepted as well, and the
// merge layer copies it verbatim into parse_price.
func extractionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"is_product_page": {Type: genai.TypeBoolean},
			"product_name":    {Type: genai.TypeString},
			"brand":           {Type: genai.TypeString},
			"price":           {Type: genai.TypeString},
			"garment_type":    {Type: genai.TypeString},
			"image_urls": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required:         []string{"is_product_page"},
		PropertyOrdering: []string{"is_product_page", "product_name", "brand", "price", "garment_type", "image_urls"},
	}
}

// fastClassifySchema constrains the URL-only classification call.
func fastClassifySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"garment_type": {Type: genai.TypeString},
		},
		Required: []string{"garment_type"},
	}
}

// serpClassifySchema constrains the SerpAPI-result classification call.
func serpClassifySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"brand":        {Type: genai.TypeString},
			"name":         {Type: genai.TypeString},
			"garment_type": {Type: genai.TypeString},
		},
		Required:         []string{"brand", "name", "garment_type"},
		PropertyOrdering: []string{"brand", "name", "garment_type"},
	}
}
