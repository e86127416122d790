package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// SerpClassificationResult is the mapped {brand, name, garment_type}
// response from classifying a SerpAPI shopping result.
type SerpClassificationResult struct {
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	GarmentType string `json:"garment_type"`
}

// SerpClassify classifies a shopping-search hit using its title, an
// optional snippet, and the source URL, with low-temperature, low-entropy
// sampling so the classification stays deterministic across retries.
func (c *Client) SerpClassify(ctx context.Context, title, snippet, pageURL string) (SerpClassificationResult, bool) {
	prompt := fmt.Sprintf(
		"Classify this fashion product listing.\n\nTitle: %s\nSnippet: %s\nURL: %s\n\n"+
			"Respond with brand, name, and garment_type (one of upper, lower, full_body, shoes, other, unsupported).",
		title, snippet, pageURL,
	)

	temperature := float32(0)
	topK := float32(1)
	topP := float32(0.1)
	maxTokens := int32(200)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   serpClassifySchema(),
		Temperature:      &temperature,
		TopK:             &topK,
		TopP:             &topP,
		MaxOutputTokens:  maxTokens,
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := c.genaiClient.Models.GenerateContent(ctx, serpClassifyModel, contents, config)
	if err != nil || len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return SerpClassificationResult{}, false
	}

	var resp SerpClassificationResult
	if !unmarshalWithRepair(result.Text(), &resp) {
		return SerpClassificationResult{}, false
	}
	return resp, true
}
