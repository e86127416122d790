// Package llm wraps the three structured-output calls the orchestrator
// makes against a Gemini endpoint: full-page extraction, URL-only garment
// classification, and a SerpAPI-result classification. Every call asks for
// application/json output constrained by a JSON schema, then tolerates a
// markdown-fenced or trailing-comma-broken response before giving up.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	extractionModel     = "gemini-flash-lite-latest"
	fastClassifyModel   = "gemini-flash-lite-latest"
	serpClassifyModel   = "gemini-2.0-flash"
)

// Client wraps a genai client for the three structured calls this package
// exposes. A zero-value apiKey means the caller should not construct a
// Client at all; approaches check config.HasGenAI() first.
type Client struct {
	genaiClient *genai.Client
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{genaiClient: client}, nil
}

// generateStructured issues a single structured-output request and returns
// the raw response text, tolerating the candidate/parts bookkeeping genai
// requires.
func (c *Client) generateStructured(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := c.genaiClient.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return result.Text(), nil
}
