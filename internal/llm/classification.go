package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// FastClassify asks the fast model to classify the garment type from the
// URL alone, stripped to scheme://host/path (no query, no fragment).
func (c *Client) FastClassify(ctx context.Context, pageURL string) (string, bool) {
	stripped := stripToSchemeHostPath(pageURL)
	prompt := fmt.Sprintf(
		"Classify the garment type of the fashion product at this URL. "+
			"Respond with one of: upper, lower, full_body, shoes, other, unsupported.\n\nURL: %s",
		stripped,
	)

	text, err := c.generateStructured(ctx, fastClassifyModel, prompt, fastClassifySchema())
	if err != nil {
		return "", false
	}

	var resp struct {
		GarmentType string `json:"garment_type"`
	}
	if !unmarshalWithRepair(text, &resp) || resp.GarmentType == "" {
		return "", false
	}
	return resp.GarmentType, true
}

func stripToSchemeHostPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return strings.TrimSuffix(fmt.Sprintf("%s://%s%s", u.Scheme, u.Host, u.Path), "/")
}
