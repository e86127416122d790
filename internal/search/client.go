// Package search wraps the two SerpAPI endpoints the orchestrator calls:
// a shopping-results search and an image-results search, both reached
// through the same google_shopping_light / google_images_light engine
// family.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://serpapi.com/search"

type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		http:   resty.New().SetTimeout(timeout).SetBaseURL(baseURL),
		apiKey: apiKey,
	}
}

func (c *Client) get(ctx context.Context, engine, query string, extra map[string]string, out interface{}) error {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"engine":  engine,
			"q":       query,
			"gl":      "us",
			"hl":      "en",
			"api_key": c.apiKey,
		}).
		SetResult(out)

	for k, v := range extra {
		req.SetQueryParam(k, v)
	}

	resp, err := req.Get("")
	if err != nil {
		return fmt.Errorf("serpapi request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("serpapi status %d", resp.StatusCode())
	}
	return nil
}
