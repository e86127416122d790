// Package scrapeengine exposes the single entry point the rest of the
// program (and any host binding) calls: scrape a URL into a best-effort
// fashion product record.
package scrapeengine

import (
	"context"
	"time"

	"github.com/muambr/fashionscrape/internal/config"
	"github.com/muambr/fashionscrape/internal/orchestrator"
	"github.com/muambr/fashionscrape/models"
)

// ScrapeURL scrapes a single product URL, consulting every configured data
// source concurrently and merging their answers until a completeness
// threshold is met or timeoutSecs elapses. The returned error is either
// *models.NotFashionProductError or *models.UnsupportedProductError; any
// other condition (missing fields, missing credentials, network failure
// at any one source) is reported inside the ScrapeResult, not as an
// error.
func ScrapeURL(ctx context.Context, pageURL string, timeoutSecs float64) (*models.ScrapeResult, error) {
	cfg := config.Load()
	if timeoutSecs > 0 {
		cfg = cfg.WithHardDeadline(time.Duration(timeoutSecs * float64(time.Second)))
	}

	record, err := orchestrator.Scrape(ctx, cfg, pageURL)
	if err != nil {
		return nil, err
	}

	result := models.FromProductRecord(record)
	return &result, nil
}
