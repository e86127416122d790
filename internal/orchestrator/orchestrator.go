package orchestrator

import (
	"context"
	"time"

	"github.com/muambr/fashionscrape/internal/config"
	"github.com/muambr/fashionscrape/internal/fetch"
	"github.com/muambr/fashionscrape/internal/llm"
	"github.com/muambr/fashionscrape/internal/merge"
	"github.com/muambr/fashionscrape/internal/obs"
	"github.com/muambr/fashionscrape/internal/search"
	"github.com/muambr/fashionscrape/models"
)

const completionPollInterval = 100 * time.Millisecond
const softCompletionDeadline = 5 * time.Second

// Scrape builds a MergeState, fans the eight named approaches out as
// concurrent goroutines, and polls the shared state until it decides
// there's nothing more worth waiting for. Outstanding approaches are
// cancelled (never waited on) once the decision is made; they only ever
// communicate through the same guarded merge API, so an abandoned
// goroutine has no durable side effect.
func Scrape(ctx context.Context, cfg config.Config, pageURL string) (models.ProductRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.HardDeadline)
	defer cancel()

	r := newRuntime(ctx, cfg, pageURL)

	for _, a := range approaches() {
		go func(a approach) {
			defer func() {
				if p := recover(); p != nil {
					obs.Error("approach panicked", obs.Any("panic", p))
				}
			}()
			a(ctx, r)
		}(a)
	}

	record := runCompletionLoop(ctx, r.state)
	return validate(record, pageURL)
}

func approaches() []approach {
	return []approach{
		geminiFast,
		curlcffiGemini,
		curlcffiGeminiProxy,
		requestsGemini,
		cloudflareGemini,
		serpapiGoogle,
		serpapiImagesURL,
		serpapiImagesTitle,
	}
}

func newRuntime(ctx context.Context, cfg config.Config, pageURL string) *runtime {
	r := &runtime{
		pageURL: pageURL,
		cfg:     cfg,
		state:   merge.New(),
		browser: fetch.NewBrowserFetcher(cfg.RequestTimeout),
		plain:   fetch.NewPlainFetcher(cfg.RequestTimeout),
	}

	if cfg.HasProxy() {
		r.proxiedBrowser = fetch.NewProxiedBrowserFetcher(cfg.RequestTimeout, cfg.OxylabsProxyURL)
	}
	if cfg.HasWorker() {
		r.worker = fetch.NewWorkerFetcher(cfg.CloudflareWorker, cfg.RequestTimeout)
	}
	if cfg.HasSerpAPI() {
		r.searchClient = search.NewClient(cfg.SerpAPIKey, cfg.RequestTimeout)
	}
	if cfg.HasGenAI() {
		client, err := llm.NewClient(ctx, cfg.GenAIAPIKey)
		if err != nil {
			obs.Warn("failed to construct genai client, LLM approaches will no-op", obs.Err(err))
			r.cfg.GenAIAPIKey = ""
		} else {
			r.llmClient = client
		}
	}

	return r
}

// runCompletionLoop polls state every 100ms: stop immediately once the
// record is complete and at least one field came from a tier-0 source;
// otherwise, once complete, keep polling until 5s have elapsed since
// creation; the hard deadline on ctx bounds the loop regardless.
func runCompletionLoop(ctx context.Context, state *merge.MergeState) models.ProductRecord {
	ticker := time.NewTicker(completionPollInterval)
	defer ticker.Stop()

	for {
		complete := state.IsComplete()
		if complete && state.HasStrongSource() {
			return state.Snapshot()
		}
		if complete && state.Elapsed() > softCompletionDeadline {
			return state.Snapshot()
		}

		select {
		case <-ctx.Done():
			return state.Snapshot()
		case <-ticker.C:
		}
	}
}

func validate(record models.ProductRecord, pageURL string) (models.ProductRecord, error) {
	if record.GarmentType != nil && *record.GarmentType == models.GarmentUnsupported {
		return record, &models.NotFashionProductError{URL: pageURL}
	}

	if !isSupportedGarment(record.GarmentType) {
		return record, &models.UnsupportedProductError{URL: pageURL, Got: record.GarmentType}
	}

	return record, nil
}

func isSupportedGarment(gt *models.GarmentType) bool {
	if gt == nil {
		return false
	}
	switch *gt {
	case models.GarmentUpper, models.GarmentLower, models.GarmentFullBody, models.GarmentShoes:
		return true
	default:
		return false
	}
}
