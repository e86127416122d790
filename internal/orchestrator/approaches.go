package orchestrator

import (
	"context"
	"time"

	"github.com/muambr/fashionscrape/internal/htmlextract"
	"github.com/muambr/fashionscrape/internal/obs"
)

// htmlApproach runs the shared fetch-then-extract-then-LLM pipeline used
// by every tier-0 source, differing only in which fetcher obtains the
// HTML.
func htmlApproach(source string, fetchHTML func(ctx context.Context, r *runtime) (string, bool)) approach {
	return func(ctx context.Context, r *runtime) {
		if !r.cfg.HasGenAI() {
			return
		}
		html, ok := fetchHTML(ctx, r)
		if !ok {
			return
		}

		extract := htmlextract.Extract(r.pageURL, html, r.cfg.TokenBudget)

		result, ok := r.llmClient.FullExtraction(ctx, extract)
		if !ok {
			return
		}

		payload := map[string]interface{}{}
		if result.ProductName != nil {
			payload["product_name"] = *result.ProductName
		}
		if result.Brand != nil {
			payload["brand"] = *result.Brand
		}
		if len(result.Price) > 0 {
			payload["price"] = priceRawToInterface(result.Price)
		}
		if result.GarmentType != nil {
			payload["garment_type"] = *result.GarmentType
		}
		if len(result.ImageURLs) > 0 {
			payload["image_urls"] = stringsToInterfaces(result.ImageURLs)
		}

		r.state.Merge(source, payload)
	}
}

func curlcffiGemini(ctx context.Context, r *runtime) {
	htmlApproach("curlcffi_gemini", func(ctx context.Context, r *runtime) (string, bool) {
		res := r.browser.Fetch(ctx, r.pageURL)
		return res.HTML, res.OK
	})(ctx, r)
}

func curlcffiGeminiProxy(ctx context.Context, r *runtime) {
	if !r.cfg.HasProxy() {
		return
	}
	htmlApproach("curlcffi_gemini_proxy", func(ctx context.Context, r *runtime) (string, bool) {
		res := r.proxiedBrowser.Fetch(ctx, r.pageURL)
		return res.HTML, res.OK
	})(ctx, r)
}

func requestsGemini(ctx context.Context, r *runtime) {
	htmlApproach("requests_gemini", func(ctx context.Context, r *runtime) (string, bool) {
		res := r.plain.Fetch(ctx, r.pageURL)
		return res.HTML, res.OK
	})(ctx, r)
}

func cloudflareGemini(ctx context.Context, r *runtime) {
	if !r.cfg.HasWorker() {
		return
	}
	htmlApproach("cloudflare_gemini", func(ctx context.Context, r *runtime) (string, bool) {
		res := r.worker.Fetch(ctx, r.pageURL)
		return res.HTML, res.OK
	})(ctx, r)
}

func geminiFast(ctx context.Context, r *runtime) {
	if !r.cfg.HasGenAI() {
		return
	}
	garmentType, ok := r.llmClient.FastClassify(ctx, r.pageURL)
	if !ok {
		return
	}
	r.state.Merge("gemini_fast", map[string]interface{}{"garment_type": garmentType})
}

func serpapiGoogle(ctx context.Context, r *runtime) {
	if !r.cfg.HasSerpAPI() {
		return
	}
	hit, ok := r.searchClient.Shopping(ctx, r.pageURL)
	if !ok {
		return
	}

	payload := map[string]interface{}{}
	if hit.Title != "" {
		payload["product_name"] = hit.Title
	}
	if hit.Price != nil {
		payload["price"] = hit.Price
	}
	r.state.Merge("serpapi_google", payload)

	if hit.Title == "" || !r.cfg.HasGenAI() {
		return
	}
	classification, ok := r.llmClient.SerpClassify(ctx, hit.Title, "", r.pageURL)
	if !ok {
		return
	}
	classifyPayload := map[string]interface{}{}
	if classification.Brand != "" {
		classifyPayload["brand"] = classification.Brand
	}
	if classification.Name != "" {
		classifyPayload["product_name"] = classification.Name
	}
	if classification.GarmentType != "" {
		classifyPayload["garment_type"] = classification.GarmentType
	}
	r.state.Merge("gemini_classification", classifyPayload)
}

func serpapiImagesURL(ctx context.Context, r *runtime) {
	if !r.cfg.HasSerpAPI() {
		return
	}
	image, ok := r.searchClient.ImageSearchByURL(ctx, r.pageURL)
	if !ok {
		return
	}
	r.state.Merge("serpapi_images_url", map[string]interface{}{"image_urls": []interface{}{image}})
}

const (
	imageByTitlePollInterval = 100 * time.Millisecond
	imageByTitlePollAttempts = 80
)

func serpapiImagesTitle(ctx context.Context, r *runtime) {
	if !r.cfg.HasSerpAPI() {
		return
	}

	name, ok := waitForProductName(ctx, r)
	if !ok {
		return
	}

	domain, err := domainOf(r.pageURL)
	if err != nil {
		return
	}

	image, ok := r.searchClient.ImageSearchByTitle(ctx, name, domain)
	if !ok {
		return
	}
	r.state.Merge("serpapi_images_title", map[string]interface{}{"image_urls": []interface{}{image}})
}

func waitForProductName(ctx context.Context, r *runtime) (string, bool) {
	ticker := time.NewTicker(imageByTitlePollInterval)
	defer ticker.Stop()

	for attempt := 0; attempt < imageByTitlePollAttempts; attempt++ {
		if name, ok := r.state.ProductName(); ok {
			return name, true
		}
		select {
		case <-ctx.Done():
			return "", false
		case <-ticker.C:
		}
	}
	return "", false
}

func priceRawToInterface(raw []byte) interface{} {
	var v interface{}
	if err := jsonUnmarshalBestEffort(raw, &v); err != nil {
		obs.Debug("price field was not valid JSON, passing through as string", obs.String("raw", string(raw)))
		return string(raw)
	}
	return v
}

func stringsToInterfaces(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
