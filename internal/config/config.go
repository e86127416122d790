// Package config loads the engine's environment-variable surface and
// optionally a local .env file via godotenv before falling back to the
// process environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every optional credential an approach may need. A zero value
// means the corresponding approach declines to run.
type Config struct {
	GenAIAPIKey      string
	SerpAPIKey       string
	OxylabsProxyURL  string
	CloudflareWorker string

	RequestTimeout   time.Duration
	ImageTitleWait   time.Duration
	SoftDeadline     time.Duration
	HardDeadline     time.Duration
	PollInterval     time.Duration
	TokenBudget      int
}

// Load reads the process environment, having first attempted to load a
// local .env file. The file is optional, so a missing-file error is ignored.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GenAIAPIKey:      os.Getenv("GENAI_API_KEY"),
		SerpAPIKey:       os.Getenv("SERPAPI_KEY"),
		OxylabsProxyURL:  os.Getenv("OXYLABS_PROXY_URL"),
		CloudflareWorker: os.Getenv("CLOUDFLARE_WORKER_URL"),

		RequestTimeout: 15 * time.Second,
		ImageTitleWait: 8 * time.Second,
		SoftDeadline:   5 * time.Second,
		HardDeadline:   30 * time.Second,
		PollInterval:   100 * time.Millisecond,
		TokenBudget:    50000,
	}
}

// HasGenAI reports whether the LLM approaches may run at all.
func (c Config) HasGenAI() bool { return c.GenAIAPIKey != "" }

// HasSerpAPI reports whether the search approaches may run at all.
func (c Config) HasSerpAPI() bool { return c.SerpAPIKey != "" }

// HasProxy reports whether the proxied browser-TLS fetcher may run.
func (c Config) HasProxy() bool { return c.OxylabsProxyURL != "" }

// HasWorker reports whether the remote-worker fetcher may run.
func (c Config) HasWorker() bool { return c.CloudflareWorker != "" }

// WithHardDeadline returns a copy of c with the overall wall-clock budget
// overridden, used when scrape_url's caller passes a custom timeout.
func (c Config) WithHardDeadline(d time.Duration) Config {
	c.HardDeadline = d
	return c
}
