// Package orchestrator spawns the named concurrent approaches, merges
// their answers through a shared MergeState, and decides when enough is
// known to stop waiting.
package orchestrator

import (
	"context"

	"github.com/muambr/fashionscrape/internal/config"
	"github.com/muambr/fashionscrape/internal/fetch"
	"github.com/muambr/fashionscrape/internal/llm"
	"github.com/muambr/fashionscrape/internal/merge"
	"github.com/muambr/fashionscrape/internal/search"
)

// runtime bundles everything an approach needs: the target URL, shared
// config, the shared merge state, and lazily-relevant clients. Approaches
// are responsible for checking whether their required credential is
// present before using a client.
type runtime struct {
	pageURL string
	cfg     config.Config
	state   *merge.MergeState

	browser        *fetch.BrowserFetcher
	proxiedBrowser *fetch.ProxiedBrowserFetcher
	plain          *fetch.PlainFetcher
	worker         *fetch.WorkerFetcher

	llmClient    *llm.Client
	searchClient *search.Client
}

// approach is one named concurrent task. It must never panic and must
// only communicate results through r.state.Merge; cancellation is
// signaled through ctx.
type approach func(ctx context.Context, r *runtime)
