package fetch

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// WorkerFetcher calls a remote rendering worker (a Cloudflare Worker in
// practice) that does its own browser automation and hands back JSON.
type WorkerFetcher struct {
	client    *resty.Client
	workerURL string
}

func NewWorkerFetcher(workerURL string, timeout time.Duration) *WorkerFetcher {
	return &WorkerFetcher{
		client:    resty.New().SetTimeout(timeout),
		workerURL: workerURL,
	}
}

type workerResponse struct {
	HTML  string `json:"html"`
	Error string `json:"error"`
}

// Fetch GETs `<worker>?url=<percent-encoded url>` and expects a JSON body.
// A non-empty "error" field counts as failure regardless of HTTP status.
func (f *WorkerFetcher) Fetch(ctx context.Context, target string) Result {
	var body workerResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("url", target).
		SetResult(&body).
		Get(f.workerURL)

	if err != nil || resp.IsError() {
		return Result{}
	}
	if body.Error != "" {
		return Result{}
	}
	if body.HTML == "" {
		return Result{}
	}
	return Result{HTML: body.HTML, Status: resp.StatusCode(), OK: true}
}
