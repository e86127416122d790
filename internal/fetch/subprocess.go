package fetch

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/muambr/fashionscrape/internal/obs"
)

// curlImpersonateBinary is the fixed path to the external curl-impersonate
// build used for hosts the browser-TLS client alone cannot clear, such as
// therealreal.com.
const curlImpersonateBinary = "/opt/curl_chrome131_android"

// fetchViaSubprocess shells out to a curl-impersonate binary for the one
// domain-specific fallback path. Any failure to start or a non-zero exit
// is treated the same as any other fetch failure: absence, not an error.
func fetchViaSubprocess(ctx context.Context, target string) Result {
	cmd := exec.CommandContext(ctx, curlImpersonateBinary, "-sS", target)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		obs.Warn("curl-impersonate subprocess fallback failed", obs.String("url", target), obs.Err(err))
		return Result{}
	}

	html := stdout.String()
	if html == "" {
		return Result{}
	}
	return Result{HTML: html, Status: 200, OK: true}
}
