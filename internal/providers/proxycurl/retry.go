package proxycurl

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"
)

// retryBaseDelay is the base duration for exponential backoff on HTTP
// 429 responses. Tests shrink it to avoid real sleeps.
var retryBaseDelay = 2 * time.Second

const maxRetries = 3

// doWithRetry executes a request and retries on HTTP 429 with
// exponential backoff (base, 2×base, 4×base, ...). The body of each
// 429 is drained and closed before sleeping. A cancelled context
// during a backoff wait returns ctx.Err(). After exhausting retries
// the last 429 response is returned so the caller can map it.
func doWithRetry(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * retryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
