package crawl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fwojciec/linkcheck"
)

// checkAttempt is one liveness probe. Only a transport error moves the
// check on to the next attempt; any HTTP status ends it.
type checkAttempt struct {
	method string
	probe  func(ctx context.Context, client linkcheck.Client, url string) (int, error)
}

// checkAttempts is the fixed probe order: HEAD, then GET.
var checkAttempts = []checkAttempt{
	{
		method: http.MethodHead,
		probe: func(ctx context.Context, client linkcheck.Client, url string) (int, error) {
			return client.Head(ctx, url)
		},
	},
	{
		method: http.MethodGet,
		probe: func(ctx context.Context, client linkcheck.Client, url string) (int, error) {
			resp, err := client.Get(ctx, url)
			if err != nil {
				return 0, err
			}
			return resp.StatusCode, nil
		},
	},
}

// Verify checks whether url responds, trying HEAD and then GET.
// It returns the status of the first attempt that got a response,
// or nil if every attempt failed at the transport level.
func Verify(ctx context.Context, client linkcheck.Client, url string, logger *slog.Logger) *int {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, attempt := range checkAttempts {
		status, err := attempt.probe(ctx, client, url)
		if err != nil {
			logger.Debug("check failed", "url", url, "method", attempt.method, "err", err)
			continue
		}
		logger.Info("link status", "url", url, "method", attempt.method, "status", status)
		return linkcheck.StatusCode(status)
	}

	logger.Warn("link unreachable", "url", url)
	return nil
}
