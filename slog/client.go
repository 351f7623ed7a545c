package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkcheck"
)

// Ensure LoggingClient implements linkcheck.Client.
var _ linkcheck.Client = (*LoggingClient)(nil)

// LoggingClient wraps a Client with debug logging of every request.
type LoggingClient struct {
	next   linkcheck.Client
	logger *slog.Logger
}

// NewLoggingClient creates a new LoggingClient.
func NewLoggingClient(next linkcheck.Client, logger *slog.Logger) *LoggingClient {
	return &LoggingClient{next: next, logger: logger}
}

// Head delegates to the wrapped client and logs the request.
func (c *LoggingClient) Head(ctx context.Context, url string) (status int, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("head",
			"url", url,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Head(ctx, url)
}

// Get delegates to the wrapped client and logs the request.
func (c *LoggingClient) Get(ctx context.Context, url string) (resp *linkcheck.Response, err error) {
	defer func(begin time.Time) {
		var status, size int
		if resp != nil {
			status, size = resp.StatusCode, len(resp.Body)
		}
		c.logger.Debug("get",
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Get(ctx, url)
}
