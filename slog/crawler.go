package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkcheck"
)

// Ensure LoggingCrawler implements linkcheck.Crawler.
var _ linkcheck.Crawler = (*LoggingCrawler)(nil)

// LoggingCrawler wraps a Crawler and logs a summary of each crawl.
type LoggingCrawler struct {
	next   linkcheck.Crawler
	logger *slog.Logger
}

// NewLoggingCrawler creates a new LoggingCrawler.
func NewLoggingCrawler(next linkcheck.Crawler, logger *slog.Logger) *LoggingCrawler {
	return &LoggingCrawler{next: next, logger: logger}
}

// Crawl delegates to the wrapped crawler and logs the outcome.
func (c *LoggingCrawler) Crawl(ctx context.Context, seedURL string, maxDepth int) (links []*linkcheck.LinkResult, err error) {
	defer func(begin time.Time) {
		broken := 0
		for _, l := range links {
			if !l.OK {
				broken++
			}
		}
		c.logger.Info("crawl",
			"url", seedURL,
			"depth", maxDepth,
			"count", len(links),
			"broken", broken,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Crawl(ctx, seedURL, maxDepth)
}
