package mock

import (
	"context"

	"github.com/fwojciec/linkcheck"
)

var _ linkcheck.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of linkcheck.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seedURL string, maxDepth int) ([]*linkcheck.LinkResult, error)
}

func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxDepth int) ([]*linkcheck.LinkResult, error) {
	return c.CrawlFn(ctx, seedURL, maxDepth)
}
