// Package crawl provides breadth-first link discovery and verification.
// It walks same-host pages from a seed URL, checks every newly discovered
// link, and accumulates the results in discovery order.
package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/fwojciec/linkcheck"
)

// Compile-time interface verification.
var _ linkcheck.Crawler = (*Crawler)(nil)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate of the seen-set prefilter.
	frontierFalsePositiveRate = 0.01
)

// Crawler checks the link graph of a site.
//
// Fetches are issued one at a time on the calling goroutine, so results are
// deterministic for a given site: breadth-first by page, then document order
// of anchors within each page.
type Crawler struct {
	Client  linkcheck.Client
	Anchors linkcheck.AnchorExtractor
	Logger  *slog.Logger
}

// Crawl traverses same-host links breadth-first from seedURL.
//
// The seed itself is checked and logged but never reported. A page that
// cannot be fetched or has an empty body contributes no links. A link whose
// HEAD and GET both fail is reported without a status.
//
// If ctx is canceled the crawl stops and returns the results gathered so far
// together with ctx.Err().
func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxDepth int) ([]*linkcheck.LinkResult, error) {
	seed, err := ParseSeed(seedURL)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "depth must not be negative, got %d", maxDepth)
	}

	logger := c.logger()
	seedStr := seed.String()

	// The seed's own status is diagnostic only.
	logger.Info("checking seed", "url", seedStr)
	if status := Verify(ctx, c.Client, seedStr, logger); status != nil {
		logger.Info("seed status", "url", seedStr, "status", *status)
	} else {
		logger.Warn("seed unreachable", "url", seedStr)
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Visit(seedStr)
	frontier.Push(linkcheck.FrontierItem{URL: seedStr, Depth: 0})

	results := []*linkcheck.LinkResult{}
	for {
		if err := ctx.Err(); err != nil {
			logger.Warn("crawl canceled", "url", seedStr, "results", len(results), "pending", frontier.Len())
			return results, err
		}

		item, ok := frontier.Pop()
		if !ok {
			break
		}
		if item.Depth > maxDepth {
			continue
		}

		page, links := c.visit(ctx, item, logger)
		for _, link := range links {
			if !SameHost(page, link) {
				continue
			}

			linkStr := link.String()
			if !frontier.Visit(linkStr) {
				continue
			}

			if err := ctx.Err(); err != nil {
				logger.Warn("crawl canceled", "url", seedStr, "results", len(results), "pending", frontier.Len())
				return results, err
			}

			logger.Debug("checking link", "url", linkStr)
			results = append(results, linkcheck.NewLinkResult(linkStr, Verify(ctx, c.Client, linkStr, logger)))

			if item.Depth+1 <= maxDepth {
				frontier.Push(linkcheck.FrontierItem{URL: linkStr, Depth: item.Depth + 1})
			}
		}
	}

	logger.Info("crawl complete", "url", seedStr, "results", len(results), "seen", frontier.SeenCount())
	return results, nil
}

// visit fetches a page and returns its parsed URL and resolved anchors.
// Any failure yields no links.
func (c *Crawler) visit(ctx context.Context, item linkcheck.FrontierItem, logger *slog.Logger) (*url.URL, []*url.URL) {
	page, err := url.Parse(item.URL)
	if err != nil {
		return nil, nil
	}

	logger.Info("fetching page", "url", item.URL, "depth", item.Depth)
	resp, err := c.Client.Get(ctx, item.URL)
	if err != nil {
		logger.Warn("page fetch failed", "url", item.URL, "err", err)
		return page, nil
	}
	logger.Debug("page fetched", "url", item.URL, "status", resp.StatusCode, "bytes", len(resp.Body))

	if resp.Body == "" {
		logger.Warn("empty body", "url", item.URL)
		return page, nil
	}

	hrefs, err := c.Anchors.ExtractHrefs(resp.Body)
	if err != nil {
		logger.Warn("anchor extraction failed", "url", item.URL, "err", err)
		return page, nil
	}

	links := make([]*url.URL, 0, len(hrefs))
	for _, href := range hrefs {
		if u, ok := ResolveHref(page, href); ok {
			links = append(links, u)
		}
	}
	logger.Info("links found", "url", item.URL, "count", len(links))

	return page, links
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
