package linkcheck

import "context"

// DefaultDepth is the crawl depth used when a caller does not specify one.
const DefaultDepth = 1

// Crawler checks the link graph of a site.
type Crawler interface {
	// Crawl traverses same-host links breadth-first from seedURL and returns
	// one LinkResult per distinct discovered link, in discovery order.
	// maxDepth 0 checks only the links found on the seed page.
	//
	// Only an invalid seed URL or depth is reported as an error (EINVALID);
	// page and link failures are absorbed into the results.
	Crawl(ctx context.Context, seedURL string, maxDepth int) ([]*LinkResult, error)
}
