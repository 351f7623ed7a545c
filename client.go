package linkcheck

import "context"

// Response is the result of a GET request.
type Response struct {
	// URL is the final URL after redirects.
	URL        string
	StatusCode int
	Body       string
}

// Client performs the HTTP requests a crawl needs.
// Implementations follow a bounded number of redirects and send a fixed
// User-Agent. Errors are transport-level failures only; any HTTP response,
// including 4xx and 5xx, is returned without error.
type Client interface {
	// Head issues a HEAD request and returns the response status code.
	Head(ctx context.Context, url string) (status int, err error)

	// Get issues a GET request and returns the status and decoded body.
	Get(ctx context.Context, url string) (*Response, error)
}
