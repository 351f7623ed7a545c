package linkcheck

// RequestLimiter decides whether a caller may start another crawl.
type RequestLimiter interface {
	// Allow reports whether a request from key may proceed now.
	Allow(key string) bool
}
