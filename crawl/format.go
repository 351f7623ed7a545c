package crawl

import (
	"strconv"

	"github.com/fwojciec/linkcheck"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatStatus renders a link status for display.
// A missing status is shown as "unreachable".
func FormatStatus(status *int) string {
	if status == nil {
		return "unreachable"
	}
	return strconv.Itoa(*status)
}

// FormatVerdict renders a link result as "ok" or "broken".
func FormatVerdict(r *linkcheck.LinkResult) string {
	if r.OK {
		return "ok"
	}
	return "broken"
}
