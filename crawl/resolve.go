package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/linkcheck"
)

// ParseSeed parses a seed URL. The URL must be absolute with a host.
func ParseSeed(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "invalid seed URL %q: %v", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "seed URL %q must be absolute", raw)
	}
	return normalize(u.ResolveReference(u)), nil
}

// ResolveHref turns an anchor href into an absolute URL resolved against
// page. Dot segments are removed from absolute and relative hrefs alike.
// Returns false for empty hrefs, in-page fragments (#...) and hrefs that
// do not parse. The empty and fragment checks apply to the raw value, so
// " #top" resolves to the page itself with a fragment.
func ResolveHref(page *url.URL, href string) (*url.URL, bool) {
	if href == "" || strings.HasPrefix(href, "#") {
		return nil, false
	}

	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, false
	}
	return normalize(page.ResolveReference(ref)), true
}

// SameHost reports whether link is on the same host as page.
// Hosts must match exactly (ports aside): www.example.com and example.com
// are different hosts.
func SameHost(page, link *url.URL) bool {
	if page == nil || link == nil {
		return false
	}
	host := page.Hostname()
	return host != "" && strings.EqualFold(host, link.Hostname())
}

// defaultPorts are dropped from hosts so https://h:443/ and https://h/ match.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// normalize lower-cases the host, drops the scheme's default port and gives
// hierarchical URLs a root path, so https://example.com and
// https://example.com/ dedup together.
func normalize(u *url.URL) *url.URL {
	n := *u
	n.Host = strings.ToLower(n.Host)
	if port := n.Port(); port != "" && defaultPorts[n.Scheme] == port {
		n.Host = strings.TrimSuffix(n.Host, ":"+port)
	}
	if n.Host != "" && n.Opaque == "" && n.Path == "" {
		n.Path = "/"
		n.RawPath = ""
	}
	return &n
}
