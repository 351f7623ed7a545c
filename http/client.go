// Package http provides the net/http implementation of linkcheck.Client
// and the JSON API server.
package http

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/fwojciec/linkcheck"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultTimeout bounds each request, including redirects and body reads.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRedirects is the number of redirect hops followed before a
	// request fails.
	DefaultMaxRedirects = 5

	// DefaultMaxBodyBytes caps how much of a page body is read.
	DefaultMaxBodyBytes = 5 * 1024 * 1024
)

// ErrTooManyRedirects is returned when a request exceeds the redirect limit.
var ErrTooManyRedirects = errors.New("too many redirects")

var _ linkcheck.Client = (*Client)(nil)

// Client issues HEAD and GET requests for the crawler.
type Client struct {
	client       *http.Client
	userAgent    string
	timeout      time.Duration
	maxRedirects int
	maxBodyBytes int64
	proxy        string
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMaxRedirects sets how many redirects are followed.
func WithMaxRedirects(n int) Option {
	return func(c *Client) {
		c.maxRedirects = n
	}
}

// WithMaxBodyBytes sets the page body cap. Longer bodies are truncated.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		c.maxBodyBytes = n
	}
}

// WithProxy routes requests through the proxy at raw.
func WithProxy(raw string) Option {
	return func(c *Client) {
		c.proxy = raw
	}
}

// NewClient creates a new Client. It fails when an option holds an
// unusable value, such as a malformed proxy URL.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		userAgent:    DefaultUserAgent,
		timeout:      DefaultTimeout,
		maxRedirects: DefaultMaxRedirects,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.timeout <= 0 {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "timeout must be positive")
	}
	if c.maxRedirects < 0 {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "redirect limit must not be negative")
	}
	if c.maxBodyBytes <= 0 {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "body limit must be positive")
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		// readBody handles Content-Encoding itself.
		DisableCompression: true,
	}

	if raw := strings.TrimSpace(c.proxy); raw != "" {
		proxyURL, err := url.Parse(raw)
		if err != nil {
			return nil, linkcheck.Errorf(linkcheck.EINVALID, "invalid proxy URL %q: %v", raw, err)
		}
		if proxyURL.Scheme == "" || proxyURL.Host == "" {
			return nil, linkcheck.Errorf(linkcheck.EINVALID, "invalid proxy URL %q: scheme and host required", raw)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	maxRedirects := c.maxRedirects
	c.client = &http.Client{
		Timeout:   c.timeout,
		Transport: transport,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, maxRedirects)
			}
			return nil
		},
	}

	return c, nil
}

// Head issues a HEAD request and returns the final status code.
func (c *Client) Head(ctx context.Context, url string) (int, error) {
	req, err := c.newRequest(ctx, http.MethodHead, url)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBodyBytes))

	return resp.StatusCode, nil
}

// Get issues a GET request and returns the final status with the body
// decompressed and converted to UTF-8. Error statuses are not errors.
func (c *Client) Get(ctx context.Context, url string) (*linkcheck.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp)
	if err != nil {
		return nil, err
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &linkcheck.Response{
		URL:        finalURL,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func (c *Client) readBody(resp *http.Response) (string, error) {
	reader := io.Reader(resp.Body)

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("gzip decode: %w", err)
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	case "br":
		reader = brotli.NewReader(resp.Body)
	}

	limited := io.LimitReader(reader, c.maxBodyBytes)
	decoded, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("charset decode: %w", err)
	}

	body, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
