package mock

import (
	"context"

	"github.com/fwojciec/linkcheck"
)

var _ linkcheck.Client = (*Client)(nil)

// Client is a mock implementation of linkcheck.Client.
type Client struct {
	HeadFn func(ctx context.Context, url string) (int, error)
	GetFn  func(ctx context.Context, url string) (*linkcheck.Response, error)
}

func (c *Client) Head(ctx context.Context, url string) (int, error) {
	return c.HeadFn(ctx, url)
}

func (c *Client) Get(ctx context.Context, url string) (*linkcheck.Response, error) {
	return c.GetFn(ctx, url)
}
