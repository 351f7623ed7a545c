package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	lchttp "github.com/fwojciec/linkcheck/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until deps.Ctx is canceled,
// then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []lchttp.ServerOption{lchttp.WithLogger(deps.Logger)}
	if deps.Reports != nil {
		opts = append(opts, lchttp.WithReports(deps.Reports))
	}
	if c.Rate > 0 {
		opts = append(opts, lchttp.WithLimiter(lchttp.NewLimiter(c.Rate, c.Burst)))
	}
	if c.Static != "" {
		opts = append(opts, lchttp.WithStaticDir(c.Static))
	}

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s: %v\n", c.Addr, err)
		return err
	}

	srv := &http.Server{
		Handler:           lchttp.NewServer(deps.Crawler, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(deps.Ctx)

	g.Go(func() error {
		deps.Logger.Info("listening", "addr", ln.Addr().String())
		fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
