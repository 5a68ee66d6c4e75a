package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/solargraph/pkg/cache"
	"github.com/matzehuels/solargraph/pkg/pipeline"
	"github.com/matzehuels/solargraph/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API until the
// process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
		scoped   bool
		maxBody  int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Layouts and artifacts are cached in Redis when --redis is given, otherwise in
the local cache directory. With --scoped-cache, requests carrying an
X-API-Key header get a cache namespace of their own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.serverCache(ctx, redisURL, noCache)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(store, nil, c.Logger)
			defer runner.Close()

			opts := []server.Option{server.WithMaxBodyBytes(maxBody)}
			if scoped {
				opts = append(opts, server.WithScopedCache())
			}
			return server.New(runner, c.Logger, opts...).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&scoped, "scoped-cache", false, "namespace cache entries by API key")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}

func (c *CLI) serverCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache || redisURL == "" {
		return c.newCache(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Logger.Debug("Using redis cache")
	return rc, nil
}
