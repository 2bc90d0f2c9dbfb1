package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qcdraw/qcdraw/internal/server"
	"github.com/qcdraw/qcdraw/pkg/cache"
	"github.com/qcdraw/qcdraw/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command running the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen    = firstNonEmpty(c.Config.Listen, ":8080")
		redisAddr = c.Config.RedisAddr
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render server",
		Long: `Serve exposes the rendering pipeline over HTTP: POST /v1/render
accepts a serialized circuit and responds with the rendered image or
typst source. With --redis, rendered artifacts are shared between
replicas through a Redis cache; otherwise the local file cache is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), listen, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", listen, "address to listen on")
	cmd.Flags().StringVar(&redisAddr, "redis", redisAddr, "redis address for shared caching (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, listen, redisAddr string, noCache bool) error {
	store, keyer, err := c.serveCache(ctx, redisAddr, noCache)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runner := pipeline.NewRunner(store, keyer, c.Logger)
	srv := &http.Server{
		Addr:              listen,
		Handler:           server.NewHandler(runner, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("render server listening", "addr", listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// serveCache builds the cache backend for the server: Redis when
// configured, otherwise the local file cache.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache {
		return cache.NewNullCache(), nil, nil
	}
	if redisAddr == "" {
		return c.newCache(false), nil, nil
	}

	rc := cache.NewRedisCache(redisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, nil, err
	}
	keyer := cache.NewScopedKeyer(nil, appName+":")
	return rc, keyer, nil
}
