package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/mcpserver"
	"github.com/jongio/exturl/metrics"
	"github.com/jongio/exturl/version"
)

// shutdownTimeout bounds the graceful shutdown of the metrics server.
const shutdownTimeout = 5 * time.Second

func newMCPCmd(opts *rootOptions) *cobra.Command {
	var (
		ratePerSecond float64
		burst         int
	)
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the URL tools over the Model Context Protocol (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcpserver.New(opts.cfg, mcpserver.Options{
				Name:          "exturl",
				Version:       version.Version,
				RatePerSecond: ratePerSecond,
				Burst:         burst,
			})
			return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	defaults := mcpserver.DefaultOptions()
	cmd.Flags().Float64Var(&ratePerSecond, "rate", defaults.RatePerSecond, "sustained calls per second per tool")
	cmd.Flags().IntVar(&burst, "burst", defaults.Burst, "burst size per tool")
	return cmd
}

func newMetricsCmd(_ *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Serve Prometheus metrics on /metrics and a health check on /health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port < 1 || port > 65535 {
				return fmt.Errorf("invalid port %d", port)
			}
			return serveMetrics(cmd.Context(), metrics.NewServer(port))
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 9090, "listen port")
	return cmd
}

// serveMetrics runs srv until ctx is done.
func serveMetrics(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logutil.Info("serving metrics", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown failed: %w", err)
		}
		return nil
	}
}
