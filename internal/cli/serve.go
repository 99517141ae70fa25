package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stackhaven/zonemenu/internal/httpapi"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the menu configuration HTTP server",
		Long: `Start the HTTP server for menu editing and rendering.

The server loads menu definitions from the configured definition
directory, opens the SQLite database (creating it if it doesn't exist),
and serves the editing API.

Example:
  zonemenu serve --config ./zonemenu.yaml
  zonemenu serve --addr :9090 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	env, cleanup, err := openEnvironment(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := env.cfg.HTTP.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}

	api := httpapi.NewServer(env.cfg, env.store, env.projector, httpapi.WithLogger(logger))
	server := &http.Server{
		Addr:    addr,
		Handler: api.Handler(),
	}

	// Setup signal handling for graceful shutdown
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr, "layout", env.cfg.Layout, "db", env.cfg.Database.Path)
		errChan <- server.ListenAndServe()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving menu API on %s. Press Ctrl-C to stop.\n", addr)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitFailure, "server error", err)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return WrapExitError(ExitFailure, "shutdown error", err)
		}
	}

	logger.Info("server stopped gracefully")
	return nil
}
