package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finlab/finance-lab/internal/metrics"
	"github.com/finlab/finance-lab/internal/server"
)

func serveCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lab page and its JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(os.Stdout)
			if err != nil {
				return err
			}
			defer rt.logger.Sync()
			if addr != "" {
				rt.cfg.Server.Addr = addr
			}
			srv := server.New(rt.cfg, rt.logger, metrics.New()).HTTPServer()
			return serve(srv, rt)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address override (default from config)")
	return cmd
}

// serve runs until SIGINT/SIGTERM, then drains connections within the shutdown timeout
func serve(srv *http.Server, rt *env) error {
	serverErr := make(chan error, 1)
	go func() {
		rt.logger.Info("finlab listening", zap.String("addr", srv.Addr), zap.Any("components", rt.mounted.EnabledNames()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		rt.logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		rt.logger.Error("server shutdown", zap.Error(err))
		return err
	}
	rt.logger.Info("server exited")
	return nil
}
