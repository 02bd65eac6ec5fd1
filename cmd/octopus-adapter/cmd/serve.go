package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Checker-Finance/octopus-adapter/internal/api"
	"github.com/Checker-Finance/octopus-adapter/internal/publisher"
	"github.com/Checker-Finance/octopus-adapter/pkg/logger"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the catalog and selected product over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := logger.L()
			log.Info("starting [octopus-adapter]...",
				zap.String("base_url", cfg.OctopusBaseURL),
				zap.String("brand", cfg.ProductBrand),
				zap.String("display_name", cfg.ProductDisplayName))

			d, err := buildDeps(cfg, true)
			if err != nil {
				return err
			}
			defer d.Close()

			app := fiber.New(fiber.Config{
				ReadTimeout:           cfg.HTTPReadTimeout,
				WriteTimeout:          cfg.HTTPWriteTimeout,
				DisableStartupMessage: true,
			})

			var checks []api.HealthChecker
			if d.nc != nil {
				checks = append(checks, publisher.NewConnHealth(d.nc))
			}
			api.RegisterRoutes(app, api.NewProductsHandler(log, d.service, cfg.HTTPWriteTimeout), checks...)

			errCh := make(chan error, 1)
			go func() {
				log.Info("HTTP API listening", zap.Int("port", cfg.Port))
				errCh <- app.Listen(fmt.Sprintf(":%d", cfg.Port))
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("fiber listen: %w", err)
			case <-ctx.Done():
			}

			log.Info("shutting down [octopus-adapter]...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.ShutdownWithContext(shutdownCtx)
		},
	}
}
