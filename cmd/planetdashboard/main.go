package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"PlanetDashboard/internal/app"
	"PlanetDashboard/internal/config"
	"PlanetDashboard/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "planetdashboard",
		Short:         "Interactive dashboard over Kepler exoplanet candidates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (defaults to $PLANET_DASHBOARD_CONFIG)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Load the dataset and serve the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, func(ctx context.Context, a *app.Application) error {
				return a.Run(ctx)
			})
		},
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Refetch the dataset and rewrite the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, func(ctx context.Context, a *app.Application) error {
				_, err := a.Refresh(ctx)
				return err
			})
		},
	}

	root.RunE = serve.RunE
	root.AddCommand(serve, refresh)
	return root
}

func run(ctx context.Context, configPath string, fn func(context.Context, *app.Application) error) error {
	cfg := config.Load()
	if configPath != "" {
		cfg = config.LoadFile(configPath)
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application init failed", "error", err)
		return err
	}
	defer application.Close()

	if err := fn(ctx, application); err != nil {
		logger.Error("application stopped", "error", err)
		return err
	}
	return nil
}
