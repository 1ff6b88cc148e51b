package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"PlanetDashboard/internal/config"
	"PlanetDashboard/internal/dashboard"
	"PlanetDashboard/internal/dataset"
	"PlanetDashboard/internal/infrastructure/asterank"
	"PlanetDashboard/internal/infrastructure/storage"
	"PlanetDashboard/internal/logging"
	"PlanetDashboard/internal/ports"
	"PlanetDashboard/internal/server"
	"PlanetDashboard/internal/source"
	"PlanetDashboard/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sql.DB
	loader  *usecase.Loader
	builder *dashboard.Builder
}

// New builds the application. The caller must Close it.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	registry := source.NewRegistry()
	registry.Register(asterank.NewClient(cfg.Source, nil, baseLogger.With("component", "source.asterank")))
	if cfg.Source.File != "" {
		registry.Register(asterank.NewFileSource(cfg.Source.File))
	}

	selected := source.NewSelected(registry, cfg.Source.Kind, baseLogger.With("component", "source"))

	a := &Application{
		cfg:     cfg,
		logger:  baseLogger,
		builder: dashboard.NewBuilder(cfg.Dashboard.PageSize, cfg.Dashboard.HistogramBins),
	}

	var cache ports.RecordCache
	if !cfg.Cache.Disabled {
		db, err := storage.Open(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("open cache %s: %w", cfg.Cache.Path, err)
		}
		a.db = db
		cache = storage.NewSQLiteCache(db)
	}

	a.loader = usecase.NewLoader(usecase.LoaderDeps{
		Source:     selected,
		SourceName: cfg.Source.Kind,
		Cache:      cache,
		Logger:     baseLogger.With("component", "loader"),
	})
	return a, nil
}

// Load returns the dataset snapshot, preferring the cache.
func (a *Application) Load(ctx context.Context) (*dataset.Snapshot, error) {
	return a.loader.Load(ctx)
}

// Refresh refetches the dataset and rewrites the cache.
func (a *Application) Refresh(ctx context.Context) (*dataset.Snapshot, error) {
	return a.loader.Refresh(ctx)
}

// Handler builds the HTTP handler serving snap.
func (a *Application) Handler(snap *dataset.Snapshot) http.Handler {
	return server.New(snap, a.builder, a.logger.With("component", "http")).Handler()
}

// Run loads the snapshot and serves it until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	snap, err := a.Load(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    a.cfg.Server.Addr,
		Handler: a.Handler(snap),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("listening", "addr", a.cfg.Server.Addr, "records", snap.Len(), "snapshot", snap.ID())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close releases the cache database.
func (a *Application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
