package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"PlanetDashboard/internal/dataset"
	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/features"
	"PlanetDashboard/internal/ports"
)

// LoaderDeps wires the driven adapters into the dataset loader.
type LoaderDeps struct {
	Source     ports.RecordSource
	SourceName string
	Cache      ports.RecordCache
	Logger     *slog.Logger
	Now        func() time.Time
}

// Loader builds the immutable dataset snapshot at startup.
type Loader struct {
	source     ports.RecordSource
	sourceName string
	cache      ports.RecordCache
	logger     *slog.Logger
	now        func() time.Time
}

// NewLoader constructs the loader use case.
func NewLoader(deps LoaderDeps) *Loader {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Loader{
		source:     deps.Source,
		sourceName: deps.SourceName,
		cache:      deps.Cache,
		logger:     deps.Logger,
		now:        now,
	}
}

// Load reads the cached dataset, falling back to the source on a miss, and
// runs the feature pipeline over it.
func (l *Loader) Load(ctx context.Context) (*dataset.Snapshot, error) {
	records, info, ok := l.fromCache(ctx)
	if ok {
		return l.build(records, info)
	}
	return l.Refresh(ctx)
}

// Refresh fetches from the source regardless of the cache and rewrites it.
func (l *Loader) Refresh(ctx context.Context) (*dataset.Snapshot, error) {
	records, info, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := l.build(records, info)
	if err != nil {
		return nil, err
	}

	l.store(ctx, records, info)
	return snap, nil
}

func (l *Loader) fromCache(ctx context.Context) ([]domain.RawRecord, domain.CacheInfo, bool) {
	if l.cache == nil {
		return nil, domain.CacheInfo{}, false
	}

	records, info, ok, err := l.cache.Load(ctx)
	if err != nil {
		l.warn("cache unreadable, fetching from source", "error", err)
		return nil, domain.CacheInfo{}, false
	}
	if !ok {
		l.info("there is no cached dataset, fetching from source", "source", l.sourceName)
		return nil, domain.CacheInfo{}, false
	}

	l.info("using cached dataset", "records", len(records), "fetched_at", info.FetchedAt)
	return records, info, true
}

func (l *Loader) fetch(ctx context.Context) ([]domain.RawRecord, domain.CacheInfo, error) {
	if l.source == nil {
		return nil, domain.CacheInfo{}, fmt.Errorf("no record source configured")
	}

	records, err := l.source.FetchRecords(ctx)
	if err != nil {
		return nil, domain.CacheInfo{}, fmt.Errorf("fetch records: %w", err)
	}

	info := domain.CacheInfo{
		Source:    l.sourceName,
		FetchedAt: l.now().UTC(),
		Records:   len(records),
	}
	return records, info, nil
}

func (l *Loader) store(ctx context.Context, records []domain.RawRecord, info domain.CacheInfo) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Store(ctx, records, info); err != nil {
		l.warn("cache write failed", "error", err)
		return
	}
	l.debug("cached dataset", "records", len(records))
}

func (l *Loader) build(records []domain.RawRecord, info domain.CacheInfo) (*dataset.Snapshot, error) {
	planets, err := features.Run(records)
	if err != nil {
		return nil, fmt.Errorf("derive features: %w", err)
	}

	l.info("dataset ready", "raw", len(records), "kept", len(planets))
	return dataset.NewSnapshot(planets, info.Source, info.FetchedAt), nil
}

func (l *Loader) debug(msg string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

func (l *Loader) info(msg string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

func (l *Loader) warn(msg string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
