package ports

import (
	"context"

	"PlanetDashboard/internal/domain"
)

// RecordSource pulls raw candidate records from an upstream provider.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]domain.RawRecord, error)
}

// RecordCache stores the last fetched dataset locally.
// Load reports ok=false when nothing is cached yet.
type RecordCache interface {
	Load(ctx context.Context) (records []domain.RawRecord, info domain.CacheInfo, ok bool, err error)
	Store(ctx context.Context, records []domain.RawRecord, info domain.CacheInfo) error
}
