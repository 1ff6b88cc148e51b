package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/features"
)

type fakeSource struct {
	records []domain.RawRecord
	err     error
	calls   int
}

func (f *fakeSource) FetchRecords(context.Context) ([]domain.RawRecord, error) {
	f.calls++
	return f.records, f.err
}

type fakeCache struct {
	records []domain.RawRecord
	info    domain.CacheInfo
	ok      bool
	loadErr error
	stored  int
}

func (f *fakeCache) Load(context.Context) ([]domain.RawRecord, domain.CacheInfo, bool, error) {
	return f.records, f.info, f.ok, f.loadErr
}

func (f *fakeCache) Store(_ context.Context, records []domain.RawRecord, info domain.CacheInfo) error {
	f.stored++
	f.records, f.info, f.ok = records, info, true
	return nil
}

func rawRecord(id string, period float64) domain.RawRecord {
	return domain.RawRecord{
		ID: id, StarRadius: 1, StarTemp: 5700, StarMass: 1, PlanetRadius: 1, PlanetTemp: 300,
		Period: period, SemiMajorAxis: 1, RightAscension: 290, Declination: 44,
	}
}

var fixedNow = func() time.Time { return time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC) }

func TestLoadUsesCacheOnHit(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	cache := &fakeCache{
		records: []domain.RawRecord{rawRecord("1.01", 10), rawRecord("2.01", -1)},
		info:    domain.CacheInfo{Source: "asterank", FetchedAt: fixedNow()},
		ok:      true,
	}

	snap, err := NewLoader(LoaderDeps{Source: src, SourceName: "asterank", Cache: cache, Now: fixedNow}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if src.calls != 0 {
		t.Fatalf("source should not be called on cache hit")
	}
	if snap.Len() != 1 {
		t.Fatalf("expected non-positive period to be dropped, got %d planets", snap.Len())
	}
}

func TestLoadFetchesAndStoresOnMiss(t *testing.T) {
	t.Parallel()

	src := &fakeSource{records: []domain.RawRecord{rawRecord("1.01", 10)}}
	cache := &fakeCache{}

	snap, err := NewLoader(LoaderDeps{Source: src, SourceName: "asterank", Cache: cache, Now: fixedNow}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if src.calls != 1 || cache.stored != 1 {
		t.Fatalf("expected one fetch and one store, got %d/%d", src.calls, cache.stored)
	}
	if !snap.FetchedAt().Equal(fixedNow()) || snap.Source() != "asterank" {
		t.Fatalf("unexpected snapshot metadata: %s %v", snap.Source(), snap.FetchedAt())
	}
}

func TestLoadFallsBackWhenCacheBroken(t *testing.T) {
	t.Parallel()

	src := &fakeSource{records: []domain.RawRecord{rawRecord("1.01", 10)}}
	cache := &fakeCache{loadErr: errors.New("corrupt")}

	if _, err := NewLoader(LoaderDeps{Source: src, Cache: cache}).Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("expected fetch after cache failure")
	}
}

func TestLoadNetworkFailure(t *testing.T) {
	t.Parallel()

	src := &fakeSource{err: errors.New("dial tcp: connection refused")}
	_, err := NewLoader(LoaderDeps{Source: src, Cache: &fakeCache{}}).Load(context.Background())
	if err == nil {
		t.Fatalf("expected error on network failure")
	}
}

func TestLoadSchemaError(t *testing.T) {
	t.Parallel()

	rec := rawRecord("1.01", 10)
	rec.PlanetRadius = math.NaN()
	src := &fakeSource{records: []domain.RawRecord{rec}}

	_, err := NewLoader(LoaderDeps{Source: src}).Load(context.Background())
	var schemaErr *features.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	t.Parallel()

	src := &fakeSource{records: []domain.RawRecord{rawRecord("1.01", 10), rawRecord("2.01", 20)}}
	cache := &fakeCache{records: []domain.RawRecord{rawRecord("old", 10)}, ok: true}

	snap, err := NewLoader(LoaderDeps{Source: src, Cache: cache, Now: fixedNow}).Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if src.calls != 1 || cache.stored != 1 {
		t.Fatalf("expected fetch and store, got %d/%d", src.calls, cache.stored)
	}
	if snap.Len() != 2 || len(cache.records) != 2 {
		t.Fatalf("unexpected sizes: snapshot=%d cache=%d", snap.Len(), len(cache.records))
	}
}

func TestRefreshDoesNotCacheSchemaMismatch(t *testing.T) {
	t.Parallel()

	rec := rawRecord("1.01", 10)
	rec.Declination = math.NaN()
	cache := &fakeCache{}

	if _, err := NewLoader(LoaderDeps{Source: &fakeSource{records: []domain.RawRecord{rec}}, Cache: cache}).Refresh(context.Background()); err == nil {
		t.Fatalf("expected schema error")
	}
	if cache.stored != 0 {
		t.Fatalf("mismatched dataset must not be cached")
	}
}
