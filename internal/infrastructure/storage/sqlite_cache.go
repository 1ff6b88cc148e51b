package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/ports"
)

// insertBatch keeps multi-row inserts below SQLite's bound-parameter limit.
const insertBatch = 500

const schema = `
CREATE TABLE IF NOT EXISTS planets (
	seq             INTEGER PRIMARY KEY,
	id              TEXT NOT NULL,
	koi             REAL,
	semi_major_axis REAL,
	declination     REAL,
	star_radius     REAL,
	star_temp       REAL,
	kepler_mag      REAL,
	planet_temp     REAL,
	transit_epoch   REAL,
	transit_epoch_err REAL,
	period          REAL,
	right_ascension REAL,
	period_err      REAL,
	planet_radius   REAL,
	star_mass       REAL,
	row_num         REAL
);
CREATE TABLE IF NOT EXISTS cache_meta (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	source     TEXT NOT NULL,
	fetched_at INTEGER NOT NULL,
	records    INTEGER NOT NULL
);`

type column struct {
	name string
	get  func(*domain.RawRecord) *float64
}

var columns = []column{
	{"koi", func(r *domain.RawRecord) *float64 { return &r.KOI }},
	{"semi_major_axis", func(r *domain.RawRecord) *float64 { return &r.SemiMajorAxis }},
	{"declination", func(r *domain.RawRecord) *float64 { return &r.Declination }},
	{"star_radius", func(r *domain.RawRecord) *float64 { return &r.StarRadius }},
	{"star_temp", func(r *domain.RawRecord) *float64 { return &r.StarTemp }},
	{"kepler_mag", func(r *domain.RawRecord) *float64 { return &r.KeplerMag }},
	{"planet_temp", func(r *domain.RawRecord) *float64 { return &r.PlanetTemp }},
	{"transit_epoch", func(r *domain.RawRecord) *float64 { return &r.TransitEpoch }},
	{"transit_epoch_err", func(r *domain.RawRecord) *float64 { return &r.TransitEpochErr }},
	{"period", func(r *domain.RawRecord) *float64 { return &r.Period }},
	{"right_ascension", func(r *domain.RawRecord) *float64 { return &r.RightAscension }},
	{"period_err", func(r *domain.RawRecord) *float64 { return &r.PeriodErr }},
	{"planet_radius", func(r *domain.RawRecord) *float64 { return &r.PlanetRadius }},
	{"star_mass", func(r *domain.RawRecord) *float64 { return &r.StarMass }},
	{"row_num", func(r *domain.RawRecord) *float64 { return &r.Row }},
}

func columnNames() []string {
	names := make([]string, 0, len(columns)+2)
	names = append(names, "seq", "id")
	for _, c := range columns {
		names = append(names, c.name)
	}
	return names
}

// SQLiteCache persists the last fetched dataset into a local SQLite file.
type SQLiteCache struct {
	db *sql.DB
}

var _ ports.RecordCache = (*SQLiteCache)(nil)

// NewSQLiteCache wires an already opened database.
func NewSQLiteCache(db *sql.DB) *SQLiteCache {
	return &SQLiteCache{db: db}
}

// Open opens (creating if needed) the cache file and applies the schema.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cache: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		schema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("cache: init: %w", err)
		}
	}

	return db, nil
}

// Load returns the cached records in their original order.
func (c *SQLiteCache) Load(ctx context.Context) ([]domain.RawRecord, domain.CacheInfo, bool, error) {
	info, ok, err := c.loadInfo(ctx)
	if err != nil || !ok {
		return nil, info, ok, err
	}

	query, args, err := sq.Select(columnNames()...).From("planets").OrderBy("seq").ToSql()
	if err != nil {
		return nil, info, false, fmt.Errorf("build select: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, info, false, fmt.Errorf("query planets: %w", err)
	}

	records := make([]domain.RawRecord, 0, info.Records)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			_ = rows.Close()
			return nil, info, false, err
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, info, false, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, info, false, fmt.Errorf("close rows: %w", closeErr)
	}

	info.Records = len(records)
	return records, info, true, nil
}

func (c *SQLiteCache) loadInfo(ctx context.Context) (domain.CacheInfo, bool, error) {
	query, args, err := sq.Select("source", "fetched_at", "records").From("cache_meta").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return domain.CacheInfo{}, false, fmt.Errorf("build meta select: %w", err)
	}

	var (
		info      domain.CacheInfo
		fetchedAt int64
	)
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&info.Source, &fetchedAt, &info.Records)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CacheInfo{}, false, nil
	}
	if err != nil {
		return domain.CacheInfo{}, false, fmt.Errorf("query meta: %w", err)
	}
	info.FetchedAt = time.UnixMilli(fetchedAt).UTC()
	return info, true, nil
}

func scanRecord(rows *sql.Rows) (domain.RawRecord, error) {
	var (
		rec    domain.RawRecord
		seq    int64
		values = make([]sql.NullFloat64, len(columns))
		dest   = make([]any, 0, len(columns)+2)
	)
	dest = append(dest, &seq, &rec.ID)
	for i := range values {
		dest = append(dest, &values[i])
	}

	if err := rows.Scan(dest...); err != nil {
		return domain.RawRecord{}, fmt.Errorf("scan planet: %w", err)
	}

	for i, col := range columns {
		if values[i].Valid {
			*col.get(&rec) = values[i].Float64
		} else {
			*col.get(&rec) = domain.Unknown()
		}
	}
	return rec, nil
}

// Store replaces the cached dataset in a single transaction.
func (c *SQLiteCache) Store(ctx context.Context, records []domain.RawRecord, info domain.CacheInfo) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := storeTx(ctx, tx, records, info); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func storeTx(ctx context.Context, tx *sql.Tx, records []domain.RawRecord, info domain.CacheInfo) error {
	query, args, err := sq.Delete("planets").ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear planets: %w", err)
	}

	for start := 0; start < len(records); start += insertBatch {
		end := min(start+insertBatch, len(records))

		insert := sq.Insert("planets").Columns(columnNames()...)
		for i := start; i < end; i++ {
			insert = insert.Values(recordValues(i, &records[i])...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert planets: %w", err)
		}
	}

	query, args, err = sq.Replace("cache_meta").
		Columns("id", "source", "fetched_at", "records").
		Values(1, info.Source, info.FetchedAt.UnixMilli(), len(records)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build meta upsert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert meta: %w", err)
	}
	return nil
}

func recordValues(seq int, rec *domain.RawRecord) []any {
	values := make([]any, 0, len(columns)+2)
	values = append(values, seq, rec.ID)
	for _, col := range columns {
		v := *col.get(rec)
		values = append(values, sql.NullFloat64{Float64: v, Valid: !domain.IsUnknown(v)})
	}
	return values
}
