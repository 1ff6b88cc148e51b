package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PlanetDashboard/internal/config"
)

const keplerJSON = `[
  {"KOI": 1.01, "A": 1, "DEC": 44, "RSTAR": 1, "TSTAR": 5700, "KMAG": 12, "TPLANET": 300, "T0": 55, "UT0": 0.1, "PER": 365, "RA": 290, "UPER": 0.01, "RPLANET": 1, "MSTAR": 1, "ROW": 1},
  {"KOI": 2.01, "A": 0.1, "DEC": 45, "RSTAR": 0.5, "TSTAR": 4000, "TPLANET": 450, "PER": 10, "RA": 291, "RPLANET": 3, "MSTAR": 0.6, "ROW": 2},
  {"KOI": 3.01, "A": 0.2, "DEC": 46, "RSTAR": 2, "TSTAR": 6000, "TPLANET": 150, "PER": 0, "RA": 292, "RPLANET": 0.4, "MSTAR": 1.2, "ROW": 3}
]`

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	file := filepath.Join(dir, "kepler.json")
	require.NoError(t, os.WriteFile(file, []byte(keplerJSON), 0o644))

	cfg := config.LoadFile("")
	cfg.Source.Kind = "file"
	cfg.Source.File = file
	cfg.Cache.Path = filepath.Join(dir, "cache.db")
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFallsBackToCache(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, err := New(cfg, quietLogger())
	require.NoError(t, err)
	snap, err := first.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// non-positive period is dropped
	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, "file", snap.Source())

	require.NoError(t, os.Remove(cfg.Source.File))

	second, err := New(cfg, quietLogger())
	require.NoError(t, err)
	defer second.Close()

	cached, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())
	assert.Equal(t, snap.FetchedAt().UnixMilli(), cached.FetchedAt().UnixMilli())

	_, err = second.Refresh(ctx)
	assert.Error(t, err, "refresh must go to the missing source")
}

func TestHandlerServesSnapshot(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Disabled = true

	a, err := New(cfg, quietLogger())
	require.NoError(t, err)
	defer a.Close()

	snap, err := a.Refresh(context.Background())
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler(snap))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/dashboard?star=Small")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, snap.ID().String(), resp.Header.Get("X-Snapshot-ID"))
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Disabled = true

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	cfg.Server.Addr = ln.Addr().String()
	require.NoError(t, ln.Close())

	a, err := New(cfg, quietLogger())
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Server.Addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
