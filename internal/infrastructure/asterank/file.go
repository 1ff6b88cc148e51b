package asterank

import (
	"context"
	"fmt"
	"os"

	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/source"
)

// FileSource reads a saved asterank JSON export from disk.
type FileSource struct {
	path string
}

var _ source.Source = (*FileSource)(nil)

// NewFileSource points at a JSON export.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source inside the registry.
func (f *FileSource) Name() string {
	return "file"
}

// Fetch decodes the export.
func (f *FileSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	if f.path == "" {
		return nil, fmt.Errorf("file source has no path configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}
