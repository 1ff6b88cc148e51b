package source

import (
	"context"
	"fmt"
	"log/slog"

	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/ports"
)

// Selected implements ports.RecordSource by delegating to the configured
// registry entry.
type Selected struct {
	registry *Registry
	kind     string
	logger   *slog.Logger
}

var _ ports.RecordSource = (*Selected)(nil)

// NewSelected wires a registry with the configured source kind.
func NewSelected(reg *Registry, kind string, log *slog.Logger) *Selected {
	return &Selected{registry: reg, kind: kind, logger: log}
}

// Kind returns the configured source name.
func (s *Selected) Kind() string {
	return s.kind
}

// FetchRecords resolves the configured source and fetches its records.
func (s *Selected) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	src, err := s.registry.Resolve(s.kind)
	if err != nil {
		return nil, err
	}

	s.debug("fetch records", "source", s.kind)
	records, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", s.kind, err)
	}
	s.debug("source produced records", "source", s.kind, "count", len(records))
	return records, nil
}

func (s *Selected) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
