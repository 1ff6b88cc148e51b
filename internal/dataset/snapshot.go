// Package dataset owns the immutable augmented dataset shared by all requests
// and the filter applied to it.
package dataset

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"PlanetDashboard/internal/domain"
)

// Snapshot is a read-only view of the augmented dataset. It is safe for
// concurrent use.
type Snapshot struct {
	id        uuid.UUID
	source    string
	fetchedAt time.Time
	planets   []domain.Planet
	radiusMin float64
	radiusMax float64
}

// NewSnapshot copies planets into a new snapshot.
func NewSnapshot(planets []domain.Planet, source string, fetchedAt time.Time) *Snapshot {
	s := &Snapshot{
		id:        uuid.New(),
		source:    source,
		fetchedAt: fetchedAt,
		planets:   slices.Clone(planets),
		radiusMin: math.Inf(1),
		radiusMax: math.Inf(-1),
	}
	for _, p := range s.planets {
		r := p.PlanetRadius
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		s.radiusMin = math.Min(s.radiusMin, r)
		s.radiusMax = math.Max(s.radiusMax, r)
	}
	if s.radiusMin > s.radiusMax {
		s.radiusMin, s.radiusMax = 0, 0
	}
	return s
}

func (s *Snapshot) ID() uuid.UUID        { return s.id }
func (s *Snapshot) Source() string       { return s.source }
func (s *Snapshot) FetchedAt() time.Time { return s.fetchedAt }
func (s *Snapshot) Len() int             { return len(s.planets) }

// Planets returns a copy of the dataset.
func (s *Snapshot) Planets() []domain.Planet {
	return slices.Clone(s.planets)
}

// RadiusBounds returns the smallest and largest known planet radius.
func (s *Snapshot) RadiusBounds() (float64, float64) {
	return s.radiusMin, s.radiusMax
}

// DefaultQuery selects every planet with a known radius.
func (s *Snapshot) DefaultQuery() Query {
	return Query{RadiusMin: s.radiusMin, RadiusMax: s.radiusMax}
}

// Filter applies q to the snapshot.
func (s *Snapshot) Filter(q Query) []domain.Planet {
	return Filter(s.planets, q)
}

// StatusCounts tallies planets per status.
func StatusCounts(planets []domain.Planet) map[domain.Status]int {
	counts := make(map[domain.Status]int, len(domain.Statuses))
	for _, p := range planets {
		counts[p.Status]++
	}
	return counts
}
