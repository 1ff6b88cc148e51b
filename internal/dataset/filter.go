package dataset

import (
	"slices"

	"PlanetDashboard/internal/domain"
)

// Query holds the user-facing filter controls.
// An empty StarSizes set means no star-size constraint.
type Query struct {
	RadiusMin float64
	RadiusMax float64
	StarSizes []domain.StarSize
}

// Matches reports whether p satisfies the query. Radius bounds are inclusive;
// an unknown planet radius never matches.
func (q Query) Matches(p domain.Planet) bool {
	if !(p.PlanetRadius >= q.RadiusMin && p.PlanetRadius <= q.RadiusMax) {
		return false
	}
	return len(q.StarSizes) == 0 || slices.Contains(q.StarSizes, p.StarSize)
}

// Filter returns the planets matching q in input order. The result never
// aliases the input.
func Filter(planets []domain.Planet, q Query) []domain.Planet {
	out := make([]domain.Planet, 0)
	if q.RadiusMin > q.RadiusMax {
		return out
	}
	for _, p := range planets {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
