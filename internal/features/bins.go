package features

import (
	"math"

	"PlanetDashboard/internal/domain"
)

// Bins splits a real line into half-open intervals (edges[i], edges[i+1]].
type Bins struct {
	Edges []float64
}

// Index returns the interval holding v, or -1 when v falls outside every
// interval or is not finite.
func (b Bins) Index(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}
	for i := 0; i+1 < len(b.Edges); i++ {
		if v > b.Edges[i] && v <= b.Edges[i+1] {
			return i
		}
	}
	return -1
}

var (
	starSizeBins    = Bins{Edges: []float64{0, 0.8, 1.2, math.Inf(1)}}
	temperatureBins = Bins{Edges: []float64{0, 200, 400, 500, 5000}}
	gravityBins     = Bins{Edges: []float64{0, 0.5, 2, 4, 100}}
)

// ClassifyStarSize buckets a star radius in solar radii.
func ClassifyStarSize(radius float64) domain.StarSize {
	i := starSizeBins.Index(radius)
	if i < 0 {
		return domain.StarSizeUnknown
	}
	return domain.StarSizes[i]
}

// ClassifyTemperature buckets a planet equilibrium temperature in Kelvin.
func ClassifyTemperature(kelvin float64) domain.TemperatureClass {
	return domain.TemperatureClass(level(temperatureBins, kelvin))
}

// ClassifyGravity buckets a planet radius in Earth radii.
func ClassifyGravity(radius float64) domain.GravityClass {
	return domain.GravityClass(level(gravityBins, radius))
}

func level(b Bins, v float64) domain.Level {
	i := b.Index(v)
	if i < 0 {
		return domain.LevelUnknown
	}
	return domain.Levels[i]
}
