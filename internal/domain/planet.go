package domain

import (
	"math"
	"time"
)

// RawRecord is one Kepler candidate row as delivered by a source.
// Missing or null source values are stored as NaN.
type RawRecord struct {
	ID              string
	KOI             float64
	SemiMajorAxis   float64
	Declination     float64
	StarRadius      float64
	StarTemp        float64
	KeplerMag       float64
	PlanetTemp      float64
	TransitEpoch    float64
	TransitEpochErr float64
	Period          float64
	RightAscension  float64
	PeriodErr       float64
	PlanetRadius    float64
	StarMass        float64
	Row             float64
}

// Planet is a RawRecord augmented with derived features.
type Planet struct {
	RawRecord

	StarSize         StarSize
	Temperature      TemperatureClass
	Gravity          GravityClass
	Status           Status
	RelativeDistance float64
}

// HasRelativeDistance reports whether the relative distance is defined.
func (p Planet) HasRelativeDistance() bool {
	return !IsUnknown(p.RelativeDistance)
}

// Unknown returns the marker used for missing or undefined numeric values.
func Unknown() float64 {
	return math.NaN()
}

// IsUnknown reports whether v is the unknown marker.
func IsUnknown(v float64) bool {
	return math.IsNaN(v)
}

// CacheInfo describes the dataset stored in the local cache.
type CacheInfo struct {
	Source    string
	FetchedAt time.Time
	Records   int
}
