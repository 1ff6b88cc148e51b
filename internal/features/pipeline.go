// Package features derives the categorical and numeric columns shown on the
// dashboard from raw Kepler candidate records.
package features

import (
	"math"

	"PlanetDashboard/internal/domain"
)

// DeriveStatus applies the habitability cascade. The first matching rule wins.
func DeriveStatus(t domain.TemperatureClass, g domain.GravityClass) domain.Status {
	switch {
	case t == domain.TemperatureOptimal && g == domain.GravityOptimal:
		return domain.StatusPromising
	case t == domain.TemperatureOptimal && (g == domain.GravityLow || g == domain.GravityHigh):
		return domain.StatusChallenging
	case g == domain.GravityOptimal && (t == domain.TemperatureLow || t == domain.TemperatureHigh):
		return domain.StatusChallenging
	default:
		return domain.StatusExtreme
	}
}

// RelativeDistance returns semiMajorAxis/starRadius, or the unknown marker
// when the ratio is undefined.
func RelativeDistance(semiMajorAxis, starRadius float64) float64 {
	if starRadius == 0 {
		return domain.Unknown()
	}
	ratio := semiMajorAxis / starRadius
	if math.IsInf(ratio, 0) {
		return domain.Unknown()
	}
	return ratio
}

// Augment derives features for every record. It never fails: values that
// cannot be classified are carried as unknown markers.
func Augment(records []domain.RawRecord) []domain.Planet {
	planets := make([]domain.Planet, len(records))
	for i, rec := range records {
		planets[i] = augmentOne(rec)
	}
	return planets
}

func augmentOne(rec domain.RawRecord) domain.Planet {
	p := domain.Planet{RawRecord: rec}
	p.StarSize = ClassifyStarSize(rec.StarRadius)
	p.Temperature = ClassifyTemperature(rec.PlanetTemp)
	p.Gravity = ClassifyGravity(rec.PlanetRadius)
	p.Status = DeriveStatus(p.Temperature, p.Gravity)
	p.RelativeDistance = RelativeDistance(rec.SemiMajorAxis, rec.StarRadius)
	return p
}

// KeepPositivePeriod drops records whose orbital period is not strictly
// positive. Unknown periods are dropped too.
func KeepPositivePeriod(records []domain.RawRecord) []domain.RawRecord {
	kept := make([]domain.RawRecord, 0, len(records))
	for _, rec := range records {
		if rec.Period > 0 {
			kept = append(kept, rec)
		}
	}
	return kept
}

// Run validates the schema, drops records with a non-positive period and
// augments the rest.
func Run(records []domain.RawRecord) ([]domain.Planet, error) {
	if err := ValidateSchema(records); err != nil {
		return nil, err
	}
	return Augment(KeepPositivePeriod(records)), nil
}

// Categories lists the fixed label sets used for legends and color scales.
type Categories struct {
	StarSizes []string `json:"starSizes"`
	Levels    []string `json:"levels"`
	Statuses  []string `json:"statuses"`
}

// Labels returns the label sets in legend order.
func Labels() Categories {
	c := Categories{}
	for _, s := range domain.StarSizes {
		c.StarSizes = append(c.StarSizes, s.String())
	}
	for _, l := range domain.Levels {
		c.Levels = append(c.Levels, l.String())
	}
	for _, s := range domain.Statuses {
		c.Statuses = append(c.Statuses, s.String())
	}
	return c
}
