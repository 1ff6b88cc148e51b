package dashboard

import "PlanetDashboard/internal/domain"

// SourceLink credits the upstream dataset.
const (
	SourceLink  = "https://www.asterank.com/kepler"
	SourceLabel = "Data are sourced from the Kepler API via asterank.com"
)

// Field describes one raw column of the dataset.
type Field struct {
	Key         string `json:"key"`
	Description string `json:"description"`

	value func(domain.RawRecord) float64
}

// Fields lists the raw columns in table order.
var Fields = []Field{
	{"KOI", "Kepler Object of Interest number", func(r domain.RawRecord) float64 { return r.KOI }},
	{"A", "Semi-major axis (AU)", func(r domain.RawRecord) float64 { return r.SemiMajorAxis }},
	{"DEC", "Declination (J2000)", func(r domain.RawRecord) float64 { return r.Declination }},
	{"RSTAR", "Stellar radius (solar radii)", func(r domain.RawRecord) float64 { return r.StarRadius }},
	{"TSTAR", "Effective temperature of host star as reported in KIC (K)", func(r domain.RawRecord) float64 { return r.StarTemp }},
	{"KMAG", "Kepler magnitude", func(r domain.RawRecord) float64 { return r.KeplerMag }},
	{"TPLANET", "Equilibrium temperature of planet, per Borucki et al. (K)", func(r domain.RawRecord) float64 { return r.PlanetTemp }},
	{"T0", "Time of transit center (BJD-2454900)", func(r domain.RawRecord) float64 { return r.TransitEpoch }},
	{"UT0", "Uncertainty in time of transit center (+-days)", func(r domain.RawRecord) float64 { return r.TransitEpochErr }},
	{"PER", "Period (days)", func(r domain.RawRecord) float64 { return r.Period }},
	{"RA", "Right ascension (J2000)", func(r domain.RawRecord) float64 { return r.RightAscension }},
	{"UPER", "Uncertainty in period (+-days)", func(r domain.RawRecord) float64 { return r.PeriodErr }},
	{"RPLANET", "Planetary radius (Earth radii)", func(r domain.RawRecord) float64 { return r.PlanetRadius }},
	{"MSTAR", "Derived stellar mass (solar masses)", func(r domain.RawRecord) float64 { return r.StarMass }},
	{"ROW", "Row number in the source catalogue", func(r domain.RawRecord) float64 { return r.Row }},
}
