package features

import (
	"fmt"
	"strings"

	"PlanetDashboard/internal/domain"
)

// Field binds a source column name to its RawRecord accessor.
type Field struct {
	Column string
	Value  func(domain.RawRecord) float64
}

// RequiredFields are the columns the pipeline and the charts read.
var RequiredFields = []Field{
	{Column: "RSTAR", Value: func(r domain.RawRecord) float64 { return r.StarRadius }},
	{Column: "TSTAR", Value: func(r domain.RawRecord) float64 { return r.StarTemp }},
	{Column: "MSTAR", Value: func(r domain.RawRecord) float64 { return r.StarMass }},
	{Column: "RPLANET", Value: func(r domain.RawRecord) float64 { return r.PlanetRadius }},
	{Column: "TPLANET", Value: func(r domain.RawRecord) float64 { return r.PlanetTemp }},
	{Column: "PER", Value: func(r domain.RawRecord) float64 { return r.Period }},
	{Column: "A", Value: func(r domain.RawRecord) float64 { return r.SemiMajorAxis }},
	{Column: "RA", Value: func(r domain.RawRecord) float64 { return r.RightAscension }},
	{Column: "DEC", Value: func(r domain.RawRecord) float64 { return r.Declination }},
}

// SchemaError reports required columns missing from every input record.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch: missing required fields %s", strings.Join(e.Missing, ", "))
}

// ValidateSchema fails when a required column carries no value in any record.
// An empty input is valid.
func ValidateSchema(records []domain.RawRecord) error {
	if len(records) == 0 {
		return nil
	}

	var missing []string
	for _, f := range RequiredFields {
		if !anyKnown(records, f.Value) {
			missing = append(missing, f.Column)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

func anyKnown(records []domain.RawRecord, value func(domain.RawRecord) float64) bool {
	for _, rec := range records {
		if !domain.IsUnknown(value(rec)) {
			return true
		}
	}
	return false
}
