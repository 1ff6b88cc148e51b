package asterank

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"PlanetDashboard/internal/domain"
)

// keplerRow mirrors one object of the asterank /api/kepler payload.
type keplerRow struct {
	KOI     *float64 `json:"KOI"`
	A       *float64 `json:"A"`
	DEC     *float64 `json:"DEC"`
	RSTAR   *float64 `json:"RSTAR"`
	TSTAR   *float64 `json:"TSTAR"`
	KMAG    *float64 `json:"KMAG"`
	TPLANET *float64 `json:"TPLANET"`
	T0      *float64 `json:"T0"`
	UT0     *float64 `json:"UT0"`
	PER     *float64 `json:"PER"`
	RA      *float64 `json:"RA"`
	UPER    *float64 `json:"UPER"`
	RPLANET *float64 `json:"RPLANET"`
	MSTAR   *float64 `json:"MSTAR"`
	ROW     *float64 `json:"ROW"`
}

// Decode reads a JSON array of Kepler rows. Absent and null values become
// the unknown marker.
func Decode(r io.Reader) ([]domain.RawRecord, error) {
	var rows []keplerRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode kepler rows: %w", err)
	}

	records := make([]domain.RawRecord, 0, len(rows))
	for i, row := range rows {
		records = append(records, row.toDomain(i))
	}
	return records, nil
}

func (k keplerRow) toDomain(index int) domain.RawRecord {
	rec := domain.RawRecord{
		KOI:             value(k.KOI),
		SemiMajorAxis:   value(k.A),
		Declination:     value(k.DEC),
		StarRadius:      value(k.RSTAR),
		StarTemp:        value(k.TSTAR),
		KeplerMag:       value(k.KMAG),
		PlanetTemp:      value(k.TPLANET),
		TransitEpoch:    value(k.T0),
		TransitEpochErr: value(k.UT0),
		Period:          value(k.PER),
		RightAscension:  value(k.RA),
		PeriodErr:       value(k.UPER),
		PlanetRadius:    value(k.RPLANET),
		StarMass:        value(k.MSTAR),
		Row:             value(k.ROW),
	}

	switch {
	case k.KOI != nil:
		rec.ID = strconv.FormatFloat(*k.KOI, 'f', -1, 64)
	case k.ROW != nil:
		rec.ID = "row-" + strconv.FormatFloat(*k.ROW, 'f', -1, 64)
	default:
		rec.ID = "idx-" + strconv.Itoa(index)
	}
	return rec
}

func value(v *float64) float64 {
	if v == nil {
		return domain.Unknown()
	}
	return *v
}
