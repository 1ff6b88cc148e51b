package dashboard

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/features"
)

func planets(t *testing.T) []domain.Planet {
	t.Helper()
	raw := []domain.RawRecord{
		{ID: "1", StarRadius: 1, StarTemp: 5700, StarMass: 1, PlanetRadius: 1, PlanetTemp: 300, Period: 365, SemiMajorAxis: 1, RightAscension: 290, Declination: 44},
		{ID: "2", StarRadius: 0.5, StarTemp: 4000, StarMass: 0.6, PlanetRadius: 3, PlanetTemp: 450, Period: 10, SemiMajorAxis: 0.1, RightAscension: 291, Declination: 45},
		{ID: "3", StarRadius: 0, StarTemp: 6000, StarMass: 1.2, PlanetRadius: 0.4, PlanetTemp: 300, Period: 20, SemiMajorAxis: 0.2, RightAscension: math.NaN(), Declination: 46},
		{ID: "4", StarRadius: 2, StarTemp: 6500, StarMass: 1.4, PlanetRadius: 1.5, PlanetTemp: 150, Period: 30, SemiMajorAxis: 4, RightAscension: 292, Declination: 47},
	}
	return features.Augment(raw)
}

func chartByID(t *testing.T, v View, id string) Chart {
	t.Helper()
	for _, c := range v.Charts {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("chart %s not found", id)
	return Chart{}
}

func TestBuildCounts(t *testing.T) {
	t.Parallel()

	v := NewBuilder(40, 10).Build(planets(t), 1)
	if v.Count != 4 {
		t.Fatalf("count: got %d", v.Count)
	}
	// 1: optimal/optimal, 2: high/high, 3: optimal/low, 4: low/optimal
	if v.Counts["Promising"] != 1 || v.Counts["Challenging"] != 2 || v.Counts["Extreme"] != 1 {
		t.Fatalf("unexpected counts: %v", v.Counts)
	}
	if len(v.Charts) != 4 {
		t.Fatalf("expected 4 charts, got %d", len(v.Charts))
	}
}

func TestScatterSkipsUnknownCoordinates(t *testing.T) {
	t.Parallel()

	v := NewBuilder(40, 10).Build(planets(t), 1)
	celestial := chartByID(t, v, "celestial")
	if celestial.Omitted != 1 {
		t.Fatalf("expected one omitted point, got %d", celestial.Omitted)
	}
	total := 0
	for _, s := range celestial.Series {
		total += len(s.Points)
		if s.Color != StatusColors[mustStatus(t, s.Name)] {
			t.Fatalf("series %s has color %s", s.Name, s.Color)
		}
	}
	if total != 3 {
		t.Fatalf("expected 3 plotted points, got %d", total)
	}

	dist := chartByID(t, v, "dist-temp")
	names := map[string]bool{}
	for _, s := range dist.Series {
		names[s.Name] = true
	}
	if !names["Similar"] || !names["Small"] || !names["Bigger"] || !names["Unknown"] {
		t.Fatalf("unexpected star size series: %v", names)
	}
}

func mustStatus(t *testing.T, label string) domain.Status {
	t.Helper()
	s, err := domain.ParseStatus(label)
	if err != nil {
		t.Fatalf("parse status: %v", err)
	}
	return s
}

func TestRelativeDistanceHistogram(t *testing.T) {
	t.Parallel()

	v := NewBuilder(40, 4).Build(planets(t), 1)
	hist := chartByID(t, v, "relative-distance")

	if hist.Omitted != 1 {
		t.Fatalf("zero star radius should be omitted, got %d", hist.Omitted)
	}
	if len(hist.Markers) != 1 || hist.Markers[0].X != 1 || hist.Markers[0].Label != "Earth" {
		t.Fatalf("unexpected markers: %+v", hist.Markers)
	}

	total := 0
	for _, s := range hist.Series {
		if len(s.Bins) != 4 {
			t.Fatalf("series %s has %d bins", s.Name, len(s.Bins))
		}
		for _, b := range s.Bins {
			total += b.Count
		}
	}
	if total != 3 {
		t.Fatalf("expected 3 binned values, got %d", total)
	}
}

func TestHistogramSingleValue(t *testing.T) {
	t.Parallel()

	one := planets(t)[:1]
	hist := chartByID(t, NewBuilder(40, 30).Build(one, 1), "relative-distance")
	if len(hist.Series) != 1 || len(hist.Series[0].Bins) != 1 || hist.Series[0].Bins[0].Count != 1 {
		t.Fatalf("unexpected single-value histogram: %+v", hist.Series)
	}
}

func TestTablePaging(t *testing.T) {
	t.Parallel()

	var many []domain.Planet
	for i := 0; i < 95; i++ {
		p := planets(t)[0]
		p.ID = strconv.Itoa(i)
		p.KOI = float64(i)
		many = append(many, p)
	}

	b := NewBuilder(40, 30)
	first := b.Build(many, 1).Table
	if first.PageCount != 3 || len(first.Rows) != 40 || first.TotalRows != 95 {
		t.Fatalf("unexpected first page: count=%d rows=%d total=%d", first.PageCount, len(first.Rows), first.TotalRows)
	}
	if len(first.Columns) != len(Fields) || first.Columns[0].Key != "KOI" {
		t.Fatalf("unexpected columns: %+v", first.Columns)
	}

	last := b.Build(many, 99).Table
	if last.Page != 3 || len(last.Rows) != 15 {
		t.Fatalf("page should clamp to last: page=%d rows=%d", last.Page, len(last.Rows))
	}
	if last.Rows[0][0] != "80" {
		t.Fatalf("unexpected first KOI on last page: %s", last.Rows[0][0])
	}

	empty := b.Build(nil, 1).Table
	if empty.PageCount != 1 || len(empty.Rows) != 0 {
		t.Fatalf("unexpected empty table: %+v", empty)
	}
}

func TestTableRendersUnknownAsEmpty(t *testing.T) {
	t.Parallel()

	v := NewBuilder(40, 30).Build(planets(t), 1)
	// record 3 has an unknown RA, column 10
	if got := v.Table.Rows[2][10]; got != "" {
		t.Fatalf("expected empty RA cell, got %q", got)
	}
}

func TestViewMarshalsToJSON(t *testing.T) {
	t.Parallel()

	if _, err := json.Marshal(NewBuilder(40, 30).Build(planets(t), 1)); err != nil {
		t.Fatalf("view must be JSON encodable: %v", err)
	}
}
