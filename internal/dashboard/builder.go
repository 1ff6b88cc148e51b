// Package dashboard turns filtered planets into chart and table payloads.
// Unknown values are handled here: scatter points with an unknown coordinate
// are skipped and counted, table cells render empty.
package dashboard

import (
	"math"
	"strconv"

	"PlanetDashboard/internal/dataset"
	"PlanetDashboard/internal/domain"
)

// StatusColors maps each status to its chart color.
var StatusColors = map[domain.Status]string{
	domain.StatusPromising:   "#334252",
	domain.StatusChallenging: "#0000A1",
	domain.StatusExtreme:     "#C00000",
}

var starSizeColors = map[domain.StarSize]string{
	domain.StarSizeSmall:   "#4F46E5",
	domain.StarSizeSimilar: "#10B981",
	domain.StarSizeBigger:  "#F59E0B",
	domain.StarSizeUnknown: "#9CA3AF",
}

// Builder produces dashboard views.
type Builder struct {
	pageSize int
	bins     int
}

// NewBuilder sets the table page size and histogram bin count; non-positive
// values fall back to 40 and 30.
func NewBuilder(pageSize, bins int) *Builder {
	if pageSize <= 0 {
		pageSize = 40
	}
	if bins <= 0 {
		bins = 30
	}
	return &Builder{pageSize: pageSize, bins: bins}
}

// Build renders every chart and the requested 1-based table page.
func (b *Builder) Build(planets []domain.Planet, page int) View {
	counts := make(map[string]int, len(domain.Statuses))
	for status, n := range dataset.StatusCounts(planets) {
		counts[status.String()] = n
	}

	return View{
		Count:  len(planets),
		Counts: counts,
		Charts: []Chart{
			distanceTemperatureChart(planets),
			celestialChart(planets),
			b.relativeDistanceChart(planets),
			starMassChart(planets),
		},
		Table: b.table(planets, page),
	}
}

func distanceTemperatureChart(planets []domain.Planet) Chart {
	chart := Chart{
		ID:    "dist-temp",
		Title: "Planet radius ~ distance from the star",
		Kind:  "scatter",
		XAxis: "RPLANET",
		YAxis: "A",
	}

	order := append([]domain.StarSize{}, domain.StarSizes...)
	order = append(order, domain.StarSizeUnknown)
	groups := make(map[domain.StarSize][]Point)
	for _, p := range planets {
		pt, ok := point(p.ID, p.PlanetRadius, p.SemiMajorAxis, 0)
		if !ok {
			chart.Omitted++
			continue
		}
		groups[p.StarSize] = append(groups[p.StarSize], pt)
	}

	for _, size := range order {
		if pts := groups[size]; len(pts) > 0 {
			chart.Series = append(chart.Series, Series{Name: size.String(), Color: starSizeColors[size], Points: pts})
		}
	}
	return chart
}

func celestialChart(planets []domain.Planet) Chart {
	chart := Chart{
		ID:    "celestial",
		Title: "Position on the celestial sphere",
		Kind:  "scatter",
		XAxis: "RA",
		YAxis: "DEC",
	}
	chart.Series, chart.Omitted = statusScatter(planets, func(p domain.Planet) (float64, float64) {
		return p.RightAscension, p.Declination
	})
	return chart
}

func starMassChart(planets []domain.Planet) Chart {
	chart := Chart{
		ID:    "star-mass-temp",
		Title: "Star mass ~ star temperature",
		Kind:  "scatter",
		XAxis: "MSTAR",
		YAxis: "TSTAR",
	}
	chart.Series, chart.Omitted = statusScatter(planets, func(p domain.Planet) (float64, float64) {
		return p.StarMass, p.StarTemp
	})
	return chart
}

func statusScatter(planets []domain.Planet, xy func(domain.Planet) (float64, float64)) ([]Series, int) {
	omitted := 0
	groups := make(map[domain.Status][]Point)
	for _, p := range planets {
		x, y := xy(p)
		pt, ok := point(p.ID, x, y, p.PlanetRadius)
		if !ok {
			omitted++
			continue
		}
		groups[p.Status] = append(groups[p.Status], pt)
	}

	var series []Series
	for _, status := range domain.Statuses {
		if pts := groups[status]; len(pts) > 0 {
			series = append(series, Series{Name: status.String(), Color: StatusColors[status], Points: pts})
		}
	}
	return series, omitted
}

func (b *Builder) relativeDistanceChart(planets []domain.Planet) Chart {
	chart := Chart{
		ID:      "relative-distance",
		Title:   "Relative distance",
		Kind:    "histogram",
		XAxis:   "Relative distance (A / RSTAR)",
		YAxis:   "count",
		Markers: []Marker{{X: 1, Label: "Earth", Dash: "dot"}},
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range planets {
		if !p.HasRelativeDistance() {
			chart.Omitted++
			continue
		}
		lo = math.Min(lo, p.RelativeDistance)
		hi = math.Max(hi, p.RelativeDistance)
	}
	if lo > hi {
		return chart
	}

	n := b.bins
	if lo == hi {
		n = 1
	}
	width := (hi - lo) / float64(n)

	counts := make(map[domain.Status][]int)
	for _, p := range planets {
		if !p.HasRelativeDistance() {
			continue
		}
		if counts[p.Status] == nil {
			counts[p.Status] = make([]int, n)
		}
		idx := n - 1
		if width > 0 {
			idx = min(int((p.RelativeDistance-lo)/width), n-1)
		}
		counts[p.Status][idx]++
	}

	for _, status := range domain.Statuses {
		c := counts[status]
		if c == nil {
			continue
		}
		bins := make([]Bin, n)
		for i := range bins {
			bins[i] = Bin{Lo: lo + float64(i)*width, Hi: lo + float64(i+1)*width, Count: c[i]}
		}
		bins[n-1].Hi = hi
		chart.Series = append(chart.Series, Series{Name: status.String(), Color: StatusColors[status], Bins: bins})
	}
	return chart
}

func (b *Builder) table(planets []domain.Planet, page int) Table {
	pageCount := max(1, (len(planets)+b.pageSize-1)/b.pageSize)
	page = min(max(page, 1), pageCount)

	columns := make([]Column, 0, len(Fields))
	for _, f := range Fields {
		columns = append(columns, Column{Key: f.Key, Label: f.Key, Type: "number", Align: "right"})
	}

	start := min((page-1)*b.pageSize, len(planets))
	end := min(start+b.pageSize, len(planets))
	rows := make([][]string, 0, end-start)
	for _, p := range planets[start:end] {
		row := make([]string, 0, len(Fields))
		for _, f := range Fields {
			row = append(row, formatValue(f.value(p.RawRecord)))
		}
		rows = append(rows, row)
	}

	return Table{
		Title:     "Raw data",
		Columns:   columns,
		Rows:      rows,
		Page:      page,
		PageSize:  b.pageSize,
		PageCount: pageCount,
		TotalRows: len(planets),
	}
}

func point(id string, x, y, size float64) (Point, bool) {
	if !finite(x) || !finite(y) {
		return Point{}, false
	}
	if !finite(size) {
		size = 0
	}
	return Point{ID: id, X: x, Y: y, Size: size}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatValue(v float64) string {
	if !finite(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
