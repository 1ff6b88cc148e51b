package dashboard

// Chart is a render-ready chart description consumed by the browser.
type Chart struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Kind    string   `json:"kind"` // "scatter", "histogram"
	XAxis   string   `json:"xAxis"`
	YAxis   string   `json:"yAxis"`
	Series  []Series `json:"series"`
	Markers []Marker `json:"markers,omitempty"`
	Omitted int      `json:"omitted"` // points skipped for unknown coordinates
}

// Series is one legend entry of a chart.
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points,omitempty"`
	Bins   []Bin   `json:"bins,omitempty"`
}

// Point is a single scatter mark.
type Point struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size,omitempty"`
}

// Bin is a histogram bucket [Lo, Hi).
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Marker is a vertical reference line.
type Marker struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
	Dash  string  `json:"dash"`
}

// Table is one page of the raw data table.
type Table struct {
	Title     string     `json:"title"`
	Columns   []Column   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
	PageCount int        `json:"pageCount"`
	TotalRows int        `json:"totalRows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Align string `json:"align"`
}

// View is everything the page needs after an apply action.
type View struct {
	Count  int            `json:"count"`
	Counts map[string]int `json:"counts"`
	Charts []Chart        `json:"charts"`
	Table  Table          `json:"table"`
}
