package domain

import (
	"time"
)

// RawRecord represents a single row of the source sales export as read
// from the file, keyed by column name. Cell values are untyped text.
type RawRecord map[string]string

// Table represents the loaded sales export: the header columns in their
// original file order plus every data row. A Table is built once by the
// loader and never mutated afterwards; map iteration order does not
// preserve source order, so the column order travels in Columns.
type Table struct {
	Columns []string    `json:"columns"`
	Rows    []RawRecord `json:"rows"`
}

// ColumnRoles maps the semantic roles of the analysis to concrete column
// names discovered in the source table. An empty string means no column
// matched that role; Amount and Date are mandatory for cleaning, the
// rest only gate their own aggregation dimension.
type ColumnRoles struct {
	Amount      string `json:"amount,omitempty"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category,omitempty"`
	Fulfillment string `json:"fulfillment,omitempty"`
	Region      string `json:"region,omitempty"`
}

// CleanRecord is a row that survived cleaning: the amount parsed to a
// finite positive number and the date parsed to a valid calendar date.
// Values keeps the original cells so dimension columns remain readable.
type CleanRecord struct {
	Amount float64   `json:"amount" validate:"required,gt=0"`
	Date   time.Time `json:"date" validate:"required"`
	Values RawRecord `json:"values"`
}

// SalesMetrics represents the scalar summary statistics of one run.
type SalesMetrics struct {
	OrderCount        int       `json:"order_count" validate:"min=1"`
	TotalRevenue      float64   `json:"total_revenue"`
	AverageOrderValue float64   `json:"average_order_value"`
	DateMin           time.Time `json:"date_min"`
	DateMax           time.Time `json:"date_max"`
}

// Dimension identifies one independent grouping axis for revenue.
type Dimension string

const (
	DimensionTime        Dimension = "time"
	DimensionCategory    Dimension = "category"
	DimensionFulfillment Dimension = "fulfillment"
	DimensionRegion      Dimension = "region"
)

// Title returns the human-readable chart/section title for the dimension.
func (d Dimension) Title() string {
	switch d {
	case DimensionTime:
		return "Monthly Revenue Trend"
	case DimensionCategory:
		return "Top 10 Product Categories"
	case DimensionFulfillment:
		return "Fulfillment Method Distribution"
	case DimensionRegion:
		return "Top 10 States by Revenue"
	default:
		return string(d)
	}
}

// SeriesPoint is one (group label, summed revenue) pair of a series.
type SeriesPoint struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// AggregatedSeries is the ordered grouped-revenue output for one
// dimension. Non-time dimensions are sorted by total descending (ties by
// first appearance in the cleaned data) and truncated to the top ten;
// the time dimension is every calendar month in chronological order.
type AggregatedSeries struct {
	Dimension Dimension     `json:"dimension"`
	Points    []SeriesPoint `json:"points"`
}

// CleanStats records how many rows each cleaning step removed. The
// dropped rows never surface individually; these counts are the audit
// trail for the difference between input rows and OrderCount.
type CleanStats struct {
	InputRows          int `json:"input_rows"`
	MissingAmount      int `json:"missing_amount"`
	UnparseableAmount  int `json:"unparseable_amount"`
	MissingDate        int `json:"missing_date"`
	UnparseableDate    int `json:"unparseable_date"`
	NonPositiveAmount  int `json:"non_positive_amount"`
	CleanRows          int `json:"clean_rows"`
}

// DroppedRows returns the total number of rows removed by cleaning.
func (s CleanStats) DroppedRows() int {
	return s.InputRows - s.CleanRows
}

// Analysis bundles everything one pipeline run derives from a table.
// It is handed to the report and exporter layers read-only.
type Analysis struct {
	RunID   string             `json:"run_id"`
	Roles   ColumnRoles        `json:"roles"`
	Records []CleanRecord      `json:"-"`
	Stats   CleanStats         `json:"stats"`
	Metrics SalesMetrics       `json:"metrics"`
	Series  []AggregatedSeries `json:"series"`
}

// SeriesFor returns the series for the given dimension, or false when
// the dimension was skipped because its column was absent.
func (a *Analysis) SeriesFor(d Dimension) (AggregatedSeries, bool) {
	for _, s := range a.Series {
		if s.Dimension == d {
			return s, true
		}
	}
	return AggregatedSeries{}, false
}
