package report

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

func reportConfig() config.ReportConfig {
	return config.ReportConfig{
		Title:      "Amazon Sales Performance Analysis Report",
		PreparedBy: "Sales Analytics",
		Currency:   "INR",
		TopN:       10,
	}
}

func fullAnalysis() *domain.Analysis {
	return &domain.Analysis{
		RunID: "run-7",
		Metrics: domain.SalesMetrics{
			OrderCount:        3,
			TotalRevenue:      225,
			AverageOrderValue: 75,
			DateMin:           time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			DateMax:           time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC),
		},
		Series: []domain.AggregatedSeries{
			{Dimension: domain.DimensionTime, Points: []domain.SeriesPoint{
				{Key: "2024-01", Total: 100},
				{Key: "2024-02", Total: 125},
			}},
			{Dimension: domain.DimensionCategory, Points: []domain.SeriesPoint{
				{Key: "Shirt", Total: 175},
				{Key: "Pants", Total: 50},
			}},
			{Dimension: domain.DimensionFulfillment, Points: []domain.SeriesPoint{
				{Key: "FBA", Total: 150},
				{Key: "Merchant", Total: 75},
			}},
			{Dimension: domain.DimensionRegion, Points: []domain.SeriesPoint{
				{Key: "MAHARASHTRA", Total: 225},
			}},
		},
	}
}

func buildWorkbook(t *testing.T, analysis *domain.Analysis) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	builder := NewBuilder(slog.Default(), reportConfig())
	require.NoError(t, builder.Build(context.Background(), analysis, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestBuilder_Build_AllSections(t *testing.T) {
	f := buildWorkbook(t, fullAnalysis())

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{
		"Cover", "Metrics", "MonthlyTrend", "TopCategories", "Fulfillment", "TopStates", "Insights",
	}, sheets)
	assert.NotContains(t, sheets, "Sheet1")
}

func TestBuilder_Build_Cover(t *testing.T) {
	f := buildWorkbook(t, fullAnalysis())

	title, err := f.GetCellValue("Cover", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Amazon Sales Performance Analysis Report", title)

	runID, err := f.GetCellValue("Cover", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Run ID: run-7", runID)

	summary, err := f.GetCellValue("Cover", "A11")
	require.NoError(t, err)
	assert.Contains(t, summary, "05 Jan 2024")
	assert.Contains(t, summary, "11 Feb 2024")
}

func TestBuilder_Build_MetricsTable(t *testing.T) {
	f := buildWorkbook(t, fullAnalysis())

	rows, err := f.GetRows("Metrics")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)

	assert.Equal(t, []string{"Metric", "Value"}, rows[0][:2])
	assert.Equal(t, "Total Orders", rows[1][0])
	assert.Equal(t, "3", rows[1][1])
	assert.Equal(t, "Total Revenue (INR)", rows[2][0])
	assert.Equal(t, "225.00", rows[2][1])
	assert.Equal(t, "Average Order Value (INR)", rows[3][0])
	assert.Equal(t, "75.00", rows[3][1])
	assert.Equal(t, "05-Jan-2024 to 11-Feb-2024", rows[4][1])
}

func TestBuilder_Build_SeriesData(t *testing.T) {
	f := buildWorkbook(t, fullAnalysis())

	rows, err := f.GetRows("TopCategories")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "Shirt", rows[1][0])
	assert.Equal(t, "175", rows[1][1])
	assert.Equal(t, "Pants", rows[2][0])
}

func TestBuilder_Build_OmitsSkippedDimensions(t *testing.T) {
	analysis := fullAnalysis()
	// drop region series, as a run without a state column would
	analysis.Series = analysis.Series[:3]

	f := buildWorkbook(t, analysis)

	assert.NotContains(t, f.GetSheetList(), "TopStates")
	assert.Contains(t, f.GetSheetList(), "Fulfillment")
}

func TestBuilder_Build_EmptySeriesGetsNoChart(t *testing.T) {
	analysis := fullAnalysis()
	analysis.Series = []domain.AggregatedSeries{
		{Dimension: domain.DimensionTime, Points: nil},
	}

	f := buildWorkbook(t, analysis)

	rows, err := f.GetRows("MonthlyTrend")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Group", rows[0][0])
}

func TestExecutiveSummary(t *testing.T) {
	summary := executiveSummary(domain.SalesMetrics{
		DateMin: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		DateMax: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, summary, "from 05 Jan 2024 to 01 Feb 2024")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1234.50", formatCurrency(1234.5))
	assert.Equal(t, "75.00", formatCurrency(75))
}
