// Package report assembles the final multi-section report document as
// an XLSX workbook: a cover page, a key-metrics table, one chart sheet
// per produced revenue series, and the narrative commentary.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Amazon brand palette used throughout the document.
const (
	colorOrange = "FF9900"
	colorGray   = "232F3E"
	colorBlack  = "0F1111"
)

// Builder renders a domain.Analysis into the report workbook.
type Builder struct {
	logger *slog.Logger
	config config.ReportConfig
}

// NewBuilder creates a report builder.
func NewBuilder(logger *slog.Logger, cfg config.ReportConfig) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger, config: cfg}
}

// sheetNames maps each dimension to its workbook sheet. Names carry no
// spaces so chart range references need no quoting.
var sheetNames = map[domain.Dimension]string{
	domain.DimensionTime:        "MonthlyTrend",
	domain.DimensionCategory:    "TopCategories",
	domain.DimensionFulfillment: "Fulfillment",
	domain.DimensionRegion:      "TopStates",
}

// chartTypes maps each dimension to its chart shape: a column chart
// for the monthly trend, horizontal bars for the ranked dimensions and
// a pie for the fulfillment split.
var chartTypes = map[domain.Dimension]excelize.ChartType{
	domain.DimensionTime:        excelize.Col,
	domain.DimensionCategory:    excelize.Bar,
	domain.DimensionFulfillment: excelize.Pie,
	domain.DimensionRegion:      excelize.Bar,
}

// Build writes the complete report workbook to path. Sections for
// skipped dimensions are omitted; everything else always appears.
func (b *Builder) Build(ctx context.Context, analysis *domain.Analysis, path string) error {
	b.logger.InfoContext(ctx, "building report workbook",
		slog.String("path", path),
		slog.String("run_id", analysis.RunID),
		slog.Int("series_count", len(analysis.Series)))

	f := excelize.NewFile()
	defer f.Close()

	if err := b.writeCover(f, analysis); err != nil {
		return errors.NewStorageError("failed to write cover sheet", err)
	}
	if err := b.writeMetrics(f, analysis.Metrics); err != nil {
		return errors.NewStorageError("failed to write metrics sheet", err)
	}
	for _, series := range analysis.Series {
		if err := b.writeSeriesSheet(f, series); err != nil {
			return errors.NewStorageError(
				fmt.Sprintf("failed to write %s sheet", series.Dimension), err)
		}
	}
	if err := b.writeInsights(f); err != nil {
		return errors.NewStorageError("failed to write insights sheet", err)
	}

	// Drop the default sheet and land the reader on the cover
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.NewStorageError("failed to remove default sheet", err)
	}
	index, err := f.GetSheetIndex("Cover")
	if err != nil {
		return errors.NewStorageError("failed to locate cover sheet", err)
	}
	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save report workbook", err)
	}

	b.logger.InfoContext(ctx, "report workbook written", slog.String("path", path))
	return nil
}

// writeCover renders the title page: report title, authorship, run
// date, run ID, the deliverables block and the executive summary.
func (b *Builder) writeCover(f *excelize.File, analysis *domain.Analysis) error {
	const sheet = "Cover"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 110); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 20, Color: colorOrange},
	})
	if err != nil {
		return err
	}
	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: colorBlack},
	})
	if err != nil {
		return err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	setCell := func(cell string, value interface{}, style int) error {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
		if style != 0 {
			return f.SetCellStyle(sheet, cell, cell, style)
		}
		return nil
	}

	if err := setCell("A1", b.config.Title, titleStyle); err != nil {
		return err
	}
	if err := setCell("A3", fmt.Sprintf("Prepared by %s", b.config.PreparedBy), 0); err != nil {
		return err
	}
	if err := setCell("A4", fmt.Sprintf("Date: %s", time.Now().Format("January 02, 2006")), 0); err != nil {
		return err
	}
	if err := setCell("A5", fmt.Sprintf("Run ID: %s", analysis.RunID), 0); err != nil {
		return err
	}

	if err := setCell("A7", "Deliverables", headingStyle); err != nil {
		return err
	}
	if err := setCell("A8", deliverablesText, wrapStyle); err != nil {
		return err
	}
	if err := f.SetRowHeight(sheet, 8, 110); err != nil {
		return err
	}

	if err := setCell("A10", "Executive Summary", headingStyle); err != nil {
		return err
	}
	if err := setCell("A11", executiveSummary(analysis.Metrics), wrapStyle); err != nil {
		return err
	}
	return f.SetRowHeight(sheet, 11, 90)
}

// writeMetrics renders the key metrics table.
func (b *Builder) writeMetrics(f *excelize.File, metrics domain.SalesMetrics) error {
	const sheet = "Metrics"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "B", 32); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorGray}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Metric", "Value"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Total Orders", metrics.OrderCount},
		{fmt.Sprintf("Total Revenue (%s)", b.config.Currency), formatCurrency(metrics.TotalRevenue)},
		{fmt.Sprintf("Average Order Value (%s)", b.config.Currency), formatCurrency(metrics.AverageOrderValue)},
		{"Date Range", fmt.Sprintf("%s to %s",
			metrics.DateMin.Format("02-Jan-2006"),
			metrics.DateMax.Format("02-Jan-2006"))},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// writeSeriesSheet writes one series' data columns and its chart.
func (b *Builder) writeSeriesSheet(f *excelize.File, series domain.AggregatedSeries) error {
	sheet := sheetNames[series.Dimension]
	if sheet == "" {
		return fmt.Errorf("unknown dimension %q", series.Dimension)
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Group", "Revenue"}); err != nil {
		return err
	}
	for i, p := range series.Points {
		row := []interface{}{p.Key, p.Total}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if len(series.Points) == 0 {
		// an empty chart renders as a broken object, the bare table is better
		return nil
	}

	chart := &excelize.Chart{
		Type: chartTypes[series.Dimension],
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", sheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, len(series.Points)+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, len(series.Points)+1),
		}},
		Title:  []excelize.RichTextRun{{Text: series.Dimension.Title()}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
	return f.AddChart(sheet, "D2", chart)
}

// writeInsights renders the narrative commentary section.
func (b *Builder) writeInsights(f *excelize.File) error {
	const sheet = "Insights"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 110); err != nil {
		return err
	}

	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: colorBlack},
	})
	if err != nil {
		return err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	sections := []struct {
		heading string
		body    string
		height  float64
	}{
		{"Key Insights", keyInsightsText, 80},
		{"Recommendations", recommendationsText, 80},
		{"Conclusion", conclusionText, 100},
	}

	row := 1
	for _, s := range sections {
		headingCell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(sheet, headingCell, s.heading); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, headingCell, headingCell, headingStyle); err != nil {
			return err
		}
		bodyCell := fmt.Sprintf("A%d", row+1)
		if err := f.SetCellValue(sheet, bodyCell, s.body); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, bodyCell, bodyCell, wrapStyle); err != nil {
			return err
		}
		if err := f.SetRowHeight(sheet, row+1, s.height); err != nil {
			return err
		}
		row += 3
	}
	return nil
}
