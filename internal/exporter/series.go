package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"salescli/pkg/contracts/domain"
)

// ExportAnalysis writes one CSV per aggregated series plus the metrics
// summary. The files are independent, so they are written concurrently;
// any single failure cancels the rest and fails the export.
func (w *CSVWriter) ExportAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, series := range analysis.Series {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return w.writeSeries(series)
		})
	}

	g.Go(func() error {
		return w.writeMetrics(analysis.Metrics, analysis.Stats)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("export analysis artifacts: %w", err)
	}

	slog.InfoContext(ctx, "exported analysis artifacts",
		slog.Int("series_count", len(analysis.Series)),
		slog.String("run_id", analysis.RunID))
	return nil
}

// writeSeries writes "<dimension>_revenue.csv" for one series.
func (w *CSVWriter) writeSeries(series domain.AggregatedSeries) error {
	records := make([][]string, 0, len(series.Points))
	for _, p := range series.Points {
		records = append(records, []string{p.Key, formatAmount(p.Total)})
	}

	keyHeader := "Group"
	if series.Dimension == domain.DimensionTime {
		keyHeader = "Month"
	}

	filename := fmt.Sprintf("%s_revenue.csv", series.Dimension)
	return w.WriteSimpleCSV(filename, []string{keyHeader, "Revenue"}, records)
}

// writeMetrics writes the scalar summary as metrics_summary.csv.
func (w *CSVWriter) writeMetrics(metrics domain.SalesMetrics, stats domain.CleanStats) error {
	records := [][]string{
		{"Total Orders", fmt.Sprintf("%d", metrics.OrderCount)},
		{"Total Revenue", formatAmount(metrics.TotalRevenue)},
		{"Average Order Value", formatAmount(metrics.AverageOrderValue)},
		{"Date Range", fmt.Sprintf("%s to %s",
			metrics.DateMin.Format("02-Jan-2006"),
			metrics.DateMax.Format("02-Jan-2006"))},
		{"Rows Dropped By Cleaning", fmt.Sprintf("%d", stats.DroppedRows())},
	}

	return w.WriteSimpleCSV("metrics_summary.csv", []string{"Metric", "Value"}, records)
}

// formatAmount renders a revenue figure with two fixed decimals.
// Going through decimal avoids the float formatting artifacts that
// fmt.Sprintf("%f", ...) produces for large sums.
func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
