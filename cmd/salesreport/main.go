// Command salesreport generates a one-shot sales performance report
// from a tabular sales export: an XLSX document with metrics, charts
// and commentary, plus CSV artifacts of every aggregated series.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/exporter"
	"salescli/internal/infrastructure"
	"salescli/internal/loader"
	"salescli/internal/report"
)

func main() {
	input := flag.String("input", "", "path of the sales export to analyze (.csv or .xlsx)")
	configFile := flag.String("config", "", "optional YAML config file")
	out := flag.String("out", "", "report workbook path (defaults to a dated file in the reports directory)")
	flag.Parse()

	if *input == "" {
		slog.Error("missing required -input flag")
		flag.Usage()
		os.Exit(1)
	}

	// .env is optional; absence is not an error
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	runID := uuid.New().String()
	ctx := infrastructure.WithRunID(context.Background(), runID)

	logger.InfoContext(ctx, "starting sales report run",
		slog.String("input", *input))

	table, err := loader.Load(*input)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load input table", "error", err)
		os.Exit(1)
	}

	pipeline := dataprocessing.NewPipeline(logger, dataprocessing.PipelineConfig{
		TopN:  cfg.Report.TopN,
		RunID: runID,
	})
	analysis, err := pipeline.Run(ctx, table)
	if err != nil {
		logger.ErrorContext(ctx, "Analysis failed", "error", err)
		os.Exit(1)
	}

	if err := exporter.NewCSVWriter(paths).ExportAnalysis(ctx, analysis); err != nil {
		logger.ErrorContext(ctx, "Failed to export CSV artifacts", "error", err)
		os.Exit(1)
	}

	workbookPath := *out
	if workbookPath == "" {
		workbookPath = paths.GetWorkbookPath(analysis.Metrics.DateMax)
	}

	builder := report.NewBuilder(logger, cfg.Report)
	if err := builder.Build(ctx, analysis, workbookPath); err != nil {
		logger.ErrorContext(ctx, "Failed to build report workbook", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "sales report generated successfully",
		slog.String("workbook", workbookPath),
		slog.Int("order_count", analysis.Metrics.OrderCount),
		slog.Float64("total_revenue", analysis.Metrics.TotalRevenue),
		slog.Int("dropped_rows", analysis.Stats.DroppedRows()),
		slog.Int("series_count", len(analysis.Series)))
}
