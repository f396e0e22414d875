package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"salescli/pkg/contracts/domain"
)

// Pipeline runs the analysis stages in order over one loaded table.
// It is the single entry point the CLI uses; each stage stays
// independently callable for tests.
type Pipeline struct {
	logger *slog.Logger
	config PipelineConfig
}

// PipelineConfig holds configuration options for a pipeline run.
type PipelineConfig struct {
	TopN  int    // Group count kept per ranked dimension
	RunID string // Externally assigned run ID; empty generates one
}

// DefaultPipelineConfig returns the configuration for a typical run.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{TopN: 10}
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(logger *slog.Logger, config PipelineConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if config.TopN <= 0 {
		config.TopN = 10
	}
	return &Pipeline{logger: logger, config: config}
}

// Run executes resolution, cleaning, metrics and aggregation over the
// table and bundles the results. The table is not modified. Failures
// from the mandatory stages abort the run; there is no partial result.
func (p *Pipeline) Run(ctx context.Context, table domain.Table) (*domain.Analysis, error) {
	runID := p.config.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	p.logger.InfoContext(ctx, "starting sales analysis",
		slog.String("run_id", runID),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)))

	roles := ResolveColumns(table.Columns)
	p.logger.InfoContext(ctx, "resolved column roles",
		slog.String("amount", roles.Amount),
		slog.String("date", roles.Date),
		slog.String("category", roles.Category),
		slog.String("fulfillment", roles.Fulfillment),
		slog.String("region", roles.Region))

	records, stats, err := Clean(table, roles)
	if err != nil {
		p.logger.ErrorContext(ctx, "cleaning failed", slog.String("error", err.Error()))
		return nil, err
	}
	p.logger.InfoContext(ctx, "cleaned sales records",
		slog.Int("input_rows", stats.InputRows),
		slog.Int("clean_rows", stats.CleanRows),
		slog.Int("dropped_rows", stats.DroppedRows()),
		slog.Int("missing_amount", stats.MissingAmount),
		slog.Int("unparseable_amount", stats.UnparseableAmount),
		slog.Int("missing_date", stats.MissingDate),
		slog.Int("unparseable_date", stats.UnparseableDate),
		slog.Int("non_positive_amount", stats.NonPositiveAmount))

	metrics, err := ComputeMetrics(records)
	if err != nil {
		p.logger.ErrorContext(ctx, "metrics computation failed", slog.String("error", err.Error()))
		return nil, err
	}

	series := Aggregate(records, roles, p.config.TopN)

	p.logger.InfoContext(ctx, "sales analysis complete",
		slog.Int("order_count", metrics.OrderCount),
		slog.Float64("total_revenue", metrics.TotalRevenue),
		slog.Int("series_count", len(series)))

	return &domain.Analysis{
		RunID:   runID,
		Roles:   roles,
		Records: records,
		Stats:   stats,
		Metrics: metrics,
		Series:  series,
	}, nil
}
