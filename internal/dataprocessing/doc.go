// Package dataprocessing implements the sales analysis pipeline that
// turns a raw tabular sales export into summary metrics and grouped
// revenue series.
//
// # Architecture
//
// The package is organized into four stages plus an orchestrator:
//
//  1. Resolver: maps semantic roles (amount, date, category, fulfillment,
//     region) to concrete column names by header substring matching
//  2. Cleaner: coerces amounts and dates, dropping rows that fail
//  3. Metrics: scalar summary statistics over the cleaned rows
//  4. Aggregator: grouped revenue sums along four dimensions
//
// The Pipeline type runs the stages in order and bundles their outputs
// into a domain.Analysis for the report and exporter layers.
//
// # Data Flow
//
//	Table → ResolveColumns → Clean → {ComputeMetrics, Aggregate} → Analysis
//
// Every stage is a pure function of its inputs: nothing performs I/O,
// and no stage mutates a value after handing it downstream. A run is
// strictly single-threaded.
//
// # Error Handling
//
// Row-level coercion failures are absorbed by the Cleaner and only show
// up in CleanStats. Two conditions are fatal and abort the run: a
// missing amount or date column (errors.ErrMissingRole) and a dataset
// that cleans down to zero rows when metrics are requested
// (errors.ErrEmptyDataset). An optional dimension without a matching
// column is skipped, not an error.
package dataprocessing
