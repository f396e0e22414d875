package dataprocessing

import (
	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ComputeMetrics derives the scalar summary statistics from the cleaned
// rows. Revenue is summed in input order. A dataset with zero clean
// rows has no defined average order value, so it fails with
// errors.ErrEmptyDataset instead of returning NaN or zero; the caller
// must be able to tell an empty report apart from a broken input.
func ComputeMetrics(records []domain.CleanRecord) (domain.SalesMetrics, error) {
	if len(records) == 0 {
		return domain.SalesMetrics{}, errors.NewEmptyDatasetError(
			"cannot compute average order value over zero orders")
	}

	metrics := domain.SalesMetrics{
		OrderCount: len(records),
		DateMin:    records[0].Date,
		DateMax:    records[0].Date,
	}

	for _, r := range records {
		metrics.TotalRevenue += r.Amount
		if r.Date.Before(metrics.DateMin) {
			metrics.DateMin = r.Date
		}
		if r.Date.After(metrics.DateMax) {
			metrics.DateMax = r.Date
		}
	}

	metrics.AverageOrderValue = metrics.TotalRevenue / float64(metrics.OrderCount)
	return metrics, nil
}
