package dataprocessing

import (
	"errors"
	"sort"
	"strings"
	"time"

	"salescli/pkg/contracts/domain"
)

// ErrDimensionUnavailable signals that a dimension's source column was
// not found in the input, so no series can (or should) be produced for
// it. The run carries on without that dimension.
var ErrDimensionUnavailable = errors.New("dimension column not resolved")

// monthKeyFormat renders a month group key, e.g. "2024-01".
const monthKeyFormat = "2006-01"

// AggregateDimension groups the cleaned rows along one dimension and
// sums revenue per group.
//
// For category, fulfillment and region the groups are sorted by revenue
// descending (ties keep first-seen order) and truncated to topN. The
// time dimension instead groups by calendar month, sorted
// chronologically and untruncated: a trend needs every month, not just
// the top-grossing ones.
//
// Zero input rows yield an empty series, not an error. An empty chart
// is valid; an undefined average is not.
func AggregateDimension(records []domain.CleanRecord, roles domain.ColumnRoles, dim domain.Dimension, topN int) (domain.AggregatedSeries, error) {
	if dim == domain.DimensionTime {
		return aggregateByMonth(records), nil
	}

	var column string
	switch dim {
	case domain.DimensionCategory:
		column = roles.Category
	case domain.DimensionFulfillment:
		column = roles.Fulfillment
	case domain.DimensionRegion:
		column = roles.Region
	}
	if column == "" {
		return domain.AggregatedSeries{}, ErrDimensionUnavailable
	}

	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, r := range records {
		key := strings.TrimSpace(r.Values[column])
		if key == "" {
			// no group label, nothing to attribute the revenue to
			continue
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += r.Amount
	}

	points := make([]domain.SeriesPoint, 0, len(order))
	for _, key := range order {
		points = append(points, domain.SeriesPoint{Key: key, Total: totals[key]})
	}

	// Stable sort keeps first-seen order among equal totals
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Total > points[j].Total
	})

	if topN > 0 && len(points) > topN {
		points = points[:topN]
	}

	return domain.AggregatedSeries{Dimension: dim, Points: points}, nil
}

// aggregateByMonth builds the chronological monthly revenue series.
// The group key is the date truncated to the first day of its month.
func aggregateByMonth(records []domain.CleanRecord) domain.AggregatedSeries {
	totals := make(map[time.Time]float64)

	for _, r := range records {
		month := time.Date(r.Date.Year(), r.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[month] += r.Amount
	}

	months := make([]time.Time, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	points := make([]domain.SeriesPoint, 0, len(months))
	for _, m := range months {
		points = append(points, domain.SeriesPoint{
			Key:   m.Format(monthKeyFormat),
			Total: totals[m],
		})
	}

	return domain.AggregatedSeries{Dimension: domain.DimensionTime, Points: points}
}

// Aggregate produces every available series in presentation order:
// time first, then category, fulfillment and region. Dimensions whose
// column was not resolved are skipped entirely rather than defaulted
// to an empty series.
func Aggregate(records []domain.CleanRecord, roles domain.ColumnRoles, topN int) []domain.AggregatedSeries {
	dims := []domain.Dimension{
		domain.DimensionTime,
		domain.DimensionCategory,
		domain.DimensionFulfillment,
		domain.DimensionRegion,
	}

	series := make([]domain.AggregatedSeries, 0, len(dims))
	for _, dim := range dims {
		s, err := AggregateDimension(records, roles, dim, topN)
		if err != nil {
			continue
		}
		series = append(series, s)
	}
	return series
}
