package dataprocessing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// dateLayouts are the date formats seen across Amazon sales exports.
// The first layout that parses wins.
var dateLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"01-02-2006",
	"01/02/06",
	"01/02/2006",
	"02-Jan-06",
	"2006-01-02 15:04:05",
}

// Clean filters the table down to the rows that can be analyzed: a
// parseable positive amount and a parseable date under the resolved
// roles. Rows are only ever removed, never reordered, so downstream
// results are deterministic. The returned stats account for every
// dropped row; individual drops are not reported.
//
// Amount and Date roles are mandatory here. If either is unresolved the
// whole run cannot proceed and Clean fails with errors.ErrMissingRole.
func Clean(table domain.Table, roles domain.ColumnRoles) ([]domain.CleanRecord, domain.CleanStats, error) {
	stats := domain.CleanStats{InputRows: len(table.Rows)}

	if roles.Amount == "" {
		return nil, stats, errors.NewMissingRoleError("amount")
	}
	if roles.Date == "" {
		return nil, stats, errors.NewMissingRoleError("date")
	}

	records := make([]domain.CleanRecord, 0, len(table.Rows))

	for _, row := range table.Rows {
		amountCell := strings.TrimSpace(row[roles.Amount])
		if amountCell == "" {
			stats.MissingAmount++
			continue
		}

		amount, ok := parseAmount(amountCell)
		if !ok {
			stats.UnparseableAmount++
			continue
		}

		dateCell := strings.TrimSpace(row[roles.Date])
		if dateCell == "" {
			stats.MissingDate++
			continue
		}

		date, ok := parseDate(dateCell)
		if !ok {
			stats.UnparseableDate++
			continue
		}

		if amount <= 0 {
			stats.NonPositiveAmount++
			continue
		}

		records = append(records, domain.CleanRecord{
			Amount: amount,
			Date:   date,
			Values: row,
		})
	}

	stats.CleanRows = len(records)
	return records, stats, nil
}

// parseAmount coerces a cell to a finite number. Thousands separators
// and a leading currency marker are tolerated, matching the loose
// formatting of real exports.
func parseAmount(cell string) (float64, bool) {
	s := strings.ReplaceAll(cell, ",", "")
	s = strings.TrimSpace(strings.TrimLeft(s, "₹$€£"))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseDate coerces a cell to a calendar date.
func parseDate(cell string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
