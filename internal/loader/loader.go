// Package loader reads a tabular sales export from disk into the
// in-memory Table the analysis pipeline consumes. It accepts XLSX
// workbooks and CSV files, tolerating the loose encodings real exports
// arrive in.
package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

var titleCaser = cases.Title(language.English)

// Load reads the sales export at path. Files ending in .xlsx are read
// as workbooks; everything else is treated as CSV. The first row is
// the header; header names are trimmed and title-cased so the rest of
// the pipeline sees canonical column names regardless of how the
// source file capitalizes them.
func Load(path string) (domain.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadWorkbook(path)
	}
	return loadCSV(path)
}

// loadWorkbook extracts the first non-empty sheet of an XLSX file.
func loadWorkbook(path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, errors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string
	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(sheetRows) > 0 {
			rows = sheetRows
			sheetName = name
			break
		}
	}

	if sheetName == "" {
		return domain.Table{}, errors.NewParsingError("no non-empty sheet found in workbook", nil)
	}

	slog.Info("loaded workbook sheet",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("rows", len(rows)))

	return buildTable(rows)
}

// loadCSV reads a CSV file. Input that is not valid UTF-8 is decoded
// as Windows-1252 so a stray byte never fails the whole load; every
// byte maps to some rune under that codepage.
func loadCSV(path string) (domain.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Table{}, errors.NewParsingError("failed to read input file", err)
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if !utf8.Valid(data) {
		decoded, err := io.ReadAll(charmap.Windows1252.NewDecoder().Reader(bytes.NewReader(data)))
		if err == nil {
			data = decoded
			slog.Warn("input is not valid UTF-8, decoded as Windows-1252",
				slog.String("path", path))
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Table{}, errors.NewParsingError("failed to parse CSV", err)
	}

	return buildTable(rows)
}

// buildTable turns raw sheet rows into a Table. The first row becomes
// the canonicalized header; ragged data rows are padded with empty
// cells so every record has a value for every column.
func buildTable(rows [][]string) (domain.Table, error) {
	if len(rows) == 0 {
		return domain.Table{}, errors.NewParsingError("input has no header row", nil)
	}

	columns := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		columns[i] = CanonicalColumn(h)
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(domain.RawRecord, len(columns))
		for i, col := range columns {
			if i < len(row) {
				record[col] = row[i]
			} else {
				record[col] = ""
			}
		}
		records = append(records, record)
	}

	return domain.Table{Columns: columns, Rows: records}, nil
}

// CanonicalColumn renders a header name in canonical form: trimmed of
// surrounding whitespace and title-cased, so "  ship-state " and
// "SHIP-STATE" both become "Ship-State".
func CanonicalColumn(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}
