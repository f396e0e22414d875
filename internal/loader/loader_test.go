package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCanonicalColumn(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Amount  ", "Amount"},
		{"ship-state", "Ship-State"},
		{"SHIP-STATE", "Ship-State"},
		{"order date", "Order Date"},
		{"Fulfilment", "Fulfilment"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalColumn(tt.input))
		})
	}
}

func TestLoad_CSV(t *testing.T) {
	csvData := "order id,date, AMOUNT ,category\n171-1,04-30-22,647.62,Kurta\n405-8,04-30-22,406.00,Set\n"
	path := writeTempFile(t, "sales.csv", []byte(csvData))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Order Id", "Date", "Amount", "Category"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "647.62", table.Rows[0]["Amount"])
	assert.Equal(t, "Kurta", table.Rows[0]["Category"])
	assert.Equal(t, "Set", table.Rows[1]["Category"])
}

func TestLoad_CSVRaggedRowsPadded(t *testing.T) {
	csvData := "Amount,Date,Category\n100,2024-01-05\n50,2024-02-01,Pants,extra\n"
	path := writeTempFile(t, "ragged.csv", []byte(csvData))

	table, err := Load(path)
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Rows[0]["Category"])
	assert.Equal(t, "Pants", table.Rows[1]["Category"])
}

func TestLoad_CSVNonUTF8(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid as a standalone UTF-8 byte
	csvData := append([]byte("Amount,Date,Category\n100,2024-01-05,Caf"), 0xE9, '\n')
	path := writeTempFile(t, "latin1.csv", csvData)

	table, err := Load(path)
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Café", table.Rows[0]["Category"])
}

func TestLoad_CSVEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", nil)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoad_Workbook(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"amount", "date", "category"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"100", "2024-01-05", "Shirt"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"50", "2024-02-01", "Pants"}))

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Amount", "Date", "Category"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "100", table.Rows[0]["Amount"])
	assert.Equal(t, "Pants", table.Rows[1]["Category"])
}

func TestLoad_WorkbookSkipsEmptySheets(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Data", "A1", &[]interface{}{"Amount", "Date"}))
	require.NoError(t, f.SetSheetRow("Data", "A2", &[]interface{}{"10", "2024-01-05"}))

	path := filepath.Join(t.TempDir(), "multi.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amount", "Date"}, table.Columns)
	require.Len(t, table.Rows, 1)
}
