package tabular

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	input := "name,count\nwidgets,3\ngadgets,7\n"

	rows, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []interface{}{"name", "count"}, rows[0])
	assert.Equal(t, []interface{}{"widgets", "3"}, rows[1])
	assert.Equal(t, []interface{}{"gadgets", "7"}, rows[2])
}

func TestLoadCSVRaggedRows(t *testing.T) {
	input := "a,b,c\nd\ne,f\n"

	rows, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 1)
	assert.Len(t, rows[2], 2)
}

func TestLoadCSVEmpty(t *testing.T) {
	rows, err := LoadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t)

	rows, err := LoadWorkbook(path, "Sheet1")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []interface{}{"name", "count"}, rows[0])
	assert.Equal(t, []interface{}{"widgets", "3"}, rows[1])
}

func TestLoadWorkbookDefaultsToActiveSheet(t *testing.T) {
	path := writeTestWorkbook(t)

	rows, err := LoadWorkbook(path, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestLoadWorkbookUnknownSheet(t *testing.T) {
	path := writeTestWorkbook(t)

	_, err := LoadWorkbook(path, "Nope")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Run("workbook", func(t *testing.T) {
		rows, err := LoadFile(writeTestWorkbook(t), "")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile("data.parquet", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported")
	})

	t.Run("missing csv", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), "")
		assert.Error(t, err)
	})
}

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "count"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "widgets"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 3))

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
