// Package tabular loads local tabular files into rows of values ready for a
// Sheets values update. CSV files are read with encoding/csv; Excel workbooks
// are read with excelize.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadCSV reads comma-separated rows from r. Rows may have varying lengths.
func LoadCSV(r io.Reader) ([][]interface{}, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]interface{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		row := make([]interface{}, len(record))
		for i, field := range record {
			row[i] = field
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadWorkbook reads one sheet of an Excel workbook. An empty sheet name
// selects the workbook's active sheet.
func LoadWorkbook(path, sheet string) ([][]interface{}, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}

	rows := make([][]interface{}, len(cells))
	for i, record := range cells {
		row := make([]interface{}, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		rows[i] = row
	}

	return rows, nil
}

// LoadFile loads a tabular file, dispatching on its extension. The sheet
// argument only applies to workbook formats.
func LoadFile(path, sheet string) ([][]interface{}, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return LoadCSV(f)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return LoadWorkbook(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported tabular file type %q", filepath.Ext(path))
	}
}
