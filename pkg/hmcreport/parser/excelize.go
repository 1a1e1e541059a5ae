package parser

import (
	"fmt"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
	"github.com/xuri/excelize/v2"
)

// ExcelizeReader reads .xlsx/.xlsm workbooks through excelize.
type ExcelizeReader struct{}

// Name implements Reader.
func (ExcelizeReader) Name() string { return "excelize" }

// Read implements Reader. The first row of each sheet becomes the header;
// blank rows below it are kept so data row positions match the workbook.
func (ExcelizeReader) Read(path string) ([]models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []models.Sheet
	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		sheets = append(sheets, models.NewSheet(sheetName, rows))
	}

	return sheets, nil
}

// ExtractRows returns the formatted cell values of a sheet, one slice per row.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return trimTrailingEmpty(rows), nil
}

// trimTrailingEmpty drops empty rows at the end of rows.
func trimTrailingEmpty(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isEmptyRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
