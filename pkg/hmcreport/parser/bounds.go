package parser

import (
	"fmt"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
	"github.com/xuri/excelize/v2"
)

// CellName returns the A1 name of a data cell, assuming the header is row 1.
func CellName(ref models.CellRef) string {
	name, err := excelize.CoordinatesToCellName(ref.Col+1, ref.Row+2)
	if err != nil {
		return ""
	}
	return name
}

// ColumnName returns the letters of a 0-based column index.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}

// UsedRange returns the bounding range of the non-empty cells of a sheet,
// header included (e.g. "A1:AH40"), or "" for a sheet without data.
func UsedRange(sheet *models.Sheet) string {
	rows := make([][]string, 0, len(sheet.Rows)+1)
	rows = append(rows, sheet.Header)
	rows = append(rows, sheet.Rows...)

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
