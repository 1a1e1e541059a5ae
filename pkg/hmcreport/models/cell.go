package models

// CellRef addresses a cell inside a sheet's data rows.
type CellRef struct {
	// Row is the data row index (0-based, the header row excluded).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// At is shorthand for a CellRef literal.
func At(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}
