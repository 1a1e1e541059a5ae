package models

// Sheet is the tabular view of one worksheet: a header row followed by data
// rows. Rows may have different lengths; missing trailing cells are absent.
type Sheet struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Header is the first row of the sheet.
	Header []string `json:"header,omitempty"`
	// Rows contains every row below the header.
	Rows [][]string `json:"rows,omitempty"`
}

// NewSheet splits raw rows into header and data rows.
func NewSheet(name string, rows [][]string) Sheet {
	s := Sheet{Name: name}
	if len(rows) == 0 {
		return s
	}
	s.Header = rows[0]
	s.Rows = rows[1:]
	return s
}

// Cell returns the raw value at ref. The second result is false when ref is
// outside the sheet.
func (s *Sheet) Cell(ref CellRef) (string, bool) {
	if ref.Row < 0 || ref.Row >= len(s.Rows) {
		return "", false
	}
	row := s.Rows[ref.Row]
	if ref.Col < 0 || ref.Col >= len(row) {
		return "", false
	}
	return row[ref.Col], true
}

// Width returns the length of the longest row, header included.
func (s *Sheet) Width() int {
	w := len(s.Header)
	for _, row := range s.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
