package parser

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
)

// BIFFReader reads legacy .xls (BIFF8) workbooks.
type BIFFReader struct {
	// Charset is passed to the BIFF decoder for pre-BIFF8 strings.
	// Defaults to "utf-8".
	Charset string
}

// Name implements Reader.
func (BIFFReader) Name() string { return "xls" }

// Read implements Reader. Header and blank row handling match ExcelizeReader.
func (r BIFFReader) Read(path string) (sheets []models.Sheet, err error) {
	// The decoder panics on some malformed record streams.
	defer func() {
		if p := recover(); p != nil {
			sheets, err = nil, fmt.Errorf("decode: %v", p)
		}
	}()

	charset := r.Charset
	if charset == "" {
		charset = "utf-8"
	}

	wb, closer, err := xls.OpenWithCloser(path, charset)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}

		var rows [][]string
		for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
			row := ws.Row(rowIdx)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			// LastCol is exclusive for rows declared by a ROW record and
			// inclusive for rows created implicitly by their cells. Reading
			// one column past it covers both; the extra cell is empty.
			last := row.LastCol()
			if last < 0 {
				last = 0
			}
			cells := make([]string, last+1)
			for col := row.FirstCol(); col >= 0 && col <= last; col++ {
				cells[col] = row.Col(col)
			}
			rows = append(rows, cells)
		}

		sheets = append(sheets, models.NewSheet(ws.Name, trimTrailingEmpty(rows)))
	}

	return sheets, nil
}
