package render

import (
	"fmt"
	"io"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

// ReportSheet is the name of the single worksheet WriteXLSX produces.
const ReportSheet = "Report"

// WriteXLSX writes r as a one-sheet workbook: title in A1, summary lines,
// then each section heading followed by its label/value tables separated by
// a blank row.
func WriteXLSX(w io.Writer, r Report) error {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, ReportSheet); err != nil {
		return err
	}
	sheet = ReportSheet

	_ = xlsx.SetColWidth(sheet, "A", "A", 32)
	_ = xlsx.SetColWidth(sheet, "B", "B", 40)

	row := 1
	_ = xlsx.SetCellValue(sheet, cell('A', row), r.Title)
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), fontSize(16)))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), style)
	row += 2

	row = xlsxHeading(xlsx, sheet, row, "Summary")
	for _, line := range r.Summary {
		_ = xlsx.SetCellValue(sheet, cell('A', row), line)
		row++
	}
	row++

	for _, sec := range r.Sections {
		row = xlsxHeading(xlsx, sheet, row, sec.Heading)
		for _, t := range sec.Tables {
			row = xlsxTable(xlsx, sheet, row, t) + 1
		}
	}

	_, err := xlsx.WriteTo(w)
	return err
}

func xlsxHeading(xlsx *excelize.File, sheet string, row int, hdr string) int {
	_ = xlsx.SetCellValue(sheet, cell('A', row), hdr)
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), fontSize(13), thinBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), style)
	return row + 1
}

// xlsxTable writes t starting at row and returns the first row after it.
func xlsxTable(xlsx *excelize.File, sheet string, row int, t Table) int {
	if len(t.Rows) == 0 {
		return row
	}
	start := row
	for _, r := range t.Rows {
		_ = xlsx.SetCellStr(sheet, cell('A', row), r.Label)
		_ = xlsx.SetCellStr(sheet, cell('B', row), r.Value)
		row++
	}

	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("left", "top", "right", "bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', start), cell('A', row-1), style)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), thinBorder("left", "top", "right", "bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('B', start), cell('B', row-1), style)
	return row
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical: "center",
		},
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func fontSize(size float64) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Size: size,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
