package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
	"github.com/xuri/excelize/v2"
)

// OOXMLReader reads cell values straight from the SpreadsheetML parts of an
// .xlsx package. It is the fallback for workbooks the primary readers reject.
// Rows without any non-empty cell are dropped and the first remaining row
// becomes the header.
type OOXMLReader struct{}

// Name implements Reader.
func (OOXMLReader) Name() string { return "ooxml" }

// sheetRef is a <sheet> entry of xl/workbook.xml.
type sheetRef struct {
	name string
	rID  string
}

type xlsxText struct {
	T string `xml:"t"`
	R []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (t xlsxText) String() string {
	if len(t.R) == 0 {
		return t.T
	}
	var b strings.Builder
	b.WriteString(t.T)
	for _, run := range t.R {
		b.WriteString(run.T)
	}
	return b.String()
}

type xlsxCell struct {
	Ref    string    `xml:"r,attr"`
	Type   string    `xml:"t,attr"`
	V      string    `xml:"v"`
	Inline *xlsxText `xml:"is"`
}

type xlsxRow struct {
	Cells []xlsxCell `xml:"c"`
}

// Read implements Reader.
func (OOXMLReader) Read(xlsxPath string) ([]models.Sheet, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	workbookXML, err := readZipFile(&r.Reader, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return nil, errors.New("missing xl/workbook.xml")
	}
	refs := parseWorkbookSheets(workbookXML)

	relsXML, err := readZipFile(&r.Reader, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}
	targets := parseWorkbookRels(relsXML)

	sstXML, err := readZipFile(&r.Reader, "xl/sharedStrings.xml")
	if err != nil {
		return nil, err
	}
	shared := parseSharedStrings(sstXML)

	var sheets []models.Sheet
	for _, ref := range refs {
		target, ok := targets[ref.rID]
		if !ok {
			continue
		}
		data, err := readZipFile(&r.Reader, target)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", ref.name, err)
		}
		if data == nil {
			return nil, fmt.Errorf("sheet %q: missing part %s", ref.name, target)
		}
		rows, err := parseWorksheet(data, shared)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", ref.name, err)
		}
		sheets = append(sheets, models.NewSheet(ref.name, rows))
	}

	return sheets, nil
}

// parseWorkbookSheets returns the sheets of workbook.xml in workbook order.
func parseWorkbookSheets(data []byte) []sheetRef {
	var result []sheetRef
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var ref sheetRef
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					ref.name = attr.Value
				case "id":
					ref.rID = attr.Value
				}
			}
			if ref.name != "" && ref.rID != "" {
				result = append(result, ref)
			}
		}
	}

	return result
}

// parseWorkbookRels maps worksheet relationship ids to part names.
func parseWorkbookRels(data []byte) map[string]string {
	result := make(map[string]string) // rId -> part name
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && strings.Contains(strings.ToLower(target), "worksheet") {
				result[rID] = resolveTarget(target)
			}
		}
	}

	return result
}

// parseSharedStrings returns the shared string table in index order.
func parseSharedStrings(data []byte) []string {
	if data == nil {
		return nil
	}
	var result []string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			var si xlsxText
			if err := decoder.DecodeElement(&si, &se); err != nil {
				break
			}
			result = append(result, si.String())
		}
	}

	return result
}

// parseWorksheet returns the non-empty rows of a worksheet part.
func parseWorksheet(data []byte, shared []string) ([][]string, error) {
	var rows [][]string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "row" {
			continue
		}
		var row xlsxRow
		if err := decoder.DecodeElement(&row, &se); err != nil {
			return nil, err
		}
		if values := rowValues(row, shared); !isEmptyRow(values) {
			rows = append(rows, values)
		}
	}

	return rows, nil
}

func rowValues(row xlsxRow, shared []string) []string {
	var values []string
	next := 0
	for _, c := range row.Cells {
		col := next
		if c.Ref != "" {
			if x, _, err := excelize.CellNameToCoordinates(c.Ref); err == nil {
				col = x - 1
			}
		}
		for len(values) <= col {
			values = append(values, "")
		}
		values[col] = cellText(c, shared)
		next = col + 1
	}
	return values
}

func cellText(c xlsxCell, shared []string) string {
	switch c.Type {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(c.V))
		if err != nil || idx < 0 || idx >= len(shared) {
			return ""
		}
		return shared[idx]
	case "inlineStr":
		if c.Inline == nil {
			return ""
		}
		return c.Inline.String()
	case "b":
		return Stringify(c.V == "1")
	case "str", "e":
		return c.V
	default:
		return Stringify(parseValue(c.V))
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveTarget turns a workbook relationship target into a part name.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join("xl", target)
}
