package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
	"github.com/xuri/excelize/v2"
)

func sampleInventory() models.Inventory {
	return models.Inventory{
		HMCs: []models.HMC{{
			Hostname:      models.Str("hmc1"),
			HardwareModel: models.Str("7042-CR9"),
			Gateway:       models.Str("10.0.0.1"),
			IPAddresses: []models.Interface{
				{Name: "eth0", Address: "10.0.0.5/255.255.255.0"},
			},
		}},
		Servers: []models.Server{{
			ServerName: "p9-a",
			Model:      models.Str("9009-42A"),
			Memory:     models.Str("512"),
		}},
		LPARs: []models.LPAR{{
			LPARName:    "lpar01",
			MinCPU:      models.Str("0.5"),
			PowerServer: models.Str("p9-a"),
		}},
	}
}

func TestBuild(t *testing.T) {
	r := Build(sampleInventory())

	if r.Title != Title {
		t.Errorf("Title = %q", r.Title)
	}
	wantSummary := []string{"Total HMC Systems: 1", "Total System Servers: 1", "Total LPARs: 1"}
	if strings.Join(r.Summary, "|") != strings.Join(wantSummary, "|") {
		t.Errorf("Summary = %v, want %v", r.Summary, wantSummary)
	}

	var headings []string
	for _, s := range r.Sections {
		headings = append(headings, s.Heading)
	}
	wantHeadings := "HMC Information|LPAR Information|System Server Information"
	if strings.Join(headings, "|") != wantHeadings {
		t.Errorf("section order = %v", headings)
	}

	hmc := r.Sections[0].Tables[0].Rows
	wantHMC := []Row{
		{"HOSTNAME", "hmc1"},
		{"MODEL", "7042-CR9"},
		{"GATEWAY", "10.0.0.1"},
		{"IP ADDR - ETH0", "10.0.0.5/255.255.255.0"},
	}
	if len(hmc) != len(wantHMC) {
		t.Fatalf("HMC rows = %v, want %v", hmc, wantHMC)
	}
	for i := range wantHMC {
		if hmc[i] != wantHMC[i] {
			t.Errorf("HMC row %d = %v, want %v", i, hmc[i], wantHMC[i])
		}
	}

	lpar := r.Sections[1].Tables[0].Rows
	if len(lpar) != 3 || lpar[0] != (Row{"LPAR NAME", "lpar01"}) || lpar[2] != (Row{"POWER SERVER", "p9-a"}) {
		t.Errorf("LPAR rows = %v", lpar)
	}

	server := r.Sections[2].Tables[0].Rows
	if len(server) != 3 || server[2] != (Row{"MEMORY (GB)", "512"}) {
		t.Errorf("server rows = %v", server)
	}
}

func TestBuildOmitsEmptySections(t *testing.T) {
	inv := models.Inventory{
		Servers: []models.Server{{ServerName: "s1", CPU: models.Str("8")}},
	}
	r := Build(inv)

	if len(r.Sections) != 1 || r.Sections[0].Heading != "System Server Information" {
		t.Fatalf("sections = %+v", r.Sections)
	}
	if r.Summary[0] != "Total HMC Systems: 0" {
		t.Errorf("Summary[0] = %q", r.Summary[0])
	}
}

func TestBuildEmptyInventory(t *testing.T) {
	r := Build(models.Inventory{})
	if len(r.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(r.Sections))
	}
	if len(r.Summary) != 3 {
		t.Errorf("expected 3 summary lines, got %d", len(r.Summary))
	}
}

func readZipPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader failed: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestWriteDOCX(t *testing.T) {
	r := Build(sampleInventory())
	var buf bytes.Buffer
	if err := WriteDOCX(&buf, r); err != nil {
		t.Fatalf("WriteDOCX failed: %v", err)
	}
	data := buf.Bytes()

	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/styles.xml", "word/_rels/document.xml.rels"} {
		readZipPart(t, data, part)
	}

	doc := readZipPart(t, data, "word/document.xml")
	for _, sec := range r.Sections {
		for _, tbl := range sec.Tables {
			for _, row := range tbl.Rows {
				if !strings.Contains(doc, ">"+row.Label+"<") {
					t.Errorf("document.xml is missing label %q", row.Label)
				}
				if !strings.Contains(doc, ">"+row.Value+"<") {
					t.Errorf("document.xml is missing value %q", row.Value)
				}
			}
		}
	}
	for _, line := range r.Summary {
		if !strings.Contains(doc, line) {
			t.Errorf("document.xml is missing summary line %q", line)
		}
	}

	hmc := strings.Index(doc, "HMC Information")
	lpar := strings.Index(doc, "LPAR Information")
	server := strings.Index(doc, "System Server Information")
	if hmc < 0 || !(hmc < lpar && lpar < server) {
		t.Errorf("unexpected section order: %d %d %d", hmc, lpar, server)
	}

	if got := strings.Count(doc, "<w:tbl>"); got != 3 {
		t.Errorf("expected 3 tables, got %d", got)
	}
	if got := strings.Count(doc, "</w:tbl><w:p></w:p>"); got != 3 {
		t.Errorf("expected a spacer paragraph after every table, got %d", got)
	}
	if !strings.Contains(doc, `<w:pStyle w:val="Title"></w:pStyle>`) {
		t.Error("title paragraph style missing")
	}
	if !strings.Contains(doc, `<w:tblStyle w:val="TableGrid"></w:tblStyle>`) {
		t.Error("table style missing")
	}
}

func TestWriteDOCXEscapesText(t *testing.T) {
	r := Report{
		Title:    "R&D <lab>",
		Sections: []Section{{Heading: "H", Tables: []Table{{Rows: []Row{{"A", "x < y"}}}}}},
	}
	var buf bytes.Buffer
	if err := WriteDOCX(&buf, r); err != nil {
		t.Fatalf("WriteDOCX failed: %v", err)
	}
	doc := readZipPart(t, buf.Bytes(), "word/document.xml")
	if !strings.Contains(doc, "R&amp;D &lt;lab&gt;") || !strings.Contains(doc, "x &lt; y") {
		t.Errorf("text not escaped: %s", doc)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, Build(sampleInventory())); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != ReportSheet {
		t.Fatalf("sheets = %v", sheets)
	}
	title, _ := f.GetCellValue(ReportSheet, "A1")
	if title != Title {
		t.Errorf("A1 = %q", title)
	}

	rows, err := f.GetRows(ReportSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	pairs := map[string]string{}
	for _, row := range rows {
		if len(row) == 2 {
			pairs[row[0]] = row[1]
		}
	}
	for label, want := range map[string]string{
		"HOSTNAME":       "hmc1",
		"IP ADDR - ETH0": "10.0.0.5/255.255.255.0",
		"MIN CPU":        "0.5",
		"SERVER NAME":    "p9-a",
	} {
		if pairs[label] != want {
			t.Errorf("%s = %q, want %q", label, pairs[label], want)
		}
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, Build(sampleInventory())); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{Title, "Total LPARs: 1", "HMC Information", "HOSTNAME", "hmc1", "IP ADDR - ETH0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if strings.Contains(out, "FSP IP ADDRESS") {
		t.Error("unset field rendered")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteFailure(t *testing.T) {
	r := Build(sampleInventory())
	for _, f := range []Format{FormatDOCX, FormatXLSX, FormatText} {
		if err := Write(failingWriter{}, f, r); err == nil {
			t.Errorf("%s: expected write error", f)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"docx", FormatDOCX, false},
		{".DOCX", FormatDOCX, false},
		{"xlsx", FormatXLSX, false},
		{"txt", FormatText, false},
		{"text", FormatText, false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"System_Server_Report.docx", FormatDOCX, false},
		{"out/report.xlsx", FormatXLSX, false},
		{"report.txt", FormatText, false},
		{"report", FormatDOCX, false},
		{"report.pdf", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}
