package render

import (
	"archive/zip"
	"encoding/xml"
	"io"
)

const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Table column width in twentieths of a point (3 inches).
const docxColWidth = 4320

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults>
<w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>
</w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>
<w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:b/><w:sz w:val="52"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>
<w:pPr><w:keepNext/><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:color w:val="2F5496"/><w:sz w:val="32"/></w:rPr></w:style>
<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/>
<w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:left w:w="108" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>
<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:basedOn w:val="TableNormal"/>
<w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr>
<w:tblPr><w:tblBorders><w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/></w:tblBorders></w:tblPr></w:style>
</w:styles>`

type docxDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    docxBody `xml:"w:body"`
}

type docxBody struct {
	// Blocks holds *docxParagraph and *docxTable values in document order.
	Blocks  []any
	Section docxSection `xml:"w:sectPr"`
}

type docxVal struct {
	Val string `xml:"w:val,attr"`
}

type docxWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr,omitempty"`
}

type docxParagraph struct {
	XMLName xml.Name       `xml:"w:p"`
	Props   *docxParaProps `xml:"w:pPr,omitempty"`
	Runs    []docxRun      `xml:"w:r"`
}

type docxParaProps struct {
	Style *docxVal `xml:"w:pStyle,omitempty"`
	Jc    *docxVal `xml:"w:jc,omitempty"`
}

type docxRun struct {
	Break *struct{} `xml:"w:br,omitempty"`
	Text  docxText  `xml:"w:t"`
}

type docxText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type docxTable struct {
	XMLName xml.Name       `xml:"w:tbl"`
	Props   docxTableProps `xml:"w:tblPr"`
	Grid    []docxWidth    `xml:"w:tblGrid>w:gridCol"`
	Rows    []docxRow      `xml:"w:tr"`
}

type docxTableProps struct {
	Style docxVal   `xml:"w:tblStyle"`
	Width docxWidth `xml:"w:tblW"`
	Jc    docxVal   `xml:"w:jc"`
}

type docxRow struct {
	Cells []docxCell `xml:"w:tc"`
}

type docxCell struct {
	Width     docxWidth `xml:"w:tcPr>w:tcW"`
	Paragraph docxParagraph
}

type docxSection struct {
	PageSize   docxPageSize   `xml:"w:pgSz"`
	PageMargin docxPageMargin `xml:"w:pgMar"`
}

type docxPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type docxPageMargin struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// WriteDOCX writes r as a WordprocessingML package: a centered title, a
// summary section, then per section a heading and one grid table per record
// followed by an empty paragraph.
func WriteDOCX(w io.Writer, r Report) error {
	doc := docxDocument{
		NS: nsW,
		Body: docxBody{
			Section: docxSection{
				PageSize:   docxPageSize{W: 12240, H: 15840},
				PageMargin: docxPageMargin{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
			},
		},
	}

	title := textParagraph(r.Title)
	title.Props = &docxParaProps{Style: &docxVal{"Title"}, Jc: &docxVal{"center"}}
	doc.Body.Blocks = append(doc.Body.Blocks, title, heading("Summary"), linesParagraph(r.Summary))

	for _, sec := range r.Sections {
		doc.Body.Blocks = append(doc.Body.Blocks, heading(sec.Heading))
		for _, t := range sec.Tables {
			doc.Body.Blocks = append(doc.Body.Blocks, gridTable(t), &docxParagraph{})
		}
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(docxContentTypes)},
		{"_rels/.rels", []byte(docxPackageRels)},
		{"word/_rels/document.xml.rels", []byte(docxDocumentRels)},
		{"word/styles.xml", []byte(docxStyles)},
		{"word/document.xml", append([]byte(xml.Header), body...)},
	}
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return err
		}
		if _, err := fw.Write(p.data); err != nil {
			return err
		}
	}

	return zw.Close()
}

func textRun(s string) docxRun {
	run := docxRun{Text: docxText{Value: s}}
	if s != "" && (s[0] == ' ' || s[len(s)-1] == ' ') {
		run.Text.Space = "preserve"
	}
	return run
}

func textParagraph(s string) *docxParagraph {
	return &docxParagraph{Runs: []docxRun{textRun(s)}}
}

func heading(s string) *docxParagraph {
	p := textParagraph(s)
	p.Props = &docxParaProps{Style: &docxVal{"Heading1"}}
	return p
}

// linesParagraph keeps lines in one paragraph separated by line breaks.
func linesParagraph(lines []string) *docxParagraph {
	p := &docxParagraph{}
	for i, line := range lines {
		run := textRun(line)
		if i > 0 {
			run.Break = &struct{}{}
		}
		p.Runs = append(p.Runs, run)
	}
	return p
}

func gridTable(t Table) *docxTable {
	tbl := &docxTable{
		Props: docxTableProps{
			Style: docxVal{"TableGrid"},
			Width: docxWidth{W: 0, Type: "auto"},
			Jc:    docxVal{"center"},
		},
		Grid: []docxWidth{{W: docxColWidth}, {W: docxColWidth}},
	}
	for _, row := range t.Rows {
		tbl.Rows = append(tbl.Rows, docxRow{Cells: []docxCell{
			{Width: docxWidth{W: docxColWidth, Type: "dxa"}, Paragraph: *textParagraph(row.Label)},
			{Width: docxWidth{W: docxColWidth, Type: "dxa"}, Paragraph: *textParagraph(row.Value)},
		}})
	}
	return tbl
}
