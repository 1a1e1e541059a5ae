package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format selects a report writer.
type Format string

const (
	// FormatDOCX writes a Word document.
	FormatDOCX Format = "docx"
	// FormatXLSX writes an Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatText writes plain text tables.
	FormatText Format = "text"
)

// ErrUnsupportedFormat indicates an unknown report format.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "docx":
		return FormatDOCX, nil
	case "xlsx":
		return FormatXLSX, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath derives the format from a file extension. Paths without an
// extension get FormatDOCX.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatDOCX, nil
	}
	return ParseFormat(ext)
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatDOCX:
		return WriteDOCX(w, r)
	case FormatXLSX:
		return WriteXLSX(w, r)
	case FormatText:
		return WriteText(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
