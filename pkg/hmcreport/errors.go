package hmcreport

import (
	"errors"
	"fmt"
)

// ErrNoInputFiles indicates the input directory holds no workbook.
var ErrNoInputFiles = errors.New("no Excel files found")

// ExtractionError represents an error while reading one workbook.
type ExtractionError struct {
	File      string
	SheetName string
	Component string // "discover", "load", "extract", "merge"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error in %s (%s): %v", e.File, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in %s sheet %q (%s): %v", e.File, e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(file, sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		File:      file,
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
