// Package parser loads HMC scanner workbooks and extracts records from their
// fixed-layout sheets.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
)

// Reader is one strategy for turning a workbook file into sheets.
type Reader interface {
	// Name identifies the strategy in diagnostics.
	Name() string
	// Read returns every sheet of the workbook in workbook order.
	Read(path string) ([]models.Sheet, error)
}

// DefaultReaders returns the strategy chain for path, chosen by extension.
// The OOXML reader is always last.
func DefaultReaders(path string) []Reader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return []Reader{BIFFReader{}, OOXMLReader{}}
	default:
		return []Reader{ExcelizeReader{}, OOXMLReader{}}
	}
}

// Load reads the workbook at path with the first reader that succeeds.
// Without readers, DefaultReaders(path) is used. The errors of strategies
// that failed before the successful one are kept in WorkbookData.Attempts;
// when every strategy fails their errors are joined.
func Load(path string, readers ...Reader) (*models.WorkbookData, error) {
	if len(readers) == 0 {
		readers = DefaultReaders(path)
	}

	var errs []error
	for _, r := range readers {
		sheets, err := r.Read(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))
			continue
		}

		wb := &models.WorkbookData{
			BookName: filepath.Base(path),
			Strategy: r.Name(),
			Sheets:   sheets,
		}
		for _, e := range errs {
			wb.Attempts = append(wb.Attempts, e.Error())
		}
		return wb, nil
	}

	return nil, errors.Join(errs...)
}
