package hmcreport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/render"
)

// Run collects the records of every workbook in opts.InputDir and writes the
// report to opts.Output. When no workbook is found it returns ErrNoInputFiles
// and writes nothing. A failure to write the report is returned; unreadable
// workbooks are not, they are reported in the result.
func Run(ctx context.Context, opts Options) (*models.RunResult, error) {
	log := opts.logger()

	format, err := opts.ResolveFormat()
	if err != nil {
		return nil, err
	}

	result, err := Collect(ctx, opts)
	if err != nil {
		return result, err
	}

	report := render.Build(result.Inventory)
	if err := WriteReport(opts.Output, format, report); err != nil {
		return result, fmt.Errorf("write report: %w", err)
	}

	log.Info("report written",
		"output", opts.Output,
		"format", string(format),
		"hmc", result.Counts.HMCs,
		"servers", result.Counts.Servers,
		"lpars", result.Counts.LPARs,
	)
	return result, nil
}

// WriteReport renders r into path. The document is written to a temporary
// file in the same directory and renamed into place, so an existing report
// is only replaced by a complete one.
func WriteReport(path string, format render.Format, r render.Report) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := render.Write(tmp, format, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
