package hmcreport

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/parser"
)

// Collect extracts and merges the records of every workbook in
// opts.InputDir. Files are processed one at a time in discovery order; a file
// that cannot be read contributes nothing and is reported in the result.
// ErrNoInputFiles is returned when the directory holds no workbook.
func Collect(ctx context.Context, opts Options) (*models.RunResult, error) {
	log := opts.logger()

	exts := NormalizeExtensions(opts.Extensions)
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	files, err := FindInputFiles(opts.InputDir, exts)
	if err != nil {
		return nil, NewExtractionError(opts.InputDir, "", "discover", err)
	}
	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}
	log.Info("found Excel files", "dir", opts.InputDir, "count", len(files))

	result := &models.RunResult{Files: files}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		inv, outcomes, err := ExtractFile(path, log)
		result.Outcomes = append(result.Outcomes, outcomes...)
		if err != nil {
			log.Error("skipping unreadable file", "file", filepath.Base(path), "error", err)
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		if err := result.Inventory.Merge(inv); err != nil {
			return result, NewExtractionError(filepath.Base(path), "", "merge", err)
		}
	}

	result.Counts = result.Inventory.Counts()
	return result, nil
}

// ExtractFile loads one workbook and extracts the records of its recognized
// sheets. On a load failure the returned error is an *ExtractionError and
// the outcome list holds a single failed entry for the file.
func ExtractFile(path string, log *slog.Logger) (models.Inventory, []models.Outcome, error) {
	var inv models.Inventory
	name := filepath.Base(path)
	log.Info("processing file", "file", name)

	wb, err := parser.Load(path)
	if err != nil {
		failed := models.Outcome{File: name, Row: -1, Status: models.StatusFailed, Reason: models.ReasonUnreadable}
		return inv, []models.Outcome{failed}, NewExtractionError(name, "", "load", err)
	}
	for _, attempt := range wb.Attempts {
		log.Warn("reader failed, fell back", "file", name, "error", attempt, "strategy", wb.Strategy)
	}

	var outcomes []models.Outcome
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		before := inv.Len()

		kind, sheetOutcomes := parser.ExtractSheet(sheet, &inv)
		for _, o := range sheetOutcomes {
			o.File = name
			outcomes = append(outcomes, o)
			if kind != parser.KindUnknown && o.Status == models.StatusSkipped {
				log.Debug("skipped", "file", name, "sheet", sheet.Name, "row", o.Row, "reason", o.Reason)
			}
		}

		if kind == parser.KindUnknown {
			log.Debug("ignoring sheet", "file", name, "sheet", sheet.Name)
			continue
		}
		log.Info("processed sheet",
			"file", name,
			"sheet", sheet.Name,
			"kind", string(kind),
			"range", parser.UsedRange(sheet),
			"records", inv.Len()-before,
		)
	}

	logRecords(log, name, inv)
	return inv, outcomes, nil
}

func logRecords(log *slog.Logger, file string, inv models.Inventory) {
	for _, h := range inv.HMCs {
		log.Debug("found HMC", "file", file, "hostname", deref(h.Hostname), "interfaces", len(h.IPAddresses))
	}
	for _, s := range inv.Servers {
		log.Debug("found server", "file", file, "server", s.ServerName, "model", deref(s.Model))
	}
	for _, l := range inv.LPARs {
		log.Debug("found LPAR", "file", file, "lpar", l.LPARName, "power_server", deref(l.PowerServer))
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
