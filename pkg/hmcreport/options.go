// Package hmcreport extracts HMC, managed system and LPAR records from HMC
// scanner workbooks and renders them into a report document.
package hmcreport

import (
	"io"
	"log/slog"
	"slices"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/render"
)

const (
	// DefaultInputDir is the directory scanned for workbooks.
	DefaultInputDir = "HMCscannerfile"
	// DefaultOutput is the report file name.
	DefaultOutput = "System_Server_Report.docx"
)

// DefaultExtensions are the workbook extensions picked up from the input
// directory, in discovery order.
var DefaultExtensions = []string{".xls", ".xlsx"}

// Options configures a report run.
type Options struct {
	// InputDir is the directory scanned (non-recursively) for workbooks.
	InputDir string
	// Extensions lists the file extensions to pick up. Files are grouped by
	// extension in this order, then sorted by name.
	Extensions []string
	// Output is the report file path.
	Output string
	// Format selects the report writer. If empty it is derived from Output.
	Format render.Format
	// Logger receives progress and diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		InputDir:   DefaultInputDir,
		Extensions: slices.Clone(DefaultExtensions),
		Output:     DefaultOutput,
	}
}

// logger returns the configured logger or one that discards everything.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ResolveFormat returns the explicit format or the one implied by Output.
func (o Options) ResolveFormat() (render.Format, error) {
	if o.Format != "" {
		return render.ParseFormat(string(o.Format))
	}
	return render.FormatFromPath(o.Output)
}
