package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// errWriter keeps the first write error so the writers can ignore it until
// the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteText writes r as plain text with one bordered two-column table per
// record.
func WriteText(w io.Writer, r Report) error {
	ew := &errWriter{w: w}

	fmt.Fprintf(ew, "%s\n%s\n\n", r.Title, strings.Repeat("=", len(r.Title)))
	fmt.Fprintf(ew, "Summary\n-------\n")
	for _, line := range r.Summary {
		fmt.Fprintln(ew, line)
	}

	for _, sec := range r.Sections {
		fmt.Fprintf(ew, "\n%s\n%s\n", sec.Heading, strings.Repeat("-", len(sec.Heading)))
		for _, t := range sec.Tables {
			fmt.Fprintln(ew)
			tw := tablewriter.NewWriter(ew)
			tw.SetAutoWrapText(false)
			tw.SetAlignment(tablewriter.ALIGN_LEFT)
			for _, row := range t.Rows {
				tw.Append([]string{row.Label, row.Value})
			}
			tw.Render()
		}
	}

	return ew.err
}
