// Package render turns an inventory into a report of two-column tables and
// writes it as a Word document, a workbook or plain text.
package render

import (
	"fmt"
	"strings"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
)

// Title is the report heading.
const Title = "System Server Report"

// Report is the format-independent layout of a report.
type Report struct {
	Title string
	// Summary holds one line per record kind.
	Summary  []string
	Sections []Section
}

// Section groups the tables of one record kind.
type Section struct {
	Heading string
	Tables  []Table
}

// Table is a two-column (label, value) table describing one record.
type Table struct {
	Rows []Row
}

// Row is one label/value pair.
type Row struct {
	Label string
	Value string
}

type label[T any] struct {
	text  string
	value func(*T) *string
}

var hmcLabels = []label[models.HMC]{
	{"HOSTNAME", func(h *models.HMC) *string { return h.Hostname }},
	{"MODEL", func(h *models.HMC) *string { return h.HardwareModel }},
	{"SERIAL", func(h *models.HMC) *string { return h.Serial }},
	{"BASE VERSION", func(h *models.HMC) *string { return h.BaseVersion }},
	{"SERVICE PACK", func(h *models.HMC) *string { return h.ServicePack }},
	{"GATEWAY", func(h *models.HMC) *string { return h.Gateway }},
}

var lparLabels = []label[models.LPAR]{
	{"LPAR NAME", func(l *models.LPAR) *string { return models.Str(l.LPARName) }},
	{"DESIRED ENTITLED CPU", func(l *models.LPAR) *string { return l.DesiredEntitledCPU }},
	{"MIN CPU", func(l *models.LPAR) *string { return l.MinCPU }},
	{"MAX CPU", func(l *models.LPAR) *string { return l.MaxCPU }},
	{"DESIRED VIRTUAL PROCESSOR", func(l *models.LPAR) *string { return l.DesiredVirtualProcessor }},
	{"MIN VIRTUAL PROCESSOR", func(l *models.LPAR) *string { return l.MinVirtualProcessor }},
	{"MAX VIRTUAL PROCESSOR", func(l *models.LPAR) *string { return l.MaxVirtualProcessor }},
	{"ENTITLED MEMORY (GB)", func(l *models.LPAR) *string { return l.EntitledMemoryGB }},
	{"MIN MEMORY (GB)", func(l *models.LPAR) *string { return l.MinMemoryGB }},
	{"MAX MEMORY (GB)", func(l *models.LPAR) *string { return l.MaxMemoryGB }},
	{"POWER SERVER", func(l *models.LPAR) *string { return l.PowerServer }},
}

var serverLabels = []label[models.Server]{
	{"SERVER NAME", func(s *models.Server) *string { return models.Str(s.ServerName) }},
	{"MODEL", func(s *models.Server) *string { return s.Model }},
	{"SERIAL", func(s *models.Server) *string { return s.Serial }},
	{"CPU CORES", func(s *models.Server) *string { return s.CPU }},
	{"MEMORY (GB)", func(s *models.Server) *string { return s.Memory }},
	{"FIRMWARE LEVEL", func(s *models.Server) *string { return s.FirmwareLevel }},
	{"FSP IP ADDRESS", func(s *models.Server) *string { return s.FSPIPAddress }},
}

// Build lays out inv: a summary of counts, then one section per non-empty
// record kind (HMC, LPAR, server) with one table per record in inventory
// order. Unset fields get no row.
func Build(inv models.Inventory) Report {
	counts := inv.Counts()
	r := Report{
		Title: Title,
		Summary: []string{
			fmt.Sprintf("Total HMC Systems: %d", counts.HMCs),
			fmt.Sprintf("Total System Servers: %d", counts.Servers),
			fmt.Sprintf("Total LPARs: %d", counts.LPARs),
		},
	}

	if len(inv.HMCs) > 0 {
		sec := Section{Heading: "HMC Information"}
		for i := range inv.HMCs {
			t := table(&inv.HMCs[i], hmcLabels)
			for _, iface := range inv.HMCs[i].IPAddresses {
				t.Rows = append(t.Rows, Row{"IP ADDR - " + strings.ToUpper(iface.Name), iface.Address})
			}
			sec.Tables = append(sec.Tables, t)
		}
		r.Sections = append(r.Sections, sec)
	}

	if len(inv.LPARs) > 0 {
		sec := Section{Heading: "LPAR Information"}
		for i := range inv.LPARs {
			sec.Tables = append(sec.Tables, table(&inv.LPARs[i], lparLabels))
		}
		r.Sections = append(r.Sections, sec)
	}

	if len(inv.Servers) > 0 {
		sec := Section{Heading: "System Server Information"}
		for i := range inv.Servers {
			sec.Tables = append(sec.Tables, table(&inv.Servers[i], serverLabels))
		}
		r.Sections = append(r.Sections, sec)
	}

	return r
}

func table[T any](rec *T, labels []label[T]) Table {
	var t Table
	for _, l := range labels {
		if v := l.value(rec); v != nil && *v != "" {
			t.Rows = append(t.Rows, Row{l.text, *v})
		}
	}
	return t
}
