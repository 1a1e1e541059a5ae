package parser

import "github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"

// The positions below belong to the HMC scanner report template. They are
// read as-is and never checked against header text; a template revision that
// moves a column yields values under the wrong field without any error.

// Field maps one absolute cell of a sheet to a record field.
type Field[T any] struct {
	Name string
	At   models.CellRef
	Set  func(*T, *string)
}

// Column maps one column of a data row to a record field.
type Column[T any] struct {
	Name string
	Col  int
	Set  func(*T, *string)
}

// InterfaceCells locates the IP address and netmask of one HMC interface.
type InterfaceCells struct {
	Name    string
	IP      models.CellRef
	Netmask models.CellRef
}

// SheetLayout describes a sheet that holds a single record.
type SheetLayout struct {
	Fields     []Field[models.HMC]
	Interfaces []InterfaceCells
}

// RowLayout describes a sheet that holds one record per data row, keyed by
// the name in column KeyCol.
type RowLayout[T any] struct {
	KeyName string
	KeyCol  int
	Columns []Column[T]
	New     func(name string) T
	Keep    func(*T) bool
}

// HMCLayout is the layout of the HMC sheet.
var HMCLayout = SheetLayout{
	Fields: []Field[models.HMC]{
		{"hostname", models.At(15, 1), func(h *models.HMC, v *string) { h.Hostname = v }},
		{"hardware_model", models.At(1, 1), func(h *models.HMC, v *string) { h.HardwareModel = v }},
		{"serial", models.At(2, 1), func(h *models.HMC, v *string) { h.Serial = v }},
		{"base_version", models.At(4, 4), func(h *models.HMC, v *string) { h.BaseVersion = v }},
		{"service_pack", models.At(2, 4), func(h *models.HMC, v *string) { h.ServicePack = v }},
		{"gateway", models.At(17, 1), func(h *models.HMC, v *string) { h.Gateway = v }},
	},
	Interfaces: []InterfaceCells{
		{"eth0", models.At(22, 1), models.At(23, 1)},
		{"eth1", models.At(22, 2), models.At(23, 2)},
		{"eth2", models.At(22, 3), models.At(23, 3)},
		{"eth3", models.At(22, 4), models.At(23, 4)},
	},
}

// ServerLayout is the layout of the System_summary sheet.
var ServerLayout = RowLayout[models.Server]{
	KeyName: "server_name",
	KeyCol:  0,
	Columns: []Column[models.Server]{
		{"model", 2, func(s *models.Server, v *string) { s.Model = v }},
		{"serial", 3, func(s *models.Server, v *string) { s.Serial = v }},
		{"cpu", 6, func(s *models.Server, v *string) { s.CPU = v }},
		{"memory", 15, func(s *models.Server, v *string) { s.Memory = v }},
		{"fsp_ip_address", 22, func(s *models.Server, v *string) { s.FSPIPAddress = v }},
		{"firmware_level", 26, func(s *models.Server, v *string) { s.FirmwareLevel = v }},
	},
	New:  func(name string) models.Server { return models.Server{ServerName: name} },
	Keep: (*models.Server).HasDetails,
}

// LPARLayout is the layout of the LPAR_profiles sheet.
var LPARLayout = RowLayout[models.LPAR]{
	KeyName: "lpar_name",
	KeyCol:  0,
	Columns: []Column[models.LPAR]{
		{"min_memory_gb", 6, func(l *models.LPAR, v *string) { l.MinMemoryGB = v }},
		{"entitled_memory_gb", 7, func(l *models.LPAR, v *string) { l.EntitledMemoryGB = v }},
		{"max_memory_gb", 8, func(l *models.LPAR, v *string) { l.MaxMemoryGB = v }},
		{"min_cpu", 16, func(l *models.LPAR, v *string) { l.MinCPU = v }},
		{"desired_entitled_cpu", 17, func(l *models.LPAR, v *string) { l.DesiredEntitledCPU = v }},
		{"max_cpu", 18, func(l *models.LPAR, v *string) { l.MaxCPU = v }},
		{"min_virtual_processor", 19, func(l *models.LPAR, v *string) { l.MinVirtualProcessor = v }},
		{"desired_virtual_processor", 20, func(l *models.LPAR, v *string) { l.DesiredVirtualProcessor = v }},
		{"max_virtual_processor", 21, func(l *models.LPAR, v *string) { l.MaxVirtualProcessor = v }},
		{"power_server", 33, func(l *models.LPAR, v *string) { l.PowerServer = v }},
	},
	New:  func(name string) models.LPAR { return models.LPAR{LPARName: name} },
	Keep: (*models.LPAR).HasDetails,
}

// FieldPosition is one entry of a layout, for listing.
type FieldPosition struct {
	Kind  SheetKind
	Field string
	// Cell is the A1 name of the cell in the workbook, assuming the header
	// is on row 1. For row layouts only the column letter is given.
	Cell string
}

// Positions lists every field position of the three layouts.
func Positions() []FieldPosition {
	var result []FieldPosition
	for _, f := range HMCLayout.Fields {
		result = append(result, FieldPosition{KindHMC, f.Name, CellName(f.At)})
	}
	for _, iface := range HMCLayout.Interfaces {
		result = append(result,
			FieldPosition{KindHMC, iface.Name + " ip", CellName(iface.IP)},
			FieldPosition{KindHMC, iface.Name + " netmask", CellName(iface.Netmask)},
		)
	}
	result = append(result, FieldPosition{KindServer, ServerLayout.KeyName, ColumnName(ServerLayout.KeyCol)})
	for _, c := range ServerLayout.Columns {
		result = append(result, FieldPosition{KindServer, c.Name, ColumnName(c.Col)})
	}
	result = append(result, FieldPosition{KindLPAR, LPARLayout.KeyName, ColumnName(LPARLayout.KeyCol)})
	for _, c := range LPARLayout.Columns {
		result = append(result, FieldPosition{KindLPAR, c.Name, ColumnName(c.Col)})
	}
	return result
}
