package parser

import "strings"

// SheetKind identifies which fixed-layout extractor handles a sheet.
type SheetKind string

const (
	// KindUnknown sheets are ignored.
	KindUnknown SheetKind = ""
	// KindHMC is the HMC identity and network sheet.
	KindHMC SheetKind = "hmc"
	// KindServer is the System_summary sheet, one managed system per row.
	KindServer SheetKind = "server"
	// KindLPAR is the LPAR_profiles sheet, one partition profile per row.
	KindLPAR SheetKind = "lpar"
)

// Classify routes a sheet by case-insensitive substring match on its name.
// "hmc" takes precedence over the other two markers.
func Classify(sheetName string) SheetKind {
	name := strings.ToLower(sheetName)
	switch {
	case strings.Contains(name, "hmc"):
		return KindHMC
	case strings.Contains(name, "system_summary"):
		return KindServer
	case strings.Contains(name, "lpar_profiles"):
		return KindLPAR
	default:
		return KindUnknown
	}
}
