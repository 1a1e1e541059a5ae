package parser

import "github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"

// cellValue reads and normalizes the cell at ref. Cells outside the sheet
// are absent.
func cellValue(sheet *models.Sheet, ref models.CellRef) *string {
	raw, ok := sheet.Cell(ref)
	if !ok {
		return nil
	}
	return Value(raw)
}

// Extract reads the single record described by l from sheet. The second
// result is false when no field and no interface is set.
func (l SheetLayout) Extract(sheet *models.Sheet) (models.HMC, bool) {
	var h models.HMC
	for _, f := range l.Fields {
		f.Set(&h, cellValue(sheet, f.At))
	}

	for _, iface := range l.Interfaces {
		ip := cellValue(sheet, iface.IP)
		if ip == nil {
			continue
		}
		addr := *ip
		if mask := cellValue(sheet, iface.Netmask); mask != nil {
			addr += "/" + *mask
		}
		h.IPAddresses = append(h.IPAddresses, models.Interface{Name: iface.Name, Address: addr})
	}

	return h, !h.IsEmpty()
}

// Extract reads one record per data row of sheet. A row yields a record
// only when its key cell is set and Keep accepts the record; every row gets
// an outcome.
func (l RowLayout[T]) Extract(sheet *models.Sheet) ([]T, []models.Outcome) {
	var records []T
	var outcomes []models.Outcome

	for rowIdx := range sheet.Rows {
		outcome := models.Outcome{Row: rowIdx, Status: models.StatusSkipped}

		name := cellValue(sheet, models.At(rowIdx, l.KeyCol))
		if name == nil {
			outcome.Reason = models.ReasonBlankName
			outcomes = append(outcomes, outcome)
			continue
		}

		rec := l.New(*name)
		for _, c := range l.Columns {
			c.Set(&rec, cellValue(sheet, models.At(rowIdx, c.Col)))
		}
		if l.Keep != nil && !l.Keep(&rec) {
			outcome.Reason = models.ReasonNoFields
			outcomes = append(outcomes, outcome)
			continue
		}

		outcome.Status = models.StatusExtracted
		outcomes = append(outcomes, outcome)
		records = append(records, rec)
	}

	return records, outcomes
}

// ExtractHMC reads the HMC record of an HMC sheet.
func ExtractHMC(sheet *models.Sheet) (models.HMC, bool) {
	return HMCLayout.Extract(sheet)
}

// ExtractServers reads the managed systems of a System_summary sheet.
func ExtractServers(sheet *models.Sheet) ([]models.Server, []models.Outcome) {
	return ServerLayout.Extract(sheet)
}

// ExtractLPARs reads the partition profiles of an LPAR_profiles sheet.
func ExtractLPARs(sheet *models.Sheet) ([]models.LPAR, []models.Outcome) {
	return LPARLayout.Extract(sheet)
}

// ExtractSheet classifies sheet, runs the matching extractor and appends its
// records to inv. The returned outcomes carry Sheet and Kind; File is left
// for the caller.
func ExtractSheet(sheet *models.Sheet, inv *models.Inventory) (SheetKind, []models.Outcome) {
	kind := Classify(sheet.Name)

	var outcomes []models.Outcome
	switch {
	case kind == KindUnknown:
		outcomes = []models.Outcome{{Row: -1, Status: models.StatusSkipped, Reason: models.ReasonUnknownSheet}}
	case len(sheet.Rows) == 0:
		outcomes = []models.Outcome{{Row: -1, Status: models.StatusSkipped, Reason: models.ReasonEmptySheet}}
	case kind == KindHMC:
		outcome := models.Outcome{Row: -1, Status: models.StatusSkipped, Reason: models.ReasonNoFields}
		if h, ok := ExtractHMC(sheet); ok {
			inv.HMCs = append(inv.HMCs, h)
			outcome.Status, outcome.Reason = models.StatusExtracted, ""
		}
		outcomes = []models.Outcome{outcome}
	case kind == KindServer:
		var servers []models.Server
		servers, outcomes = ExtractServers(sheet)
		inv.Servers = append(inv.Servers, servers...)
	case kind == KindLPAR:
		var lpars []models.LPAR
		lpars, outcomes = ExtractLPARs(sheet)
		inv.LPARs = append(inv.LPARs, lpars...)
	}

	for i := range outcomes {
		outcomes[i].Sheet = sheet.Name
		outcomes[i].Kind = string(kind)
	}
	return kind, outcomes
}
