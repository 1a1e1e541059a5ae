package models

// WorkbookData is one loaded workbook with its sheets in workbook order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Strategy names the reader that produced the sheets.
	Strategy string `json:"strategy"`
	// Attempts holds the errors of strategies that failed before Strategy.
	Attempts []string `json:"attempts,omitempty"`
	// Sheets lists the sheets in the order they appear in the workbook.
	Sheets []Sheet `json:"sheets"`
}
