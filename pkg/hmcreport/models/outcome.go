package models

// Status is the result of considering one file, sheet or row.
type Status string

const (
	// StatusExtracted means a record was produced.
	StatusExtracted Status = "extracted"
	// StatusSkipped means the item was read but produced no record.
	StatusSkipped Status = "skipped"
	// StatusFailed means the item could not be read at all.
	StatusFailed Status = "failed"
)

// Skip reasons.
const (
	ReasonBlankName    = "blank name"
	ReasonNoFields     = "no fields"
	ReasonUnknownSheet = "unrecognized sheet"
	ReasonEmptySheet   = "empty sheet"
	ReasonUnreadable   = "unreadable"
)

// Outcome records what happened to one item of the input.
type Outcome struct {
	File  string `json:"file"`
	Sheet string `json:"sheet,omitempty"`
	Kind  string `json:"kind,omitempty"`
	// Row is the data row index for row-oriented sheets, -1 otherwise.
	Row    int    `json:"row"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}
