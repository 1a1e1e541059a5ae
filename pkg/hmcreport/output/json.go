// Package output serializes run results to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
)

// ToJSON serializes a run result.
func ToJSON(r *models.RunResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// InventoryToJSON serializes only the extracted records.
func InventoryToJSON(inv *models.Inventory, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(inv, "", "  ")
	}
	return json.Marshal(inv)
}
