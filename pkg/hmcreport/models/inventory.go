// Package models defines the records extracted from HMC scanner workbooks.
package models

import (
	"encoding/json"

	"dario.cat/mergo"
)

// Inventory is the running collection of extracted records, in extraction order.
type Inventory struct {
	HMCs    []HMC    `json:"hmc_info"`
	Servers []Server `json:"system_info"`
	LPARs   []LPAR   `json:"lpar_info"`
}

// MarshalJSON encodes empty collections as [] rather than null.
func (inv Inventory) MarshalJSON() ([]byte, error) {
	type inventory Inventory
	out := inventory(inv)
	if out.HMCs == nil {
		out.HMCs = []HMC{}
	}
	if out.Servers == nil {
		out.Servers = []Server{}
	}
	if out.LPARs == nil {
		out.LPARs = []LPAR{}
	}
	return json.Marshal(out)
}

// Counts is the number of records of each kind.
type Counts struct {
	HMCs    int `json:"hmc"`
	Servers int `json:"servers"`
	LPARs   int `json:"lpars"`
}

// Merge appends the records of other after the records already held.
// Existing entries are never modified.
func (inv *Inventory) Merge(other Inventory) error {
	return mergo.Merge(inv, other, mergo.WithAppendSlice)
}

// Counts returns the per-kind record counts.
func (inv *Inventory) Counts() Counts {
	return Counts{
		HMCs:    len(inv.HMCs),
		Servers: len(inv.Servers),
		LPARs:   len(inv.LPARs),
	}
}

// Len returns the total number of records.
func (inv *Inventory) Len() int {
	return len(inv.HMCs) + len(inv.Servers) + len(inv.LPARs)
}

func anySet(values ...*string) bool {
	for _, v := range values {
		if v != nil && *v != "" {
			return true
		}
	}
	return false
}

// Str returns a pointer to s, or nil when s is empty.
func Str(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
