package models

// RunResult is everything one pass over the input directory produced.
type RunResult struct {
	// Files lists the discovered workbooks in processing order.
	Files []string `json:"files"`
	// Inventory holds the merged records of all files.
	Inventory Inventory `json:"inventory"`
	// Counts is Inventory.Counts() at the end of the run.
	Counts Counts `json:"counts"`
	// Outcomes explains what every file, sheet and row contributed.
	Outcomes []Outcome `json:"outcomes,omitempty"`
	// Errors holds the files that could not be read by any strategy.
	Errors []string `json:"errors,omitempty"`
}

// Failed returns the outcomes with StatusFailed.
func (r *RunResult) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
