package models

import "time"

// SyncOutcome is the terminal result of one (user, resource) sync run inside
// a driver pass. Exactly one outcome is recorded per pair; a failed pair
// never prevents outcomes for the pairs that follow it.
type SyncOutcome struct {
	UserID       string       `json:"user_id"`
	ResourceType ResourceType `json:"resource_type"`
	Success      bool         `json:"success"`

	// Error holds the failure reason when Success is false. Empty otherwise.
	Error string `json:"error,omitempty"`
}

// SyncReport summarizes one full driver pass over the user registry.
// A pair that failed is counted in Failed and detailed in Outcomes; the
// report never presents partial success as full success.
type SyncReport struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Outcomes   []SyncOutcome `json:"outcomes"`
	Succeeded  int           `json:"succeeded"`
	Failed     int           `json:"failed"`
}

// Add appends one outcome and updates the success/failure counters.
func (r *SyncReport) Add(outcome SyncOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	if outcome.Success {
		r.Succeeded++
	} else {
		r.Failed++
	}
}
