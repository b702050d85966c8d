package meleedto

import "time"

// CaptureDTO is one capture of a solution, squares in algebraic notation.
type CaptureDTO struct {
	Attacker string `json:"attacker"`
	From     string `json:"from"`
	Target   string `json:"target"`
	To       string `json:"to"`
}

// SolutionDTO is one complete capture sequence.
type SolutionDTO struct {
	Moves []CaptureDTO `json:"moves"`
}

// RunSummary is the stored shape of a solve run, with an optional sample of
// the discovered solutions.
type RunSummary struct {
	ID         string        `json:"id"`
	Scenario   string        `json:"scenario"`
	Pieces     int           `json:"pieces"`
	Solutions  int           `json:"solutions"`
	DeadEnds   int           `json:"dead_ends"`
	Nodes      int           `json:"nodes"`
	Exhausted  bool          `json:"exhausted"`
	StartedAt  time.Time     `json:"started_at"`
	DurationMS int64         `json:"duration_ms"`
	Sample     []SolutionDTO `json:"sample,omitempty"`
}
