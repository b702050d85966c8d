package domain

import "time"

// SolveRun is the durable record of one solver invocation.
type SolveRun struct {
	ID         string
	Scenario   string
	Pieces     int
	Solutions  int
	DeadEnds   int
	Nodes      int
	Exhausted  bool
	StartedAt  time.Time
	FinishedAt time.Time
	Duration   time.Duration
}
