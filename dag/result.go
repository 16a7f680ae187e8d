package dag

import "time"

// Status reports the outcome of one stage.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Result holds the outcome of a graph execution.
type Result struct {
	StageResults map[string]StageResult
	Duration     time.Duration
}

// StageResult holds the outcome of a single stage execution.
type StageResult struct {
	ID       string
	Status   Status
	Duration time.Duration
	Error    error
	// SkippedOn names the upstream stage whose failure caused a skip.
	SkippedOn string
}

// Completed reports whether the named stage ran to completion.
func (r *Result) Completed(id string) bool {
	return r.StageResults[id].Status == StatusCompleted
}
