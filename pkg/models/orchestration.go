package models

// SubtaskStatus tracks a subtask inside the parent's orchestration state.
// Allowed transitions: pending → in_progress → {completed, failed}.
type SubtaskStatus string

// Subtask statuses.
const (
	SubtaskPending    SubtaskStatus = "pending"
	SubtaskInProgress SubtaskStatus = "in_progress"
	SubtaskCompleted  SubtaskStatus = "completed"
	SubtaskFailed     SubtaskStatus = "failed"
)

// CanTransitionTo reports whether the status transition is legal.
func (s SubtaskStatus) CanTransitionTo(next SubtaskStatus) bool {
	switch s {
	case SubtaskPending:
		return next == SubtaskInProgress
	case SubtaskInProgress:
		return next == SubtaskCompleted || next == SubtaskFailed
	}
	return false
}

// SubtaskDefinition is a scope-bounded piece of work derived by breakdown.
type SubtaskDefinition struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	TargetFiles         []string   `json:"target_files"`
	Dependencies        []string   `json:"dependencies"`
	AcceptanceCriteria  []string   `json:"acceptance_criteria"`
	EstimatedComplexity Complexity `json:"estimated_complexity"` // XS or S only
	EstimatedLines      int        `json:"estimated_lines"`
}

// SubtaskState is a SubtaskDefinition plus its runtime execution state.
type SubtaskState struct {
	SubtaskDefinition
	Status      SubtaskStatus `json:"status"`
	Attempts    int           `json:"attempts"`
	ChildTaskID string        `json:"child_task_id,omitempty"`
	Diff        string        `json:"diff,omitempty"` // immutable once completed
}

// OrchestrationState is the subtask-level sub-document embedded in a parent
// task's session memory. Subtask order is the breakdown emission order and is
// the tie-break for scheduling and aggregation.
type OrchestrationState struct {
	Subtasks          []SubtaskState `json:"subtasks"`
	CompletedSubtasks []string       `json:"completed_subtasks"`
	CurrentSubtask    string         `json:"current_subtask,omitempty"`
	AggregatedDiff    string         `json:"aggregated_diff,omitempty"`
}

// Subtask returns the state for the given subtask id, or nil.
func (o *OrchestrationState) Subtask(id string) *SubtaskState {
	for i := range o.Subtasks {
		if o.Subtasks[i].ID == id {
			return &o.Subtasks[i]
		}
	}
	return nil
}

// AllCompleted reports whether every subtask reached completed.
func (o *OrchestrationState) AllCompleted() bool {
	for i := range o.Subtasks {
		if o.Subtasks[i].Status != SubtaskCompleted {
			return false
		}
	}
	return len(o.Subtasks) > 0
}

// AnyFailed reports whether any subtask reached failed.
func (o *OrchestrationState) AnyFailed() bool {
	for i := range o.Subtasks {
		if o.Subtasks[i].Status == SubtaskFailed {
			return true
		}
	}
	return false
}
