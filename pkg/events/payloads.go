package events

// TaskStatusPayload is the payload for task.status events.
// Published on every workflow transition. Also broadcast transiently to
// the global tasks channel for the task list page.
type TaskStatusPayload struct {
	Type       string `json:"type"`                 // always EventTypeTaskStatus
	TaskID     string `json:"task_id"`              // task UUID
	Status     string `json:"status"`               // workflow state, e.g. PLANNING, CODING, WAITING_HUMAN
	Phase      string `json:"phase"`                // coarse phase for progress display
	LastError  string `json:"last_error,omitempty"` // set on FAILED / WAITING_HUMAN
	Repo       string `json:"repo"`                 // "owner/name"
	IssueTitle string `json:"issue_title,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// TaskProgressPayload is the payload for task.progress events.
// Mirrors a progress entry appended to session memory.
type TaskProgressPayload struct {
	Type      string `json:"type"`    // always EventTypeTaskProgress
	TaskID    string `json:"task_id"` // task UUID
	Kind      string `json:"kind"`    // progress entry kind, e.g. stage_completed, retry_triggered
	Message   string `json:"message"`
	Stage     string `json:"stage,omitempty"` // planner, coder, fixer, reviewer
	Timestamp string `json:"timestamp"`       // RFC3339Nano
}

// AttemptPayload is the payload for attempt.recorded events.
// Published when a coding attempt ends, whatever the outcome.
type AttemptPayload struct {
	Type          string `json:"type"`    // always EventTypeAttemptRecorded
	TaskID        string `json:"task_id"` // task UUID
	AttemptNumber int    `json:"attempt_number"`
	Outcome       string `json:"outcome"` // success, tests_failed, review_rejected, error
	FailureReason string `json:"failure_reason,omitempty"`
	TotalTokens   int    `json:"total_tokens"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// SubtaskStatusPayload is the payload for subtask.status events.
// Published as the orchestrator moves subtasks through their states.
type SubtaskStatusPayload struct {
	Type        string `json:"type"`       // always EventTypeSubtaskStatus
	TaskID      string `json:"task_id"`    // parent task UUID
	SubtaskID   string `json:"subtask_id"` // e.g. "s3"
	Title       string `json:"title"`
	Status      string `json:"status"` // pending, in_progress, completed, failed
	ChildTaskID string `json:"child_task_id,omitempty"`
	Completed   int    `json:"completed"` // completed subtask count for progress bars
	Total       int    `json:"total"`
	Timestamp   string `json:"timestamp"` // RFC3339Nano
}

// AgentActivityPayload is the payload for agent.activity transient events.
// High-frequency stage heartbeats — ephemeral, lost on disconnect.
type AgentActivityPayload struct {
	Type      string `json:"type"`    // always EventTypeAgentActivity
	TaskID    string `json:"task_id"` // task UUID
	Stage     string `json:"stage"`   // planner, coder, fixer, reviewer
	Model     string `json:"model"`
	Attempt   int    `json:"attempt"`
	Detail    string `json:"detail,omitempty"` // e.g. "retrying after 429"
	Timestamp string `json:"timestamp"`        // RFC3339Nano
}
