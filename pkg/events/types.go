// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Persistent events are written to the task_events table and broadcast
// via NOTIFY in the same transaction; clients that reconnect catch up
// from the table using the last db_event_id they saw. Transient events
// (high-frequency agent activity) are NOTIFY-only and lost on
// disconnect — the durable record lives in session memory and agent
// traces, not in the event stream.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Task lifecycle transitions (NEW → PLANNING → ... → COMPLETED/FAILED).
	EventTypeTaskStatus = "task.status"

	// Session-memory progress entries worth surfacing to clients.
	EventTypeTaskProgress = "task.progress"

	// An attempt finished (success, tests_failed, review_rejected, error).
	EventTypeAttemptRecorded = "attempt.recorded"

	// Subtask state changes during orchestration of a broken-down task.
	EventTypeSubtaskStatus = "subtask.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-agent activity while a stage runs — high-frequency, ephemeral.
	// The durable record is the agent trace, not the event stream.
	EventTypeAgentActivity = "agent.activity"
)

// GlobalTasksChannel is the channel for task-level status events.
// The task list page subscribes to this for real-time updates.
const GlobalTasksChannel = "tasks"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "task:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
