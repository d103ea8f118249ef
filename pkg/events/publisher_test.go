package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskProgressPayload{
			Type:    EventTypeTaskProgress,
			TaskID:  "abc-123",
			Message: "planner finished",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTaskProgress)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskProgressPayload{
			Type:    EventTypeTaskProgress,
			TaskID:  "abc-123",
			Message: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(TaskProgressPayload{
			Type:    EventTypeTaskProgress,
			TaskID:  "task-789",
			Message: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeTaskProgress)
		assert.Contains(t, result, "task-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("payload just under limit is not truncated", func(t *testing.T) {
		base, _ := json.Marshal(TaskProgressPayload{Type: "t"})
		// 20-byte margin against JSON encoding overhead drift.
		payload, _ := json.Marshal(TaskProgressPayload{
			Type:    "t",
			Message: strings.Repeat("b", 7900-len(base)-20),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:   EventTypeTaskStatus,
			TaskID: "abc-123",
			Status: "PLANNING",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(42), m["db_event_id"])
		assert.Equal(t, "PLANNING", m["status"])
	})

	t.Run("keeps db_event_id through truncation", func(t *testing.T) {
		payload, _ := json.Marshal(TaskProgressPayload{
			Type:    EventTypeTaskProgress,
			TaskID:  "abc-123",
			Message: strings.Repeat("y", 9000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 7)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, float64(7), m["db_event_id"])
		assert.Equal(t, "abc-123", m["task_id"])
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
	assert.Equal(t, "task:", TaskChannel(""))
}

func TestEventTypeConstants(t *testing.T) {
	types := []string{
		EventTypeTaskStatus,
		EventTypeTaskProgress,
		EventTypeAttemptRecorded,
		EventTypeSubtaskStatus,
		EventTypeAgentActivity,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}
