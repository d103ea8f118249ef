package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchpilot/patchpilot/pkg/models"
)

func TestAttemptLifecycle(t *testing.T) {
	memory, tasks := newTestMemoryService(t)
	ctx := context.Background()
	task := createTestTask(t, tasks, 1)

	n, err := memory.StartAttempt(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = memory.EndAttempt(ctx, task.ID, AttemptResult{
		Outcome:       models.AttemptTestsFailed,
		FailureReason: "TypeError: cannot read 'foo' at line 42",
		TotalTokens:   1200,
	})
	require.NoError(t, err)

	n, err = memory.StartAttempt(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mem, err := memory.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, mem.Attempts, 2)
	assert.Equal(t, models.AttemptTestsFailed, mem.Attempts[0].Outcome)
	assert.NotNil(t, mem.Attempts[0].EndedAt)
	assert.Equal(t, 1200, mem.Attempts[0].TotalTokens)
	assert.Equal(t, models.AttemptInProgress, mem.Attempts[1].Outcome)

	// Ending with no open attempt is an error.
	require.NoError(t, memory.EndAttempt(ctx, task.ID, AttemptResult{Outcome: models.AttemptSuccess}))
	err = memory.EndAttempt(ctx, task.ID, AttemptResult{Outcome: models.AttemptSuccess})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFailurePatternsMergeAcrossAttempts(t *testing.T) {
	memory, tasks := newTestMemoryService(t)
	ctx := context.Background()
	task := createTestTask(t, tasks, 1)

	// Same failure shape at different line numbers collapses into one pattern.
	for _, reason := range []string{
		"TypeError: cannot read 'foo' at line 42",
		"TypeError: cannot read 'bar' at line 97",
	} {
		_, err := memory.StartAttempt(ctx, task.ID)
		require.NoError(t, err)
		require.NoError(t, memory.EndAttempt(ctx, task.ID, AttemptResult{
			Outcome:       models.AttemptTestsFailed,
			FailureReason: reason,
		}))
	}

	patterns, err := memory.GetFailurePatterns(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, 2, patterns[0].Occurrences)
	assert.Equal(t, "TypeError: cannot read <LIT> at line <N>", patterns[0].Pattern)

	summary, err := memory.GetAttemptSummary(ctx, task.ID)
	require.NoError(t, err)
	assert.Contains(t, summary, "attempt 1: tests_failed")
	assert.Contains(t, summary, "attempt 2: tests_failed")
}

func TestProgressLedgerCounters(t *testing.T) {
	memory, tasks := newTestMemoryService(t)
	ctx := context.Background()
	task := createTestTask(t, tasks, 1)

	require.NoError(t, memory.LogProgress(ctx, task.ID, models.ProgressPlanned, models.PhasePlanning, 0, "planned", nil))
	require.NoError(t, memory.LogProgress(ctx, task.ID, models.ProgressError, models.PhaseTesting, 1, "tests failed", nil))
	require.NoError(t, memory.LogProgress(ctx, task.ID, models.ProgressRetryTriggered, models.PhaseTesting, 1, "retrying", nil))

	mem, err := memory.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, mem.Progress, 3)
	assert.Equal(t, 1, mem.ErrorCount)
	assert.Equal(t, 1, mem.RetryCount)
	assert.Equal(t, string(models.PhaseTesting), mem.Phase)

	errs, err := memory.GetRecentErrors(ctx, task.ID, 5)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "tests failed", errs[0].Summary)
}

func TestSetAgentOutputIsWriteOnce(t *testing.T) {
	memory, tasks := newTestMemoryService(t)
	ctx := context.Background()
	task := createTestTask(t, tasks, 1)

	out := &models.PlannerOutput{DefinitionOfDone: []string{"parser handles empty input"}}
	require.NoError(t, memory.SetAgentOutput(ctx, task.ID, models.StagePlanner, out))

	err := memory.SetAgentOutput(ctx, task.ID, models.StagePlanner, out)
	assert.ErrorIs(t, err, ErrOutputAlreadySet)

	var stored models.PlannerOutput
	require.NoError(t, memory.GetAgentOutput(ctx, task.ID, models.StagePlanner, &stored))
	assert.Equal(t, out.DefinitionOfDone, stored.DefinitionOfDone)
}

func TestCheckpointAndRestore(t *testing.T) {
	memory, tasks := newTestMemoryService(t)
	ctx := context.Background()
	task := createTestTask(t, tasks, 1)

	require.NoError(t, memory.LogProgress(ctx, task.ID, models.ProgressPlanned, models.PhasePlanning, 0, "planned", nil))
	_, err := memory.StartAttempt(ctx, task.ID)
	require.NoError(t, err)

	cp, err := memory.Checkpoint(ctx, task.ID, "entered CODING")
	require.NoError(t, err)

	// Mutations after the checkpoint are discarded by restore.
	require.NoError(t, memory.LogProgress(ctx, task.ID, models.ProgressError, models.PhaseCoding, 1, "lost entry", nil))
	require.NoError(t, memory.EndAttempt(ctx, task.ID, AttemptResult{
		Outcome:       models.AttemptError,
		FailureReason: "agent failure",
	}))

	require.NoError(t, memory.Restore(ctx, task.ID, cp.ID))

	mem, err := memory.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, mem.Attempts, 1)
	assert.Equal(t, models.AttemptInProgress, mem.Attempts[0].Outcome)
	assert.Equal(t, 0, mem.ErrorCount)
	assert.Empty(t, mem.FailurePatterns)
	require.NotNil(t, mem.LastCheckpointID)
	assert.Equal(t, cp.ID, *mem.LastCheckpointID)

	// The restore logs itself onto the restored ledger.
	last := mem.Progress[len(mem.Progress)-1]
	assert.Equal(t, models.ProgressRestored, last.Kind)
	for _, entry := range mem.Progress {
		assert.NotEqual(t, "lost entry", entry.Summary)
	}
}

func TestRestoreRejectsForeignCheckpoint(t *testing.T) {
	memory, tasks := newTestMemoryService(t)
	ctx := context.Background()
	taskA := createTestTask(t, tasks, 1)
	taskB := createTestTask(t, tasks, 2)

	cp, err := memory.Checkpoint(ctx, taskA.ID, "entered PLANNING")
	require.NoError(t, err)

	err = memory.Restore(ctx, taskB.ID, cp.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubtaskStatusTransitions(t *testing.T) {
	memory, tasks := newTestMemoryService(t)
	ctx := context.Background()
	task := createTestTask(t, tasks, 1)

	state := &models.OrchestrationState{
		Subtasks: []models.SubtaskState{
			{SubtaskDefinition: models.SubtaskDefinition{ID: "subtask-1", Title: "First"}, Status: models.SubtaskPending},
			{SubtaskDefinition: models.SubtaskDefinition{ID: "subtask-2", Title: "Second"}, Status: models.SubtaskPending},
		},
	}
	require.NoError(t, memory.SetOrchestration(ctx, task.ID, state))

	// Orchestration state is installed once.
	err := memory.SetOrchestration(ctx, task.ID, state)
	assert.ErrorIs(t, err, ErrConcurrentModification)

	// pending -> completed skips in_progress and is rejected.
	err = memory.UpdateSubtaskStatus(ctx, task.ID, "subtask-1", models.SubtaskCompleted, "", "diff")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	require.NoError(t, memory.UpdateSubtaskStatus(ctx, task.ID, "subtask-1", models.SubtaskInProgress, "child-id", ""))
	require.NoError(t, memory.UpdateSubtaskStatus(ctx, task.ID, "subtask-1", models.SubtaskCompleted, "", "the diff"))

	require.NoError(t, memory.SetAggregatedDiff(ctx, task.ID, "combined diff"))

	mem, err := memory.Get(ctx, task.ID)
	require.NoError(t, err)
	st := mem.Orchestration.Subtask("subtask-1")
	require.NotNil(t, st)
	assert.Equal(t, models.SubtaskCompleted, st.Status)
	assert.Equal(t, "the diff", st.Diff)
	assert.Equal(t, "child-id", st.ChildTaskID)
	assert.Equal(t, []string{"subtask-1"}, mem.Orchestration.CompletedSubtasks)
	assert.Equal(t, "combined diff", mem.Orchestration.AggregatedDiff)
	assert.False(t, mem.Orchestration.AllCompleted())
}
