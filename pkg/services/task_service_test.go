package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchpilot/patchpilot/pkg/models"
)

func TestCreateTaskValidation(t *testing.T) {
	tasks, _ := newTestTaskService(t)
	ctx := context.Background()

	_, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Issue: models.IssueRef{Number: 1, Title: "t"},
	})
	assert.True(t, IsValidationError(err))

	_, err = tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:  models.RepoRef{Owner: "acme", Name: "widgets"},
		Issue: models.IssueRef{Number: 0, Title: "t"},
	})
	assert.True(t, IsValidationError(err))
}

func TestCreateTaskIdempotentWhileLive(t *testing.T) {
	tasks, _ := newTestTaskService(t)
	ctx := context.Background()

	first := createTestTask(t, tasks, 1)

	// Re-trigger while the task is live: existing row wins.
	result, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:  models.RepoRef{Owner: "acme", Name: "widgets"},
		Issue: models.IssueRef{Number: 1, Title: "Fix parser crash"},
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, first.ID, result.Task.ID)
	assert.Equal(t, "task already in progress", result.Reason)

	// After a terminal state the latest trigger replaces the task.
	reason := "cancelled"
	_, err = tasks.UpdateStatus(ctx, first.ID, models.StatusFailed, StatusUpdate{LastError: &reason})
	require.NoError(t, err)

	result, err = tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:  models.RepoRef{Owner: "acme", Name: "widgets"},
		Issue: models.IssueRef{Number: 1, Title: "Fix parser crash"},
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEqual(t, first.ID, result.Task.ID)

	_, err = tasks.GetTask(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateTaskDeduplicatesWebhookDelivery(t *testing.T) {
	tasks, _ := newTestTaskService(t)
	ctx := context.Background()

	first, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:              models.RepoRef{Owner: "acme", Name: "widgets"},
		Issue:             models.IssueRef{Number: 1, Title: "Fix parser crash"},
		WebhookSource:     "github",
		WebhookDeliveryID: "delivery-1",
	})
	require.NoError(t, err)
	require.True(t, first.Created)
	assert.Equal(t, "github", first.Task.WebhookSource)
	assert.Equal(t, "delivery-1", first.Task.WebhookDeliveryID)

	// Complete the task, then re-deliver the same webhook event. Dedupe on
	// the delivery id answers the original task instead of starting over.
	reason := "done"
	_, err = tasks.UpdateStatus(ctx, first.Task.ID, models.StatusFailed, StatusUpdate{LastError: &reason})
	require.NoError(t, err)

	redelivered, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:              models.RepoRef{Owner: "acme", Name: "widgets"},
		Issue:             models.IssueRef{Number: 1, Title: "Fix parser crash"},
		WebhookSource:     "github",
		WebhookDeliveryID: "delivery-1",
	})
	require.NoError(t, err)
	assert.False(t, redelivered.Created)
	assert.Equal(t, first.Task.ID, redelivered.Task.ID)
	assert.Equal(t, "duplicate delivery", redelivered.Reason)

	// A fresh delivery id is a genuine new trigger: latest wins.
	replaced, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:              models.RepoRef{Owner: "acme", Name: "widgets"},
		Issue:             models.IssueRef{Number: 1, Title: "Fix parser crash"},
		WebhookSource:     "github",
		WebhookDeliveryID: "delivery-2",
	})
	require.NoError(t, err)
	assert.True(t, replaced.Created)
	assert.NotEqual(t, first.Task.ID, replaced.Task.ID)
}

func TestCreateTaskCreatesSessionMemory(t *testing.T) {
	tasks, client := newTestTaskService(t)
	task := createTestTask(t, tasks, 1)

	memory := NewMemoryService(client, DefaultStoreRetryConfig(), slog.Default())
	mem, err := memory.Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Empty(t, mem.Attempts)
	assert.Empty(t, mem.Progress)
}

func TestUpdateStatusEnforcesWorkflowEdges(t *testing.T) {
	tasks, _ := newTestTaskService(t)
	ctx := context.Background()
	task := createTestTask(t, tasks, 1)

	_, err := tasks.UpdateStatus(ctx, task.ID, models.StatusTesting, StatusUpdate{})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	updated, err := tasks.UpdateStatus(ctx, task.ID, models.StatusPlanning, StatusUpdate{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlanning, updated.Status)
	assert.NotNil(t, updated.StartedAt)

	updated, err = tasks.UpdateStatus(ctx, task.ID, models.StatusFailed, StatusUpdate{})
	require.NoError(t, err)
	assert.NotNil(t, updated.CompletedAt)

	// Terminal states accept no further transitions.
	_, err = tasks.UpdateStatus(ctx, task.ID, models.StatusPlanning, StatusUpdate{})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestChildTasksInheritAndOrder(t *testing.T) {
	tasks, _ := newTestTaskService(t)
	ctx := context.Background()
	parent := createTestTask(t, tasks, 1)

	defs := []models.SubtaskDefinition{
		{ID: "subtask-1", Title: "Update parser", Description: "d1", EstimatedComplexity: models.ComplexityXS,
			TargetFiles: []string{"pkg/parse/parse.go"}, AcceptanceCriteria: []string{"parser handles empty input"}},
		{ID: "subtask-2", Title: "Update printer", Description: "d2", EstimatedComplexity: models.ComplexityXS,
			TargetFiles: []string{"pkg/print/print.go"}, AcceptanceCriteria: []string{"printer escapes output"}},
	}
	for i, def := range defs {
		child, err := tasks.CreateChildTask(ctx, parent, def, i+1)
		require.NoError(t, err)
		assert.Equal(t, parent.RepoOwner, child.RepoOwner)
		assert.Equal(t, parent.IssueNumber, child.IssueNumber)
		assert.Equal(t, parent.MaxAttempts, child.MaxAttempts)
		require.NotNil(t, child.SubtaskIndex)
		assert.Equal(t, i+1, *child.SubtaskIndex)
		assert.Equal(t, def.TargetFiles, child.TargetFiles)
	}

	children, err := tasks.Children(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Update parser", children[0].IssueTitle)
	assert.Equal(t, "Update printer", children[1].IssueTitle)

	// Children are excluded from top-level listings.
	listed, err := tasks.ListTasks(ctx, models.TaskFilters{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, parent.ID, listed[0].ID)
}

func TestCompletedChildDiffsOrderedBySubtaskIndex(t *testing.T) {
	tasks, _ := newTestTaskService(t)
	ctx := context.Background()
	parent := createTestTask(t, tasks, 1)

	for i, def := range []models.SubtaskDefinition{
		{ID: "subtask-1", Title: "First", Description: "d", EstimatedComplexity: models.ComplexityXS},
		{ID: "subtask-2", Title: "Second", Description: "d", EstimatedComplexity: models.ComplexityXS},
	} {
		child, err := tasks.CreateChildTask(ctx, parent, def, i+1)
		require.NoError(t, err)

		_, err = tasks.SetDiff(ctx, child.ID, "diff for "+def.Title, def.Title)
		require.NoError(t, err)

		for _, status := range []models.Status{
			models.StatusPlanning, models.StatusPlanningDone, models.StatusCoding,
			models.StatusCodingDone, models.StatusTesting, models.StatusTestsPassed,
			models.StatusReviewing, models.StatusReviewApproved,
		} {
			_, err = tasks.UpdateStatus(ctx, child.ID, status, StatusUpdate{})
			require.NoError(t, err)
		}
	}

	diffs, err := tasks.CompletedChildDiffs(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, 1, diffs[0].SubtaskIndex)
	assert.Equal(t, "diff for First", diffs[0].Diff)
	assert.Equal(t, 2, diffs[1].SubtaskIndex)
	assert.Equal(t, "diff for Second", diffs[1].Diff)
}

func TestRepoEnabledDefaultsToAllow(t *testing.T) {
	tasks, client := newTestTaskService(t)
	ctx := context.Background()

	enabled, err := tasks.RepoEnabled(ctx, models.RepoRef{Owner: "acme", Name: "widgets"})
	require.NoError(t, err)
	assert.True(t, enabled)

	_, err = client.Repository.Create().
		SetOwner("acme").
		SetName("widgets").
		SetEnabled(false).
		Save(ctx)
	require.NoError(t, err)

	enabled, err = tasks.RepoEnabled(ctx, models.RepoRef{Owner: "acme", Name: "widgets"})
	require.NoError(t, err)
	assert.False(t, enabled)
}
