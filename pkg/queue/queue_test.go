package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
	"github.com/patchpilot/patchpilot/pkg/vcs"
)

func TestProcessableStatusesExcludeRestingStates(t *testing.T) {
	statuses := processableStatuses()
	assert.NotContains(t, statuses, models.StatusCompleted)
	assert.NotContains(t, statuses, models.StatusFailed)
	assert.NotContains(t, statuses, models.StatusWaitingHuman)
	assert.Contains(t, statuses, models.StatusNew)
	assert.Contains(t, statuses, models.StatusCoding)
	assert.Contains(t, statuses, models.StatusOrchestrating)
}

func TestResolvePull(t *testing.T) {
	next, reason, ok := resolvePull(&vcs.PullState{State: "closed", Merged: true})
	assert.True(t, ok)
	assert.Equal(t, models.StatusCompleted, next)
	assert.Empty(t, reason)

	next, reason, ok = resolvePull(&vcs.PullState{State: "closed", Merged: false})
	assert.True(t, ok)
	assert.Equal(t, models.StatusFailed, next)
	assert.Equal(t, "pull request closed without merge", reason)

	_, _, ok = resolvePull(&vcs.PullState{State: "open"})
	assert.False(t, ok)
}

type fakeReconcileStore struct {
	parked  []*ent.Task
	updates map[uuid.UUID]models.Status
	errors  map[uuid.UUID]string
}

func (s *fakeReconcileStore) TasksByStatus(_ context.Context, status models.Status) ([]*ent.Task, error) {
	if status != models.StatusWaitingHuman {
		return nil, nil
	}
	return s.parked, nil
}

func (s *fakeReconcileStore) UpdateStatus(_ context.Context, id uuid.UUID, next models.Status, upd services.StatusUpdate) (*ent.Task, error) {
	if s.updates == nil {
		s.updates = make(map[uuid.UUID]models.Status)
		s.errors = make(map[uuid.UUID]string)
	}
	s.updates[id] = next
	if upd.LastError != nil {
		s.errors[id] = *upd.LastError
	}
	return &ent.Task{ID: id, Status: next}, nil
}

type pullStateVCS struct {
	vcs.Client
	states map[int]*vcs.PullState
}

func (v *pullStateVCS) GetPullState(_ context.Context, _ models.RepoRef, number int) (*vcs.PullState, error) {
	st, ok := v.states[number]
	if !ok {
		return nil, fmt.Errorf("unknown pull %d", number)
	}
	return st, nil
}

type noopPublisher struct{}

func (noopPublisher) PublishTaskStatus(context.Context, string, events.TaskStatusPayload) error {
	return nil
}

func parkedTask(pr int) *ent.Task {
	n := pr
	return &ent.Task{
		ID:          uuid.New(),
		RepoOwner:   "octo",
		RepoName:    "widgets",
		IssueNumber: 1,
		Status:      models.StatusWaitingHuman,
		PrNumber:    &n,
	}
}

func TestSweepResolvesParkedTasksByPullState(t *testing.T) {
	merged := parkedTask(1)
	closed := parkedTask(2)
	open := parkedTask(3)
	noPR := &ent.Task{ID: uuid.New(), Status: models.StatusWaitingHuman}

	store := &fakeReconcileStore{parked: []*ent.Task{merged, closed, open, noPR}}
	client := &pullStateVCS{states: map[int]*vcs.PullState{
		1: {State: "closed", Merged: true},
		2: {State: "closed", Merged: false},
		3: {State: "open"},
	}}

	r := NewReconciler(store, client, noopPublisher{}, time.Minute)
	require.NoError(t, r.Sweep(context.Background()))

	assert.Equal(t, models.StatusCompleted, store.updates[merged.ID])
	assert.Equal(t, models.StatusFailed, store.updates[closed.ID])
	assert.Equal(t, "pull request closed without merge", store.errors[closed.ID])
	assert.NotContains(t, store.updates, open.ID)
	assert.NotContains(t, store.updates, noPR.ID)
}
