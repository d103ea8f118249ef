package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
)

type fakeStore struct {
	tasks    map[uuid.UUID]*ent.Task
	children map[uuid.UUID][]*ent.Task

	created      []models.CreateTaskRequest
	createResult *services.CreateResult
	createErr    error

	updates  map[uuid.UUID]models.Status
	disabled map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks:    make(map[uuid.UUID]*ent.Task),
		children: make(map[uuid.UUID][]*ent.Task),
		updates:  make(map[uuid.UUID]models.Status),
		disabled: make(map[string]bool),
	}
}

func (s *fakeStore) RepoEnabled(_ context.Context, repo models.RepoRef) (bool, error) {
	return !s.disabled[repo.String()], nil
}

func (s *fakeStore) CreateTask(_ context.Context, req models.CreateTaskRequest) (*services.CreateResult, error) {
	s.created = append(s.created, req)
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.createResult != nil {
		return s.createResult, nil
	}
	t := &ent.Task{
		ID:          uuid.New(),
		RepoOwner:   req.Repo.Owner,
		RepoName:    req.Repo.Name,
		IssueNumber: req.Issue.Number,
		IssueTitle:  req.Issue.Title,
		Status:      models.StatusNew,
		MaxAttempts: req.MaxAttempts,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.tasks[t.ID] = t
	return &services.CreateResult{Task: t, Created: true}, nil
}

func (s *fakeStore) GetTask(_ context.Context, id uuid.UUID) (*ent.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return t, nil
}

func (s *fakeStore) ListTasks(_ context.Context, filters models.TaskFilters) ([]*ent.Task, error) {
	var out []*ent.Task
	for _, t := range s.tasks {
		if filters.Status != "" && string(t.Status) != filters.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *fakeStore) Children(_ context.Context, parentID uuid.UUID) ([]*ent.Task, error) {
	return s.children[parentID], nil
}

func (s *fakeStore) UpdateStatus(_ context.Context, id uuid.UUID, next models.Status, upd services.StatusUpdate) (*ent.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if !t.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", services.ErrIllegalTransition, t.Status, next)
	}
	t.Status = next
	if upd.LastError != nil {
		t.LastError = *upd.LastError
	}
	s.updates[id] = next
	return t, nil
}

type fakeCanceler struct {
	inFlight map[uuid.UUID]bool
	called   []uuid.UUID
}

func (c *fakeCanceler) Cancel(taskID uuid.UUID) bool {
	c.called = append(c.called, taskID)
	return c.inFlight[taskID]
}

type fakeCheckpoints struct {
	byTask map[uuid.UUID][]*ent.Checkpoint
}

func (c *fakeCheckpoints) List(_ context.Context, taskID uuid.UUID) ([]*ent.Checkpoint, error) {
	return c.byTask[taskID], nil
}

type fakeMemory struct {
	byTask map[uuid.UUID]*models.OrchestrationState
}

func (m *fakeMemory) Orchestration(_ context.Context, taskID uuid.UUID) (*models.OrchestrationState, error) {
	return m.byTask[taskID], nil
}

func newTestServer(store *fakeStore, canceler Canceler) *Server {
	return newTestServerWithCheckpoints(store, canceler, &fakeCheckpoints{})
}

func newTestServerWithCheckpoints(store *fakeStore, canceler Canceler, cps CheckpointLister) *Server {
	return NewServer(Config{
		Port:        0,
		GinMode:     "test",
		MaxAttempts: 3,
		TaskService: store,
		Canceler:    canceler,
		Checkpoints: cps,
	})
}

func newTestServerWithTriggerLabel(store *fakeStore, label string) *Server {
	return NewServer(Config{
		Port:         0,
		GinMode:      "test",
		MaxAttempts:  3,
		TriggerLabel: label,
		TaskService:  store,
		Canceler:     &fakeCanceler{},
		Checkpoints:  &fakeCheckpoints{},
	})
}

func newTestServerWithMemory(store *fakeStore, memory OrchestrationReader) *Server {
	return NewServer(Config{
		Port:        0,
		GinMode:     "test",
		MaxAttempts: 3,
		TaskService: store,
		Canceler:    &fakeCanceler{},
		Checkpoints: &fakeCheckpoints{},
		Memory:      memory,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func issuePayload(action string, number int) map[string]any {
	return map[string]any{
		"action": action,
		"issue": map[string]any{
			"number": number,
			"title":  "Fix widget rendering",
			"body":   "The widget renders upside down.",
		},
		"repository": map[string]any{
			"full_name": "octo/widgets",
			"owner":     map[string]any{"login": "octo"},
			"name":      "widgets",
		},
	}
}

func TestWebhookOpenedIssueCreatesTask(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", issuePayload("opened", 42))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["triggered"])
	assert.NotEmpty(t, resp["task_id"])

	require.Len(t, store.created, 1)
	req := store.created[0]
	assert.Equal(t, "octo", req.Repo.Owner)
	assert.Equal(t, "widgets", req.Repo.Name)
	assert.Equal(t, 42, req.Issue.Number)
	assert.Equal(t, 3, req.MaxAttempts)
	assert.Equal(t, "github", req.WebhookSource)
}

func TestWebhookForwardsDeliveryID(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store, &fakeCanceler{})

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(issuePayload("opened", 42)))
	req := httptest.NewRequest(http.MethodPost, "/webhooks/github", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Delivery", "delivery-abc-123")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "delivery-abc-123", store.created[0].WebhookDeliveryID)
}

func TestWebhookTriggerLabelGatesCreation(t *testing.T) {
	store := newFakeStore()
	srv := newTestServerWithTriggerLabel(store, "patchpilot")

	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", issuePayload("opened", 42))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["triggered"])
	assert.Contains(t, resp["reason"], "missing trigger label")
	assert.Empty(t, store.created)
}

func TestWebhookTriggerLabelOnIssueCreatesTask(t *testing.T) {
	store := newFakeStore()
	srv := newTestServerWithTriggerLabel(store, "patchpilot")

	payload := issuePayload("opened", 42)
	payload["issue"].(map[string]any)["labels"] = []map[string]any{{"name": "bug"}, {"name": "patchpilot"}}
	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
}

func TestWebhookLabeledEventLabelCreatesTask(t *testing.T) {
	store := newFakeStore()
	srv := newTestServerWithTriggerLabel(store, "patchpilot")

	payload := issuePayload("labeled", 42)
	payload["label"] = map[string]any{"name": "patchpilot"}
	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
}

func TestWebhookIgnoresUntriggeredActions(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", issuePayload("closed", 42))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["triggered"])
	assert.Contains(t, resp["reason"], "ignored action")
	assert.Empty(t, store.created)
}

func TestWebhookRedeliveryAnswersExistingTask(t *testing.T) {
	store := newFakeStore()
	existing := &ent.Task{ID: uuid.New(), Status: models.StatusCoding}
	store.createResult = &services.CreateResult{Task: existing, Created: false, Reason: "task already in progress"}
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", issuePayload("reopened", 42))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["triggered"])
	assert.Equal(t, "task already in progress", resp["reason"])
	assert.Equal(t, existing.ID.String(), resp["task_id"])
}

func TestWebhookDisabledRepositoryNotTriggered(t *testing.T) {
	store := newFakeStore()
	store.disabled["octo/widgets"] = true
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", issuePayload("opened", 42))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["triggered"])
	assert.Equal(t, "repository disabled", resp["reason"])
	assert.Empty(t, store.created)
}

func TestWebhookMissingRepoIsRejected(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store, &fakeCanceler{})

	payload := issuePayload("opened", 42)
	payload["repository"] = map[string]any{}
	w := doJSON(t, srv.Handler(), http.MethodPost, "/webhooks/github", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)
}

func seedTask(store *fakeStore, status models.Status) *ent.Task {
	t := &ent.Task{
		ID:          uuid.New(),
		RepoOwner:   "octo",
		RepoName:    "widgets",
		IssueNumber: 7,
		IssueTitle:  "Fix widget rendering",
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	store.tasks[t.ID] = t
	return t
}

func TestGetTaskReturnsDetail(t *testing.T) {
	store := newFakeStore()
	parent := seedTask(store, models.StatusOrchestrating)
	parent.IsOrchestrated = true
	idx := 1
	store.children[parent.ID] = []*ent.Task{{
		ID:           uuid.New(),
		RepoOwner:    "octo",
		RepoName:     "widgets",
		IssueNumber:  7,
		Status:       models.StatusCoding,
		SubtaskIndex: &idx,
	}}
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodGet, "/api/tasks/"+parent.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp taskDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, parent.ID, resp.ID)
	assert.Equal(t, "octo/widgets", resp.Repo)
	assert.Equal(t, string(models.StatusOrchestrating), resp.Status)
	assert.Equal(t, string(models.PhaseOrchestrating), resp.Phase)
	require.Len(t, resp.Subtasks, 1)
	assert.Equal(t, string(models.StatusCoding), resp.Subtasks[0].Status)
}

func TestGetTaskIncludesOrchestrationView(t *testing.T) {
	store := newFakeStore()
	parent := seedTask(store, models.StatusOrchestrating)
	parent.IsOrchestrated = true
	memory := &fakeMemory{byTask: map[uuid.UUID]*models.OrchestrationState{
		parent.ID: {
			Subtasks: []models.SubtaskState{
				{SubtaskDefinition: models.SubtaskDefinition{ID: "subtask1", EstimatedLines: 30}, Status: models.SubtaskCompleted},
				{SubtaskDefinition: models.SubtaskDefinition{ID: "subtask2", EstimatedLines: 10, Dependencies: []string{"subtask1"}}, Status: models.SubtaskInProgress},
			},
			CompletedSubtasks: []string{"subtask1"},
		},
	}}
	srv := newTestServerWithMemory(store, memory)

	w := doJSON(t, srv.Handler(), http.MethodGet, "/api/tasks/"+parent.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp taskDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Orchestration)
	assert.Equal(t, 1, resp.Orchestration.CompletedSubtasks)
	assert.Equal(t, 2, resp.Orchestration.TotalSubtasks)
	assert.InDelta(t, 0.75, resp.Orchestration.Progress, 0.001)
	assert.Equal(t, []string{"subtask1", "subtask2"}, resp.Orchestration.CriticalPath)
}

func TestGetTaskNotFound(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeCanceler{})
	w := doJSON(t, srv.Handler(), http.MethodGet, "/api/tasks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTaskInvalidID(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeCanceler{})
	w := doJSON(t, srv.Handler(), http.MethodGet, "/api/tasks/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCheckpointsReturnsHistory(t *testing.T) {
	store := newFakeStore()
	task := seedTask(store, models.StatusCoding)
	cps := &fakeCheckpoints{byTask: map[uuid.UUID][]*ent.Checkpoint{
		task.ID: {
			{ID: uuid.New(), TaskID: task.ID, Reason: "entered CODING", CreatedAt: time.Now()},
			{ID: uuid.New(), TaskID: task.ID, Reason: "entered PLANNING", CreatedAt: time.Now().Add(-time.Minute)},
		},
	}}
	srv := newTestServerWithCheckpoints(store, &fakeCanceler{}, cps)

	w := doJSON(t, srv.Handler(), http.MethodGet, "/api/tasks/"+task.ID.String()+"/checkpoints", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Checkpoints []checkpointResponse `json:"checkpoints"`
		Count       int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "entered CODING", resp.Checkpoints[0].Reason)

	w = doJSON(t, srv.Handler(), http.MethodGet, "/api/tasks/"+uuid.NewString()+"/checkpoints", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasksFiltersByStatus(t *testing.T) {
	store := newFakeStore()
	seedTask(store, models.StatusCoding)
	seedTask(store, models.StatusCompleted)
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodGet, "/api/tasks?status=CODING", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []taskResponse `json:"tasks"`
		Count int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, string(models.StatusCoding), resp.Tasks[0].Status)
}

func TestProcessAcceptsProcessableTask(t *testing.T) {
	store := newFakeStore()
	task := seedTask(store, models.StatusNew)
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/api/tasks/"+task.ID.String()+"/process", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestProcessRejectsRestingTask(t *testing.T) {
	store := newFakeStore()
	parked := seedTask(store, models.StatusWaitingHuman)
	done := seedTask(store, models.StatusCompleted)
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/api/tasks/"+parked.ID.String()+"/process", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, srv.Handler(), http.MethodPost, "/api/tasks/"+done.ID.String()+"/process", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelInFlightTaskUsesCanceler(t *testing.T) {
	store := newFakeStore()
	task := seedTask(store, models.StatusCoding)
	canceler := &fakeCanceler{inFlight: map[uuid.UUID]bool{task.ID: true}}
	srv := newTestServer(store, canceler)

	w := doJSON(t, srv.Handler(), http.MethodPost, "/api/tasks/"+task.ID.String()+"/cancel", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []uuid.UUID{task.ID}, canceler.called)
	assert.Empty(t, store.updates) // In-flight cancel goes through the worker, not the store.
}

func TestCancelQueuedTaskFailsIt(t *testing.T) {
	store := newFakeStore()
	task := seedTask(store, models.StatusNew)
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/api/tasks/"+task.ID.String()+"/cancel", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, models.StatusFailed, store.updates[task.ID])
	assert.Equal(t, "cancelled", task.LastError)
}

func TestCancelCompletedTaskConflicts(t *testing.T) {
	store := newFakeStore()
	task := seedTask(store, models.StatusCompleted)
	srv := newTestServer(store, &fakeCanceler{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/api/tasks/"+task.ID.String()+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
