package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/agent"
	"github.com/patchpilot/patchpilot/pkg/diff"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/fault"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
	"github.com/patchpilot/patchpilot/pkg/vcs"
)

// --- task store fake ---

type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*ent.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]*ent.Task)}
}

func (s *fakeTaskStore) add(t *ent.Task) *ent.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.MaxAttempts == 0 {
		t.MaxAttempts = 3
	}
	if t.Status == "" {
		t.Status = models.StatusNew
	}
	s.tasks[t.ID] = t
	return t
}

func (s *fakeTaskStore) GetTask(_ context.Context, id uuid.UUID) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (s *fakeTaskStore) UpdateStatus(_ context.Context, id uuid.UUID, next models.Status, upd services.StatusUpdate) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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
	} else if upd.ClearLastError {
		t.LastError = ""
	}
	if upd.BranchName != "" {
		t.BranchName = upd.BranchName
	}
	if upd.AttemptCount != nil {
		t.AttemptCount = *upd.AttemptCount
	}
	if upd.TotalAttempts != nil {
		t.TotalAttempts = *upd.TotalAttempts
	}
	if upd.EscalationLevel != nil {
		t.EscalationLevel = *upd.EscalationLevel
	}
	clone := *t
	return &clone, nil
}

func (s *fakeTaskStore) SetPlanArtifacts(_ context.Context, id uuid.UUID, out *models.PlannerOutput) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tasks[id]
	t.DefinitionOfDone = out.DefinitionOfDone
	t.Plan = out.Plan
	t.TargetFiles = out.TargetFiles
	t.EstimatedComplexity = string(out.EstimatedComplexity)
	t.EstimatedEffort = string(out.EstimatedEffort)
	clone := *t
	return &clone, nil
}

func (s *fakeTaskStore) SetDiff(_ context.Context, id uuid.UUID, diff, commitMessage string) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tasks[id]
	t.CurrentDiff = diff
	t.CommitMessage = commitMessage
	clone := *t
	return &clone, nil
}

func (s *fakeTaskStore) SetPR(_ context.Context, id uuid.UUID, pr models.PRRef) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tasks[id]
	t.PrNumber = &pr.Number
	t.PrURL = pr.URL
	clone := *t
	return &clone, nil
}

func (s *fakeTaskStore) CreateChildTask(_ context.Context, parent *ent.Task, def models.SubtaskDefinition, index int) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := index
	child := &ent.Task{
		ID:                  uuid.New(),
		RepoOwner:           parent.RepoOwner,
		RepoName:            parent.RepoName,
		IssueNumber:         parent.IssueNumber,
		IssueTitle:          def.Title,
		IssueBody:           def.Description,
		Status:              models.StatusNew,
		ParentTaskID:        &parent.ID,
		SubtaskIndex:        &idx,
		MaxAttempts:         parent.MaxAttempts,
		EstimatedComplexity: string(def.EstimatedComplexity),
		DefinitionOfDone:    def.AcceptanceCriteria,
		TargetFiles:         def.TargetFiles,
	}
	s.tasks[child.ID] = child
	clone := *child
	return &clone, nil
}

func (s *fakeTaskStore) MarkOrchestrated(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[id].IsOrchestrated = true
	return nil
}

func (s *fakeTaskStore) Children(_ context.Context, parentID uuid.UUID) ([]*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*ent.Task
	for _, t := range s.tasks {
		if t.ParentTaskID != nil && *t.ParentTaskID == parentID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

// --- memory store fake ---

type memState struct {
	attempts      []models.AttemptRecord
	patterns      []models.FailurePattern
	outputs       map[string]any
	orchestration *models.OrchestrationState
	checkpoints   int
	restores      int
	lastCP        *uuid.UUID
	progress      []models.ProgressEntry
}

type fakeMemoryStore struct {
	mu    sync.Mutex
	state map[uuid.UUID]*memState
}

func newFakeMemoryStore() *fakeMemoryStore {
	return &fakeMemoryStore{state: make(map[uuid.UUID]*memState)}
}

func (m *fakeMemoryStore) of(taskID uuid.UUID) *memState {
	st, ok := m.state[taskID]
	if !ok {
		st = &memState{outputs: make(map[string]any)}
		m.state[taskID] = st
	}
	return st
}

func (m *fakeMemoryStore) Get(_ context.Context, taskID uuid.UUID) (*ent.SessionMemory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.of(taskID)
	mem := &ent.SessionMemory{
		TaskID:           taskID,
		Attempts:         append([]models.AttemptRecord(nil), st.attempts...),
		FailurePatterns:  append([]models.FailurePattern(nil), st.patterns...),
		Progress:         append([]models.ProgressEntry(nil), st.progress...),
		LastCheckpointID: st.lastCP,
	}
	if st.orchestration != nil {
		clone := *st.orchestration
		clone.Subtasks = append([]models.SubtaskState(nil), st.orchestration.Subtasks...)
		clone.CompletedSubtasks = append([]string(nil), st.orchestration.CompletedSubtasks...)
		mem.Orchestration = &clone
	}
	return mem, nil
}

func (m *fakeMemoryStore) LogProgress(_ context.Context, taskID uuid.UUID, kind models.ProgressKind, phase models.Phase, attempt int, summary string, _ json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.of(taskID)
	st.progress = append(st.progress, models.ProgressEntry{
		Kind: kind, Phase: phase, Attempt: attempt, Summary: summary, Timestamp: time.Now(),
	})
	return nil
}

func (m *fakeMemoryStore) StartAttempt(_ context.Context, taskID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.of(taskID)
	n := len(st.attempts) + 1
	st.attempts = append(st.attempts, models.AttemptRecord{
		AttemptNumber: n,
		StartedAt:     time.Now(),
		Outcome:       models.AttemptInProgress,
	})
	return n, nil
}

func (m *fakeMemoryStore) EndAttempt(_ context.Context, taskID uuid.UUID, result services.AttemptResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.of(taskID)
	for i := len(st.attempts) - 1; i >= 0; i-- {
		if st.attempts[i].Outcome == models.AttemptInProgress {
			now := time.Now()
			st.attempts[i].EndedAt = &now
			st.attempts[i].Outcome = result.Outcome
			st.attempts[i].FailureReason = result.FailureReason
			st.attempts[i].FailureDetails = result.FailureDetails
			if result.Outcome != models.AttemptSuccess && result.FailureReason != "" {
				st.patterns = models.MergeFailurePattern(st.patterns, result.FailureReason, now)
			}
			return nil
		}
	}
	return fmt.Errorf("no in-progress attempt to end")
}

func (m *fakeMemoryStore) SetAgentOutput(_ context.Context, taskID uuid.UUID, stage models.Stage, output any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.of(taskID)
	if _, exists := st.outputs[string(stage)]; exists {
		return fmt.Errorf("%w: %s", services.ErrOutputAlreadySet, stage)
	}
	st.outputs[string(stage)] = output
	return nil
}

func (m *fakeMemoryStore) SetOrchestration(_ context.Context, taskID uuid.UUID, state *models.OrchestrationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.of(taskID).orchestration = state
	return nil
}

func (m *fakeMemoryStore) UpdateSubtaskStatus(_ context.Context, taskID uuid.UUID, subtaskID string, status models.SubtaskStatus, childTaskID string, diff string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := m.of(taskID).orchestration
	if state == nil {
		return fmt.Errorf("no orchestration state")
	}
	st := state.Subtask(subtaskID)
	if st == nil {
		return fmt.Errorf("unknown subtask %q", subtaskID)
	}
	if !st.Status.CanTransitionTo(status) {
		return fmt.Errorf("illegal subtask transition %s -> %s", st.Status, status)
	}
	st.Status = status
	switch status {
	case models.SubtaskInProgress:
		st.Attempts++
		st.ChildTaskID = childTaskID
	case models.SubtaskCompleted:
		st.Diff = diff
		state.CompletedSubtasks = append(state.CompletedSubtasks, subtaskID)
	}
	return nil
}

func (m *fakeMemoryStore) SetAggregatedDiff(_ context.Context, taskID uuid.UUID, diff string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := m.of(taskID).orchestration
	if state == nil {
		return fmt.Errorf("no orchestration state")
	}
	state.AggregatedDiff = diff
	return nil
}

func (m *fakeMemoryStore) Checkpoint(_ context.Context, taskID uuid.UUID, _ string) (*ent.Checkpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.of(taskID)
	st.checkpoints++
	id := uuid.New()
	st.lastCP = &id
	return &ent.Checkpoint{ID: id, TaskID: taskID}, nil
}

func (m *fakeMemoryStore) Restore(_ context.Context, taskID uuid.UUID, _ uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.of(taskID).restores++
	return nil
}

func (m *fakeMemoryStore) GetFailurePatterns(_ context.Context, taskID uuid.UUID) ([]models.FailurePattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FailurePattern
	for _, p := range m.of(taskID).patterns {
		if p.Occurrences >= 2 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *fakeMemoryStore) GetAttemptSummary(_ context.Context, taskID uuid.UUID) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var b strings.Builder
	for _, a := range m.of(taskID).attempts {
		fmt.Fprintf(&b, "attempt %d: %s\n", a.AttemptNumber, a.Outcome)
	}
	return b.String(), nil
}

// --- agent runner fake ---

type fakeRunner struct {
	mu          sync.Mutex
	planFn      func(agent.Call, agent.PlannerInput) (*models.PlannerOutput, error)
	codeFn      func(agent.Call, agent.CoderInput) (*models.CoderOutput, error)
	fixFn       func(agent.Call, agent.FixerInput) (*models.FixerOutput, error)
	reviewFn    func(agent.Call, agent.ReviewerInput) (*models.ReviewerOutput, error)
	coderCalls  []agent.Call
	fixerCalls  []agent.Call
	reviewCalls int
	planCalls   int
}

func (r *fakeRunner) RunPlanner(_ context.Context, call agent.Call, in agent.PlannerInput) (*models.PlannerOutput, agent.Usage, error) {
	r.mu.Lock()
	r.planCalls++
	r.mu.Unlock()
	out, err := r.planFn(call, in)
	return out, agent.Usage{InputTokens: 100, OutputTokens: 50}, err
}

func (r *fakeRunner) RunCoder(_ context.Context, call agent.Call, in agent.CoderInput) (*models.CoderOutput, agent.Usage, error) {
	r.mu.Lock()
	r.coderCalls = append(r.coderCalls, call)
	r.mu.Unlock()
	out, err := r.codeFn(call, in)
	return out, agent.Usage{InputTokens: 200, OutputTokens: 100}, err
}

func (r *fakeRunner) RunFixer(_ context.Context, call agent.Call, in agent.FixerInput) (*models.FixerOutput, agent.Usage, error) {
	r.mu.Lock()
	r.fixerCalls = append(r.fixerCalls, call)
	r.mu.Unlock()
	out, err := r.fixFn(call, in)
	return out, agent.Usage{}, err
}

func (r *fakeRunner) RunReviewer(_ context.Context, call agent.Call, in agent.ReviewerInput) (*models.ReviewerOutput, agent.Usage, error) {
	r.mu.Lock()
	r.reviewCalls++
	r.mu.Unlock()
	out, err := r.reviewFn(call, in)
	return out, agent.Usage{}, err
}

// --- vcs fake ---

type fakeVCS struct {
	mu             sync.Mutex
	branches       []string
	applied        []string
	comments       []string
	prCreated      int
	checksFn       func() *vcs.CheckResult
	applyErr       error
	createPRCalled bool
}

func newFakeVCS() *fakeVCS {
	return &fakeVCS{checksFn: func() *vcs.CheckResult { return &vcs.CheckResult{Success: true} }}
}

func (v *fakeVCS) GetIssue(context.Context, models.RepoRef, int) (*vcs.Issue, error) {
	return &vcs.Issue{Number: 1, Title: "t", State: "open"}, nil
}

func (v *fakeVCS) GetRepoContext(context.Context, models.RepoRef, []string) (string, error) {
	return "repo context", nil
}

func (v *fakeVCS) GetFilesContent(_ context.Context, _ models.RepoRef, paths []string, _ string) (map[string]string, error) {
	out := make(map[string]string, len(paths))
	for _, p := range paths {
		out[p] = "contents of " + p
	}
	return out, nil
}

func (v *fakeVCS) CreateBranch(_ context.Context, _ models.RepoRef, branch, _ string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.branches = append(v.branches, branch)
	return nil
}

func (v *fakeVCS) ApplyDiff(_ context.Context, _ models.RepoRef, branch, diffText, _ string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.applyErr != nil {
		return "", v.applyErr
	}
	v.applied = append(v.applied, branch+":"+diffText)
	return "headsha", nil
}

func (v *fakeVCS) CreatePR(_ context.Context, _ models.RepoRef, head, _, _, _ string) (*models.PRRef, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.prCreated++
	v.createPRCalled = true
	return &models.PRRef{Number: 101, URL: "https://example.test/pr/101", Branch: head}, nil
}

func (v *fakeVCS) UpdatePR(context.Context, models.RepoRef, int, string, string) error { return nil }

func (v *fakeVCS) AddComment(_ context.Context, _ models.RepoRef, _ int, body string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.comments = append(v.comments, body)
	return nil
}

func (v *fakeVCS) AddLabels(context.Context, models.RepoRef, int, []string) error { return nil }

func (v *fakeVCS) GetPullState(context.Context, models.RepoRef, int) (*vcs.PullState, error) {
	return &vcs.PullState{State: "open"}, nil
}

func (v *fakeVCS) WaitForChecks(context.Context, models.RepoRef, string, time.Duration) (*vcs.CheckResult, error) {
	return v.checksFn(), nil
}

// --- publisher fake ---

type fakePublisher struct {
	mu       sync.Mutex
	statuses []events.TaskStatusPayload
	subtasks []events.SubtaskStatusPayload
}

func (p *fakePublisher) PublishTaskStatus(_ context.Context, _ string, payload events.TaskStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, payload)
	return nil
}

func (p *fakePublisher) PublishTaskProgress(context.Context, string, events.TaskProgressPayload) error {
	return nil
}

func (p *fakePublisher) PublishAttempt(context.Context, string, events.AttemptPayload) error {
	return nil
}

func (p *fakePublisher) PublishSubtaskStatus(_ context.Context, _ string, payload events.SubtaskStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subtasks = append(p.subtasks, payload)
	return nil
}

// --- fixtures ---

const simpleDiff = `diff --git a/pkg/a/a.go b/pkg/a/a.go
--- a/pkg/a/a.go
+++ b/pkg/a/a.go
@@ -1,1 +1,1 @@
-old a
+new a
`

func diffFor(path, old, new_ string) string {
	return fmt.Sprintf("diff --git a/%s b/%s\n--- a/%s\n+++ b/%s\n@@ -1,1 +1,1 @@\n-%s\n+%s\n",
		path, path, path, path, old, new_)
}

func simplePlan() *models.PlannerOutput {
	return &models.PlannerOutput{
		DefinitionOfDone: []string{"bug fixed"},
		Plan: []models.PlanStep{
			{File: "pkg/a/a.go", Operation: "modify", Description: "fix it", EstimatedLines: 10},
		},
		TargetFiles:         []string{"pkg/a/a.go"},
		EstimatedComplexity: models.ComplexityS,
		EstimatedEffort:     models.EffortLow,
	}
}

type env struct {
	store  *fakeTaskStore
	memory *fakeMemoryStore
	runner *fakeRunner
	vcs    *fakeVCS
	pub    *fakePublisher
	engine *Engine
}

func newEnv() *env {
	e := &env{
		store:  newFakeTaskStore(),
		memory: newFakeMemoryStore(),
		runner: &fakeRunner{},
		vcs:    newFakeVCS(),
		pub:    &fakePublisher{},
	}
	e.runner.planFn = func(agent.Call, agent.PlannerInput) (*models.PlannerOutput, error) {
		return simplePlan(), nil
	}
	e.runner.codeFn = func(_ agent.Call, in agent.CoderInput) (*models.CoderOutput, error) {
		return &models.CoderOutput{
			Diff:          simpleDiff,
			CommitMessage: "fix: " + in.Title,
			FilesModified: in.TargetFiles,
		}, nil
	}
	e.runner.fixFn = func(agent.Call, agent.FixerInput) (*models.FixerOutput, error) {
		return &models.FixerOutput{Diff: simpleDiff, CommitMessage: "fix again", FixDescription: "retried"}, nil
	}
	e.runner.reviewFn = func(agent.Call, agent.ReviewerInput) (*models.ReviewerOutput, error) {
		return &models.ReviewerOutput{Verdict: models.VerdictApprove}, nil
	}
	e.engine = NewEngine(e.store, e.memory, e.runner, e.vcs, e.pub, Config{MaxParallel: 3, CheckTimeout: time.Second})
	return e
}

func (e *env) newRootTask() *ent.Task {
	return e.store.add(&ent.Task{
		RepoOwner:   "octo",
		RepoName:    "widgets",
		IssueNumber: 7,
		IssueTitle:  "Fix the crash",
		IssueBody:   "It crashes on startup",
	})
}

// --- tests ---

func TestProcessSimpleTaskToHumanReview(t *testing.T) {
	e := newEnv()
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, err := e.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	require.NotNil(t, final.PrNumber)
	assert.Equal(t, 101, *final.PrNumber)
	assert.Equal(t, "patchpilot/issue-7", final.BranchName)
	assert.Empty(t, final.LastError)

	// One coder attempt, closed as success at review approval.
	mem := e.memory.of(task.ID)
	require.Len(t, mem.attempts, 1)
	assert.Equal(t, models.AttemptSuccess, mem.attempts[0].Outcome)

	assert.NotEmpty(t, e.vcs.applied)
	assert.Contains(t, e.vcs.branches, "patchpilot/issue-7")

	// The status stream saw the full pipeline, ending at WAITING_HUMAN.
	last := e.pub.statuses[len(e.pub.statuses)-1]
	assert.Equal(t, string(models.StatusWaitingHuman), last.Status)
}

func TestProcessResumesFromPersistedStatus(t *testing.T) {
	e := newEnv()
	task := e.newRootTask()
	task.Status = models.StatusTesting
	task.BranchName = "patchpilot/issue-7"
	task.CurrentDiff = simpleDiff
	task.CommitMessage = "fix: resume"
	task.EstimatedComplexity = string(models.ComplexityS)
	e.memory.of(task.ID).attempts = []models.AttemptRecord{
		{AttemptNumber: 1, Outcome: models.AttemptInProgress},
	}

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	// The planner and coder never re-ran; only testing onward.
	assert.Zero(t, e.runner.planCalls)
	assert.Empty(t, e.runner.coderCalls)
	assert.Equal(t, 1, e.runner.reviewCalls)
}

func TestProcessEscalatesThenParksForHuman(t *testing.T) {
	e := newEnv()
	e.vcs.checksFn = func() *vcs.CheckResult {
		return &vcs.CheckResult{Success: false, ErrorSummary: "unit tests: 3 failed"}
	}
	task := e.newRootTask()
	task.MaxAttempts = 1 // budget = 1 regular + 2 escalation

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	assert.Equal(t, maxAttemptsError, final.LastError)

	// Attempt 1 on the routed model, attempts 2 and 3 on escalation levels.
	require.Len(t, e.runner.coderCalls, 1)
	assert.Equal(t, 0, e.runner.coderCalls[0].EscalationLevel)
	require.Len(t, e.runner.fixerCalls, 2)
	assert.Equal(t, 1, e.runner.fixerCalls[0].EscalationLevel)
	assert.Equal(t, 2, e.runner.fixerCalls[1].EscalationLevel)

	mem := e.memory.of(task.ID)
	require.Len(t, mem.attempts, 3)
	for _, a := range mem.attempts {
		assert.Equal(t, models.AttemptTestsFailed, a.Outcome)
	}
}

func TestProcessRetriesFailedCoderAttempt(t *testing.T) {
	e := newEnv()
	var calls int
	e.runner.codeFn = func(_ agent.Call, in agent.CoderInput) (*models.CoderOutput, error) {
		calls++
		if calls == 1 {
			return nil, fault.Newf(fault.ModelFatal, "completion failed after retries")
		}
		return &models.CoderOutput{Diff: simpleDiff, CommitMessage: "fix", FilesModified: in.TargetFiles}, nil
	}
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)

	mem := e.memory.of(task.ID)
	require.Len(t, mem.attempts, 2)
	assert.Equal(t, models.AttemptError, mem.attempts[0].Outcome)
	assert.Equal(t, models.AttemptSuccess, mem.attempts[1].Outcome)
}

func TestProcessReviewRejectionReentersCoding(t *testing.T) {
	e := newEnv()
	var reviews int
	e.runner.reviewFn = func(agent.Call, agent.ReviewerInput) (*models.ReviewerOutput, error) {
		reviews++
		if reviews == 1 {
			return &models.ReviewerOutput{
				Verdict: models.VerdictRequestChanges,
				Comments: []models.ReviewComment{
					{File: "pkg/a/a.go", Line: 3, Comment: "handle the nil case"},
				},
			}, nil
		}
		return &models.ReviewerOutput{Verdict: models.VerdictApprove}, nil
	}
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	assert.Equal(t, 2, reviews)
	// Two coder attempts: the rejected one and the accepted rework.
	assert.Len(t, e.runner.coderCalls, 2)
	// The rework prompt carried the review notes.
	assert.Equal(t, models.AttemptReviewRejected, e.memory.of(task.ID).attempts[0].Outcome)
}

func TestProcessNeedsDiscussionParksForHuman(t *testing.T) {
	e := newEnv()
	e.runner.reviewFn = func(agent.Call, agent.ReviewerInput) (*models.ReviewerOutput, error) {
		return &models.ReviewerOutput{
			Verdict:  models.VerdictNeedsDiscussion,
			Comments: []models.ReviewComment{{Comment: "unclear requirement"}},
		}, nil
	}
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	assert.Contains(t, final.LastError, "needs discussion")
	// No PR for an unapproved change.
	assert.False(t, e.vcs.createPRCalled)
}

func TestProcessUnappliableDiffGoesThroughFixCycle(t *testing.T) {
	e := newEnv()
	e.vcs.applyErr = fmt.Errorf("hunk does not apply at pkg/a/a.go:1")
	var fixes int
	e.runner.fixFn = func(agent.Call, agent.FixerInput) (*models.FixerOutput, error) {
		fixes++
		if fixes == 1 {
			e.vcs.mu.Lock()
			e.vcs.applyErr = nil // the fixed diff applies
			e.vcs.mu.Unlock()
		}
		return &models.FixerOutput{Diff: simpleDiff, CommitMessage: "fix", FixDescription: "corrected hunks"}, nil
	}
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	assert.Equal(t, 1, fixes)

	mem := e.memory.of(task.ID)
	require.NotEmpty(t, mem.attempts)
	assert.Equal(t, string(fault.DiffInvalid), mem.attempts[0].FailureReason)
}

func TestProcessCancelledContextFailsTask(t *testing.T) {
	e := newEnv()
	task := e.newRootTask()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, e.engine.Process(ctx, task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusFailed, final.Status)
	assert.Equal(t, "cancelled", final.LastError)
}

func TestProcessChildRestsAtReviewApproved(t *testing.T) {
	e := newEnv()
	parent := e.newRootTask()
	idx := 1
	child := e.store.add(&ent.Task{
		RepoOwner:           "octo",
		RepoName:            "widgets",
		IssueNumber:         7,
		IssueTitle:          "Modify pkg/a/a.go",
		IssueBody:           "pkg/a/a.go: fix it",
		ParentTaskID:        &parent.ID,
		SubtaskIndex:        &idx,
		DefinitionOfDone:    []string{"compiles without errors"},
		TargetFiles:         []string{"pkg/a/a.go"},
		EstimatedComplexity: string(models.ComplexityXS),
	})

	require.NoError(t, e.engine.Process(context.Background(), child.ID))

	final, _ := e.store.GetTask(context.Background(), child.ID)
	assert.Equal(t, models.StatusReviewApproved, final.Status)
	// Children never open PRs and never call the planner model.
	assert.False(t, e.vcs.createPRCalled)
	assert.Zero(t, e.runner.planCalls)
	// Child branch is namespaced by subtask index.
	assert.Equal(t, "patchpilot/issue-7-s1", final.BranchName)
}

func complexPlan() *models.PlannerOutput {
	return &models.PlannerOutput{
		DefinitionOfDone: []string{"feature works"},
		Plan: []models.PlanStep{
			{File: "pkg/a/a.go", Operation: "modify", Description: "extend a", EstimatedLines: 30},
			{File: "pkg/b/b.go", Operation: "modify", Description: "extend b", EstimatedLines: 40},
		},
		TargetFiles:         []string{"pkg/a/a.go", "pkg/b/b.go"},
		EstimatedComplexity: models.ComplexityM,
		EstimatedEffort:     models.EffortMedium,
	}
}

func TestProcessComplexTaskOrchestratesSubtasks(t *testing.T) {
	e := newEnv()
	e.runner.planFn = func(agent.Call, agent.PlannerInput) (*models.PlannerOutput, error) {
		return complexPlan(), nil
	}
	e.runner.codeFn = func(_ agent.Call, in agent.CoderInput) (*models.CoderOutput, error) {
		// Each subtask touches exactly its own file.
		path := in.TargetFiles[0]
		return &models.CoderOutput{
			Diff:          diffFor(path, "old "+path, "new "+path),
			CommitMessage: "fix: " + in.Title,
			FilesModified: in.TargetFiles,
		}, nil
	}
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	assert.True(t, final.IsOrchestrated)
	require.NotNil(t, final.PrNumber)

	// Two children, both approved.
	children, err := e.store.Children(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	for _, child := range children {
		assert.Equal(t, models.StatusReviewApproved, child.Status)
	}

	// Orchestration state completed and the aggregate covers both files.
	state := e.memory.of(task.ID).orchestration
	require.NotNil(t, state)
	assert.True(t, state.AllCompleted())
	assert.Contains(t, state.AggregatedDiff, "pkg/a/a.go")
	assert.Contains(t, state.AggregatedDiff, "pkg/b/b.go")
	assert.Equal(t, state.AggregatedDiff, final.CurrentDiff)

	// Subtask lifecycle events went out.
	var completed int
	for _, p := range e.pub.subtasks {
		if p.Status == string(models.SubtaskCompleted) {
			completed++
		}
	}
	assert.Equal(t, 2, completed)
}

func TestProcessConflictingSubtaskDiffsParkForHuman(t *testing.T) {
	e := newEnv()
	e.runner.planFn = func(agent.Call, agent.PlannerInput) (*models.PlannerOutput, error) {
		return complexPlan(), nil
	}
	e.runner.codeFn = func(_ agent.Call, in agent.CoderInput) (*models.CoderOutput, error) {
		// Both subtasks rewrite the same line of the same file, differently.
		return &models.CoderOutput{
			Diff:          diffFor("pkg/shared/core.go", "old", "new for "+in.TargetFiles[0]),
			CommitMessage: "fix",
			FilesModified: []string{"pkg/shared/core.go"},
		}, nil
	}
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	assert.Contains(t, final.LastError, "manual aggregation")
	assert.Contains(t, final.LastError, "pkg/shared/core.go")
	// The reason carries per-file insertion/deletion counts for the operator.
	assert.Contains(t, final.LastError, "files:")
	assert.Contains(t, final.LastError, "pkg/shared/core.go +2 -2")
	// Nothing was pushed or published for the conflicted aggregate.
	assert.False(t, e.vcs.createPRCalled)
}

func TestProcessDuplicateSubtaskDiffsAggregateCleanly(t *testing.T) {
	e := newEnv()
	e.runner.planFn = func(agent.Call, agent.PlannerInput) (*models.PlannerOutput, error) {
		return complexPlan(), nil
	}
	e.runner.codeFn = func(agent.Call, agent.CoderInput) (*models.CoderOutput, error) {
		// Both subtasks produce the exact same change: keep one copy.
		return &models.CoderOutput{
			Diff:          diffFor("pkg/shared/core.go", "old", "new"),
			CommitMessage: "fix",
			FilesModified: []string{"pkg/shared/core.go"},
		}, nil
	}
	task := e.newRootTask()

	require.NoError(t, e.engine.Process(context.Background(), task.ID))

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusWaitingHuman, final.Status)
	assert.NotContains(t, final.LastError, "manual aggregation")
	// The duplicate change went through review as a single-hunk aggregate.
	require.NotNil(t, final.PrNumber)
	files, err := diff.Parse(final.CurrentDiff)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Len(t, files[0].Hunks, 1)
}

func TestProcessFailedSubtaskFailsParent(t *testing.T) {
	e := newEnv()
	e.runner.planFn = func(agent.Call, agent.PlannerInput) (*models.PlannerOutput, error) {
		return complexPlan(), nil
	}
	e.runner.codeFn = func(_ agent.Call, in agent.CoderInput) (*models.CoderOutput, error) {
		if in.TargetFiles[0] == "pkg/b/b.go" {
			return nil, fault.Newf(fault.SchemaInvalid, "output failed validation twice")
		}
		return &models.CoderOutput{
			Diff:          diffFor(in.TargetFiles[0], "old", "new"),
			CommitMessage: "fix",
			FilesModified: in.TargetFiles,
		}, nil
	}
	task := e.newRootTask()
	task.MaxAttempts = 1

	err := e.engine.Process(context.Background(), task.ID)
	require.Error(t, err)

	final, _ := e.store.GetTask(context.Background(), task.ID)
	assert.Equal(t, models.StatusFailed, final.Status)
	assert.Contains(t, final.LastError, "subtask failed")
	// The failure was reported back on the issue thread.
	require.NotEmpty(t, e.vcs.comments)
	assert.Contains(t, e.vcs.comments[0], "Automated processing stopped")
}
