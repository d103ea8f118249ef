package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/breakdown"
	"github.com/patchpilot/patchpilot/pkg/diff"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/fault"
	"github.com/patchpilot/patchpilot/pkg/graph"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
)

// subtaskFailure is a subtask that terminally failed, which fails the parent.
type subtaskFailure struct {
	subtaskID string
	detail    string
}

func (e *subtaskFailure) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("subtask %s failed", e.subtaskID)
	}
	return fmt.Sprintf("subtask %s failed: %s", e.subtaskID, e.detail)
}

// handleBreakdown decomposes the planned task into subtasks and installs the
// orchestration state. Idempotent: if the state is already installed (a crash
// between install and transition), only the transition is replayed.
func (e *Engine) handleBreakdown(ctx context.Context, task *ent.Task) error {
	mem, err := e.memory.Get(ctx, task.ID)
	if err != nil {
		return err
	}

	if mem.Orchestration == nil || len(mem.Orchestration.Subtasks) == 0 {
		plan := &models.PlannerOutput{
			DefinitionOfDone:    task.DefinitionOfDone,
			Plan:                task.Plan,
			TargetFiles:         task.TargetFiles,
			EstimatedComplexity: models.Complexity(task.EstimatedComplexity),
		}
		defs, err := breakdown.Breakdown(plan)
		if err != nil {
			return fmt.Errorf("breakdown failed: %w", err)
		}

		state := &models.OrchestrationState{
			Subtasks: make([]models.SubtaskState, 0, len(defs)),
		}
		for _, def := range defs {
			state.Subtasks = append(state.Subtasks, models.SubtaskState{
				SubtaskDefinition: def,
				Status:            models.SubtaskPending,
			})
		}
		if err := e.memory.SetOrchestration(ctx, task.ID, state); err != nil {
			return err
		}
		if err := e.tasks.MarkOrchestrated(ctx, task.ID); err != nil {
			return err
		}
		e.logProgress(ctx, task, models.ProgressBreakdownDone, 0,
			fmt.Sprintf("decomposed into %d subtasks", len(defs)))
	}

	_, err = e.transition(ctx, task, models.StatusOrchestrating, services.StatusUpdate{})
	return err
}

// handleOrchestrating runs one scheduling wave per invocation: it resumes
// subtasks left in progress by a crash, dispatches the next executable ones
// up to the parallelism bound, and — once every subtask completed — aggregates
// their diffs. The Process loop re-enters until aggregation transitions out.
func (e *Engine) handleOrchestrating(ctx context.Context, task *ent.Task) error {
	mem, err := e.memory.Get(ctx, task.ID)
	if err != nil {
		return err
	}
	state := mem.Orchestration
	if state == nil || len(state.Subtasks) == 0 {
		return fmt.Errorf("task %s is orchestrating without orchestration state", task.ID)
	}

	if failed := firstFailed(state); failed != nil {
		return &subtaskFailure{subtaskID: failed.ID, detail: failed.Title}
	}
	if state.AllCompleted() {
		return e.aggregate(ctx, task, state)
	}

	completed := make(map[string]bool)
	inProgress := make(map[string]bool)
	defs := make([]models.SubtaskDefinition, 0, len(state.Subtasks))
	for _, st := range state.Subtasks {
		defs = append(defs, st.SubtaskDefinition)
		switch st.Status {
		case models.SubtaskCompleted:
			completed[st.ID] = true
		case models.SubtaskInProgress:
			inProgress[st.ID] = true
		}
	}

	// Subtasks caught in progress resume first; free slots go to the next
	// executable ones in definition order.
	var wave []string
	for _, st := range state.Subtasks {
		if st.Status == models.SubtaskInProgress {
			wave = append(wave, st.ID)
		}
	}
	if slots := e.cfg.MaxParallel - len(wave); slots > 0 {
		wave = append(wave, graph.NextExecutable(defs, completed, inProgress, slots)...)
	}
	if len(wave) == 0 {
		return fmt.Errorf("task %s has no executable subtasks among %d remaining",
			task.ID, len(state.Subtasks)-len(completed))
	}

	children, err := e.tasks.Children(ctx, task.ID)
	if err != nil {
		return err
	}
	childByIndex := make(map[int]*ent.Task, len(children))
	for _, child := range children {
		if child.SubtaskIndex != nil {
			childByIndex[*child.SubtaskIndex] = child
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range wave {
		sub := state.Subtask(id)
		index := subtaskIndex(state, id)
		child := childByIndex[index]
		g.Go(func() error {
			return e.runSubtask(gctx, task, *sub, index, child)
		})
	}
	return g.Wait()
}

// runSubtask drives one subtask through its own child task workflow. The
// child runs the same engine and rests at REVIEW_APPROVED; any other resting
// state marks the subtask failed.
func (e *Engine) runSubtask(ctx context.Context, parent *ent.Task, sub models.SubtaskState, index int, child *ent.Task) error {
	if sub.Status == models.SubtaskPending {
		if child == nil {
			created, err := e.tasks.CreateChildTask(ctx, parent, sub.SubtaskDefinition, index)
			if err != nil {
				return err
			}
			child = created
		}
		if err := e.memory.UpdateSubtaskStatus(ctx, parent.ID, sub.ID,
			models.SubtaskInProgress, child.ID.String(), ""); err != nil {
			return err
		}
		e.logProgress(ctx, parent, models.ProgressSubtaskStarted, 0,
			fmt.Sprintf("subtask %s started: %s", sub.ID, sub.Title))
		e.publishSubtask(ctx, parent, sub.ID, sub.Title, models.SubtaskInProgress, child.ID.String())
	}
	if child == nil {
		return fmt.Errorf("subtask %s of task %s is in progress without a child task", sub.ID, parent.ID)
	}

	procErr := e.Process(ctx, child.ID)
	if procErr != nil {
		if errors.Is(procErr, context.Canceled) || fault.Is(procErr, fault.Cancelled) ||
			fault.Is(procErr, fault.StorageFatal) {
			return procErr
		}
		// Any other failure was already persisted on the child; the subtask
		// outcome below reflects it.
		e.logger.Warn("Subtask child failed",
			"task_id", parent.ID, "subtask_id", sub.ID, "child_id", child.ID, "error", procErr)
	}

	refreshed, err := e.tasks.GetTask(ctx, child.ID)
	if err != nil {
		return err
	}

	if refreshed.Status == models.StatusReviewApproved {
		if err := e.memory.UpdateSubtaskStatus(ctx, parent.ID, sub.ID,
			models.SubtaskCompleted, child.ID.String(), refreshed.CurrentDiff); err != nil {
			return err
		}
		e.logProgress(ctx, parent, models.ProgressSubtaskDone, 0,
			fmt.Sprintf("subtask %s completed", sub.ID))
		e.publishSubtask(ctx, parent, sub.ID, sub.Title, models.SubtaskCompleted, child.ID.String())
		return nil
	}

	if err := e.memory.UpdateSubtaskStatus(ctx, parent.ID, sub.ID,
		models.SubtaskFailed, child.ID.String(), ""); err != nil {
		return err
	}
	e.publishSubtask(ctx, parent, sub.ID, sub.Title, models.SubtaskFailed, child.ID.String())
	return nil
}

// aggregate mechanically combines the completed subtask diffs, pushes the
// result onto the parent's branch, and hands the whole change to review.
// Conflicts and unappliable combinations park the task for a human instead of
// guessing.
func (e *Engine) aggregate(ctx context.Context, task *ent.Task, state *models.OrchestrationState) error {
	labeled := make([]diff.Labeled, 0, len(state.Subtasks))
	for _, st := range state.Subtasks {
		if strings.TrimSpace(st.Diff) == "" {
			continue
		}
		files, err := diff.Parse(st.Diff)
		if err != nil {
			return e.parkForHuman(ctx, task,
				fmt.Sprintf("subtask %s produced an unparseable diff: %v", st.ID, err))
		}
		labeled = append(labeled, diff.Labeled{Label: st.ID, Files: files})
	}

	// keep_first conflicts (identical duplicate changes) are resolved inside
	// Combine; only manual_required parks the task.
	if manual := manualConflicts(diff.DetectConflicts(labeled)); len(manual) > 0 {
		return e.parkForHuman(ctx, task, conflictSummary(manual)+changeSummary(labeled))
	}

	var combined string
	switch len(labeled) {
	case 0:
		// Every subtask was approved with an empty diff. Nothing to review.
	case 1:
		combined = state.Subtasks[subtaskIndexByLabel(state, labeled[0].Label)].Diff
	default:
		out, err := diff.Combine(labeled)
		if err != nil {
			return e.parkForHuman(ctx, task,
				"combined diff failed validation: "+err.Error()+changeSummary(labeled))
		}
		combined = out
	}

	if err := e.memory.SetAggregatedDiff(ctx, task.ID, combined); err != nil {
		return err
	}
	if _, err := e.tasks.SetDiff(ctx, task.ID, combined, task.IssueTitle); err != nil {
		return err
	}

	branch := task.BranchName
	if branch == "" {
		branch = branchName(task)
	}
	if combined != "" {
		if err := e.vcs.CreateBranch(ctx, repoOf(task), branch, ""); err != nil {
			return err
		}
		if _, err := e.vcs.ApplyDiff(ctx, repoOf(task), branch, combined, task.IssueTitle); err != nil {
			return e.parkForHuman(ctx, task, "aggregated diff could not be applied: "+err.Error())
		}
	}

	updated, err := e.transition(ctx, task, models.StatusReviewing, services.StatusUpdate{
		BranchName: branch,
	})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressAggregated, 0,
		fmt.Sprintf("aggregated %d subtask diffs", len(labeled)))
	return nil
}

// parkForHuman moves an orchestrating task to WAITING_HUMAN with the reason.
func (e *Engine) parkForHuman(ctx context.Context, task *ent.Task, reason string) error {
	updated, err := e.transition(ctx, task, models.StatusWaitingHuman, services.StatusUpdate{
		LastError: &reason,
	})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressError, 0, reason)
	return nil
}

// publishSubtask broadcasts a subtask status change with the current
// completion counters. Best-effort.
func (e *Engine) publishSubtask(ctx context.Context, parent *ent.Task, subtaskID, title string, status models.SubtaskStatus, childTaskID string) {
	completedCount, total := 0, 0
	if mem, err := e.memory.Get(ctx, parent.ID); err == nil && mem.Orchestration != nil {
		completedCount = len(mem.Orchestration.CompletedSubtasks)
		total = len(mem.Orchestration.Subtasks)
	}
	err := e.publisher.PublishSubtaskStatus(ctx, parent.ID.String(), events.SubtaskStatusPayload{
		Type:        events.EventTypeSubtaskStatus,
		TaskID:      parent.ID.String(),
		SubtaskID:   subtaskID,
		Title:       title,
		Status:      string(status),
		ChildTaskID: childTaskID,
		Completed:   completedCount,
		Total:       total,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Warn("Failed to publish subtask event",
			"task_id", parent.ID, "subtask_id", subtaskID, "error", err)
	}
}

func manualConflicts(conflicts []diff.Conflict) []diff.Conflict {
	out := conflicts[:0]
	for _, c := range conflicts {
		if c.Resolution == diff.ManualRequired {
			out = append(out, c)
		}
	}
	return out
}

func conflictSummary(conflicts []diff.Conflict) string {
	parts := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		parts = append(parts, fmt.Sprintf("%s (%s vs %s)", c.File, c.First, c.Second))
	}
	return "conflicting subtask diffs require manual aggregation: " + strings.Join(parts, ", ")
}

// changeSummary renders per-file insertion and deletion counts across the
// subtask diffs, merged by path, for aggregation failure reasons.
func changeSummary(diffs []diff.Labeled) string {
	totals := make(map[string]diff.FileSummary)
	var order []string
	for _, d := range diffs {
		for _, s := range diff.Summarize(d.Files) {
			t, seen := totals[s.Path]
			if !seen {
				order = append(order, s.Path)
				t = diff.FileSummary{Path: s.Path}
			}
			t.Insertions += s.Insertions
			t.Deletions += s.Deletions
			totals[s.Path] = t
		}
	}
	if len(order) == 0 {
		return ""
	}
	parts := make([]string, 0, len(order))
	for _, p := range order {
		t := totals[p]
		parts = append(parts, fmt.Sprintf("%s +%d -%d", p, t.Insertions, t.Deletions))
	}
	return "; files: " + strings.Join(parts, ", ")
}

func firstFailed(state *models.OrchestrationState) *models.SubtaskState {
	for i := range state.Subtasks {
		if state.Subtasks[i].Status == models.SubtaskFailed {
			return &state.Subtasks[i]
		}
	}
	return nil
}

// subtaskIndex is the 1-based definition-order position, which children
// record as their subtask index.
func subtaskIndex(state *models.OrchestrationState, id string) int {
	for i := range state.Subtasks {
		if state.Subtasks[i].ID == id {
			return i + 1
		}
	}
	return 0
}

func subtaskIndexByLabel(state *models.OrchestrationState, label string) int {
	for i := range state.Subtasks {
		if state.Subtasks[i].ID == label {
			return i
		}
	}
	return 0
}
