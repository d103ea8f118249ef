package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/agent"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/fault"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
)

// maxAttemptsExceeded fails the task with the MAX_ATTEMPTS marker when a
// stage opens an attempt past the whole budget, escalation included.
type maxAttemptsExceeded struct {
	attempt, budget int
}

func (e *maxAttemptsExceeded) Error() string {
	return fmt.Sprintf("attempt %d exceeds budget %d", e.attempt, e.budget)
}

// handlePlanning runs the planner and routes the task to PLANNING_DONE or,
// for complex work, BREAKDOWN_DONE. Subtask children skip the model call:
// their plan is the subtask definition the parent's breakdown produced.
func (e *Engine) handlePlanning(ctx context.Context, task *ent.Task) error {
	var out *models.PlannerOutput
	var tokens int

	if task.ParentTaskID != nil {
		out = childPlan(task)
	} else {
		repoContext, err := e.vcs.GetRepoContext(ctx, repoOf(task), nil)
		if err != nil {
			return err
		}
		planned, usage, err := e.runner.RunPlanner(ctx, agent.Call{
			TaskID: task.ID,
			Stage:  models.StagePlanner,
		}, agent.PlannerInput{
			IssueTitle:  task.IssueTitle,
			IssueBody:   task.IssueBody,
			RepoContext: repoContext,
		})
		if err != nil {
			return err
		}
		out = planned
		tokens = usage.InputTokens + usage.OutputTokens

		if err := e.memory.SetAgentOutput(ctx, task.ID, models.StagePlanner, out); err != nil &&
			!errors.Is(err, services.ErrOutputAlreadySet) {
			return err
		}
	}

	if _, err := e.tasks.SetPlanArtifacts(ctx, task.ID, out); err != nil {
		return err
	}

	next := models.StatusPlanningDone
	if out.EstimatedComplexity.RequiresBreakdown() {
		next = models.StatusBreakdownDone
	}
	updated, err := e.transition(ctx, task, next, services.StatusUpdate{})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressPlanned, 0,
		fmt.Sprintf("planned %d steps, complexity %s, %d tokens",
			len(out.Plan), out.EstimatedComplexity, tokens))
	return nil
}

// childPlan synthesizes a plan for a subtask child from the fields its
// parent's breakdown persisted on the task row.
func childPlan(task *ent.Task) *models.PlannerOutput {
	plan := make([]models.PlanStep, 0, len(task.TargetFiles))
	for _, f := range task.TargetFiles {
		plan = append(plan, models.PlanStep{
			File:        f,
			Operation:   "modify",
			Description: task.IssueBody,
		})
	}
	return &models.PlannerOutput{
		DefinitionOfDone:    task.DefinitionOfDone,
		Plan:                plan,
		TargetFiles:         task.TargetFiles,
		EstimatedComplexity: models.Complexity(task.EstimatedComplexity),
	}
}

// handleCoding runs one coder attempt. A failed attempt is recorded and the
// task stays in CODING so the next loop iteration retries — with escalated
// models once the regular budget is spent, terminally once the whole budget
// is gone.
func (e *Engine) handleCoding(ctx context.Context, task *ent.Task) error {
	attemptNo, err := e.memory.StartAttempt(ctx, task.ID)
	if err != nil {
		return err
	}
	if attemptNo > attemptBudget(task) {
		e.endAttempt(ctx, task, attemptNo, services.AttemptResult{
			Outcome:       models.AttemptMaxAttempts,
			FailureReason: maxAttemptsError,
		})
		return &maxAttemptsExceeded{attempt: attemptNo, budget: attemptBudget(task)}
	}

	level := escalationLevel(task, attemptNo)
	if level > task.EscalationLevel {
		e.logProgress(ctx, task, models.ProgressEscalated, attemptNo,
			fmt.Sprintf("escalating coder to level %d", level))
	}

	files, err := e.vcs.GetFilesContent(ctx, repoOf(task), task.TargetFiles, "")
	if err != nil {
		return err
	}

	description := task.IssueBody
	if task.LastError != "" {
		description += "\n\nFeedback from the previous attempt:\n" + task.LastError
	}

	started := time.Now()
	out, usage, err := e.runner.RunCoder(ctx, agent.Call{
		TaskID:          task.ID,
		Stage:           models.StageCoder,
		Complexity:      models.Complexity(task.EstimatedComplexity),
		Effort:          models.Effort(task.EstimatedEffort),
		EscalationLevel: level,
	}, agent.CoderInput{
		Title:              task.IssueTitle,
		Description:        description,
		Plan:               task.Plan,
		AcceptanceCriteria: task.DefinitionOfDone,
		TargetFiles:        task.TargetFiles,
		FilesContent:       files,
	})
	if err != nil {
		if fault.Is(err, fault.Cancelled) {
			return err
		}
		e.endAttempt(ctx, task, attemptNo, services.AttemptResult{
			Outcome:        models.AttemptError,
			FailureReason:  string(fault.KindOf(err)),
			FailureDetails: err.Error(),
			Duration:       time.Since(started),
		})
		e.logProgress(ctx, task, models.ProgressRetryTriggered, attemptNo,
			"coder attempt failed: "+err.Error())
		return nil // Stay in CODING; the loop re-enters for the next attempt.
	}

	if _, err := e.tasks.SetDiff(ctx, task.ID, out.Diff, out.CommitMessage); err != nil {
		return err
	}

	count := attemptNo
	updated, err := e.transition(ctx, task, models.StatusCodingDone, services.StatusUpdate{
		AttemptCount:    &count,
		TotalAttempts:   &count,
		EscalationLevel: &level,
	})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressCoded, attemptNo,
		fmt.Sprintf("produced diff touching %d files, %d tokens",
			len(out.FilesModified), usage.InputTokens+usage.OutputTokens))
	return nil
}

// handlePublishDiff pushes the current diff onto the task's branch. An
// unappliable diff is the combiner rejecting the coder's output: it is
// recorded exactly like failing tests so the fixer gets a shot at it.
func (e *Engine) handlePublishDiff(ctx context.Context, task *ent.Task) error {
	branch := task.BranchName
	if branch == "" {
		branch = branchName(task)
	}

	if err := e.vcs.CreateBranch(ctx, repoOf(task), branch, ""); err != nil {
		return err
	}

	message := task.CommitMessage
	if message == "" {
		message = task.IssueTitle
	}

	if _, err := e.vcs.ApplyDiff(ctx, repoOf(task), branch, task.CurrentDiff, message); err != nil {
		updated, terr := e.transition(ctx, task, models.StatusTesting, services.StatusUpdate{
			BranchName: branch,
		})
		if terr != nil {
			return terr
		}
		detail := "invalid diff: " + err.Error()
		updated, terr = e.transition(ctx, updated, models.StatusTestsFailed, services.StatusUpdate{
			LastError: &detail,
		})
		if terr != nil {
			return terr
		}
		e.endLatestAttempt(ctx, updated, services.AttemptResult{
			Outcome:        models.AttemptTestsFailed,
			FailureReason:  string(fault.DiffInvalid),
			FailureDetails: err.Error(),
		})
		return nil
	}

	_, err := e.transition(ctx, task, models.StatusTesting, services.StatusUpdate{
		BranchName: branch,
	})
	return err
}

// handleTesting waits for CI on the task branch and records the outcome.
func (e *Engine) handleTesting(ctx context.Context, task *ent.Task) error {
	result, err := e.vcs.WaitForChecks(ctx, repoOf(task), task.BranchName, e.cfg.CheckTimeout)
	if err != nil {
		return err
	}

	if result.Success {
		updated, err := e.transition(ctx, task, models.StatusTestsPassed, services.StatusUpdate{
			ClearLastError: true,
		})
		if err != nil {
			return err
		}
		e.logProgress(ctx, updated, models.ProgressTested, task.AttemptCount, "checks passed")
		return nil
	}

	detail := "tests failed: " + result.ErrorSummary
	updated, err := e.transition(ctx, task, models.StatusTestsFailed, services.StatusUpdate{
		LastError: &detail,
	})
	if err != nil {
		return err
	}
	e.endLatestAttempt(ctx, updated, services.AttemptResult{
		Outcome:        models.AttemptTestsFailed,
		FailureReason:  result.ErrorSummary,
		FailureDetails: detail,
	})
	e.logProgress(ctx, updated, models.ProgressError, task.AttemptCount, detail)
	return nil
}

// handleTestsFailed decides between another fix cycle and giving up to a
// human once the attempt budget is spent.
func (e *Engine) handleTestsFailed(ctx context.Context, task *ent.Task) error {
	mem, err := e.memory.Get(ctx, task.ID)
	if err != nil {
		return err
	}
	if len(mem.Attempts) >= attemptBudget(task) {
		detail := maxAttemptsError
		_, err := e.transition(ctx, task, models.StatusWaitingHuman, services.StatusUpdate{
			LastError: &detail,
		})
		return err
	}

	updated, err := e.transition(ctx, task, models.StatusFixing, services.StatusUpdate{})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressRetryTriggered, len(mem.Attempts),
		"re-entering fix cycle after failed tests")
	return nil
}

// handleFixing runs the fixer against the previous diff, the last error and
// the deduplicated failure history, then pushes the repaired diff back
// through testing.
func (e *Engine) handleFixing(ctx context.Context, task *ent.Task) error {
	attemptNo, err := e.memory.StartAttempt(ctx, task.ID)
	if err != nil {
		return err
	}
	if attemptNo > attemptBudget(task) {
		e.endAttempt(ctx, task, attemptNo, services.AttemptResult{
			Outcome:       models.AttemptMaxAttempts,
			FailureReason: maxAttemptsError,
		})
		return &maxAttemptsExceeded{attempt: attemptNo, budget: attemptBudget(task)}
	}

	patterns, err := e.memory.GetFailurePatterns(ctx, task.ID)
	if err != nil {
		return err
	}
	patternStrings := make([]string, 0, len(patterns))
	for _, p := range patterns {
		patternStrings = append(patternStrings, fmt.Sprintf("%s (seen %d times)", p.Pattern, p.Occurrences))
	}
	attemptSummary, err := e.memory.GetAttemptSummary(ctx, task.ID)
	if err != nil {
		return err
	}

	started := time.Now()
	out, _, err := e.runner.RunFixer(ctx, agent.Call{
		TaskID:          task.ID,
		Stage:           models.StageFixer,
		EscalationLevel: escalationLevel(task, attemptNo),
	}, agent.FixerInput{
		PreviousDiff:    task.CurrentDiff,
		LastError:       task.LastError,
		FailurePatterns: patternStrings,
		AttemptSummary:  attemptSummary,
	})
	if err != nil {
		if fault.Is(err, fault.Cancelled) {
			return err
		}
		e.endAttempt(ctx, task, attemptNo, services.AttemptResult{
			Outcome:        models.AttemptError,
			FailureReason:  string(fault.KindOf(err)),
			FailureDetails: err.Error(),
			Duration:       time.Since(started),
		})
		e.logProgress(ctx, task, models.ProgressRetryTriggered, attemptNo,
			"fixer attempt failed: "+err.Error())
		return nil // Stay in FIXING for the next attempt.
	}

	if _, err := e.tasks.SetDiff(ctx, task.ID, out.Diff, out.CommitMessage); err != nil {
		return err
	}

	if _, err := e.vcs.ApplyDiff(ctx, repoOf(task), task.BranchName, out.Diff, out.CommitMessage); err != nil {
		count := attemptNo
		detail := "invalid diff: " + err.Error()
		updated, terr := e.transition(ctx, task, models.StatusTesting, services.StatusUpdate{
			AttemptCount:  &count,
			TotalAttempts: &count,
		})
		if terr != nil {
			return terr
		}
		updated, terr = e.transition(ctx, updated, models.StatusTestsFailed, services.StatusUpdate{
			LastError: &detail,
		})
		if terr != nil {
			return terr
		}
		e.endLatestAttempt(ctx, updated, services.AttemptResult{
			Outcome:        models.AttemptTestsFailed,
			FailureReason:  string(fault.DiffInvalid),
			FailureDetails: err.Error(),
		})
		return nil
	}

	count := attemptNo
	updated, err := e.transition(ctx, task, models.StatusTesting, services.StatusUpdate{
		AttemptCount:  &count,
		TotalAttempts: &count,
	})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressFixed, attemptNo, out.FixDescription)
	return nil
}

// handleReviewing runs the reviewer over the current diff.
func (e *Engine) handleReviewing(ctx context.Context, task *ent.Task) error {
	out, usage, err := e.runner.RunReviewer(ctx, agent.Call{
		TaskID: task.ID,
		Stage:  models.StageReviewer,
	}, agent.ReviewerInput{
		Diff:             task.CurrentDiff,
		DefinitionOfDone: task.DefinitionOfDone,
		CommitMessage:    task.CommitMessage,
	})
	if err != nil {
		return err
	}

	if err := e.memory.SetAgentOutput(ctx, task.ID, models.StageReviewer, out); err != nil &&
		!errors.Is(err, services.ErrOutputAlreadySet) {
		return err
	}

	switch out.Verdict {
	case models.VerdictApprove:
		e.endLatestAttempt(ctx, task, services.AttemptResult{
			Outcome:       models.AttemptSuccess,
			Diff:          task.CurrentDiff,
			CommitMessage: task.CommitMessage,
			TotalTokens:   usage.InputTokens + usage.OutputTokens,
		})
		updated, err := e.transition(ctx, task, models.StatusReviewApproved, services.StatusUpdate{
			ClearLastError: true,
		})
		if err != nil {
			return err
		}
		e.logProgress(ctx, updated, models.ProgressReviewed, task.AttemptCount, "review approved")
		return nil

	case models.VerdictNeedsDiscussion:
		notes := reviewNotes(out)
		e.endLatestAttempt(ctx, task, services.AttemptResult{
			Outcome:        models.AttemptReviewRejected,
			FailureReason:  "needs_discussion",
			FailureDetails: notes,
		})
		rejected, err := e.transition(ctx, task, models.StatusReviewRejected, services.StatusUpdate{
			LastError: &notes,
		})
		if err != nil {
			return err
		}
		detail := "needs discussion: " + notes
		_, err = e.transition(ctx, rejected, models.StatusWaitingHuman, services.StatusUpdate{
			LastError: &detail,
		})
		return err

	default: // request_changes
		notes := reviewNotes(out)
		e.endLatestAttempt(ctx, task, services.AttemptResult{
			Outcome:        models.AttemptReviewRejected,
			FailureReason:  "review_rejected",
			FailureDetails: notes,
		})
		updated, err := e.transition(ctx, task, models.StatusReviewRejected, services.StatusUpdate{
			LastError: &notes,
		})
		if err != nil {
			return err
		}
		e.logProgress(ctx, updated, models.ProgressReviewed, task.AttemptCount,
			"review requested changes")
		return nil
	}
}

// handleRejected re-enters coding with the review notes, or hands over to a
// human when the attempt budget is spent.
func (e *Engine) handleRejected(ctx context.Context, task *ent.Task) error {
	mem, err := e.memory.Get(ctx, task.ID)
	if err != nil {
		return err
	}
	if len(mem.Attempts) >= attemptBudget(task) {
		detail := maxAttemptsError
		_, err := e.transition(ctx, task, models.StatusWaitingHuman, services.StatusUpdate{
			LastError: &detail,
		})
		return err
	}

	updated, err := e.transition(ctx, task, models.StatusCoding, services.StatusUpdate{})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressRetryTriggered, len(mem.Attempts),
		"re-entering coding after review rejection")
	return nil
}

// handleApproved publishes the approved diff as a pull request and parks the
// task until a human merges or closes it. Children never reach here — they
// rest at REVIEW_APPROVED and the parent aggregates their diffs.
func (e *Engine) handleApproved(ctx context.Context, task *ent.Task) error {
	title := task.CommitMessage
	if title == "" {
		title = task.IssueTitle
	}
	body := prBody(task)

	if task.PrNumber != nil && *task.PrNumber != 0 {
		if err := e.vcs.UpdatePR(ctx, repoOf(task), *task.PrNumber, title, body); err != nil {
			return err
		}
	} else {
		pr, err := e.vcs.CreatePR(ctx, repoOf(task), task.BranchName, "", title, body)
		if err != nil {
			return err
		}
		if _, err := e.tasks.SetPR(ctx, task.ID, *pr); err != nil {
			return err
		}
	}

	updated, err := e.transition(ctx, task, models.StatusWaitingHuman, services.StatusUpdate{
		ClearLastError: true,
	})
	if err != nil {
		return err
	}
	e.logProgress(ctx, updated, models.ProgressPRCreated, task.AttemptCount,
		"pull request ready for human review")
	return nil
}

// endAttempt closes the numbered attempt and mirrors it onto the event
// stream. Attempt bookkeeping is best-effort relative to the workflow.
func (e *Engine) endAttempt(ctx context.Context, task *ent.Task, attemptNo int, result services.AttemptResult) {
	if err := e.memory.EndAttempt(ctx, task.ID, result); err != nil {
		e.logger.Warn("Failed to end attempt", "task_id", task.ID, "error", err)
	}
	err := e.publisher.PublishAttempt(ctx, task.ID.String(), events.AttemptPayload{
		Type:          events.EventTypeAttemptRecorded,
		TaskID:        task.ID.String(),
		AttemptNumber: attemptNo,
		Outcome:       string(result.Outcome),
		FailureReason: result.FailureReason,
		TotalTokens:   result.TotalTokens,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Warn("Failed to publish attempt event", "task_id", task.ID, "error", err)
	}
}

// endLatestAttempt closes whichever attempt is currently in progress.
func (e *Engine) endLatestAttempt(ctx context.Context, task *ent.Task, result services.AttemptResult) {
	e.endAttempt(ctx, task, task.AttemptCount, result)
}

// branchName derives the task's exclusive branch. Subtask children get their
// own branch so parallel subtasks never push to each other's.
func branchName(task *ent.Task) string {
	if task.ParentTaskID != nil && task.SubtaskIndex != nil {
		return fmt.Sprintf("patchpilot/issue-%d-s%d", task.IssueNumber, *task.SubtaskIndex)
	}
	return fmt.Sprintf("patchpilot/issue-%d", task.IssueNumber)
}

// reviewNotes flattens reviewer comments into the lastError text.
func reviewNotes(out *models.ReviewerOutput) string {
	if len(out.Comments) == 0 {
		return string(out.Verdict)
	}
	notes := make([]string, 0, len(out.Comments))
	for _, c := range out.Comments {
		if c.File != "" {
			notes = append(notes, fmt.Sprintf("%s:%d %s", c.File, c.Line, c.Comment))
		} else {
			notes = append(notes, c.Comment)
		}
	}
	return strings.Join(notes, "\n")
}

// prBody renders the pull request description from the task's artifacts.
func prBody(task *ent.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Closes #%d\n\n", task.IssueNumber)
	if len(task.DefinitionOfDone) > 0 {
		b.WriteString("## Definition of done\n\n")
		for _, item := range task.DefinitionOfDone {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}
	if len(task.Plan) > 0 {
		b.WriteString("## Changes\n\n")
		for _, step := range task.Plan {
			fmt.Fprintf(&b, "- `%s` (%s): %s\n", step.File, step.Operation, step.Description)
		}
	}
	return b.String()
}
