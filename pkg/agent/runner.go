package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/pkg/fault"
	"github.com/patchpilot/patchpilot/pkg/llm"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/router"
)

const (
	defaultMaxTokens   = 16384
	defaultTemperature = 0.2
)

// Runner executes agents: resolves the model, opens a trace, invokes the
// completion under the retry policy, and parses the typed output. Schema
// failures get one immediate re-prompt; the second failure is model-fatal.
type Runner struct {
	llm    llm.Client
	router *router.Router
	tracer Tracer
	retry  RetryConfig
	logger *slog.Logger
}

func NewRunner(client llm.Client, r *router.Router, tracer Tracer, retry RetryConfig, logger *slog.Logger) *Runner {
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryConfig()
	}
	return &Runner{llm: client, router: r, tracer: tracer, retry: retry, logger: logger}
}

// Call identifies one agent invocation for model resolution and tracing.
type Call struct {
	TaskID        uuid.UUID
	ParentTraceID *uuid.UUID
	Stage         models.Stage
	Complexity    models.Complexity
	Effort        models.Effort

	// EscalationLevel > 0 overrides position resolution with the
	// corresponding escalation slot.
	EscalationLevel int
}

// Usage reports what a run consumed, for attempt accounting.
type Usage struct {
	Model        string
	Position     router.Position
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// RunPlanner executes the planner agent.
func (r *Runner) RunPlanner(ctx context.Context, call Call, in PlannerInput) (*models.PlannerOutput, Usage, error) {
	call.Stage = models.StagePlanner
	return run(ctx, r, call, plannerSystemPrompt, in.userPrompt(), gatePlannerSchema, validatePlanner)
}

// RunCoder executes the coder agent for a task or subtask.
func (r *Runner) RunCoder(ctx context.Context, call Call, in CoderInput) (*models.CoderOutput, Usage, error) {
	call.Stage = models.StageCoder
	return run(ctx, r, call, coderSystemPrompt, in.userPrompt(), gateCoderSchema, validateCoder)
}

// RunFixer executes the fixer agent on a failing change.
func (r *Runner) RunFixer(ctx context.Context, call Call, in FixerInput) (*models.FixerOutput, Usage, error) {
	call.Stage = models.StageFixer
	return run(ctx, r, call, fixerSystemPrompt, in.userPrompt(), gateFixerSchema, validateFixer)
}

// RunReviewer executes the reviewer agent on the final diff.
func (r *Runner) RunReviewer(ctx context.Context, call Call, in ReviewerInput) (*models.ReviewerOutput, Usage, error) {
	call.Stage = models.StageReviewer
	return run(ctx, r, call, reviewerSystemPrompt, in.userPrompt(), gateReviewerSchema, validateReviewer)
}

func run[T any](ctx context.Context, r *Runner, call Call, systemPrompt, userPrompt, gate string, validate func(*T) error) (*T, Usage, error) {
	var model string
	var position router.Position
	if call.EscalationLevel > 0 {
		model, position = r.router.EscalationModel(call.EscalationLevel)
	} else {
		model, position = r.router.ModelFor(call.Stage, call.Complexity, call.Effort)
	}

	usage := Usage{Model: model, Position: position}

	traceID, err := r.tracer.StartTrace(ctx, TraceStart{
		TaskID:        call.TaskID,
		ParentTraceID: call.ParentTraceID,
		Stage:         call.Stage,
		Model:         model,
		Position:      string(position),
	})
	if err != nil {
		return nil, usage, fault.New(fault.StorageFatal, err)
	}

	out, finalErr := complete(ctx, r, call, model, systemPrompt, userPrompt, &usage, validate)

	outcome := TraceOutcome{
		Completed:    finalErr == nil,
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		CostUSD:      usage.CostUSD,
		GateName:     gate,
		GatePassed:   finalErr == nil,
	}
	if finalErr != nil {
		outcome.ErrorType = string(fault.KindOf(finalErr))
		outcome.ErrorMessage = finalErr.Error()
	} else {
		outcome.OutputSummary = summarize(out)
	}
	if err := r.tracer.FinishTrace(ctx, traceID, outcome); err != nil {
		r.logger.Warn("failed to finish agent trace",
			"trace_id", traceID, "stage", call.Stage, "error", err)
	}

	return out, usage, finalErr
}

// complete drives the retry loop plus the single schema re-prompt.
func complete[T any](ctx context.Context, r *Runner, call Call, model, systemPrompt, userPrompt string, usage *Usage, validate func(*T) error) (*T, error) {
	prompt := userPrompt
	for schemaAttempt := 0; schemaAttempt < 2; schemaAttempt++ {
		resp, err := r.completeWithRetry(ctx, call, llm.Request{
			Model:        model,
			SystemPrompt: systemPrompt,
			UserPrompt:   prompt,
			MaxTokens:    defaultMaxTokens,
			Temperature:  defaultTemperature,
		})
		if err != nil {
			return nil, err
		}
		usage.InputTokens += resp.InputTokens
		usage.OutputTokens += resp.OutputTokens
		usage.CostUSD += costOf(model, resp.InputTokens, resp.OutputTokens)

		out, parseErr := decodeOutput[T](resp.Text, validate)
		if parseErr == nil {
			return out, nil
		}

		if schemaAttempt == 0 {
			r.logger.Warn("agent output failed schema validation, re-prompting",
				"task_id", call.TaskID, "stage", call.Stage, "error", parseErr)
			prompt = fmt.Sprintf("%s\n\nYour previous response was invalid: %v\nRespond again with a single valid JSON object and nothing else.", userPrompt, parseErr)
			continue
		}
		return nil, fault.Newf(fault.SchemaInvalid, "%s output failed validation twice: %v", call.Stage, parseErr)
	}
	panic("unreachable")
}

func (r *Runner) completeWithRetry(ctx context.Context, call Call, req llm.Request) (llm.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= r.retry.MaxAttempts; attempt++ {
		resp, err := r.llm.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return llm.Response{}, fault.New(fault.Cancelled, ctx.Err())
		}
		if !llm.IsRetryable(err) {
			break
		}
		if attempt == r.retry.MaxAttempts {
			break
		}

		delay := r.retry.Delay(attempt)
		r.logger.Warn("completion failed, retrying",
			"task_id", call.TaskID, "stage", call.Stage, "model", req.Model,
			"attempt", attempt, "delay", delay, "error", err)
		if err := sleep(ctx, delay); err != nil {
			return llm.Response{}, fault.New(fault.Cancelled, err)
		}
	}
	return llm.Response{}, fault.New(fault.ModelFatal, lastErr)
}

func summarize(out any) string {
	switch v := out.(type) {
	case *models.PlannerOutput:
		return fmt.Sprintf("plan with %d steps, complexity %s", len(v.Plan), v.EstimatedComplexity)
	case *models.CoderOutput:
		return fmt.Sprintf("diff touching %d files", len(v.FilesModified))
	case *models.FixerOutput:
		return fmt.Sprintf("fix touching %d files: %s", len(v.FilesModified), v.FixDescription)
	case *models.ReviewerOutput:
		return fmt.Sprintf("verdict %s with %d comments", v.Verdict, len(v.Comments))
	default:
		return ""
	}
}
