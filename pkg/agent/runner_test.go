package agent

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchpilot/patchpilot/pkg/fault"
	"github.com/patchpilot/patchpilot/pkg/llm"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/router"
)

// fakeLLM returns scripted responses/errors in order, recording requests.
type fakeLLM struct {
	responses []llm.Response
	errs      []error
	requests  []llm.Request
}

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	f.requests = append(f.requests, req)
	i := len(f.requests) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return llm.Response{}, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return llm.Response{}, nil
}

type recordedTrace struct {
	start   TraceStart
	outcome TraceOutcome
}

type fakeTracer struct {
	traces map[uuid.UUID]*recordedTrace
	order  []uuid.UUID
}

func newFakeTracer() *fakeTracer {
	return &fakeTracer{traces: map[uuid.UUID]*recordedTrace{}}
}

func (f *fakeTracer) StartTrace(_ context.Context, start TraceStart) (uuid.UUID, error) {
	id := uuid.New()
	f.traces[id] = &recordedTrace{start: start}
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeTracer) FinishTrace(_ context.Context, id uuid.UUID, outcome TraceOutcome) error {
	f.traces[id].outcome = outcome
	return nil
}

func (f *fakeTracer) last() *recordedTrace {
	return f.traces[f.order[len(f.order)-1]]
}

func newTestRunner(client llm.Client, tracer Tracer) *Runner {
	retry := RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2, MaxDelay: 5 * time.Millisecond}
	return NewRunner(client, router.New(), tracer, retry, slog.Default())
}

const validCoderJSON = `{"diff": "--- a/f\n+++ b/f\n@@ -1,1 +1,1 @@\n-x\n+y\n", "commit_message": "fix f", "files_modified": ["f"]}`

func TestRunCoderSuccess(t *testing.T) {
	client := &fakeLLM{responses: []llm.Response{{Text: validCoderJSON, InputTokens: 100, OutputTokens: 50}}}
	tracer := newFakeTracer()
	r := newTestRunner(client, tracer)

	out, usage, err := r.RunCoder(context.Background(), Call{
		TaskID:     uuid.New(),
		Complexity: models.ComplexityXS,
		Effort:     models.EffortLow,
	}, CoderInput{Title: "t"})
	require.NoError(t, err)

	assert.Equal(t, "fix f", out.CommitMessage)
	assert.Equal(t, 100, usage.InputTokens)
	assert.Equal(t, 50, usage.OutputTokens)
	assert.Positive(t, usage.CostUSD)

	trace := tracer.last()
	assert.True(t, trace.outcome.Completed)
	assert.True(t, trace.outcome.GatePassed)
	assert.Equal(t, gateCoderSchema, trace.outcome.GateName)
	assert.Equal(t, string(models.StageCoder), string(trace.start.Stage))
}

func TestRunCoderExtractsFencedJSON(t *testing.T) {
	fenced := "Here is the change:\n```json\n" + validCoderJSON + "\n```\nDone."
	client := &fakeLLM{responses: []llm.Response{{Text: fenced}}}
	r := newTestRunner(client, newFakeTracer())

	out, _, err := r.RunCoder(context.Background(), Call{TaskID: uuid.New()}, CoderInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"f"}, out.FilesModified)
}

func TestRunCoderRepromptsOnceOnSchemaFailure(t *testing.T) {
	client := &fakeLLM{responses: []llm.Response{
		{Text: `{"diff": "", "commit_message": ""}`},
		{Text: validCoderJSON},
	}}
	r := newTestRunner(client, newFakeTracer())

	out, _, err := r.RunCoder(context.Background(), Call{TaskID: uuid.New()}, CoderInput{})
	require.NoError(t, err)
	assert.Equal(t, "fix f", out.CommitMessage)

	require.Len(t, client.requests, 2)
	assert.Contains(t, client.requests[1].UserPrompt, "previous response was invalid")
}

func TestRunCoderSchemaFailureTwiceIsFatal(t *testing.T) {
	client := &fakeLLM{responses: []llm.Response{
		{Text: "not json"},
		{Text: "still not json"},
	}}
	tracer := newFakeTracer()
	r := newTestRunner(client, tracer)

	_, _, err := r.RunCoder(context.Background(), Call{TaskID: uuid.New()}, CoderInput{})
	require.Error(t, err)
	assert.Equal(t, fault.SchemaInvalid, fault.KindOf(err))

	trace := tracer.last()
	assert.False(t, trace.outcome.Completed)
	assert.False(t, trace.outcome.GatePassed)
	assert.Equal(t, string(fault.SchemaInvalid), trace.outcome.ErrorType)
}

func TestRunCoderRetriesTransientErrors(t *testing.T) {
	client := &fakeLLM{
		errs:      []error{&openai.APIError{HTTPStatusCode: 503}, &openai.APIError{HTTPStatusCode: 429}, nil},
		responses: []llm.Response{{}, {}, {Text: validCoderJSON}},
	}
	r := newTestRunner(client, newFakeTracer())

	out, _, err := r.RunCoder(context.Background(), Call{TaskID: uuid.New()}, CoderInput{})
	require.NoError(t, err)
	assert.Equal(t, "fix f", out.CommitMessage)
	assert.Len(t, client.requests, 3)
}

func TestRunCoderNonRetryableErrorIsImmediatelyFatal(t *testing.T) {
	client := &fakeLLM{errs: []error{&openai.APIError{HTTPStatusCode: 401, Message: "bad key"}}}
	r := newTestRunner(client, newFakeTracer())

	_, _, err := r.RunCoder(context.Background(), Call{TaskID: uuid.New()}, CoderInput{})
	require.Error(t, err)
	assert.Equal(t, fault.ModelFatal, fault.KindOf(err))
	assert.Len(t, client.requests, 1)
}

func TestRunCoderExhaustedRetriesAreFatal(t *testing.T) {
	overloaded := &openai.APIError{HTTPStatusCode: 503}
	client := &fakeLLM{errs: []error{overloaded, overloaded, overloaded}}
	r := newTestRunner(client, newFakeTracer())

	_, _, err := r.RunCoder(context.Background(), Call{TaskID: uuid.New()}, CoderInput{})
	require.Error(t, err)
	assert.Equal(t, fault.ModelFatal, fault.KindOf(err))
	assert.Len(t, client.requests, 3)
}

func TestRunCoderEscalationUsesEscalationSlot(t *testing.T) {
	client := &fakeLLM{responses: []llm.Response{{Text: validCoderJSON}}}
	tracer := newFakeTracer()
	r := newTestRunner(client, tracer)

	_, usage, err := r.RunCoder(context.Background(), Call{
		TaskID:          uuid.New(),
		Complexity:      models.ComplexityXS,
		EscalationLevel: 1,
	}, CoderInput{})
	require.NoError(t, err)
	assert.Equal(t, router.PositionEscalation1, usage.Position)
	assert.Equal(t, string(router.PositionEscalation1), tracer.last().start.Position)
}

func TestRunReviewerValidatesVerdict(t *testing.T) {
	client := &fakeLLM{responses: []llm.Response{
		{Text: `{"verdict": "maybe"}`},
		{Text: `{"verdict": "approve", "comments": []}`},
	}}
	r := newTestRunner(client, newFakeTracer())

	out, _, err := r.RunReviewer(context.Background(), Call{TaskID: uuid.New()}, ReviewerInput{Diff: "d"})
	require.NoError(t, err)
	assert.Equal(t, models.VerdictApprove, out.Verdict)
}

func TestRunPlannerValidatesPlanSteps(t *testing.T) {
	good := `{"definition_of_done": ["works"], "plan": [{"file": "a.ts", "operation": "create", "description": "d", "estimated_lines": 10}], "target_files": ["a.ts"], "estimated_complexity": "XS", "estimated_effort": "low"}`
	client := &fakeLLM{responses: []llm.Response{
		{Text: `{"plan": [], "estimated_complexity": "XS"}`},
		{Text: good},
	}}
	r := newTestRunner(client, newFakeTracer())

	out, _, err := r.RunPlanner(context.Background(), Call{TaskID: uuid.New()}, PlannerInput{IssueTitle: "t"})
	require.NoError(t, err)
	assert.Equal(t, models.ComplexityXS, out.EstimatedComplexity)
	require.Len(t, out.Plan, 1)
}

func TestRetryDelayBackoff(t *testing.T) {
	c := DefaultRetryConfig()
	assert.Equal(t, 5*time.Second, c.Delay(1))
	assert.Equal(t, 15*time.Second, c.Delay(2))
	assert.Equal(t, 45*time.Second, c.Delay(3))
	assert.Equal(t, 120*time.Second, c.Delay(5)) // capped
}
