package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/pkg/agent"
)

// TraceService persists agent trace records. It implements agent.Tracer.
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new TraceService
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// StartTrace opens a trace in running state before the first attempt.
func (s *TraceService) StartTrace(ctx context.Context, start agent.TraceStart) (uuid.UUID, error) {
	builder := s.client.AgentTrace.Create().
		SetTaskID(start.TaskID).
		SetStage(string(start.Stage)).
		SetModel(start.Model).
		SetPosition(start.Position)
	if start.ParentTraceID != nil {
		builder.SetParentTraceID(*start.ParentTraceID)
	}

	trace, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create agent trace: %w", err)
	}
	return trace.ID, nil
}

// FinishTrace closes a trace with its outcome, successful or not.
func (s *TraceService) FinishTrace(ctx context.Context, traceID uuid.UUID, outcome agent.TraceOutcome) error {
	status := agenttrace.StatusCompleted
	if !outcome.Completed {
		status = agenttrace.StatusFailed
	}

	builder := s.client.AgentTrace.UpdateOneID(traceID).
		SetStatus(status).
		SetInputTokens(outcome.InputTokens).
		SetOutputTokens(outcome.OutputTokens).
		SetCostUsd(outcome.CostUSD).
		SetGateName(outcome.GateName).
		SetGatePassed(outcome.GatePassed).
		SetEndedAt(time.Now())
	if outcome.OutputSummary != "" {
		builder.SetOutputSummary(outcome.OutputSummary)
	}
	if outcome.ErrorType != "" {
		builder.SetErrorType(outcome.ErrorType)
	}
	if outcome.ErrorMessage != "" {
		builder.SetErrorMessage(outcome.ErrorMessage)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish agent trace: %w", err)
	}
	return nil
}

// ListByTask returns a task's traces in invocation order.
func (s *TraceService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*ent.AgentTrace, error) {
	traces, err := s.client.AgentTrace.Query().
		Where(agenttrace.TaskIDEQ(taskID)).
		Order(ent.Asc(agenttrace.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent traces: %w", err)
	}
	return traces, nil
}
