package agent

import (
	"context"

	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// TraceStart opens a trace record before the first completion attempt.
type TraceStart struct {
	TaskID        uuid.UUID
	ParentTraceID *uuid.UUID
	Stage         models.Stage
	Model         string
	Position      string
}

// TraceOutcome closes a trace record after the run finishes either way.
type TraceOutcome struct {
	Completed     bool
	InputTokens   int
	OutputTokens  int
	CostUSD       float64
	OutputSummary string
	GateName      string
	GatePassed    bool
	ErrorType     string
	ErrorMessage  string
}

// Tracer persists agent trace records. The services layer implements it;
// tests use an in-memory recorder.
type Tracer interface {
	StartTrace(ctx context.Context, start TraceStart) (uuid.UUID, error)
	FinishTrace(ctx context.Context, traceID uuid.UUID, outcome TraceOutcome) error
}

// modelRates maps model identifiers to (input, output) USD per 1M tokens.
// Unknown models use the default row so cost is never silently zero.
var modelRates = map[string][2]float64{
	"gpt-4.1":      {2.00, 8.00},
	"gpt-4.1-mini": {0.40, 1.60},
	"o3":           {2.00, 8.00},
	"o3-pro":       {20.00, 80.00},
}

var defaultRate = [2]float64{2.00, 8.00}

func costOf(model string, inputTokens, outputTokens int) float64 {
	rate, ok := modelRates[model]
	if !ok {
		rate = defaultRate
	}
	return (float64(inputTokens)*rate[0] + float64(outputTokens)*rate[1]) / 1e6
}
