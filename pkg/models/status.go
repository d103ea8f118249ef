package models

// Status is the task workflow state. Only the orchestrator mutates it.
type Status string

// Workflow states.
const (
	StatusNew            Status = "NEW"
	StatusPlanning       Status = "PLANNING"
	StatusPlanningDone   Status = "PLANNING_DONE"
	StatusBreakdownDone  Status = "BREAKDOWN_DONE"
	StatusOrchestrating  Status = "ORCHESTRATING"
	StatusCoding         Status = "CODING"
	StatusCodingDone     Status = "CODING_DONE"
	StatusTesting        Status = "TESTING"
	StatusTestsFailed    Status = "TESTS_FAILED"
	StatusFixing         Status = "FIXING"
	StatusTestsPassed    Status = "TESTS_PASSED"
	StatusReviewing      Status = "REVIEWING"
	StatusReviewApproved Status = "REVIEW_APPROVED"
	StatusReviewRejected Status = "REVIEW_REJECTED"
	StatusWaitingHuman   Status = "WAITING_HUMAN"
	StatusCompleted      Status = "COMPLETED"
	StatusFailed         Status = "FAILED"
)

// AllStatuses lists every workflow state, in pipeline order.
func AllStatuses() []Status {
	return []Status{
		StatusNew, StatusPlanning, StatusPlanningDone, StatusBreakdownDone,
		StatusOrchestrating, StatusCoding, StatusCodingDone, StatusTesting,
		StatusTestsFailed, StatusFixing, StatusTestsPassed, StatusReviewing,
		StatusReviewApproved, StatusReviewRejected, StatusWaitingHuman,
		StatusCompleted, StatusFailed,
	}
}

// Values implements ent's EnumValues so the schema can use this type
// directly.
func (Status) Values() []string {
	all := AllStatuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// transitions is the legal edge set of the workflow. FAILED is reachable
// from every non-terminal state and is therefore not listed per-state.
var transitions = map[Status][]Status{
	StatusNew:            {StatusPlanning},
	StatusPlanning:       {StatusPlanningDone, StatusBreakdownDone},
	StatusPlanningDone:   {StatusCoding},
	StatusBreakdownDone:  {StatusOrchestrating},
	StatusOrchestrating:  {StatusReviewing, StatusWaitingHuman},
	StatusCoding:         {StatusCodingDone},
	StatusCodingDone:     {StatusTesting},
	StatusTesting:        {StatusTestsFailed, StatusTestsPassed},
	StatusTestsFailed:    {StatusFixing, StatusWaitingHuman},
	StatusFixing:         {StatusTesting},
	StatusTestsPassed:    {StatusReviewing},
	StatusReviewing:      {StatusReviewApproved, StatusReviewRejected},
	StatusReviewApproved: {StatusWaitingHuman},
	StatusReviewRejected: {StatusCoding, StatusWaitingHuman},
	StatusWaitingHuman:   {StatusCompleted, StatusFailed},
	StatusCompleted:      {},
	StatusFailed:         {},
}

// CanTransitionTo reports whether s → next is a legal workflow edge.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusFailed {
		return !s.Terminal()
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// PhaseOf maps a workflow state onto the coarser session memory phase.
func PhaseOf(s Status) Phase {
	switch s {
	case StatusNew, StatusPlanning, StatusPlanningDone, StatusBreakdownDone:
		return PhasePlanning
	case StatusOrchestrating:
		return PhaseOrchestrating
	case StatusCoding, StatusCodingDone:
		return PhaseCoding
	case StatusTesting, StatusTestsFailed, StatusFixing, StatusTestsPassed:
		return PhaseTesting
	case StatusReviewing, StatusReviewApproved, StatusReviewRejected:
		return PhaseReviewing
	case StatusWaitingHuman:
		return PhasePublishing
	case StatusCompleted, StatusFailed:
		return PhaseDone
	default:
		return PhasePlanning
	}
}
