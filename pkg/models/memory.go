package models

import (
	"encoding/json"
	"regexp"
	"time"
)

// Phase is the coarse lifecycle phase recorded in session memory. Coarser
// than the task status: several statuses map to one phase.
type Phase string

// Session phases.
const (
	PhasePlanning      Phase = "planning"
	PhaseOrchestrating Phase = "orchestrating"
	PhaseCoding        Phase = "coding"
	PhaseTesting       Phase = "testing"
	PhaseReviewing     Phase = "reviewing"
	PhasePublishing    Phase = "publishing"
	PhaseDone          Phase = "done"
)

// ProgressKind classifies a progress ledger entry.
type ProgressKind string

// Progress entry kinds. Error kinds increment the session error counter;
// retry_triggered increments the retry counter.
const (
	ProgressPlanned        ProgressKind = "planned"
	ProgressBreakdownDone  ProgressKind = "breakdown_done"
	ProgressSubtaskStarted ProgressKind = "subtask_started"
	ProgressSubtaskDone    ProgressKind = "subtask_done"
	ProgressCoded          ProgressKind = "coded"
	ProgressTested         ProgressKind = "tested"
	ProgressFixed          ProgressKind = "fixed"
	ProgressReviewed       ProgressKind = "reviewed"
	ProgressAggregated     ProgressKind = "aggregated"
	ProgressPRCreated      ProgressKind = "pr_created"
	ProgressError          ProgressKind = "error"
	ProgressRetryTriggered ProgressKind = "retry_triggered"
	ProgressEscalated      ProgressKind = "escalated"
	ProgressCheckpointed   ProgressKind = "checkpointed"
	ProgressRestored       ProgressKind = "restored"
	ProgressCancelled      ProgressKind = "cancelled"
)

// IsError reports whether the kind counts against the session error counter.
func (k ProgressKind) IsError() bool {
	return k == ProgressError
}

// ProgressEntry is one record of the append-only session ledger. Entries are
// never modified or deleted (the sole exception is checkpoint restore, which
// replaces the whole session and logs itself).
type ProgressEntry struct {
	Kind      ProgressKind    `json:"kind"`
	Phase     Phase           `json:"phase"`
	Attempt   int             `json:"attempt"`
	Summary   string          `json:"summary"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// AttemptOutcome is the terminal classification of one attempt.
type AttemptOutcome string

// Attempt outcomes.
const (
	AttemptInProgress     AttemptOutcome = "in_progress"
	AttemptSuccess        AttemptOutcome = "success"
	AttemptTestsFailed    AttemptOutcome = "tests_failed"
	AttemptReviewRejected AttemptOutcome = "review_rejected"
	AttemptError          AttemptOutcome = "error"
	AttemptMaxAttempts    AttemptOutcome = "max_attempts"
)

// AttemptRecord is one pass of a stage, from StartAttempt to EndAttempt.
type AttemptRecord struct {
	AttemptNumber  int            `json:"attempt_number"`
	StartedAt      time.Time      `json:"started_at"`
	EndedAt        *time.Time     `json:"ended_at,omitempty"`
	Outcome        AttemptOutcome `json:"outcome"`
	Diff           string         `json:"diff,omitempty"`
	CommitMessage  string         `json:"commit_message,omitempty"`
	FailureReason  string         `json:"failure_reason,omitempty"`
	FailureDetails string         `json:"failure_details,omitempty"`
	TotalTokens    int            `json:"total_tokens,omitempty"`
	TotalDuration  time.Duration  `json:"total_duration_ms,omitempty"`
}

// FailurePattern deduplicates recurring failures. The pattern is the
// normalized failure reason; occurrences counts how many raw failures
// collapsed into it.
type FailurePattern struct {
	Pattern     string    `json:"pattern"`
	Occurrences int       `json:"occurrences"`
	LastSeen    time.Time `json:"last_seen"`
}

var (
	lineColRe       = regexp.MustCompile(`(?i)\b(line|column|col|row)\s*:?\s*\d+`)
	trailingCoordRe = regexp.MustCompile(`:\d+(:\d+)?\b`)
	quotedRe        = regexp.MustCompile(`'[^']*'|"[^"]*"|` + "`[^`]*`")
)

// NormalizeFailure reduces a raw failure string to its pattern: line/column
// numbers and quoted literals are replaced with placeholders so failures that
// differ only in those tokens merge into one record.
func NormalizeFailure(reason string) string {
	s := lineColRe.ReplaceAllString(reason, "$1 <N>")
	s = trailingCoordRe.ReplaceAllString(s, ":<N>")
	s = quotedRe.ReplaceAllString(s, "<LIT>")
	return s
}

// MergeFailurePattern merges a raw failure reason into the pattern list,
// bumping occurrences on pattern equality. Returns the updated list.
func MergeFailurePattern(patterns []FailurePattern, reason string, now time.Time) []FailurePattern {
	normalized := NormalizeFailure(reason)
	for i := range patterns {
		if patterns[i].Pattern == normalized {
			patterns[i].Occurrences++
			patterns[i].LastSeen = now
			return patterns
		}
	}
	return append(patterns, FailurePattern{Pattern: normalized, Occurrences: 1, LastSeen: now})
}

// SessionSnapshot is the deep copy of session memory stored in a checkpoint
// and restored on storage failure.
type SessionSnapshot struct {
	Phase            Phase                      `json:"phase"`
	Progress         []ProgressEntry            `json:"progress"`
	Attempts         []AttemptRecord            `json:"attempts"`
	FailurePatterns  []FailurePattern           `json:"failure_patterns"`
	Outputs          map[string]json.RawMessage `json:"outputs"`
	Orchestration    *OrchestrationState        `json:"orchestration,omitempty"`
	ErrorCount       int                        `json:"error_count"`
	RetryCount       int                        `json:"retry_count"`
	LastCheckpointID string                     `json:"last_checkpoint_id,omitempty"`
}
