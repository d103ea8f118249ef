// Package fault classifies errors crossing component boundaries. The
// orchestrator branches on these kinds to decide between retry, escalation,
// checkpoint restore, human handoff, and terminal failure.
package fault

import (
	"errors"
	"fmt"
)

// Kind is the error classification the core distinguishes.
type Kind string

// Error kinds.
const (
	// Transient covers transport-level errors retried inside the agent
	// runner or VCS adapter. It never reaches the orchestrator unless the
	// retry budget is exhausted, at which point it is reclassified.
	Transient Kind = "transient"

	// RateLimited is transient with a longer backoff.
	RateLimited Kind = "rate_limited"

	// ModelFatal means an agent call exhausted its retries.
	ModelFatal Kind = "model_fatal"

	// SchemaInvalid means agent output failed schema validation.
	SchemaInvalid Kind = "schema_invalid"

	// StorageFatal means a store operation failed after backoff exhaustion.
	StorageFatal Kind = "storage_fatal"

	// DiffInvalid means the diff combiner rejected its output. Treated by
	// the orchestrator exactly like failing tests.
	DiffInvalid Kind = "diff_invalid"

	// MergeConflict means aggregation is blocked on conflicting subtask diffs.
	MergeConflict Kind = "merge_conflict"

	// Cancelled is the user-triggered terminal kind.
	Cancelled Kind = "cancelled"
)

// Error carries a kind alongside the wrapped cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error wrapping cause.
func New(kind Kind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}

// Newf creates a classified error from a format string.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the classification of err, or "" when unclassified.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
