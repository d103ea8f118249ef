// Package models contains request/response types and the typed domain
// structures persisted as JSON columns (session memory, orchestration state,
// agent outputs).
package models

import "time"

// Complexity is the estimated size class of a task or subtask.
type Complexity string

// Complexity classes. Subtasks produced by breakdown are restricted to XS/S.
const (
	ComplexityXS Complexity = "XS"
	ComplexityS  Complexity = "S"
	ComplexityM  Complexity = "M"
	ComplexityL  Complexity = "L"
	ComplexityXL Complexity = "XL"
)

// Valid reports whether c is a known complexity class.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexityXS, ComplexityS, ComplexityM, ComplexityL, ComplexityXL:
		return true
	}
	return false
}

// RequiresBreakdown reports whether a task of this complexity must be
// decomposed into subtasks before coding.
func (c Complexity) RequiresBreakdown() bool {
	return c == ComplexityM || c == ComplexityL || c == ComplexityXL
}

// Effort is the estimated reasoning effort for model selection.
type Effort string

// Effort levels.
const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Valid reports whether e is a known effort level.
func (e Effort) Valid() bool {
	return e == EffortLow || e == EffortMedium || e == EffortHigh
}

// IssueRef identifies the source issue a task was created from.
type IssueRef struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// String returns the "owner/name" coordinate.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// CreateTaskRequest contains fields for creating a new task.
type CreateTaskRequest struct {
	Repo              RepoRef  `json:"repo"`
	Issue             IssueRef `json:"issue"`
	MaxAttempts       int      `json:"max_attempts,omitempty"`
	ParentTaskID      string   `json:"parent_task_id,omitempty"`
	SubtaskIndex      *int     `json:"subtask_index,omitempty"`
	WebhookSource     string   `json:"webhook_source,omitempty"`
	WebhookDeliveryID string   `json:"webhook_delivery_id,omitempty"`
}

// TaskFilters contains filtering options for listing tasks.
type TaskFilters struct {
	Status    string `json:"status,omitempty"`
	RepoOwner string `json:"repo_owner,omitempty"`
	RepoName  string `json:"repo_name,omitempty"`
	RootsOnly bool   `json:"roots_only,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// PlanStep is a single step of the planner's implementation plan.
type PlanStep struct {
	File           string `json:"file"`
	Operation      string `json:"operation"` // "create" or "modify"
	Description    string `json:"description"`
	EstimatedLines int    `json:"estimated_lines"`
}

// PRRef references a published pull request.
type PRRef struct {
	Number int    `json:"number"`
	URL    string `json:"url"`
	Branch string `json:"branch"`
}

// TaskTimes groups lifecycle timestamps for API responses.
type TaskTimes struct {
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
