package models

// Stage names the pipeline position an agent is invoked for. The router maps
// stages (plus complexity/effort for the coder) to model identifiers.
type Stage string

// Pipeline stages backed by an agent.
const (
	StagePlanner  Stage = "planner"
	StageCoder    Stage = "coder"
	StageFixer    Stage = "fixer"
	StageReviewer Stage = "reviewer"
)

// PlannerOutput is the typed result of the planner agent.
type PlannerOutput struct {
	DefinitionOfDone    []string   `json:"definition_of_done"`
	Plan                []PlanStep `json:"plan"`
	TargetFiles         []string   `json:"target_files"`
	EstimatedComplexity Complexity `json:"estimated_complexity"`
	EstimatedEffort     Effort     `json:"estimated_effort"`
}

// CoderOutput is the typed result of the coder agent.
type CoderOutput struct {
	Diff          string   `json:"diff"`
	CommitMessage string   `json:"commit_message"`
	FilesModified []string `json:"files_modified"`
}

// FixerOutput is the typed result of the fixer agent.
type FixerOutput struct {
	Diff           string   `json:"diff"`
	CommitMessage  string   `json:"commit_message"`
	FilesModified  []string `json:"files_modified"`
	FixDescription string   `json:"fix_description"`
}

// Verdict is the reviewer's decision.
type Verdict string

// Reviewer verdicts.
const (
	VerdictApprove         Verdict = "approve"
	VerdictRequestChanges  Verdict = "request_changes"
	VerdictNeedsDiscussion Verdict = "needs_discussion"
)

// Valid reports whether v is a known verdict.
func (v Verdict) Valid() bool {
	return v == VerdictApprove || v == VerdictRequestChanges || v == VerdictNeedsDiscussion
}

// ReviewComment is a single reviewer remark, optionally anchored to a file.
type ReviewComment struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Comment string `json:"comment"`
}

// ReviewerOutput is the typed result of the reviewer agent.
type ReviewerOutput struct {
	Verdict  Verdict         `json:"verdict"`
	Comments []ReviewComment `json:"comments"`
}

// BreakdownOutput is the result of subtask decomposition. Breakdown is
// mechanical (never an LLM call) but its output shape mirrors agent outputs
// so it can occupy a session memory output slot.
type BreakdownOutput struct {
	Subtasks []SubtaskDefinition `json:"subtasks"`
}
