// Package agent runs the model-backed pipeline stages. Each agent is a
// prompt builder plus a typed output schema; the runner owns model
// resolution, retries, tracing, and schema enforcement.
package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/patchpilot/patchpilot/pkg/models"
)

// PlannerInput is everything the planner sees about the issue and repo.
type PlannerInput struct {
	IssueTitle   string
	IssueBody    string
	RepoContext  string
	FilesContent map[string]string
}

/// CoderInput describes one coding assignment: either a whole task or a
// single subtask.
type CoderInput struct {
	Title              string
	Description        string
	Plan               []models.PlanStep
	AcceptanceCriteria []string
	TargetFiles        []string
	FilesContent       map[string]string
}

// FixerInput carries the failing state a fixer needs to repair.
type FixerInput struct {
	PreviousDiff    string
	LastError       string
	FailurePatterns []string
	AttemptSummary  string
}

// ReviewerInput is the final diff plus what it was supposed to achieve.
type ReviewerInput struct {
	Diff             string
	DefinitionOfDone []string
	CommitMessage    string
}

const plannerSystemPrompt = `You are a senior software engineer planning a code change.
Given a GitHub issue and repository context, produce an implementation plan.
Respond with a single JSON object:
{"definition_of_done": [...], "plan": [{"file","operation","description","estimated_lines"}], "target_files": [...], "estimated_complexity": "XS|S|M|L|XL", "estimated_effort": "low|medium|high"}
Operations are "create" or "modify". Respond with JSON only.`

const coderSystemPrompt = `You are a senior software engineer implementing a planned change.
Produce a unified diff against the given file contents. Use correct hunk headers.
Respond with a single JSON object:
{"diff": "...", "commit_message": "...", "files_modified": [...]}
Respond with JSON only.`

const fixerSystemPrompt = `You are a senior software engineer fixing a failing change.
You receive the previous diff, the latest failure, and recurring failure patterns.
Produce a corrected unified diff replacing the previous one.
Respond with a single JSON object:
{"diff": "...", "commit_message": "...", "files_modified": [...], "fix_description": "..."}
Respond with JSON only.`

const reviewerSystemPrompt = `You are a strict code reviewer.
Check the diff against the definition of done.
Respond with a single JSON object:
{"verdict": "approve|request_changes|needs_discussion", "comments": [{"file","line","comment"}]}
Respond with JSON only.`

func (in PlannerInput) userPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Issue: %s\n\n%s\n", in.IssueTitle, in.IssueBody)
	if in.RepoContext != "" {
		fmt.Fprintf(&b, "\n# Repository context\n%s\n", in.RepoContext)
	}
	writeFiles(&b, in.FilesContent)
	return b.String()
}

func (in CoderInput) userPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Task: %s\n\n%s\n", in.Title, in.Description)
	if len(in.Plan) > 0 {
		b.WriteString("\n# Plan\n")
		for _, step := range in.Plan {
			fmt.Fprintf(&b, "- %s %s: %s (~%d lines)\n", step.Operation, step.File, step.Description, step.EstimatedLines)
		}
	}
	if len(in.AcceptanceCriteria) > 0 {
		b.WriteString("\n# Acceptance criteria\n")
		for _, c := range in.AcceptanceCriteria {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}
	if len(in.TargetFiles) > 0 {
		fmt.Fprintf(&b, "\n# Target files\n%s\n", strings.Join(in.TargetFiles, "\n"))
	}
	writeFiles(&b, in.FilesContent)
	return b.String()
}

func (in FixerInput) userPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Previous diff\n```diff\n%s\n```\n", in.PreviousDiff)
	fmt.Fprintf(&b, "\n# Latest failure\n%s\n", in.LastError)
	if len(in.FailurePatterns) > 0 {
		b.WriteString("\n# Recurring failure patterns\n")
		for _, p := range in.FailurePatterns {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	if in.AttemptSummary != "" {
		fmt.Fprintf(&b, "\n# Attempt history\n%s\n", in.AttemptSummary)
	}
	return b.String()
}

func (in ReviewerInput) userPrompt() string {
	var b strings.Builder
	if in.CommitMessage != "" {
		fmt.Fprintf(&b, "# Commit message\n%s\n\n", in.CommitMessage)
	}
	b.WriteString("# Definition of done\n")
	for _, d := range in.DefinitionOfDone {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	fmt.Fprintf(&b, "\n# Diff\n```diff\n%s\n```\n", in.Diff)
	return b.String()
}

func writeFiles(b *strings.Builder, files map[string]string) {
	if len(files) == 0 {
		return
	}
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	b.WriteString("\n# File contents\n")
	for _, p := range paths {
		fmt.Fprintf(b, "\n## %s\n```\n%s\n```\n", p, files[p])
	}
}

// Validation gates. Gate names are recorded on the trace.

const (
	gatePlannerSchema  = "planner_schema"
	gateCoderSchema    = "coder_schema"
	gateFixerSchema    = "fixer_schema"
	gateReviewerSchema = "reviewer_schema"
)

func validatePlanner(out *models.PlannerOutput) error {
	if len(out.Plan) == 0 {
		return fmt.Errorf("plan has no steps")
	}
	if !out.EstimatedComplexity.Valid() {
		return fmt.Errorf("invalid estimated_complexity %q", out.EstimatedComplexity)
	}
	if out.EstimatedEffort != "" && !out.EstimatedEffort.Valid() {
		return fmt.Errorf("invalid estimated_effort %q", out.EstimatedEffort)
	}
	for i, step := range out.Plan {
		if step.File == "" {
			return fmt.Errorf("plan step %d has no file", i)
		}
		if step.Operation != "create" && step.Operation != "modify" {
			return fmt.Errorf("plan step %d has operation %q, want create or modify", i, step.Operation)
		}
	}
	return nil
}

func validateCoder(out *models.CoderOutput) error {
	if strings.TrimSpace(out.Diff) == "" {
		return fmt.Errorf("coder output has an empty diff")
	}
	if strings.TrimSpace(out.CommitMessage) == "" {
		return fmt.Errorf("coder output has an empty commit message")
	}
	return nil
}

func validateFixer(out *models.FixerOutput) error {
	if strings.TrimSpace(out.Diff) == "" {
		return fmt.Errorf("fixer output has an empty diff")
	}
	return nil
}

func validateReviewer(out *models.ReviewerOutput) error {
	if !out.Verdict.Valid() {
		return fmt.Errorf("invalid verdict %q", out.Verdict)
	}
	return nil
}
