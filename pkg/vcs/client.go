// Package vcs is the adapter to the source-code host. The engine only sees
// the narrow Client interface; the GitHub implementation lives behind it.
package vcs

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/patchpilot/patchpilot/pkg/models"
)

// Issue is the host-side view of a source issue.
type Issue struct {
	Number int
	Title  string
	Body   string
	Labels []string
	State  string // "open" or "closed"
}

// CheckResult is the outcome of waiting for CI on a branch.
type CheckResult struct {
	Success      bool
	ErrorSummary string // populated when Success is false
}

// PullState reports where a pull request ended up, for the reconcile loop.
type PullState struct {
	State  string // "open" or "closed"
	Merged bool
}

// Client is the set of host operations the engine needs. Implementations
// must make CreateBranch idempotent and apply their own transport retries.
type Client interface {
	GetIssue(ctx context.Context, repo models.RepoRef, number int) (*Issue, error)

	// GetRepoContext returns a textual summary of the repository (README
	// plus top-level tree) for agent prompts.
	GetRepoContext(ctx context.Context, repo models.RepoRef, targetFiles []string) (string, error)

	// GetFilesContent fetches file contents at ref. Missing files map to "".
	GetFilesContent(ctx context.Context, repo models.RepoRef, paths []string, ref string) (map[string]string, error)

	// CreateBranch creates branch off baseRef (default branch when empty).
	// Creating a branch that already exists is not an error.
	CreateBranch(ctx context.Context, repo models.RepoRef, branch, baseRef string) error

	// ApplyDiff materializes the unified diff against the branch and commits
	// the resulting file states. Returns the head commit SHA.
	ApplyDiff(ctx context.Context, repo models.RepoRef, branch, diffText, commitMessage string) (string, error)

	CreatePR(ctx context.Context, repo models.RepoRef, head, base, title, body string) (*models.PRRef, error)
	UpdatePR(ctx context.Context, repo models.RepoRef, number int, title, body string) error
	AddComment(ctx context.Context, repo models.RepoRef, number int, body string) error
	AddLabels(ctx context.Context, repo models.RepoRef, number int, labels []string) error

	GetPullState(ctx context.Context, repo models.RepoRef, number int) (*PullState, error)

	// WaitForChecks polls CI check runs on the branch until they complete or
	// the timeout elapses. A repository with no checks configured counts as
	// passing after a short grace period.
	WaitForChecks(ctx context.Context, repo models.RepoRef, branch string, timeout time.Duration) (*CheckResult, error)
}

var repoPartPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ParseRepo parses a strict "owner/name" coordinate. Anything else — extra
// segments, empty parts, URLs, whitespace — is rejected.
func ParseRepo(s string) (models.RepoRef, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return models.RepoRef{}, fmt.Errorf("invalid repository %q: want owner/name", s)
	}
	owner, name := parts[0], parts[1]
	if !repoPartPattern.MatchString(owner) || !repoPartPattern.MatchString(name) {
		return models.RepoRef{}, fmt.Errorf("invalid repository %q: want owner/name", s)
	}
	return models.RepoRef{Owner: owner, Name: name}, nil
}
