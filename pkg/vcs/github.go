package vcs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"

	"github.com/patchpilot/patchpilot/pkg/diff"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// noCIGrace is how long WaitForChecks tolerates an empty check-run list
// before concluding the repository has no CI configured.
const noCIGrace = 20 * time.Second

// checkPollInterval is the delay between check-run polls.
const checkPollInterval = 5 * time.Second

// RetryConfig bounds transport retries against the GitHub API.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
}

// DefaultRetryConfig returns the standard GitHub retry policy
// (3 attempts, 2s base, doubling, 30s cap).
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		Multiplier:  2,
		MaxDelay:    30 * time.Second,
	}
}

// Delay returns the backoff before the given 1-based attempt's retry.
func (c RetryConfig) Delay(attempt int) time.Duration {
	d := c.BaseDelay
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * c.Multiplier)
		if d >= c.MaxDelay {
			return c.MaxDelay
		}
	}
	return min(d, c.MaxDelay)
}

// GitHubClient implements Client against the GitHub REST API.
type GitHubClient struct {
	gh     *github.Client
	retry  RetryConfig
	logger *slog.Logger
}

// NewGitHubClient creates a GitHub client authenticated with token.
func NewGitHubClient(token string, retry RetryConfig) *GitHubClient {
	return &GitHubClient{
		gh:     github.NewClient(nil).WithAuthToken(token),
		retry:  retry,
		logger: slog.Default().With("component", "github-client"),
	}
}

// NewGitHubClientWithBaseURL creates a client that targets a custom API URL.
// Useful for testing with a mock server.
func NewGitHubClientWithBaseURL(token, baseURL string, retry RetryConfig) (*GitHubClient, error) {
	gh, err := github.NewClient(nil).WithAuthToken(token).WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub base URL: %w", err)
	}
	return &GitHubClient{
		gh:     gh,
		retry:  retry,
		logger: slog.Default().With("component", "github-client"),
	}, nil
}

// withRetry runs op with the transport retry policy. Rate limits and 5xx
// responses are retried with backoff; anything else fails immediately.
func (c *GitHubClient) withRetry(ctx context.Context, name string, op func() error) error {
	var lastErr error
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) || attempt == c.retry.MaxAttempts {
			break
		}
		delay := c.retry.Delay(attempt)
		c.logger.Warn("GitHub call failed, retrying",
			"op", name, "attempt", attempt, "delay", delay, "error", lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("%s: %w", name, lastErr)
}

// isRetryable reports whether a GitHub API error is worth retrying.
func isRetryable(err error) bool {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		code := ghErr.Response.StatusCode
		return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func (c *GitHubClient) GetIssue(ctx context.Context, repo models.RepoRef, number int) (*Issue, error) {
	var issue *github.Issue
	err := c.withRetry(ctx, "get issue", func() error {
		var err error
		issue, _, err = c.gh.Issues.Get(ctx, repo.Owner, repo.Name, number)
		return err
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}
	return &Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Labels: labels,
		State:  issue.GetState(),
	}, nil
}

func (c *GitHubClient) GetRepoContext(ctx context.Context, repo models.RepoRef, targetFiles []string) (string, error) {
	var b strings.Builder

	var readme *github.RepositoryContent
	err := c.withRetry(ctx, "get readme", func() error {
		var err error
		readme, _, err = c.gh.Repositories.GetReadme(ctx, repo.Owner, repo.Name, nil)
		return err
	})
	if err == nil {
		if content, cerr := readme.GetContent(); cerr == nil && content != "" {
			b.WriteString("## README\n\n")
			b.WriteString(content)
			b.WriteString("\n\n")
		}
	}
	// A repo without a README is fine; only the tree is mandatory context.

	var entries []*github.RepositoryContent
	err = c.withRetry(ctx, "list root tree", func() error {
		var err error
		_, entries, _, err = c.gh.Repositories.GetContents(ctx, repo.Owner, repo.Name, "", nil)
		return err
	})
	if err != nil {
		return "", err
	}
	b.WriteString("## Repository layout\n\n")
	for _, entry := range entries {
		if entry.GetType() == "dir" {
			fmt.Fprintf(&b, "%s/\n", entry.GetName())
		} else {
			fmt.Fprintf(&b, "%s\n", entry.GetName())
		}
	}

	if len(targetFiles) > 0 {
		b.WriteString("\n## Target files\n\n")
		for _, f := range targetFiles {
			b.WriteString(f)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func (c *GitHubClient) GetFilesContent(ctx context.Context, repo models.RepoRef, paths []string, ref string) (map[string]string, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	out := make(map[string]string, len(paths))
	for _, path := range paths {
		var file *github.RepositoryContent
		err := c.withRetry(ctx, "get file "+path, func() error {
			var err error
			file, _, _, err = c.gh.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, opts)
			return err
		})
		if err != nil {
			if isNotFoundResponse(err) {
				out[path] = ""
				continue
			}
			return nil, err
		}
		content, err := file.GetContent()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		out[path] = content
	}
	return out, nil
}

func (c *GitHubClient) CreateBranch(ctx context.Context, repo models.RepoRef, branch, baseRef string) error {
	// Already exists → done. Branch creation is idempotent per task.
	err := c.withRetry(ctx, "get branch ref", func() error {
		_, _, err := c.gh.Git.GetRef(ctx, repo.Owner, repo.Name, "heads/"+branch)
		return err
	})
	if err == nil {
		return nil
	}
	if !isNotFoundResponse(err) {
		return err
	}

	if baseRef == "" {
		var r *github.Repository
		err := c.withRetry(ctx, "get repository", func() error {
			var err error
			r, _, err = c.gh.Repositories.Get(ctx, repo.Owner, repo.Name)
			return err
		})
		if err != nil {
			return err
		}
		baseRef = r.GetDefaultBranch()
	}

	var base *github.Reference
	err = c.withRetry(ctx, "get base ref", func() error {
		var err error
		base, _, err = c.gh.Git.GetRef(ctx, repo.Owner, repo.Name, "heads/"+baseRef)
		return err
	})
	if err != nil {
		return err
	}

	err = c.withRetry(ctx, "create branch", func() error {
		_, _, err := c.gh.Git.CreateRef(ctx, repo.Owner, repo.Name, &github.Reference{
			Ref:    github.Ptr("refs/heads/" + branch),
			Object: &github.GitObject{SHA: base.Object.SHA},
		})
		return err
	})
	if err != nil && isAlreadyExistsResponse(err) {
		// Lost a race with ourselves (restart mid-stage). Fine.
		return nil
	}
	return err
}

// ApplyDiff parses the diff, materializes each file against the branch's
// current content and commits the results through the contents API.
// Returns the SHA of the final commit.
func (c *GitHubClient) ApplyDiff(ctx context.Context, repo models.RepoRef, branch, diffText, commitMessage string) (string, error) {
	files, err := diff.Parse(diffText)
	if err != nil {
		return "", fmt.Errorf("parse diff: %w", err)
	}

	// Fetch base contents for files the diff modifies or deletes.
	basePaths := make([]string, 0, len(files))
	for _, fd := range files {
		if !fd.IsNew {
			basePaths = append(basePaths, fd.Path())
		}
	}
	base, err := c.GetFilesContent(ctx, repo, basePaths, branch)
	if err != nil {
		return "", err
	}

	states, err := diff.Materialize(files, base)
	if err != nil {
		return "", fmt.Errorf("materialize diff: %w", err)
	}

	headSHA := ""
	for _, state := range states {
		sha, err := c.commitFileState(ctx, repo, branch, state, commitMessage)
		if err != nil {
			return "", err
		}
		if sha != "" {
			headSHA = sha
		}
	}
	return headSHA, nil
}

// commitFileState creates, updates or deletes a single file on the branch
// and returns the resulting commit SHA.
func (c *GitHubClient) commitFileState(ctx context.Context, repo models.RepoRef, branch string, state diff.FileState, message string) (string, error) {
	getOpts := &github.RepositoryContentGetOptions{Ref: branch}
	var existing *github.RepositoryContent
	err := c.withRetry(ctx, "stat file "+state.Path, func() error {
		var err error
		existing, _, _, err = c.gh.Repositories.GetContents(ctx, repo.Owner, repo.Name, state.Path, getOpts)
		return err
	})
	if err != nil && !isNotFoundResponse(err) {
		return "", err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Branch:  github.Ptr(branch),
	}

	if state.Deleted {
		if existing == nil {
			return "", nil // Already gone.
		}
		opts.SHA = existing.SHA
		var resp *github.RepositoryContentResponse
		err := c.withRetry(ctx, "delete file "+state.Path, func() error {
			var err error
			resp, _, err = c.gh.Repositories.DeleteFile(ctx, repo.Owner, repo.Name, state.Path, opts)
			return err
		})
		if err != nil {
			return "", err
		}
		return resp.Commit.GetSHA(), nil
	}

	opts.Content = []byte(state.Content)
	if existing != nil {
		opts.SHA = existing.SHA
	}
	var resp *github.RepositoryContentResponse
	err = c.withRetry(ctx, "write file "+state.Path, func() error {
		var err error
		if existing != nil {
			resp, _, err = c.gh.Repositories.UpdateFile(ctx, repo.Owner, repo.Name, state.Path, opts)
		} else {
			resp, _, err = c.gh.Repositories.CreateFile(ctx, repo.Owner, repo.Name, state.Path, opts)
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return resp.Commit.GetSHA(), nil
}

func (c *GitHubClient) CreatePR(ctx context.Context, repo models.RepoRef, head, base, title, body string) (*models.PRRef, error) {
	if base == "" {
		var r *github.Repository
		err := c.withRetry(ctx, "get repository", func() error {
			var err error
			r, _, err = c.gh.Repositories.Get(ctx, repo.Owner, repo.Name)
			return err
		})
		if err != nil {
			return nil, err
		}
		base = r.GetDefaultBranch()
	}

	var pr *github.PullRequest
	err := c.withRetry(ctx, "create pull request", func() error {
		var err error
		pr, _, err = c.gh.PullRequests.Create(ctx, repo.Owner, repo.Name, &github.NewPullRequest{
			Title: github.Ptr(title),
			Head:  github.Ptr(head),
			Base:  github.Ptr(base),
			Body:  github.Ptr(body),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &models.PRRef{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
		Branch: head,
	}, nil
}

func (c *GitHubClient) UpdatePR(ctx context.Context, repo models.RepoRef, number int, title, body string) error {
	update := &github.PullRequest{}
	if title != "" {
		update.Title = github.Ptr(title)
	}
	if body != "" {
		update.Body = github.Ptr(body)
	}
	return c.withRetry(ctx, "update pull request", func() error {
		_, _, err := c.gh.PullRequests.Edit(ctx, repo.Owner, repo.Name, number, update)
		return err
	})
}

func (c *GitHubClient) AddComment(ctx context.Context, repo models.RepoRef, number int, body string) error {
	return c.withRetry(ctx, "add comment", func() error {
		_, _, err := c.gh.Issues.CreateComment(ctx, repo.Owner, repo.Name, number, &github.IssueComment{
			Body: github.Ptr(body),
		})
		return err
	})
}

func (c *GitHubClient) AddLabels(ctx context.Context, repo models.RepoRef, number int, labels []string) error {
	return c.withRetry(ctx, "add labels", func() error {
		_, _, err := c.gh.Issues.AddLabelsToIssue(ctx, repo.Owner, repo.Name, number, labels)
		return err
	})
}

func (c *GitHubClient) GetPullState(ctx context.Context, repo models.RepoRef, number int) (*PullState, error) {
	var pr *github.PullRequest
	err := c.withRetry(ctx, "get pull request", func() error {
		var err error
		pr, _, err = c.gh.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &PullState{State: pr.GetState(), Merged: pr.GetMerged()}, nil
}

// WaitForChecks polls check runs on the branch until they all complete, the
// timeout elapses, or the no-CI grace period expires with no runs found.
func (c *GitHubClient) WaitForChecks(ctx context.Context, repo models.RepoRef, branch string, timeout time.Duration) (*CheckResult, error) {
	deadline := time.Now().Add(timeout)
	graceDeadline := time.Now().Add(noCIGrace)

	for {
		var results *github.ListCheckRunsResults
		err := c.withRetry(ctx, "list check runs", func() error {
			var err error
			results, _, err = c.gh.Checks.ListCheckRunsForRef(ctx, repo.Owner, repo.Name, branch, nil)
			return err
		})
		if err != nil {
			return nil, err
		}

		if results.GetTotal() == 0 {
			if time.Now().After(graceDeadline) {
				// No CI configured — treat as pass.
				return &CheckResult{Success: true}, nil
			}
		} else {
			done, success, summary := evaluateCheckRuns(results.CheckRuns)
			if done {
				return &CheckResult{Success: success, ErrorSummary: summary}, nil
			}
		}

		if time.Now().After(deadline) {
			return &CheckResult{Success: false, ErrorSummary: "timed out waiting for checks"}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(checkPollInterval):
		}
	}
}

// evaluateCheckRuns reports whether all runs finished and, if so, whether
// they all passed. Failing run names and conclusions go into the summary.
func evaluateCheckRuns(runs []*github.CheckRun) (done, success bool, summary string) {
	var failures []string
	for _, run := range runs {
		if run.GetStatus() != "completed" {
			return false, false, ""
		}
		switch run.GetConclusion() {
		case "success", "neutral", "skipped":
		default:
			failures = append(failures, fmt.Sprintf("%s: %s", run.GetName(), run.GetConclusion()))
		}
	}
	if len(failures) > 0 {
		return true, false, strings.Join(failures, "; ")
	}
	return true, true, ""
}

func isNotFoundResponse(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}

func isAlreadyExistsResponse(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusUnprocessableEntity
}
