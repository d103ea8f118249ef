package vcs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchpilot/patchpilot/pkg/models"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Multiplier:  2,
		MaxDelay:    10 * time.Millisecond,
	}
}

func newTestClient(t *testing.T, handler http.Handler) *GitHubClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewGitHubClientWithBaseURL("test-token", server.URL, fastRetry())
	require.NoError(t, err)
	return client
}

func TestRetryConfigDelay(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		Multiplier:  2,
		MaxDelay:    30 * time.Second,
	}
	assert.Equal(t, 2*time.Second, cfg.Delay(1))
	assert.Equal(t, 4*time.Second, cfg.Delay(2))
	assert.Equal(t, 8*time.Second, cfg.Delay(3))
	assert.Equal(t, 30*time.Second, cfg.Delay(10))
}

func TestIsRetryable(t *testing.T) {
	resp := func(code int) *github.ErrorResponse {
		return &github.ErrorResponse{Response: &http.Response{StatusCode: code}}
	}
	assert.True(t, isRetryable(resp(http.StatusInternalServerError)))
	assert.True(t, isRetryable(resp(http.StatusBadGateway)))
	assert.True(t, isRetryable(resp(http.StatusTooManyRequests)))
	assert.True(t, isRetryable(resp(http.StatusRequestTimeout)))
	assert.True(t, isRetryable(&github.RateLimitError{}))
	assert.True(t, isRetryable(&github.AbuseRateLimitError{}))
	assert.False(t, isRetryable(resp(http.StatusNotFound)))
	assert.False(t, isRetryable(resp(http.StatusUnauthorized)))
	assert.False(t, isRetryable(resp(http.StatusUnprocessableEntity)))
}

func TestGetIssueRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(&github.Issue{
			Number: github.Ptr(7),
			Title:  github.Ptr("Fix crash"),
			Body:   github.Ptr("It crashes on startup"),
			State:  github.Ptr("open"),
			Labels: []*github.Label{{Name: github.Ptr("patchpilot")}},
		})
	}))

	issue, err := client.GetIssue(context.Background(), models.RepoRef{Owner: "o", Name: "r"}, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 7, issue.Number)
	assert.Equal(t, "Fix crash", issue.Title)
	assert.Equal(t, []string{"patchpilot"}, issue.Labels)
	assert.Equal(t, "open", issue.State)
}

func TestGetIssueGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetIssue(context.Background(), models.RepoRef{Owner: "o", Name: "r"}, 1)
	assert.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetFilesContentMissingFileMapsToEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v3/repos/o/r/contents/present.txt" {
			_ = json.NewEncoder(w).Encode(&github.RepositoryContent{
				Type:     github.Ptr("file"),
				Encoding: github.Ptr(""),
				Name:     github.Ptr("present.txt"),
				Content:  github.Ptr("hello\n"),
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))

	out, err := client.GetFilesContent(context.Background(),
		models.RepoRef{Owner: "o", Name: "r"}, []string{"present.txt", "missing.txt"}, "main")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out["present.txt"])
	assert.Equal(t, "", out["missing.txt"])
}

func TestCreateBranchIdempotent(t *testing.T) {
	var creates atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/repos/o/r/git/ref/heads/patchpilot-1":
			_ = json.NewEncoder(w).Encode(&github.Reference{
				Ref:    github.Ptr("refs/heads/patchpilot-1"),
				Object: &github.GitObject{SHA: github.Ptr("abc123")},
			})
		case r.Method == http.MethodPost:
			creates.Add(1)
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "Not Found"}`)
		}
	}))

	// Branch already exists — no create call issued.
	err := client.CreateBranch(context.Background(),
		models.RepoRef{Owner: "o", Name: "r"}, "patchpilot-1", "main")
	require.NoError(t, err)
	assert.Equal(t, int32(0), creates.Load())
}

func TestEvaluateCheckRuns(t *testing.T) {
	run := func(status, conclusion, name string) *github.CheckRun {
		return &github.CheckRun{
			Status:     github.Ptr(status),
			Conclusion: github.Ptr(conclusion),
			Name:       github.Ptr(name),
		}
	}

	t.Run("all passing", func(t *testing.T) {
		done, success, summary := evaluateCheckRuns([]*github.CheckRun{
			run("completed", "success", "build"),
			run("completed", "skipped", "lint"),
			run("completed", "neutral", "coverage"),
		})
		assert.True(t, done)
		assert.True(t, success)
		assert.Empty(t, summary)
	})

	t.Run("still running", func(t *testing.T) {
		done, _, _ := evaluateCheckRuns([]*github.CheckRun{
			run("completed", "success", "build"),
			run("in_progress", "", "test"),
		})
		assert.False(t, done)
	})

	t.Run("failure collects summary", func(t *testing.T) {
		done, success, summary := evaluateCheckRuns([]*github.CheckRun{
			run("completed", "failure", "test"),
			run("completed", "timed_out", "e2e"),
		})
		assert.True(t, done)
		assert.False(t, success)
		assert.Contains(t, summary, "test: failure")
		assert.Contains(t, summary, "e2e: timed_out")
	})
}
