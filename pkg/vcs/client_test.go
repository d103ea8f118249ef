package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		owner   string
		repo    string
		wantErr bool
	}{
		{name: "simple", input: "octocat/hello-world", owner: "octocat", repo: "hello-world"},
		{name: "dots and underscores", input: "my.org/repo_name", owner: "my.org", repo: "repo_name"},
		{name: "empty string", input: "", wantErr: true},
		{name: "no slash", input: "octocat", wantErr: true},
		{name: "too many segments", input: "a/b/c", wantErr: true},
		{name: "empty owner", input: "/repo", wantErr: true},
		{name: "empty name", input: "owner/", wantErr: true},
		{name: "url form", input: "https://github.com/a/b", wantErr: true},
		{name: "whitespace", input: "owner /repo", wantErr: true},
		{name: "leading dash", input: "-owner/repo", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRepo(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, ref.Owner)
			assert.Equal(t, tt.repo, ref.Name)
			assert.Equal(t, tt.owner+"/"+tt.repo, ref.String())
		})
	}
}
