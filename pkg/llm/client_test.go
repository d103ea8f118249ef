package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestNewClientRejectsBadCacheTTL(t *testing.T) {
	_, err := NewClient(Config{APIKey: "k", PromptCacheTTL: "soon"})
	assert.Error(t, err)

	_, err = NewClient(Config{APIKey: "k", PromptCacheTTL: "-5m"})
	assert.Error(t, err)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"server error", &openai.APIError{HTTPStatusCode: 503}, true},
		{"timeout", &openai.APIError{HTTPStatusCode: 408}, true},
		{"rate limited", &openai.APIError{HTTPStatusCode: 429}, true},
		{"bad request", &openai.APIError{HTTPStatusCode: 400}, false},
		{"overloaded message", &openai.APIError{HTTPStatusCode: 200, Message: "Engine is Overloaded, try later"}, true},
		{"capacity message", &openai.APIError{HTTPStatusCode: 200, Message: "no capacity available"}, true},
		{"auth failure", &openai.APIError{HTTPStatusCode: 401, Message: "invalid api key"}, false},
		{"request error 500", &openai.RequestError{HTTPStatusCode: 500}, true},
		{"request error 404", &openai.RequestError{HTTPStatusCode: 404}, false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"transport", errors.New("connection reset by peer"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestPromptCacheExpiry(t *testing.T) {
	cache, err := newPromptCache("10m")
	require.NoError(t, err)

	now := time.Now()
	cache.now = func() time.Time { return now }

	req := Request{Model: "m", UserPrompt: "hello"}
	resp := Response{Text: "world", InputTokens: 1, OutputTokens: 2}

	_, ok := cache.get(req)
	assert.False(t, ok)

	cache.put(req, resp)
	got, ok := cache.get(req)
	require.True(t, ok)
	assert.Equal(t, resp, got)

	// A different prompt misses.
	_, ok = cache.get(Request{Model: "m", UserPrompt: "other"})
	assert.False(t, ok)

	// Past the TTL, the entry is gone.
	now = now.Add(11 * time.Minute)
	_, ok = cache.get(req)
	assert.False(t, ok)
}
