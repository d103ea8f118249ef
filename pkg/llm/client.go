// Package llm adapts the OpenAI-compatible chat completions API to the
// single Complete call the agents consume.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Request is one completion call. Model is the identifier resolved by the
// router; the adapter never chooses models itself.
type Request struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float32
}

// Response carries the completion text and token usage for trace records.
type Response struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Client is the completion surface the agent runner depends on.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// Config configures the OpenAI-backed client.
type Config struct {
	APIKey  string
	BaseURL string // empty uses the public API

	// EnableFlexProcessing requests the flex service tier, trading latency
	// for cost on batch-like workloads.
	EnableFlexProcessing bool

	// PromptCacheTTL enables a local response cache for identical requests.
	// Zero disables caching.
	PromptCacheTTL string
}

type openAIClient struct {
	api   *openai.Client
	flex  bool
	cache *promptCache
}

// NewClient builds the production client. Fails fast on a missing API key
// so misconfiguration surfaces at startup, not on the first agent call.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	c := &openAIClient{
		api:  openai.NewClientWithConfig(apiCfg),
		flex: cfg.EnableFlexProcessing,
	}
	if cfg.PromptCacheTTL != "" {
		cache, err := newPromptCache(cfg.PromptCacheTTL)
		if err != nil {
			return nil, err
		}
		c.cache = cache
	}
	return c, nil
}

func (c *openAIClient) Complete(ctx context.Context, req Request) (Response, error) {
	if c.cache != nil {
		if resp, ok := c.cache.get(req); ok {
			return resp, nil
		}
	}

	apiReq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if c.flex {
		apiReq.ServiceTier = "flex"
	}

	apiResp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return Response{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return Response{}, fmt.Errorf("chat completion returned no choices")
	}

	resp := Response{
		Text:         apiResp.Choices[0].Message.Content,
		InputTokens:  apiResp.Usage.PromptTokens,
		OutputTokens: apiResp.Usage.CompletionTokens,
	}
	if c.cache != nil {
		c.cache.put(req, resp)
	}
	return resp, nil
}

// retryableMessages are substrings of provider error messages that indicate
// a transient overload condition.
var retryableMessages = []string{"overloaded", "rate limit", "capacity"}

// IsRetryable classifies completion errors for the agent retry policy:
// transport errors, HTTP 5xx, 408, 429, and overload messages retry;
// everything else is terminal for the attempt.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 408 || apiErr.HTTPStatusCode == 429 {
			return true
		}
		msg := strings.ToLower(apiErr.Message)
		for _, s := range retryableMessages {
			if strings.Contains(msg, s) {
				return true
			}
		}
		return false
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 500 || reqErr.HTTPStatusCode == 408 || reqErr.HTTPStatusCode == 429
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Anything else is a transport-level failure (connection reset, DNS).
	msg := strings.ToLower(err.Error())
	for _, s := range retryableMessages {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return true
}
