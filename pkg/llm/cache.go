package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// promptCache memoizes completions for identical requests within a TTL.
// Agent retries after schema failures re-prompt with changed input, so they
// are never served a cached response.
type promptCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	resp    Response
	expires time.Time
}

func newPromptCache(ttl string) (*promptCache, error) {
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid prompt cache TTL %q: %w", ttl, err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("prompt cache TTL must be positive, got %q", ttl)
	}
	return &promptCache{
		ttl:     d,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}, nil
}

func cacheKey(req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%d\x00%g", req.Model, req.SystemPrompt, req.UserPrompt, req.MaxTokens, req.Temperature)
	return hex.EncodeToString(h.Sum(nil))
}

func (c *promptCache) get(req Request) (Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(req)
	entry, ok := c.entries[key]
	if !ok {
		return Response{}, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return Response{}, false
	}
	return entry.resp, true
}

func (c *promptCache) put(req Request, resp Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(req)] = cacheEntry{resp: resp, expires: c.now().Add(c.ttl)}
}
