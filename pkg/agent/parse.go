package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON pulls the JSON object out of a completion. Models wrap output
// in markdown fences or prose more often than not, so we look for a fenced
// block first and fall back to the outermost brace pair.
func extractJSON(text string) (string, error) {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end]), nil
		}
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			candidate := strings.TrimSpace(rest[:end])
			if strings.HasPrefix(candidate, "{") {
				return candidate, nil
			}
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in completion")
	}
	return text[start : end+1], nil
}

// decodeOutput parses the completion into the agent's typed output and runs
// its validation gate.
func decodeOutput[T any](text string, validate func(*T) error) (*T, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode agent output: %w", err)
	}
	if validate != nil {
		if err := validate(&out); err != nil {
			return nil, err
		}
	}
	return &out, nil
}
