package graph

import (
	"fmt"

	"github.com/patchpilot/patchpilot/pkg/models"
)

// DefaultMaxParallel is the default concurrency bound for subtask execution.
const DefaultMaxParallel = 3

// ParallelGroups partitions the subtasks into execution stages: each stage
// contains every subtask whose dependencies are all satisfied by earlier
// stages. Fails if a stage would be empty while subtasks remain (which only
// happens on a cycle or unknown reference).
func ParallelGroups(subtasks []models.SubtaskDefinition) ([][]string, error) {
	remaining := make(map[string]models.SubtaskDefinition, len(subtasks))
	var order []string
	for _, st := range subtasks {
		remaining[st.ID] = st
		order = append(order, st.ID)
	}

	completed := make(map[string]bool, len(subtasks))
	var groups [][]string

	for len(remaining) > 0 {
		var stage []string
		for _, id := range order {
			st, ok := remaining[id]
			if !ok {
				continue
			}
			if depsSatisfied(st.Dependencies, completed) {
				stage = append(stage, id)
			}
		}
		if len(stage) == 0 {
			return nil, fmt.Errorf("no executable subtasks among %d remaining", len(remaining))
		}
		for _, id := range stage {
			completed[id] = true
			delete(remaining, id)
		}
		groups = append(groups, stage)
	}
	return groups, nil
}

// NextExecutable returns up to maxParallel subtasks, in insertion order,
// whose dependencies are all completed and that are not themselves completed
// or in progress.
func NextExecutable(subtasks []models.SubtaskDefinition, completed, inProgress map[string]bool, maxParallel int) []string {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	var out []string
	for _, st := range subtasks {
		if completed[st.ID] || inProgress[st.ID] {
			continue
		}
		if !depsSatisfied(st.Dependencies, completed) {
			continue
		}
		out = append(out, st.ID)
		if len(out) == maxParallel {
			break
		}
	}
	return out
}

// Progress reports completion as completed estimated lines over total
// estimated lines, in [0, 1].
func Progress(subtasks []models.SubtaskDefinition, completed map[string]bool) float64 {
	total, done := 0, 0
	for _, st := range subtasks {
		total += st.EstimatedLines
		if completed[st.ID] {
			done += st.EstimatedLines
		}
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

func depsSatisfied(deps []string, completed map[string]bool) bool {
	for _, d := range deps {
		if !completed[d] {
			return false
		}
	}
	return true
}
