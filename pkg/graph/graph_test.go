package graph

import (
	"testing"

	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subtask(id string, lines int, deps ...string) models.SubtaskDefinition {
	return models.SubtaskDefinition{
		ID:                  id,
		Title:               id,
		EstimatedComplexity: models.ComplexityXS,
		EstimatedLines:      lines,
		Dependencies:        deps,
	}
}

func TestValidateNoCycles(t *testing.T) {
	acyclic := []models.SubtaskDefinition{
		subtask("s1", 10),
		subtask("s2", 10, "s1"),
		subtask("s3", 10, "s1", "s2"),
	}
	assert.True(t, ValidateNoCycles(acyclic))

	cyclic := []models.SubtaskDefinition{
		subtask("s1", 10, "s3"),
		subtask("s2", 10, "s1"),
		subtask("s3", 10, "s2"),
	}
	assert.False(t, ValidateNoCycles(cyclic))

	selfLoop := []models.SubtaskDefinition{subtask("s1", 10, "s1")}
	assert.False(t, ValidateNoCycles(selfLoop))
}

func TestBuildDerivesStructure(t *testing.T) {
	subtasks := []models.SubtaskDefinition{
		subtask("a", 10),
		subtask("b", 10),
		subtask("c", 10, "a", "b"),
		subtask("d", 10, "c"),
	}

	g, err := Build(subtasks)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, g.Roots)
	assert.Equal(t, []string{"d"}, g.Leaves)
	assert.Equal(t, 0, g.Nodes["a"].Depth)
	assert.Equal(t, 1, g.Nodes["c"].Depth)
	assert.Equal(t, 2, g.Nodes["d"].Depth)
	assert.Equal(t, 2, g.MaxDepth)
	assert.ElementsMatch(t, []string{"c"}, g.Nodes["a"].Dependents)
}

func TestBuildRejectsUnknownDependency(t *testing.T) {
	_, err := Build([]models.SubtaskDefinition{subtask("a", 10, "ghost")})
	assert.Error(t, err)
}

func TestBuildRejectsCycle(t *testing.T) {
	_, err := Build([]models.SubtaskDefinition{
		subtask("a", 10, "b"),
		subtask("b", 10, "a"),
	})
	assert.Error(t, err)
}

func TestTopologicalSortPlacesNodesAfterDependencies(t *testing.T) {
	subtasks := []models.SubtaskDefinition{
		subtask("a", 10),
		subtask("b", 10, "a"),
		subtask("c", 10, "a"),
		subtask("d", 10, "b", "c"),
	}
	g, err := Build(subtasks)
	require.NoError(t, err)

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, st := range subtasks {
		for _, dep := range st.Dependencies {
			assert.Less(t, pos[dep], pos[st.ID], "%s must come after %s", st.ID, dep)
		}
	}
	// Stable tie-break on insertion order.
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
}

func TestParallelGroupsCoverAllSubtasks(t *testing.T) {
	subtasks := []models.SubtaskDefinition{
		subtask("a", 10),
		subtask("b", 10),
		subtask("c", 10, "a"),
		subtask("d", 10, "a", "b"),
		subtask("e", 10, "c", "d"),
	}

	groups, err := ParallelGroups(subtasks)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, groups)

	// Concatenation equals the input set.
	var flat []string
	for _, g := range groups {
		flat = append(flat, g...)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, flat)
}

func TestParallelGroupsFailsOnCycle(t *testing.T) {
	_, err := ParallelGroups([]models.SubtaskDefinition{
		subtask("a", 10, "b"),
		subtask("b", 10, "a"),
	})
	assert.Error(t, err)
}

func TestCriticalPath(t *testing.T) {
	subtasks := []models.SubtaskDefinition{
		subtask("s1", 10),
		subtask("s2", 10, "s1"),
		subtask("side", 10),
	}
	g, err := Build(subtasks)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, g.CriticalPath())
}

func TestNextExecutable(t *testing.T) {
	subtasks := []models.SubtaskDefinition{
		subtask("a", 10),
		subtask("b", 10),
		subtask("c", 10),
		subtask("d", 10),
		subtask("e", 10, "a"),
	}

	// Bound by maxParallel, insertion order.
	got := NextExecutable(subtasks, map[string]bool{}, map[string]bool{}, 3)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// In-progress and completed subtasks are excluded; dependents of
	// completed subtasks become executable.
	got = NextExecutable(subtasks,
		map[string]bool{"a": true},
		map[string]bool{"b": true},
		3)
	assert.Equal(t, []string{"c", "d", "e"}, got)
}

func TestProgressByEstimatedLines(t *testing.T) {
	subtasks := []models.SubtaskDefinition{
		subtask("a", 30),
		subtask("b", 70),
	}
	assert.InDelta(t, 0.3, Progress(subtasks, map[string]bool{"a": true}), 1e-9)
	assert.InDelta(t, 1.0, Progress(subtasks, map[string]bool{"a": true, "b": true}), 1e-9)
	assert.Zero(t, Progress(nil, nil))
}
