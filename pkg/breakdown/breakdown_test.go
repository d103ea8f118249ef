package breakdown

import (
	"testing"

	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(file, op, desc string, lines int) models.PlanStep {
	return models.PlanStep{File: file, Operation: op, Description: desc, EstimatedLines: lines}
}

func TestBreakdownPairsTestSiblings(t *testing.T) {
	plan := &models.PlannerOutput{
		Plan: []models.PlanStep{
			step("src/auth.ts", "create", "add auth module", 40),
			step("src/auth.test.ts", "create", "add auth tests", 30),
			step("lib/util.ts", "create", "add util", 20),
			step("lib/__tests__/util.spec.ts", "create", "add util spec", 20),
		},
	}

	subtasks, err := Breakdown(plan)
	require.NoError(t, err)
	require.Len(t, subtasks, 2)

	assert.Equal(t, []string{"src/auth.ts", "src/auth.test.ts"}, subtasks[0].TargetFiles)
	assert.Equal(t, []string{"lib/util.ts", "lib/__tests__/util.spec.ts"}, subtasks[1].TargetFiles)
}

func TestBreakdownMergesSameDirectoryWithinCap(t *testing.T) {
	plan := &models.PlannerOutput{
		Plan: []models.PlanStep{
			step("src/a.ts", "create", "a", 40),
			step("src/b.ts", "create", "b", 40),
			step("src/c.ts", "create", "c", 40), // 120 > cap, stays separate
			step("other/d.ts", "create", "d", 10),
		},
	}

	subtasks, err := Breakdown(plan)
	require.NoError(t, err)
	require.Len(t, subtasks, 3)

	assert.Equal(t, []string{"src/a.ts", "src/b.ts"}, subtasks[0].TargetFiles)
	assert.Equal(t, []string{"src/c.ts"}, subtasks[1].TargetFiles)
	assert.Equal(t, []string{"other/d.ts"}, subtasks[2].TargetFiles)
}

func TestBreakdownTitles(t *testing.T) {
	plan := &models.PlannerOutput{
		Plan: []models.PlanStep{
			step("src/new.ts", "create", "new file", 10),
			step("src/old.ts", "modify", "touch old", 10),
		},
	}

	subtasks, err := Breakdown(plan)
	require.NoError(t, err)
	require.Len(t, subtasks, 1)
	assert.Equal(t, "Update 2 files in src", subtasks[0].Title)

	single := &models.PlannerOutput{Plan: []models.PlanStep{step("a/x.ts", "create", "x", 10)}}
	subtasks, err = Breakdown(single)
	require.NoError(t, err)
	assert.Equal(t, "Create a/x.ts", subtasks[0].Title)

	single = &models.PlannerOutput{Plan: []models.PlanStep{step("a/x.ts", "modify", "x", 10)}}
	subtasks, err = Breakdown(single)
	require.NoError(t, err)
	assert.Equal(t, "Modify a/x.ts", subtasks[0].Title)
}

func TestBreakdownComplexityThreshold(t *testing.T) {
	plan := &models.PlannerOutput{
		Plan: []models.PlanStep{
			step("a/small.ts", "create", "small", 50),
			step("b/medium.ts", "create", "medium", 51),
		},
	}

	subtasks, err := Breakdown(plan)
	require.NoError(t, err)
	require.Len(t, subtasks, 2)
	assert.Equal(t, models.ComplexityXS, subtasks[0].EstimatedComplexity)
	assert.Equal(t, models.ComplexityS, subtasks[1].EstimatedComplexity)
}

func TestBreakdownFailsWhenGroupExceedsS(t *testing.T) {
	plan := &models.PlannerOutput{
		Plan: []models.PlanStep{step("big.ts", "create", "huge rewrite", 500)},
	}
	_, err := Breakdown(plan)
	assert.Error(t, err)
}

func TestBreakdownCriteriaAssignment(t *testing.T) {
	plan := &models.PlannerOutput{
		DefinitionOfDone: []string{
			"auth.ts exposes a login function",
			"all endpoints return JSON",
		},
		Plan: []models.PlanStep{
			step("src/auth.ts", "create", "auth", 30),
			step("docs/readme.md", "create", "docs", 10),
		},
	}

	subtasks, err := Breakdown(plan)
	require.NoError(t, err)
	require.Len(t, subtasks, 2)

	assert.Equal(t, []string{"auth.ts exposes a login function"}, subtasks[0].AcceptanceCriteria)
	assert.Equal(t, []string{"compiles without errors", "code is properly typed"}, subtasks[1].AcceptanceCriteria)
}

func TestBreakdownDependencyHeuristic(t *testing.T) {
	plan := &models.PlannerOutput{
		Plan: []models.PlanStep{
			step("src/types.ts", "create", "shared types", 20),
			step("api/handler.ts", "modify", "use the new types", 30),
		},
	}

	subtasks, err := Breakdown(plan)
	require.NoError(t, err)
	require.Len(t, subtasks, 2)

	// The modifier depends on the types creator even across directories.
	assert.Empty(t, subtasks[0].Dependencies)
	assert.Equal(t, []string{"s1"}, subtasks[1].Dependencies)
}

func TestBreakdownSameDirectoryDependency(t *testing.T) {
	plan := &models.PlannerOutput{
		Plan: []models.PlanStep{
			step("api/client.ts", "create", "new client", 60),
			step("web/page.ts", "modify", "render", 10),
			step("api/server.ts", "modify", "wire client", 60),
		},
	}

	subtasks, err := Breakdown(plan)
	require.NoError(t, err)
	require.Len(t, subtasks, 3)

	assert.Equal(t, []string{"s1"}, subtasks[2].Dependencies)
	assert.Empty(t, subtasks[1].Dependencies)
}

func TestBreakdownEmptyPlan(t *testing.T) {
	_, err := Breakdown(&models.PlannerOutput{})
	assert.Error(t, err)
}
