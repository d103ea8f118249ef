// Package breakdown decomposes a planned complex task into XS/S subtasks
// with derived acceptance criteria and dependency edges. Breakdown is
// mechanical: it only reorganizes the planner's output, it never calls a
// model.
package breakdown

import (
	"fmt"
	"path"
	"strings"

	"github.com/patchpilot/patchpilot/pkg/graph"
	"github.com/patchpilot/patchpilot/pkg/models"
)

const (
	// xsLineThreshold is the upper bound for an XS subtask.
	xsLineThreshold = 50

	// mergeGroupCap bounds the cumulative estimated lines of a merged
	// same-directory group.
	mergeGroupCap = 100

	// sLineCap is the upper bound for an S subtask. A candidate above it
	// cannot be expressed as XS/S and fails the breakdown.
	sLineCap = 200
)

// Breakdown groups the planner's target files into subtasks.
//
// Grouping has two passes: source files are paired with their test siblings
// (same base name with a .test/.spec suffix, or under a __tests__
// directory), then single-file groups sharing a directory are merged while
// the group's cumulative estimated lines stay within mergeGroupCap.
func Breakdown(plan *models.PlannerOutput) ([]models.SubtaskDefinition, error) {
	if len(plan.Plan) == 0 {
		return nil, fmt.Errorf("planner output has no plan steps")
	}

	groups := groupSteps(plan.Plan)

	subtasks := make([]models.SubtaskDefinition, 0, len(groups))
	for i, g := range groups {
		st, err := buildSubtask(fmt.Sprintf("s%d", i+1), g, plan.DefinitionOfDone)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, st)
	}

	deriveDependencies(subtasks, groups)

	if err := validate(subtasks); err != nil {
		return nil, err
	}
	return subtasks, nil
}

// fileGroup is an ordered set of plan steps that become one subtask.
type fileGroup struct {
	steps []models.PlanStep
}

func (g *fileGroup) files() []string {
	out := make([]string, len(g.steps))
	for i, s := range g.steps {
		out[i] = s.File
	}
	return out
}

func (g *fileGroup) lines() int {
	n := 0
	for _, s := range g.steps {
		n += s.EstimatedLines
	}
	return n
}

func groupSteps(steps []models.PlanStep) []*fileGroup {
	// Pass 1: group by source key so a file and its tests travel together.
	byKey := make(map[string]*fileGroup)
	var order []string
	for _, step := range steps {
		key := sourceKey(step.File)
		g, ok := byKey[key]
		if !ok {
			g = &fileGroup{}
			byKey[key] = g
			order = append(order, key)
		}
		g.steps = append(g.steps, step)
	}

	groups := make([]*fileGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, byKey[key])
	}

	// Pass 2: merge single-file groups that share a directory while the
	// merged group stays within the line cap.
	var merged []*fileGroup
	byDir := make(map[string]*fileGroup)
	for _, g := range groups {
		if len(g.steps) != 1 {
			merged = append(merged, g)
			continue
		}
		dir := path.Dir(g.steps[0].File)
		if target, ok := byDir[dir]; ok && target.lines()+g.lines() <= mergeGroupCap {
			target.steps = append(target.steps, g.steps...)
			continue
		}
		merged = append(merged, g)
		byDir[dir] = g
	}
	return merged
}

// sourceKey maps a file to the key shared with its test siblings:
// "src/a.ts", "src/a.test.ts", "src/a.spec.ts" and "src/__tests__/a.test.ts"
// all share one key.
func sourceKey(file string) string {
	dir, base := path.Dir(file), path.Base(file)

	// Drop a __tests__ path segment.
	parts := strings.Split(dir, "/")
	kept := parts[:0]
	for _, p := range parts {
		if p != "__tests__" {
			kept = append(kept, p)
		}
	}
	dir = strings.Join(kept, "/")

	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stem = strings.TrimSuffix(stem, ".test")
	stem = strings.TrimSuffix(stem, ".spec")

	return path.Join(dir, stem)
}

func buildSubtask(id string, g *fileGroup, parentCriteria []string) (models.SubtaskDefinition, error) {
	lines := g.lines()
	if lines > sLineCap {
		return models.SubtaskDefinition{}, fmt.Errorf(
			"group %s (%d estimated lines) exceeds the S subtask cap of %d", strings.Join(g.files(), ", "), lines, sLineCap)
	}

	complexity := models.ComplexityXS
	if lines > xsLineThreshold {
		complexity = models.ComplexityS
	}

	var descParts []string
	for _, s := range g.steps {
		descParts = append(descParts, fmt.Sprintf("%s: %s", s.File, s.Description))
	}

	return models.SubtaskDefinition{
		ID:                  id,
		Title:               groupTitle(g),
		Description:         strings.Join(descParts, "\n"),
		TargetFiles:         g.files(),
		AcceptanceCriteria:  deriveCriteria(g.files(), parentCriteria),
		EstimatedComplexity: complexity,
		EstimatedLines:      lines,
	}, nil
}

func groupTitle(g *fileGroup) string {
	if len(g.steps) == 1 {
		step := g.steps[0]
		if step.Operation == "create" {
			return "Create " + step.File
		}
		return "Modify " + step.File
	}
	dirs := map[string]bool{}
	for _, s := range g.steps {
		dirs[path.Dir(s.File)] = true
	}
	if len(dirs) == 1 {
		return fmt.Sprintf("Update %d files in %s", len(g.steps), path.Dir(g.steps[0].File))
	}
	return fmt.Sprintf("Update %d files", len(g.steps))
}

// deriveCriteria selects parent criteria that textually reference one of
// the group's files, falling back to generic criteria when none match.
func deriveCriteria(files []string, parentCriteria []string) []string {
	var matched []string
	for _, criterion := range parentCriteria {
		for _, f := range files {
			if strings.Contains(criterion, f) || strings.Contains(criterion, path.Base(f)) {
				matched = append(matched, criterion)
				break
			}
		}
	}
	if len(matched) > 0 {
		return matched
	}
	return []string{"compiles without errors", "code is properly typed"}
}

// deriveDependencies adds an edge from each subtask that modifies a file to
// every subtask that creates a file the modified file might import: a
// created file in the same directory, or one named types/index.
func deriveDependencies(subtasks []models.SubtaskDefinition, groups []*fileGroup) {
	for i := range subtasks {
		for _, step := range groups[i].steps {
			if step.Operation != "modify" {
				continue
			}
			for j := range subtasks {
				if i == j {
					continue
				}
				if createsImportCandidate(groups[j], step.File) {
					subtasks[i].Dependencies = appendUnique(subtasks[i].Dependencies, subtasks[j].ID)
				}
			}
		}
	}
}

func createsImportCandidate(g *fileGroup, importer string) bool {
	for _, step := range g.steps {
		if step.Operation != "create" {
			continue
		}
		if path.Dir(step.File) == path.Dir(importer) {
			return true
		}
		stem := strings.TrimSuffix(path.Base(step.File), path.Ext(step.File))
		if stem == "types" || stem == "index" {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// validate enforces the emission invariants: unique ids, known dependency
// references, no self-dependencies, XS/S complexity only, acyclic.
func validate(subtasks []models.SubtaskDefinition) error {
	seen := make(map[string]bool, len(subtasks))
	for _, st := range subtasks {
		if seen[st.ID] {
			return fmt.Errorf("duplicate subtask id %q", st.ID)
		}
		seen[st.ID] = true
		if st.EstimatedComplexity != models.ComplexityXS && st.EstimatedComplexity != models.ComplexityS {
			return fmt.Errorf("subtask %q has complexity %s, want XS or S", st.ID, st.EstimatedComplexity)
		}
	}
	for _, st := range subtasks {
		for _, dep := range st.Dependencies {
			if dep == st.ID {
				return fmt.Errorf("subtask %q depends on itself", st.ID)
			}
			if !seen[dep] {
				return fmt.Errorf("subtask %q depends on unknown subtask %q", st.ID, dep)
			}
		}
	}
	if !graph.ValidateNoCycles(subtasks) {
		return fmt.Errorf("subtask dependencies contain a cycle")
	}
	return nil
}
