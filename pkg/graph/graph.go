// Package graph derives scheduling structure from a subtask set: cycle
// validation, topological order, parallel stages, critical path, and
// next-executable selection under a concurrency bound.
package graph

import (
	"fmt"

	"github.com/patchpilot/patchpilot/pkg/models"
)

// Node is the derived graph node for one subtask.
type Node struct {
	ID           string
	Dependencies []string
	Dependents   []string
	Depth        int
}

// Graph is the derived dependency graph over a subtask set. Insertion order
// of the underlying subtasks is preserved for deterministic tie-breaks.
type Graph struct {
	Nodes    map[string]*Node
	Order    []string // subtask ids in insertion order
	Roots    []string // nodes with zero dependencies
	Leaves   []string // nodes with zero dependents
	MaxDepth int
}

// Build constructs the graph. It fails on unknown dependency references or
// cycles.
func Build(subtasks []models.SubtaskDefinition) (*Graph, error) {
	g := &Graph{Nodes: make(map[string]*Node, len(subtasks))}

	for _, st := range subtasks {
		if _, dup := g.Nodes[st.ID]; dup {
			return nil, fmt.Errorf("duplicate subtask id %q", st.ID)
		}
		g.Nodes[st.ID] = &Node{ID: st.ID, Dependencies: append([]string(nil), st.Dependencies...)}
		g.Order = append(g.Order, st.ID)
	}

	for _, st := range subtasks {
		for _, dep := range st.Dependencies {
			if dep == st.ID {
				return nil, fmt.Errorf("subtask %q depends on itself", st.ID)
			}
			depNode, ok := g.Nodes[dep]
			if !ok {
				return nil, fmt.Errorf("subtask %q depends on unknown subtask %q", st.ID, dep)
			}
			depNode.Dependents = append(depNode.Dependents, st.ID)
		}
	}

	if !ValidateNoCycles(subtasks) {
		return nil, fmt.Errorf("dependency cycle detected")
	}

	// Memoized DFS for depth: max over dependencies + 1, 0 for roots.
	depths := make(map[string]int, len(subtasks))
	var depthOf func(id string) int
	depthOf = func(id string) int {
		if d, ok := depths[id]; ok {
			return d
		}
		node := g.Nodes[id]
		d := 0
		for _, dep := range node.Dependencies {
			if dd := depthOf(dep) + 1; dd > d {
				d = dd
			}
		}
		depths[id] = d
		return d
	}

	for _, id := range g.Order {
		node := g.Nodes[id]
		node.Depth = depthOf(id)
		if node.Depth > g.MaxDepth {
			g.MaxDepth = node.Depth
		}
		if len(node.Dependencies) == 0 {
			g.Roots = append(g.Roots, id)
		}
		if len(node.Dependents) == 0 {
			g.Leaves = append(g.Leaves, id)
		}
	}

	return g, nil
}

// ValidateNoCycles reports whether the subtask dependency relation is
// acyclic, using depth-first search with a recursion stack. Unknown
// dependency references are ignored here; Build rejects them separately.
func ValidateNoCycles(subtasks []models.SubtaskDefinition) bool {
	deps := make(map[string][]string, len(subtasks))
	for _, st := range subtasks {
		deps[st.ID] = st.Dependencies
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(subtasks))

	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case inStack:
			return false
		case done:
			return true
		}
		state[id] = inStack
		for _, dep := range deps[id] {
			if _, known := deps[dep]; !known {
				continue
			}
			if !visit(dep) {
				return false
			}
		}
		state[id] = done
		return true
	}

	for _, st := range subtasks {
		if !visit(st.ID) {
			return false
		}
	}
	return true
}

// TopologicalSort returns the subtask ids in dependency order using Kahn's
// algorithm, stable on insertion order for ties.
func (g *Graph) TopologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.Nodes))
	for _, id := range g.Order {
		inDegree[id] = len(g.Nodes[id].Dependencies)
	}

	var order []string
	ready := make(map[string]bool)
	for _, id := range g.Order {
		if inDegree[id] == 0 {
			ready[id] = true
		}
	}

	for len(order) < len(g.Order) {
		progressed := false
		for _, id := range g.Order {
			if !ready[id] {
				continue
			}
			ready[id] = false
			order = append(order, id)
			progressed = true
			for _, dependent := range g.Nodes[id].Dependents {
				inDegree[dependent]--
				if inDegree[dependent] == 0 {
					ready[dependent] = true
				}
			}
		}
		if !progressed {
			return nil, fmt.Errorf("topological sort stuck: cycle among remaining subtasks")
		}
	}
	return order, nil
}

// CriticalPath returns the longest chain of dependent subtasks, tracing back
// from every leaf via the longest dependency.
func (g *Graph) CriticalPath() []string {
	var bestLeaf string
	bestDepth := -1
	for _, id := range g.Leaves {
		if g.Nodes[id].Depth > bestDepth {
			bestDepth = g.Nodes[id].Depth
			bestLeaf = id
		}
	}
	if bestLeaf == "" {
		return nil
	}

	// Walk back through the deepest dependency at each step.
	var path []string
	cur := bestLeaf
	for {
		path = append([]string{cur}, path...)
		node := g.Nodes[cur]
		if len(node.Dependencies) == 0 {
			return path
		}
		next := node.Dependencies[0]
		for _, dep := range node.Dependencies[1:] {
			if g.Nodes[dep].Depth > g.Nodes[next].Depth {
				next = dep
			}
		}
		cur = next
	}
}
