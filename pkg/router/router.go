// Package router resolves which model serves each pipeline position. The
// table is seeded from built-in defaults and overlaid with persisted
// overrides; resolution for coder positions falls back so a model is always
// defined.
package router

import (
	"fmt"
	"sync"

	"github.com/patchpilot/patchpilot/pkg/models"
)

// Position names a slot in the position → model table.
type Position string

const (
	PositionPlanner     Position = "planner"
	PositionFixer       Position = "fixer"
	PositionReviewer    Position = "reviewer"
	PositionEscalation1 Position = "escalation_1"
	PositionEscalation2 Position = "escalation_2"
)

// CoderPosition returns the coder slot for a complexity/effort pair, e.g.
// coder_XS_low. Effort "" selects the default slot for the complexity.
func CoderPosition(complexity models.Complexity, effort models.Effort) Position {
	e := string(effort)
	if e == "" {
		e = "default"
	}
	return Position(fmt.Sprintf("coder_%s_%s", complexity, e))
}

// Defaults is the built-in position → model table. Persisted overrides
// shadow these entries.
func Defaults() map[Position]string {
	table := map[Position]string{
		PositionPlanner:     "gpt-4.1",
		PositionFixer:       "gpt-4.1",
		PositionReviewer:    "gpt-4.1",
		PositionEscalation1: "o3",
		PositionEscalation2: "o3-pro",
	}
	coderDefaults := map[models.Complexity]string{
		models.ComplexityXS: "gpt-4.1-mini",
		models.ComplexityS:  "gpt-4.1-mini",
		models.ComplexityM:  "gpt-4.1",
	}
	for complexity, model := range coderDefaults {
		table[CoderPosition(complexity, "")] = model
	}
	// High-effort coding goes straight to the larger model.
	for _, complexity := range []models.Complexity{models.ComplexityXS, models.ComplexityS, models.ComplexityM} {
		table[CoderPosition(complexity, models.EffortHigh)] = "gpt-4.1"
	}
	return table
}

// Router is the in-memory view of the model table. It is safe for
// concurrent use; Replace swaps in a freshly loaded override set.
type Router struct {
	mu       sync.RWMutex
	defaults map[Position]string
	override map[Position]string
}

func New() *Router {
	return &Router{
		defaults: Defaults(),
		override: make(map[Position]string),
	}
}

// Replace installs the persisted overrides, discarding any previous set.
func (r *Router) Replace(overrides map[Position]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.override = make(map[Position]string, len(overrides))
	for pos, model := range overrides {
		r.override[pos] = model
	}
}

// Set updates a single override. Callers that persist the change are
// responsible for writing the audit row.
func (r *Router) Set(pos Position, model string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.override[pos] = model
}

func (r *Router) lookup(pos Position) (string, bool) {
	if m, ok := r.override[pos]; ok && m != "" {
		return m, true
	}
	m, ok := r.defaults[pos]
	return m, ok
}

// ModelFor resolves the model for a pipeline stage. Coder resolution walks
// coder_{complexity}_{effort} → coder_{complexity}_default → escalation_1 →
// escalation_2, so it never comes back undefined. Non-coder stages resolve
// their own position directly.
func (r *Router) ModelFor(stage models.Stage, complexity models.Complexity, effort models.Effort) (string, Position) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if stage != models.StageCoder {
		pos := Position(stage)
		if m, ok := r.lookup(pos); ok {
			return m, pos
		}
		// Unconfigured non-coder stage falls back to the first escalation
		// slot rather than failing the pipeline.
		m, _ := r.lookup(PositionEscalation1)
		return m, PositionEscalation1
	}

	chain := []Position{
		CoderPosition(complexity, effort),
		CoderPosition(complexity, ""),
		PositionEscalation1,
		PositionEscalation2,
	}
	for _, pos := range chain {
		if m, ok := r.lookup(pos); ok {
			return m, pos
		}
	}
	// Unreachable while Defaults covers the escalation slots.
	return "", PositionEscalation2
}

// EscalationModel resolves escalation level 1 or 2. Levels beyond 2 clamp
// to escalation_2.
func (r *Router) EscalationModel(level int) (string, Position) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos := PositionEscalation1
	if level >= 2 {
		pos = PositionEscalation2
	}
	m, _ := r.lookup(pos)
	return m, pos
}
