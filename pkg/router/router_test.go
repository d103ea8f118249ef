package router

import (
	"testing"

	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestModelForNonCoderStages(t *testing.T) {
	r := New()

	model, pos := r.ModelFor(models.StagePlanner, "", "")
	assert.Equal(t, PositionPlanner, pos)
	assert.NotEmpty(t, model)

	model, pos = r.ModelFor(models.StageReviewer, "", "")
	assert.Equal(t, PositionReviewer, pos)
	assert.NotEmpty(t, model)
}

func TestModelForCoderFallbackChain(t *testing.T) {
	r := New()

	// Exact slot configured.
	r.Set(CoderPosition(models.ComplexityS, models.EffortLow), "slot-model")
	model, pos := r.ModelFor(models.StageCoder, models.ComplexityS, models.EffortLow)
	assert.Equal(t, "slot-model", model)
	assert.Equal(t, Position("coder_S_low"), pos)

	// Missing effort slot falls back to the complexity default.
	model, pos = r.ModelFor(models.StageCoder, models.ComplexityS, models.EffortMedium)
	assert.Equal(t, Position("coder_S_default"), pos)
	assert.NotEmpty(t, model)
}

func TestModelForCoderFallsBackToEscalation(t *testing.T) {
	r := New()
	// L has no coder slots at all.
	model, pos := r.ModelFor(models.StageCoder, models.ComplexityL, models.EffortHigh)
	assert.Equal(t, PositionEscalation1, pos)
	assert.NotEmpty(t, model)
}

// Resolution is total: every complexity/effort pair yields a model.
func TestModelForCoderAlwaysDefined(t *testing.T) {
	r := New()
	complexities := []models.Complexity{
		models.ComplexityXS, models.ComplexityS, models.ComplexityM,
		models.ComplexityL, models.ComplexityXL,
	}
	efforts := []models.Effort{models.EffortLow, models.EffortMedium, models.EffortHigh, ""}

	for _, c := range complexities {
		for _, e := range efforts {
			model, _ := r.ModelFor(models.StageCoder, c, e)
			assert.NotEmpty(t, model, "complexity=%s effort=%s", c, e)
		}
	}
}

func TestEscalationModel(t *testing.T) {
	r := New()

	_, pos := r.EscalationModel(1)
	assert.Equal(t, PositionEscalation1, pos)

	_, pos = r.EscalationModel(2)
	assert.Equal(t, PositionEscalation2, pos)

	// Levels beyond 2 clamp.
	_, pos = r.EscalationModel(7)
	assert.Equal(t, PositionEscalation2, pos)
}

func TestReplaceDiscardsPreviousOverrides(t *testing.T) {
	r := New()
	r.Set(PositionPlanner, "override-a")

	r.Replace(map[Position]string{PositionFixer: "override-b"})

	model, _ := r.ModelFor(models.StagePlanner, "", "")
	assert.NotEqual(t, "override-a", model)

	model, _ = r.ModelFor(models.StageFixer, "", "")
	assert.Equal(t, "override-b", model)
}
