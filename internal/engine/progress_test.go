package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okrflow/okrflow-api/internal/models"
)

func TestKeyResultProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    int
	}{
		{"zero target degrades to zero", 5, 0, 0},
		{"exact completion", 10, 10, 100},
		{"partial", 3, 5, 60},
		{"small share", 3, 15, 20},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"overshoot clamps to 100", 12, 10, 100},
		{"negative current clamps to 0", -4, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyResultProgress(tt.current, tt.target))
		})
	}
}

func TestAggregateGoalProgress(t *testing.T) {
	t.Run("no key results falls back to manual progress", func(t *testing.T) {
		goal := &models.Goal{Progress: 40}
		assert.Equal(t, 40, AggregateGoalProgress(goal))
	})

	t.Run("manual progress is clamped", func(t *testing.T) {
		assert.Equal(t, 100, AggregateGoalProgress(&models.Goal{Progress: 140}))
		assert.Equal(t, 0, AggregateGoalProgress(&models.Goal{Progress: -5}))
	})

	t.Run("unweighted mean of key result progress", func(t *testing.T) {
		goal := &models.Goal{
			Progress: 90, // ignored once key results exist
			KeyResults: []models.KeyResult{
				{Current: 3, Target: 5},  // 60
				{Current: 3, Target: 15}, // 20
			},
		}
		assert.Equal(t, 40, AggregateGoalProgress(goal))
	})

	t.Run("drafted key result with zero target counts as zero", func(t *testing.T) {
		goal := &models.Goal{
			KeyResults: []models.KeyResult{
				{Current: 10, Target: 10}, // 100
				{Current: 5, Target: 0},   // 0
			},
		}
		assert.Equal(t, 50, AggregateGoalProgress(goal))
	})

	t.Run("idempotent without intervening mutation", func(t *testing.T) {
		goal := &models.Goal{
			KeyResults: []models.KeyResult{
				{Current: 1, Target: 3},
				{Current: 7, Target: 8},
			},
		}
		first := AggregateGoalProgress(goal)
		goal.Progress = first
		assert.Equal(t, first, AggregateGoalProgress(goal))
	})

	t.Run("bounded for any inputs", func(t *testing.T) {
		goals := []*models.Goal{
			{Progress: -30},
			{Progress: 250},
			{KeyResults: []models.KeyResult{{Current: -5, Target: 2}, {Current: 900, Target: 1}}},
			{KeyResults: []models.KeyResult{{Current: 0, Target: 0}}},
		}
		for _, g := range goals {
			p := AggregateGoalProgress(g)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	})
}
