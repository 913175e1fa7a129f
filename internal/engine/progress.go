// Package engine holds the pure derivation logic shared by goals and events:
// progress roll-up, pace-aware status derivation, timeline validation and
// kanban ordering. Every function here is total and side-effect free; callers
// pass the clock in and persist results themselves.
package engine

import (
	"math"

	"github.com/okrflow/okrflow-api/internal/models"
)

// KeyResultProgress computes a key result's own progress from its
// current/target pair, clamped to 0-100. A zero target is common while
// drafting and yields 0 rather than an error.
func KeyResultProgress(current, target float64) int {
	if target == 0 {
		return 0
	}
	p := int(math.Round(100 * current / target))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// AggregateGoalProgress rolls a goal's key results up into a single 0-100
// value: the unweighted mean of each key result's progress, so one
// large-target key result cannot dominate the signal. A goal without key
// results keeps its manually set progress.
func AggregateGoalProgress(goal *models.Goal) int {
	if len(goal.KeyResults) == 0 {
		return clampPercent(goal.Progress)
	}

	sum := 0
	for _, kr := range goal.KeyResults {
		sum += KeyResultProgress(kr.Current, kr.Target)
	}
	return int(math.Round(float64(sum) / float64(len(goal.KeyResults))))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
