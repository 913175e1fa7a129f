package engine

import (
	"time"

	"github.com/okrflow/okrflow-api/internal/models"
)

// Pace thresholds: actual progress as a fraction of expected progress for the
// elapsed portion of the timeline.
const (
	onTrackRatio = 0.8
	atRiskRatio  = 0.5
)

// ExpectedProgress is the progress a goal should have reached by now given a
// linear pace across its timeline, clamped to 0-100. A zero-length or
// inverted range counts as fully elapsed once now reaches the start, so the
// function stays total on malformed input.
func ExpectedProgress(start, due, now time.Time) float64 {
	if now.Before(start) {
		return 0
	}
	if !due.After(start) {
		return 100
	}
	if !now.Before(due) {
		return 100
	}
	return 100 * float64(now.Sub(start)) / float64(due.Sub(start))
}

// DeriveGoalStatus computes a goal's effective status. Precedence: manual
// override, completion, not yet started, then pacing against the expected
// progress for the elapsed timeline.
func DeriveGoalStatus(goal *models.Goal, now time.Time) models.GoalStatus {
	if goal.StatusOverride != nil {
		return *goal.StatusOverride
	}

	progress := AggregateGoalProgress(goal)
	if progress >= 100 {
		return models.GoalComplete
	}
	if now.Before(goal.StartDate) {
		return models.GoalNotStarted
	}

	expected := ExpectedProgress(goal.StartDate, goal.DueDate, now)
	if float64(progress) >= onTrackRatio*expected {
		return models.GoalOnTrack
	}
	if float64(progress) >= atRiskRatio*expected {
		return models.GoalAtRisk
	}
	return models.GoalBehind
}

// DeriveEventStatus computes an event's effective status purely from dates.
// Events are calendar commitments, so unlike goals there is no pacing: past
// the end date the event happened, inside the range it is active.
func DeriveEventStatus(event *models.Event, now time.Time) models.EventStatus {
	if event.StatusOverride != nil && event.StatusOverride.ValidOverride() {
		return *event.StatusOverride
	}
	if now.After(event.EndDate) {
		return models.EventCompleted
	}
	if !now.Before(event.StartDate) {
		return models.EventActive
	}
	return models.EventPlanning
}
