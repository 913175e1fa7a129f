package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/okrflow/okrflow-api/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func pacedGoal(progress int) *models.Goal {
	return &models.Goal{
		Progress:  progress,
		StartDate: date("2024-01-01"),
		DueDate:   date("2024-12-31"),
	}
}

func TestDeriveGoalStatus(t *testing.T) {
	t.Run("on track at half the timeline", func(t *testing.T) {
		// 40% actual vs ~50% expected is 80% of pace.
		got := DeriveGoalStatus(pacedGoal(40), date("2024-07-01"))
		assert.Equal(t, models.GoalOnTrack, got)
	})

	t.Run("behind near the deadline", func(t *testing.T) {
		// Same 40% actual vs ~91% expected is well under half of pace.
		got := DeriveGoalStatus(pacedGoal(40), date("2024-11-01"))
		assert.Equal(t, models.GoalBehind, got)
	})

	t.Run("at risk between the thresholds", func(t *testing.T) {
		// 30% actual vs ~50% expected is 60% of pace.
		got := DeriveGoalStatus(pacedGoal(30), date("2024-07-01"))
		assert.Equal(t, models.GoalAtRisk, got)
	})

	t.Run("not started before the start date", func(t *testing.T) {
		got := DeriveGoalStatus(pacedGoal(40), date("2023-06-01"))
		assert.Equal(t, models.GoalNotStarted, got)
	})

	t.Run("complete at full progress regardless of dates", func(t *testing.T) {
		got := DeriveGoalStatus(pacedGoal(100), date("2024-02-01"))
		assert.Equal(t, models.GoalComplete, got)
	})

	t.Run("override wins over everything", func(t *testing.T) {
		overrides := []models.GoalStatus{
			models.GoalNotStarted, models.GoalInProgress, models.GoalOnTrack,
			models.GoalAtRisk, models.GoalBehind, models.GoalComplete,
		}
		nows := []time.Time{date("2023-01-01"), date("2024-07-01"), date("2025-06-01")}
		for _, ov := range overrides {
			for _, now := range nows {
				goal := pacedGoal(100)
				goal.StatusOverride = &ov
				assert.Equal(t, ov, DeriveGoalStatus(goal, now))
			}
		}
	})

	t.Run("zero-length timeline counts as fully elapsed", func(t *testing.T) {
		goal := &models.Goal{
			Progress:  40,
			StartDate: date("2024-06-01"),
			DueDate:   date("2024-06-01"),
		}
		assert.Equal(t, models.GoalBehind, DeriveGoalStatus(goal, date("2024-06-01")))
		assert.Equal(t, models.GoalNotStarted, DeriveGoalStatus(goal, date("2024-05-31")))
	})

	t.Run("inverted range does not panic and reads as fully elapsed", func(t *testing.T) {
		goal := &models.Goal{
			Progress:  90,
			StartDate: date("2024-06-01"),
			DueDate:   date("2024-01-01"),
		}
		assert.Equal(t, models.GoalOnTrack, DeriveGoalStatus(goal, date("2024-07-01")))
	})

	t.Run("on track at the very start", func(t *testing.T) {
		// Expected progress is zero at the start date, so any progress paces.
		got := DeriveGoalStatus(pacedGoal(0), date("2024-01-01"))
		assert.Equal(t, models.GoalOnTrack, got)
	})

	t.Run("key results drive pacing over the cached field", func(t *testing.T) {
		goal := pacedGoal(0)
		goal.KeyResults = []models.KeyResult{
			{Current: 2, Target: 5}, // 40
			{Current: 4, Target: 10}, // 40
		}
		assert.Equal(t, models.GoalOnTrack, DeriveGoalStatus(goal, date("2024-07-01")))
	})
}

func TestExpectedProgress(t *testing.T) {
	start, due := date("2024-01-01"), date("2024-12-31")

	assert.Equal(t, float64(0), ExpectedProgress(start, due, date("2023-12-31")))
	assert.Equal(t, float64(100), ExpectedProgress(start, due, date("2024-12-31")))
	assert.Equal(t, float64(100), ExpectedProgress(start, due, date("2025-03-01")))
	assert.InDelta(t, 49.7, ExpectedProgress(start, due, date("2024-07-01")), 0.5)

	// Degenerate ranges stay total.
	assert.Equal(t, float64(100), ExpectedProgress(start, start, start))
	assert.Equal(t, float64(100), ExpectedProgress(due, start, due))
}

func TestDeriveEventStatus(t *testing.T) {
	event := func() *models.Event {
		return &models.Event{
			StartDate: date("2024-01-01"),
			EndDate:   date("2024-03-01"),
		}
	}

	t.Run("planning before start", func(t *testing.T) {
		assert.Equal(t, models.EventPlanning, DeriveEventStatus(event(), date("2023-12-01")))
	})

	t.Run("active within range", func(t *testing.T) {
		assert.Equal(t, models.EventActive, DeriveEventStatus(event(), date("2024-02-01")))
		assert.Equal(t, models.EventActive, DeriveEventStatus(event(), date("2024-01-01")))
		assert.Equal(t, models.EventActive, DeriveEventStatus(event(), date("2024-03-01")))
	})

	t.Run("completed after end", func(t *testing.T) {
		assert.Equal(t, models.EventCompleted, DeriveEventStatus(event(), date("2024-04-01")))
	})

	t.Run("override wins at any time", func(t *testing.T) {
		for _, ov := range []models.EventStatus{models.EventOnHold, models.EventCompleted} {
			for _, now := range []time.Time{date("2023-12-01"), date("2024-02-01"), date("2024-04-01")} {
				e := event()
				e.StatusOverride = &ov
				assert.Equal(t, ov, DeriveEventStatus(e, now))
			}
		}
	})

	t.Run("non-override statuses are ignored if forced into the field", func(t *testing.T) {
		e := event()
		planning := models.EventPlanning
		e.StatusOverride = &planning
		assert.Equal(t, models.EventActive, DeriveEventStatus(e, date("2024-02-01")))
	})
}
