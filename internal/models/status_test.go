package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusEnums(t *testing.T) {
	for _, s := range []GoalStatus{GoalNotStarted, GoalInProgress, GoalOnTrack, GoalAtRisk, GoalBehind, GoalComplete} {
		assert.True(t, s.Valid())
	}
	assert.False(t, GoalStatus("on_hold").Valid(), "event statuses are not goal statuses")
	assert.False(t, GoalStatus("").Valid())

	for _, s := range []EventStatus{EventPlanning, EventActive, EventCompleted, EventOnHold} {
		assert.True(t, s.Valid())
	}
	assert.False(t, EventStatus("behind").Valid(), "goal statuses are not event statuses")
}

func TestEventOverrideVocabulary(t *testing.T) {
	assert.True(t, EventCompleted.ValidOverride())
	assert.True(t, EventOnHold.ValidOverride())
	assert.False(t, EventPlanning.ValidOverride())
	assert.False(t, EventActive.ValidOverride())
}

func TestQuarterMonths(t *testing.T) {
	tests := []struct {
		quarter Quarter
		first   time.Month
		last    time.Month
	}{
		{Q1, time.January, time.March},
		{Q2, time.April, time.June},
		{Q3, time.July, time.September},
		{Q4, time.October, time.December},
	}
	for _, tt := range tests {
		first, last := tt.quarter.Months()
		assert.Equal(t, tt.first, first)
		assert.Equal(t, tt.last, last)
	}
}
