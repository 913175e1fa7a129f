package models

import "time"

// GoalStatus is the effective lifecycle status of an objective. Apart from an
// explicit override it is always derived from dates and progress, never stored.
type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalOnTrack    GoalStatus = "on_track"
	GoalAtRisk     GoalStatus = "at_risk"
	GoalBehind     GoalStatus = "behind"
	GoalComplete   GoalStatus = "complete"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalNotStarted, GoalInProgress, GoalOnTrack, GoalAtRisk, GoalBehind, GoalComplete:
		return true
	}
	return false
}

// EventStatus is the lifecycle status of a time-boxed initiative.
type EventStatus string

const (
	EventPlanning  EventStatus = "planning"
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
	EventOnHold    EventStatus = "on_hold"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventPlanning, EventActive, EventCompleted, EventOnHold:
		return true
	}
	return false
}

// ValidOverride reports whether s may be forced manually. Events are
// calendar-bound, so only early completion and pausing can be overridden.
func (s EventStatus) ValidOverride() bool {
	return s == EventCompleted || s == EventOnHold
}

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityNone     Priority = "none"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

func (q Quarter) Valid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	}
	return false
}

// Months returns the conventional first and last month of the quarter.
func (q Quarter) Months() (time.Month, time.Month) {
	switch q {
	case Q1:
		return time.January, time.March
	case Q2:
		return time.April, time.June
	case Q3:
		return time.July, time.September
	case Q4:
		return time.October, time.December
	}
	return time.January, time.December
}

type Category string

const (
	CategoryProduct   Category = "product"
	CategoryGrowth    Category = "growth"
	CategoryFunding   Category = "funding"
	CategoryTeam      Category = "team"
	CategoryApps      Category = "apps"
	CategoryPartners  Category = "partners"
	CategoryMarketing Category = "marketing"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryProduct, CategoryGrowth, CategoryFunding, CategoryTeam, CategoryApps, CategoryPartners, CategoryMarketing:
		return true
	}
	return false
}

type EventType string

const (
	EventLaunch     EventType = "launch"
	EventConference EventType = "conference"
	EventCampaign   EventType = "campaign"
	EventMilestone  EventType = "milestone"
	EventInternal   EventType = "internal"
)

func (t EventType) Valid() bool {
	switch t {
	case EventLaunch, EventConference, EventCampaign, EventMilestone, EventInternal:
		return true
	}
	return false
}
