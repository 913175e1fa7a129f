package engine

import (
	"time"

	"github.com/okrflow/okrflow-api/internal/models"
)

type TimelineIssue string

const (
	// IssueInvalidRange means the end date precedes the start date. It blocks
	// persistence; callers must re-prompt rather than clamp the dates.
	IssueInvalidRange TimelineIssue = "invalid_range"
	// IssueQuarterMismatch means the start date falls outside the declared
	// quarter's months. Advisory only: goals may span quarter boundaries.
	IssueQuarterMismatch TimelineIssue = "quarter_mismatch"
)

// TimelineResult carries hard errors and advisory warnings separately so the
// caller can block on one and surface the other.
type TimelineResult struct {
	Errors   []TimelineIssue `json:"errors,omitempty"`
	Warnings []TimelineIssue `json:"warnings,omitempty"`
}

func (r TimelineResult) OK() bool {
	return len(r.Errors) == 0
}

// ValidateTimeline checks date ordering and, when a quarter and year are
// supplied, that the start date falls within that quarter. A zero quarter or
// year skips the quarter check.
func ValidateTimeline(start, end time.Time, quarter models.Quarter, year int) TimelineResult {
	var res TimelineResult

	if end.Before(start) {
		res.Errors = append(res.Errors, IssueInvalidRange)
	}

	if quarter.Valid() && year != 0 {
		first, last := quarter.Months()
		if start.Year() != year || start.Month() < first || start.Month() > last {
			res.Warnings = append(res.Warnings, IssueQuarterMismatch)
		}
	}

	return res
}
