package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okrflow/okrflow-api/internal/models"
)

func TestValidateTimeline(t *testing.T) {
	t.Run("rejects end before start", func(t *testing.T) {
		res := ValidateTimeline(date("2024-06-01"), date("2024-01-01"), "", 0)
		assert.False(t, res.OK())
		assert.Contains(t, res.Errors, IssueInvalidRange)
	})

	t.Run("accepts ordered range", func(t *testing.T) {
		res := ValidateTimeline(date("2024-01-01"), date("2024-06-01"), "", 0)
		assert.True(t, res.OK())
		assert.Empty(t, res.Warnings)
	})

	t.Run("accepts zero-length range", func(t *testing.T) {
		res := ValidateTimeline(date("2024-01-01"), date("2024-01-01"), "", 0)
		assert.True(t, res.OK())
	})

	t.Run("start inside declared quarter passes", func(t *testing.T) {
		res := ValidateTimeline(date("2024-02-15"), date("2024-03-31"), models.Q1, 2024)
		assert.True(t, res.OK())
		assert.Empty(t, res.Warnings)
	})

	t.Run("start outside declared quarter warns without blocking", func(t *testing.T) {
		res := ValidateTimeline(date("2024-05-01"), date("2024-06-30"), models.Q1, 2024)
		assert.True(t, res.OK())
		assert.Contains(t, res.Warnings, IssueQuarterMismatch)
	})

	t.Run("wrong year warns", func(t *testing.T) {
		res := ValidateTimeline(date("2023-02-01"), date("2023-03-01"), models.Q1, 2024)
		assert.True(t, res.OK())
		assert.Contains(t, res.Warnings, IssueQuarterMismatch)
	})

	t.Run("missing quarter or year skips the check", func(t *testing.T) {
		res := ValidateTimeline(date("2024-05-01"), date("2024-06-30"), models.Q1, 0)
		assert.Empty(t, res.Warnings)

		res = ValidateTimeline(date("2024-05-01"), date("2024-06-30"), "", 2024)
		assert.Empty(t, res.Warnings)
	})

	t.Run("invalid range and mismatch report together", func(t *testing.T) {
		res := ValidateTimeline(date("2024-08-01"), date("2024-02-01"), models.Q1, 2024)
		assert.False(t, res.OK())
		assert.Contains(t, res.Errors, IssueInvalidRange)
		assert.Contains(t, res.Warnings, IssueQuarterMismatch)
	})
}
