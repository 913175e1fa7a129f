package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okrflow/okrflow-api/internal/models"
	"github.com/okrflow/okrflow-api/internal/store"
)

// findGoalKeyResult resolves the goal/key-result pair from path params. On
// failure it writes the error response and reports false.
func findGoalKeyResult(c *fiber.Ctx) (*models.Goal, *models.KeyResult, bool) {
	goalID, err := uuid.Parse(c.Params("goalId"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
		return nil, nil, false
	}

	goal, err := store.Goals.Get(goalID)
	if err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
		return nil, nil, false
	}

	krID, err := uuid.Parse(c.Params("keyResultId"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid key result ID",
		})
		return nil, nil, false
	}

	kr, err := store.KeyResults.Get(krID)
	if err != nil || kr.GoalID != goal.ID {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Key result not found",
		})
		return nil, nil, false
	}

	return goal, kr, true
}

func GetKeyResults(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("goalId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	krs, err := store.KeyResults.ListByGoal(goalID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load key results",
		})
	}

	return c.JSON(krs)
}

func CreateKeyResult(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("goalId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	goal, err := store.Goals.Get(goalID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	var req models.CreateKeyResultRequest
	if !parseBody(c, &req) {
		return nil
	}

	// Blank outcomes are transient UI rows and never persisted. A zero
	// target is allowed while drafting and reads as zero progress.
	kr := models.KeyResult{
		GoalID:  goal.ID,
		Outcome: req.Outcome,
		Current: req.Current,
		Target:  req.Target,
		Order:   len(goal.KeyResults),
	}

	if err := store.KeyResults.Create(&kr); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create key result",
		})
	}

	recalcGoalProgress(goal.ID)

	return c.Status(fiber.StatusCreated).JSON(kr)
}

func UpdateKeyResult(c *fiber.Ctx) error {
	goal, kr, ok := findGoalKeyResult(c)
	if !ok {
		return nil
	}

	var req models.UpdateKeyResultRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Outcome != nil {
		if *req.Outcome == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Outcome must not be empty",
			})
		}
		kr.Outcome = *req.Outcome
	}
	if req.Current != nil {
		kr.Current = *req.Current
	}
	if req.Target != nil {
		kr.Target = *req.Target
	}

	if err := store.KeyResults.Save(kr); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update key result",
		})
	}

	recalcGoalProgress(goal.ID)

	return c.JSON(kr)
}

func DeleteKeyResult(c *fiber.Ctx) error {
	goal, kr, ok := findGoalKeyResult(c)
	if !ok {
		return nil
	}

	if err := store.KeyResults.Delete(kr.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete key result",
		})
	}

	// Close the gap so sibling orders stay dense.
	if err := store.KeyResults.ShiftOrdersAfter(goal.ID, kr.Order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reorder key results",
		})
	}

	recalcGoalProgress(goal.ID)

	return c.JSON(fiber.Map{"success": true})
}

func ReorderKeyResult(c *fiber.Ctx) error {
	goal, kr, ok := findGoalKeyResult(c)
	if !ok {
		return nil
	}

	var req models.ReorderKeyResultRequest
	if !parseBody(c, &req) {
		return nil
	}

	if err := store.KeyResults.SetOrder(kr, req.Order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reorder key result",
		})
	}

	krs, err := store.KeyResults.ListByGoal(goal.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load key results",
		})
	}

	return c.JSON(krs)
}
