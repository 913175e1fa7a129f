package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okrflow/okrflow-api/internal/database"
	"github.com/okrflow/okrflow-api/internal/engine"
	"github.com/okrflow/okrflow-api/internal/middleware"
	"github.com/okrflow/okrflow-api/internal/models"
	"github.com/okrflow/okrflow-api/internal/services"
	"github.com/okrflow/okrflow-api/internal/store"
)

// decorateGoal fills the derived fields returned to clients: a fresh progress
// roll-up and the effective status. Aggregation runs before derivation since
// derivation reads aggregated progress.
func decorateGoal(goal *models.Goal, now time.Time) {
	goal.Progress = engine.AggregateGoalProgress(goal)
	goal.Status = engine.DeriveGoalStatus(goal, now)
}

// recalcGoalProgress recomputes the cached roll-up after a key-result
// mutation and writes it back, tracking CompletedAt alongside.
func recalcGoalProgress(goalID uuid.UUID) {
	goal, err := store.Goals.Get(goalID)
	if err != nil {
		return
	}

	progress := engine.AggregateGoalProgress(goal)
	updates := map[string]interface{}{"progress": progress}
	if progress >= 100 && goal.CompletedAt == nil {
		now := time.Now()
		updates["completed_at"] = &now
	} else if progress < 100 && goal.StatusOverride == nil && goal.CompletedAt != nil {
		updates["completed_at"] = nil
	}

	store.Goals.Update(goalID, updates)
}

func goalFilterFromQuery(c *fiber.Ctx) store.GoalFilter {
	filter := store.GoalFilter{
		Quarter:  models.Quarter(c.Query("quarter")),
		Category: models.Category(c.Query("category")),
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		filter.Year = year
	}
	if owner := c.Query("owner"); owner == "me" {
		filter.OwnerID = middleware.GetUserID(c)
	} else if ownerID, err := uuid.Parse(owner); err == nil {
		filter.OwnerID = ownerID
	}
	if eventID, err := uuid.Parse(c.Query("eventId")); err == nil {
		filter.EventID = eventID
	}
	return filter
}

func GetGoals(c *fiber.Ctx) error {
	goals, err := store.Goals.List(goalFilterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load goals",
		})
	}

	now := time.Now()
	for i := range goals {
		decorateGoal(&goals[i], now)
	}

	return c.JSON(goals)
}

func GetGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
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

	decorateGoal(goal, time.Now())
	return c.JSON(goal)
}

func CreateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateGoalRequest
	if !parseBody(c, &req) {
		return nil
	}

	if !req.Category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category",
		})
	}
	if req.Quarter != "" && !req.Quarter.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid quarter",
		})
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid priority",
		})
	}

	timeline := engine.ValidateTimeline(req.StartDate, req.DueDate, req.Quarter, req.Year)
	if !timeline.OK() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Due date must not precede start date",
			"errors": timeline.Errors,
		})
	}

	ownerID := userID
	if req.OwnerID != nil {
		ownerID = *req.OwnerID
	}
	priority := models.PriorityNone
	if req.Priority != nil {
		priority = *req.Priority
	}
	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}

	// New cards land at the end of their column; board reads keep the
	// per-column sequence dense.
	var position int64
	database.DB.Model(&models.Goal{}).Count(&position)

	goal := models.Goal{
		Title:          req.Title,
		Objective:      req.Objective,
		Category:       req.Category,
		Quarter:        req.Quarter,
		Year:           req.Year,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		Priority:       priority,
		OwnerID:        ownerID,
		TeamMembers:    req.TeamMembers,
		Dependencies:   req.Dependencies,
		EventID:        req.EventID,
		Progress:       progress,
		KanbanPosition: int(position),
	}

	if err := store.Goals.Create(&goal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create goal",
		})
	}

	if ownerID != userID {
		services.Notify(ownerID, "goal_assigned", "New objective assigned",
			"You are now the owner of \""+goal.Title+"\"",
			map[string]interface{}{"goalId": goal.ID.String()},
		)
	}
	services.LogActivity(userID, "goal_created", &goal.ID, map[string]interface{}{
		"title": goal.Title,
	})

	decorateGoal(&goal, time.Now())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"goal":     goal,
		"warnings": timeline.Warnings,
	})
}

func UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
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

	var req models.UpdateGoalRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Category != nil && !req.Category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category",
		})
	}
	if req.Quarter != nil && *req.Quarter != "" && !req.Quarter.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid quarter",
		})
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid priority",
		})
	}

	if req.Title != nil {
		if *req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Title must not be empty",
			})
		}
		goal.Title = *req.Title
	}
	if req.Objective != nil {
		if *req.Objective == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Objective must not be empty",
			})
		}
		goal.Objective = *req.Objective
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.Quarter != nil {
		goal.Quarter = *req.Quarter
	}
	if req.Year != nil {
		goal.Year = *req.Year
	}
	if req.StartDate != nil {
		goal.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		goal.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}
	if req.TeamMembers != nil {
		goal.TeamMembers = req.TeamMembers
	}
	if req.Dependencies != nil {
		goal.Dependencies = req.Dependencies
	}
	if req.EventID != nil {
		goal.EventID = req.EventID
	}
	if req.Progress != nil && len(goal.KeyResults) == 0 {
		goal.Progress = *req.Progress
	}

	// Revalidate the merged timeline whenever dates or quarter moved. An
	// invalid range rejects the whole mutation; the caller re-prompts.
	timeline := engine.ValidateTimeline(goal.StartDate, goal.DueDate, goal.Quarter, goal.Year)
	if !timeline.OK() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Due date must not precede start date",
			"errors": timeline.Errors,
		})
	}

	previousOwner := goal.OwnerID
	if req.OwnerID != nil {
		goal.OwnerID = *req.OwnerID
	}

	if err := store.Goals.Save(goal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update goal",
		})
	}

	if req.OwnerID != nil && goal.OwnerID != previousOwner && goal.OwnerID != userID {
		services.Notify(goal.OwnerID, "goal_assigned", "New objective assigned",
			"You are now the owner of \""+goal.Title+"\"",
			map[string]interface{}{"goalId": goal.ID.String()},
		)
	}

	decorateGoal(goal, time.Now())
	return c.JSON(fiber.Map{
		"goal":     goal,
		"warnings": timeline.Warnings,
	})
}

// DeleteGoal archives a goal. Records are soft-deleted and drop out of list
// and board reads.
func DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
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

	if err := store.Goals.Delete(goalID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to archive goal",
		})
	}

	services.LogActivity(userID, "goal_archived", &goalID, map[string]interface{}{
		"title": goal.Title,
	})

	return c.JSON(fiber.Map{"success": true})
}

// SetGoalStatus sets or clears the manual status override. Manual intent
// always wins over derivation, so this is also how "Mark Done" works.
func SetGoalStatus(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
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

	var req models.SetStatusRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Status == nil || *req.Status == "" {
		goal.StatusOverride = nil
		if engine.AggregateGoalProgress(goal) < 100 {
			goal.CompletedAt = nil
		}
	} else {
		status := models.GoalStatus(*req.Status)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status override for goal",
			})
		}

		goal.StatusOverride = &status
		if status == models.GoalComplete {
			now := time.Now()
			goal.CompletedAt = &now
		}
	}

	if err := store.Goals.Save(goal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update status",
		})
	}

	if goal.StatusOverride != nil && *goal.StatusOverride == models.GoalComplete {
		services.LogActivity(userID, "goal_completed", &goal.ID, map[string]interface{}{
			"title": goal.Title,
		})
		if goal.OwnerID != userID {
			services.Notify(goal.OwnerID, "goal_completed", "Objective completed",
				"\""+goal.Title+"\" was marked done",
				map[string]interface{}{"goalId": goal.ID.String()},
			)
		}
	} else if goal.StatusOverride != nil {
		services.LogActivity(userID, "status_overridden", &goal.ID, map[string]interface{}{
			"title":  goal.Title,
			"status": string(*goal.StatusOverride),
		})
	}

	decorateGoal(goal, time.Now())
	return c.JSON(goal)
}

// RecalculateGoal forces a fresh roll-up from key results, bypassing the
// cached progress field. Escape hatch for cache drift when key results were
// edited outside the API.
func RecalculateGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if _, err := store.Goals.Get(goalID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	recalcGoalProgress(goalID)

	goal, err := store.Goals.Get(goalID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load goal",
		})
	}

	decorateGoal(goal, time.Now())
	return c.JSON(goal)
}
