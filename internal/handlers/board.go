package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okrflow/okrflow-api/internal/engine"
	"github.com/okrflow/okrflow-api/internal/middleware"
	"github.com/okrflow/okrflow-api/internal/models"
	"github.com/okrflow/okrflow-api/internal/services"
	"github.com/okrflow/okrflow-api/internal/store"
)

// boardColumns is the fixed column order of the goal board.
var boardColumns = []models.GoalStatus{
	models.GoalNotStarted,
	models.GoalInProgress,
	models.GoalOnTrack,
	models.GoalAtRisk,
	models.GoalBehind,
	models.GoalComplete,
}

// boardCards projects goals onto board cards. The column is always the
// derived status; only the position is free-standing state.
func boardCards(goals []models.Goal, now time.Time) []engine.Card {
	cards := make([]engine.Card, len(goals))
	for i := range goals {
		cards[i] = engine.Card{
			ID:       goals[i].ID,
			Column:   engine.DeriveGoalStatus(&goals[i], now),
			Position: goals[i].KanbanPosition,
		}
	}
	return cards
}

func applyCards(cards, changed []engine.Card) []engine.Card {
	byID := make(map[uuid.UUID]engine.Card, len(changed))
	for _, c := range changed {
		byID[c.ID] = c
	}
	for i := range cards {
		if c, ok := byID[cards[i].ID]; ok {
			cards[i] = c
		}
	}
	return cards
}

func persistCards(changed []engine.Card) error {
	if len(changed) == 0 {
		return nil
	}
	positions := make(map[uuid.UUID]int, len(changed))
	for _, c := range changed {
		positions[c.ID] = c.Position
	}
	return store.Goals.UpdatePositions(positions)
}

// GetBoard returns goals grouped into derived-status columns with dense
// positions. Statuses drift as time passes, so positions are re-normalized
// here and written back before the board is returned.
func GetBoard(c *fiber.Ctx) error {
	goals, err := store.Goals.List(store.GoalFilter{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load board",
		})
	}

	now := time.Now()
	cards := boardCards(goals, now)
	changed := engine.NormalizeColumns(cards)
	if err := persistCards(changed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update board positions",
		})
	}
	cards = applyCards(cards, changed)

	placement := make(map[uuid.UUID]engine.Card, len(cards))
	for _, card := range cards {
		placement[card.ID] = card
	}

	columns := make(map[models.GoalStatus][]models.Goal, len(boardColumns))
	for _, col := range boardColumns {
		columns[col] = []models.Goal{}
	}
	for i := range goals {
		card := placement[goals[i].ID]
		decorateGoal(&goals[i], now)
		goals[i].KanbanPosition = card.Position
		columns[card.Column] = append(columns[card.Column], goals[i])
	}
	for col := range columns {
		cs := columns[col]
		sort.Slice(cs, func(i, j int) bool { return cs[i].KanbanPosition < cs[j].KanbanPosition })
	}

	return c.JSON(fiber.Map{"columns": columns})
}

// MoveBoardCard moves a goal on the board. A card can only sit in the column
// of its derived status, so dropping it into a different column implies a
// status override to that column's status.
func MoveBoardCard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.MoveCardRequest
	if !parseBody(c, &req) {
		return nil
	}

	targetColumn := models.GoalStatus(req.Column)
	if !targetColumn.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board column",
		})
	}

	goal, err := store.Goals.Get(req.GoalID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	now := time.Now()
	if derived := engine.DeriveGoalStatus(goal, now); derived != targetColumn {
		goal.StatusOverride = &targetColumn
		if targetColumn == models.GoalComplete {
			goal.CompletedAt = &now
		}
		if err := store.Goals.Save(goal); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update status",
			})
		}
		services.LogActivity(userID, "status_overridden", &goal.ID, map[string]interface{}{
			"title":  goal.Title,
			"status": string(targetColumn),
		})
	}

	goals, err := store.Goals.List(store.GoalFilter{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load board",
		})
	}

	cards := boardCards(goals, now)
	normalized := engine.NormalizeColumns(cards)
	if err := persistCards(normalized); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update board positions",
		})
	}
	cards = applyCards(cards, normalized)

	changed, err := engine.MoveCard(cards, req.GoalID, targetColumn, req.Index)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found on board",
		})
	}

	if err := persistCards(changed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update board positions",
		})
	}

	goal, err = store.Goals.Get(req.GoalID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load goal",
		})
	}
	decorateGoal(goal, now)

	return c.JSON(fiber.Map{
		"goal":  goal,
		"moved": changed,
	})
}
