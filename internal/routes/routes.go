package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okrflow/okrflow-api/internal/handlers"
	"github.com/okrflow/okrflow-api/internal/middleware"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateProfile)

	goals := protected.Group("/goals")
	goals.Get("/", handlers.GetGoals)
	goals.Post("/", handlers.CreateGoal)
	goals.Get("/:id", handlers.GetGoal)
	goals.Put("/:id", handlers.UpdateGoal)
	goals.Delete("/:id", handlers.DeleteGoal)
	goals.Post("/:id/status", handlers.SetGoalStatus)
	goals.Post("/:id/recalculate", handlers.RecalculateGoal)

	goals.Get("/:goalId/key-results", handlers.GetKeyResults)
	goals.Post("/:goalId/key-results", handlers.CreateKeyResult)
	goals.Put("/:goalId/key-results/:keyResultId", handlers.UpdateKeyResult)
	goals.Delete("/:goalId/key-results/:keyResultId", handlers.DeleteKeyResult)
	goals.Post("/:goalId/key-results/:keyResultId/reorder", handlers.ReorderKeyResult)

	events := protected.Group("/events")
	events.Get("/", handlers.GetEvents)
	events.Post("/", handlers.CreateEvent)
	events.Get("/:id", handlers.GetEvent)
	events.Put("/:id", handlers.UpdateEvent)
	events.Delete("/:id", handlers.DeleteEvent)
	events.Post("/:id/status", handlers.SetEventStatus)

	// Kanban board over goals
	board := protected.Group("/board")
	board.Get("/", handlers.GetBoard)
	board.Post("/move", handlers.MoveBoardCard)

	notifications := protected.Group("/notifications")
	notifications.Get("/", handlers.GetNotifications)
	notifications.Put("/:id/read", handlers.MarkNotificationRead)
	notifications.Post("/read-all", handlers.MarkAllRead)

	protected.Get("/activity", handlers.GetActivity)
}
