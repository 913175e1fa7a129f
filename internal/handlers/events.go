package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okrflow/okrflow-api/internal/engine"
	"github.com/okrflow/okrflow-api/internal/middleware"
	"github.com/okrflow/okrflow-api/internal/models"
	"github.com/okrflow/okrflow-api/internal/services"
	"github.com/okrflow/okrflow-api/internal/store"
)

func GetEvents(c *fiber.Ctx) error {
	events, err := store.Events.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load events",
		})
	}

	now := time.Now()
	for i := range events {
		events[i].Status = engine.DeriveEventStatus(&events[i], now)
	}

	return c.JSON(events)
}

func GetEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := store.Events.Get(eventID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	event.Status = engine.DeriveEventStatus(event, time.Now())
	return c.JSON(event)
}

func CreateEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateEventRequest
	if !parseBody(c, &req) {
		return nil
	}

	if !req.Type.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event type",
		})
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid priority",
		})
	}

	timeline := engine.ValidateTimeline(req.StartDate, req.EndDate, "", 0)
	if !timeline.OK() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "End date must not precede start date",
			"errors": timeline.Errors,
		})
	}

	priority := models.PriorityNone
	if req.Priority != nil {
		priority = *req.Priority
	}
	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}

	event := models.Event{
		Name:      req.Name,
		Type:      req.Type,
		Priority:  priority,
		OwnerID:   userID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Progress:  progress,
	}

	if err := store.Events.Create(&event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}

	services.LogActivity(userID, "event_created", &event.ID, map[string]interface{}{
		"name": event.Name,
	})

	event.Status = engine.DeriveEventStatus(&event, time.Now())
	return c.Status(fiber.StatusCreated).JSON(event)
}

func UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := store.Events.Get(eventID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	var req models.UpdateEventRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Type != nil && !req.Type.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event type",
		})
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid priority",
		})
	}

	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Name must not be empty",
			})
		}
		event.Name = *req.Name
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Progress != nil {
		event.Progress = *req.Progress
	}

	timeline := engine.ValidateTimeline(event.StartDate, event.EndDate, "", 0)
	if !timeline.OK() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "End date must not precede start date",
			"errors": timeline.Errors,
		})
	}

	if err := store.Events.Save(event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update event",
		})
	}

	event.Status = engine.DeriveEventStatus(event, time.Now())
	return c.JSON(event)
}

func DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	if _, err := store.Events.Get(eventID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	if err := store.Events.Delete(eventID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete event",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// SetEventStatus forces completed/on_hold or clears the override. Events
// accept no other manual status; everything else is date-derived.
func SetEventStatus(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := store.Events.Get(eventID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	var req models.SetStatusRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Status == nil || *req.Status == "" {
		event.StatusOverride = nil
	} else {
		status := models.EventStatus(*req.Status)
		if !status.ValidOverride() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status override for event",
			})
		}
		event.StatusOverride = &status
	}

	if err := store.Events.Save(event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update status",
		})
	}

	event.Status = engine.DeriveEventStatus(event, time.Now())
	return c.JSON(event)
}
