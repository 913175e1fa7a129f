package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okrflow/okrflow-api/internal/database"
	"github.com/okrflow/okrflow-api/internal/models"
)

// GetActivity returns the workspace activity feed, newest first. An optional
// targetId query narrows it to one goal or event.
func GetActivity(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "30"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 30
	}
	offset := (page - 1) * limit

	q := database.DB.Preload("User").Order("created_at DESC")
	if targetID, err := uuid.Parse(c.Query("targetId")); err == nil {
		q = q.Where("target_id = ?", targetID)
	}

	var activities []models.Activity
	q.Offset(offset).Limit(limit).Find(&activities)

	var total int64
	database.DB.Model(&models.Activity{}).Count(&total)

	return c.JSON(fiber.Map{
		"activity": activities,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
