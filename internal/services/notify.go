// Package services holds cross-handler helpers that write side records
// (notifications, activity) without being part of any request's main path.
package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/okrflow/okrflow-api/internal/database"
	"github.com/okrflow/okrflow-api/internal/models"
)

// Notify creates an in-app notification for a user. Delivery beyond the
// database record (push, email) is someone else's job; this only persists
// what the notification feed reads. Failures are logged, never surfaced:
// a lost notification must not fail the action that caused it.
func Notify(userID uuid.UUID, notifType, title, body string, metadata map[string]interface{}) {
	notif := models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
	}

	if metadata != nil {
		if data, err := json.Marshal(metadata); err == nil {
			s := string(data)
			notif.Metadata = &s
		}
	}

	if err := database.DB.Create(&notif).Error; err != nil {
		log.Printf("notify: failed to create notification for %s: %v", userID, err)
	}
}

// LogActivity appends an entry to the workspace activity feed.
func LogActivity(userID uuid.UUID, actionType string, targetID *uuid.UUID, metadata map[string]interface{}) {
	activity := models.Activity{
		UserID:     userID,
		ActionType: actionType,
		TargetID:   targetID,
	}

	if metadata != nil {
		if data, err := json.Marshal(metadata); err == nil {
			s := string(data)
			activity.Metadata = &s
		}
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		log.Printf("activity: failed to log %s: %v", actionType, err)
	}
}
