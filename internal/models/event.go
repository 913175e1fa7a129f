package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a time-boxed initiative. Its progress is entered manually and its
// status is date-derived except for the completed/on_hold overrides.
type Event struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string         `json:"name" gorm:"not null"`
	Type           EventType      `json:"type" gorm:"not null"`
	Priority       Priority       `json:"priority" gorm:"default:'none'"`
	OwnerID        uuid.UUID      `json:"ownerId" gorm:"type:uuid;index;not null"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	Progress       int            `json:"progress" gorm:"default:0"`
	StatusOverride *EventStatus   `json:"statusOverride"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Status is the derived effective status, populated on read.
	Status EventStatus `json:"status" gorm:"-"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Event DTOs
type CreateEventRequest struct {
	Name      string    `json:"name" validate:"required"`
	Type      EventType `json:"type" validate:"required"`
	Priority  *Priority `json:"priority"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	Progress  *int      `json:"progress"`
}

type UpdateEventRequest struct {
	Name      *string    `json:"name"`
	Type      *EventType `json:"type"`
	Priority  *Priority  `json:"priority"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Progress  *int       `json:"progress" validate:"omitempty,min=0,max=100"`
}
