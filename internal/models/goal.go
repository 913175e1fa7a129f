package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string         `json:"title" gorm:"not null"`
	Objective      string         `json:"objective" gorm:"not null"`
	Category       Category       `json:"category" gorm:"not null"`
	Quarter        Quarter        `json:"quarter"`
	Year           int            `json:"year"`
	StartDate      time.Time      `json:"startDate"`
	DueDate        time.Time      `json:"dueDate"`
	Priority       Priority       `json:"priority" gorm:"default:'none'"`
	OwnerID        uuid.UUID      `json:"ownerId" gorm:"type:uuid;index;not null"`
	TeamMembers    []string       `json:"teamMembers" gorm:"serializer:json"`
	Dependencies   []string       `json:"dependencies" gorm:"serializer:json"` // advisory references, never enforced
	StatusOverride *GoalStatus    `json:"statusOverride"`
	Progress       int            `json:"progress" gorm:"default:0"` // cached roll-up, recomputable from key results
	KanbanPosition int            `json:"kanbanPosition" gorm:"default:0"`
	EventID        *uuid.UUID     `json:"eventId" gorm:"type:uuid;index"`
	CompletedAt    *time.Time     `json:"completedAt"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
	KeyResults     []KeyResult    `json:"keyResults,omitempty" gorm:"foreignKey:GoalID"`

	// Status is the derived effective status, populated on read.
	Status GoalStatus `json:"status" gorm:"-"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Goal DTOs
type CreateGoalRequest struct {
	Title        string     `json:"title" validate:"required"`
	Objective    string     `json:"objective" validate:"required"`
	Category     Category   `json:"category" validate:"required"`
	Quarter      Quarter    `json:"quarter"`
	Year         int        `json:"year"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	DueDate      time.Time  `json:"dueDate" validate:"required"`
	Priority     *Priority  `json:"priority"`
	OwnerID      *uuid.UUID `json:"ownerId"`
	TeamMembers  []string   `json:"teamMembers"`
	Dependencies []string   `json:"dependencies"`
	EventID      *uuid.UUID `json:"eventId"`
	Progress     *int       `json:"progress"`
}

type UpdateGoalRequest struct {
	Title        *string    `json:"title"`
	Objective    *string    `json:"objective"`
	Category     *Category  `json:"category"`
	Quarter      *Quarter   `json:"quarter"`
	Year         *int       `json:"year"`
	StartDate    *time.Time `json:"startDate"`
	DueDate      *time.Time `json:"dueDate"`
	Priority     *Priority  `json:"priority"`
	OwnerID      *uuid.UUID `json:"ownerId"`
	TeamMembers  []string   `json:"teamMembers"`
	Dependencies []string   `json:"dependencies"`
	EventID      *uuid.UUID `json:"eventId"`
	Progress     *int       `json:"progress"`
}

// SetStatusRequest sets or clears a manual status override. A null status
// clears the override and returns the entity to derived status.
type SetStatusRequest struct {
	Status *string `json:"status"`
}

type MoveCardRequest struct {
	GoalID uuid.UUID `json:"goalId" validate:"required"`
	Column string    `json:"column" validate:"required"`
	Index  int       `json:"index" validate:"min=0"`
}
