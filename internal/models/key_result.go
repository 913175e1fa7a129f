package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyResult is a single measurable sub-commitment of a goal. It is owned
// exclusively by one goal and removed with it.
type KeyResult struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID      `json:"goalId" gorm:"type:uuid;index;not null"`
	Outcome   string         `json:"outcome" gorm:"not null"`
	Current   float64        `json:"current"`
	Target    float64        `json:"target"`
	Order     int            `json:"order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (k *KeyResult) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// KeyResult DTOs
type CreateKeyResultRequest struct {
	Outcome string  `json:"outcome" validate:"required"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

type UpdateKeyResultRequest struct {
	Outcome *string  `json:"outcome"`
	Current *float64 `json:"current"`
	Target  *float64 `json:"target"`
}

type ReorderKeyResultRequest struct {
	Order int `json:"order" validate:"min=0"`
}
