// Package store is the typed persistence boundary the rest of the service
// talks through for goals, events and key results. It wraps the shared GORM
// handle with per-entity repositories; each call has single-record atomicity.
package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okrflow/okrflow-api/internal/models"
)

var (
	Goals      *GoalStore
	Events     *EventStore
	KeyResults *KeyResultStore
)

// Init wires the repositories to the connected database. Called once at
// startup, after migrations.
func Init(db *gorm.DB) {
	Goals = &GoalStore{db: db}
	Events = &EventStore{db: db}
	KeyResults = &KeyResultStore{db: db}
}

// GoalFilter narrows goal listings; zero values are ignored.
type GoalFilter struct {
	OwnerID  uuid.UUID
	Quarter  models.Quarter
	Year     int
	Category models.Category
	EventID  uuid.UUID
}

type GoalStore struct {
	db *gorm.DB
}

func (s *GoalStore) Get(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Preload("KeyResults", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalStore) List(filter GoalFilter) ([]models.Goal, error) {
	q := s.db.Preload("KeyResults", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	})
	if filter.OwnerID != uuid.Nil {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Quarter != "" {
		q = q.Where("quarter = ?", filter.Quarter)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.EventID != uuid.Nil {
		q = q.Where("event_id = ?", filter.EventID)
	}

	var goals []models.Goal
	err := q.Order("kanban_position ASC, created_at ASC").Find(&goals).Error
	return goals, err
}

func (s *GoalStore) Create(goal *models.Goal) error {
	return s.db.Create(goal).Error
}

func (s *GoalStore) Save(goal *models.Goal) error {
	return s.db.Save(goal).Error
}

func (s *GoalStore) Update(id uuid.UUID, updates map[string]interface{}) error {
	return s.db.Model(&models.Goal{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a goal and its key results. Archived goals drop out of
// all reads; the records stay recoverable.
func (s *GoalStore) Delete(id uuid.UUID) error {
	if err := s.db.Where("goal_id = ?", id).Delete(&models.KeyResult{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Goal{}, "id = ?", id).Error
}

// UpdatePositions persists kanban placements for a bounded set of sibling
// goals after a move or a board normalization.
func (s *GoalStore) UpdatePositions(positions map[uuid.UUID]int) error {
	for id, pos := range positions {
		if err := s.db.Model(&models.Goal{}).Where("id = ?", id).
			Update("kanban_position", pos).Error; err != nil {
			return err
		}
	}
	return nil
}

type EventStore struct {
	db *gorm.DB
}

func (s *EventStore) Get(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventStore) List() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Order("start_date ASC").Find(&events).Error
	return events, err
}

func (s *EventStore) Create(event *models.Event) error {
	return s.db.Create(event).Error
}

func (s *EventStore) Save(event *models.Event) error {
	return s.db.Save(event).Error
}

func (s *EventStore) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.Event{}, "id = ?", id).Error
}

type KeyResultStore struct {
	db *gorm.DB
}

func (s *KeyResultStore) Get(id uuid.UUID) (*models.KeyResult, error) {
	var kr models.KeyResult
	if err := s.db.First(&kr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &kr, nil
}

func (s *KeyResultStore) ListByGoal(goalID uuid.UUID) ([]models.KeyResult, error) {
	var krs []models.KeyResult
	err := s.db.Where("goal_id = ?", goalID).Order("sort_order ASC").Find(&krs).Error
	return krs, err
}

func (s *KeyResultStore) Create(kr *models.KeyResult) error {
	return s.db.Create(kr).Error
}

func (s *KeyResultStore) Save(kr *models.KeyResult) error {
	return s.db.Save(kr).Error
}

func (s *KeyResultStore) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.KeyResult{}, "id = ?", id).Error
}

// ShiftOrdersAfter closes the gap left by a removed key result: siblings past
// the removed slot move up by one.
func (s *KeyResultStore) ShiftOrdersAfter(goalID uuid.UUID, removedOrder int) error {
	return s.db.Model(&models.KeyResult{}).
		Where("goal_id = ? AND sort_order > ?", goalID, removedOrder).
		UpdateColumn("sort_order", gorm.Expr("sort_order - 1")).Error
}

// SetOrder moves a key result to a new slot among its siblings, keeping the
// sequence dense.
func (s *KeyResultStore) SetOrder(kr *models.KeyResult, newOrder int) error {
	var count int64
	if err := s.db.Model(&models.KeyResult{}).Where("goal_id = ?", kr.GoalID).Count(&count).Error; err != nil {
		return err
	}
	if newOrder >= int(count) {
		newOrder = int(count) - 1
	}
	if newOrder < 0 || newOrder == kr.Order {
		return nil
	}

	if newOrder > kr.Order {
		err := s.db.Model(&models.KeyResult{}).
			Where("goal_id = ? AND sort_order > ? AND sort_order <= ?", kr.GoalID, kr.Order, newOrder).
			UpdateColumn("sort_order", gorm.Expr("sort_order - 1")).Error
		if err != nil {
			return err
		}
	} else {
		err := s.db.Model(&models.KeyResult{}).
			Where("goal_id = ? AND sort_order >= ? AND sort_order < ?", kr.GoalID, newOrder, kr.Order).
			UpdateColumn("sort_order", gorm.Expr("sort_order + 1")).Error
		if err != nil {
			return err
		}
	}

	kr.Order = newOrder
	return s.db.Model(kr).UpdateColumn("sort_order", newOrder).Error
}
