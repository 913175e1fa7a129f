package engine

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/okrflow/okrflow-api/internal/models"
)

var ErrCardNotFound = errors.New("card not found on board")

// Card is the minimal placement view of a goal on the board: which column it
// sits in (its derived status) and its dense zero-based position there.
type Card struct {
	ID       uuid.UUID
	Column   models.GoalStatus
	Position int
}

// MoveCard moves one card to targetColumn at targetIndex and returns only the
// cards whose placement changed. The source column closes the gap, the target
// column opens one, and both end up with positions exactly {0..n-1}. The
// target index is clamped into the valid range.
func MoveCard(cards []Card, id uuid.UUID, targetColumn models.GoalStatus, targetIndex int) ([]Card, error) {
	columns := groupColumns(cards)

	var moving *Card
	for i := range cards {
		if cards[i].ID == id {
			moving = &cards[i]
			break
		}
	}
	if moving == nil {
		return nil, ErrCardNotFound
	}

	source := columns[moving.Column]
	for i, c := range source {
		if c.ID == id {
			columns[moving.Column] = append(source[:i], source[i+1:]...)
			break
		}
	}

	target := columns[targetColumn]
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(target) {
		targetIndex = len(target)
	}
	target = append(target, Card{})
	copy(target[targetIndex+1:], target[targetIndex:])
	target[targetIndex] = Card{ID: id, Column: targetColumn}
	columns[targetColumn] = target

	return renumber(cards, columns), nil
}

// NormalizeColumns reassigns dense positions within every column, preserving
// the existing relative order, and returns the cards that changed. Used on
// board reads: derived statuses shift as time passes, so stored positions can
// drift out of density without any move happening.
func NormalizeColumns(cards []Card) []Card {
	return renumber(cards, groupColumns(cards))
}

func groupColumns(cards []Card) map[models.GoalStatus][]Card {
	columns := make(map[models.GoalStatus][]Card)
	for _, c := range cards {
		columns[c.Column] = append(columns[c.Column], c)
	}
	for col := range columns {
		cs := columns[col]
		sort.SliceStable(cs, func(i, j int) bool { return cs[i].Position < cs[j].Position })
	}
	return columns
}

// renumber assigns 0..n-1 within each column and diffs against the original
// placement, returning only cards that moved.
func renumber(original []Card, columns map[models.GoalStatus][]Card) []Card {
	before := make(map[uuid.UUID]Card, len(original))
	for _, c := range original {
		before[c.ID] = c
	}

	var changed []Card
	for col, cs := range columns {
		for i := range cs {
			next := Card{ID: cs[i].ID, Column: col, Position: i}
			if prev := before[next.ID]; prev.Column != next.Column || prev.Position != next.Position {
				changed = append(changed, next)
			}
		}
	}

	sort.Slice(changed, func(i, j int) bool {
		if changed[i].Column != changed[j].Column {
			return changed[i].Column < changed[j].Column
		}
		return changed[i].Position < changed[j].Position
	})
	return changed
}
