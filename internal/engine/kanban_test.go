package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okrflow/okrflow-api/internal/models"
)

func board(columns map[models.GoalStatus]int) ([]Card, map[models.GoalStatus][]uuid.UUID) {
	var cards []Card
	ids := make(map[models.GoalStatus][]uuid.UUID)
	for col, n := range columns {
		for i := 0; i < n; i++ {
			id := uuid.New()
			cards = append(cards, Card{ID: id, Column: col, Position: i})
			ids[col] = append(ids[col], id)
		}
	}
	return cards, ids
}

// apply merges changed placements back into the full card set.
func apply(cards, changed []Card) []Card {
	byID := make(map[uuid.UUID]Card)
	for _, c := range changed {
		byID[c.ID] = c
	}
	out := make([]Card, len(cards))
	for i, c := range cards {
		if n, ok := byID[c.ID]; ok {
			out[i] = n
		} else {
			out[i] = c
		}
	}
	return out
}

func assertDense(t *testing.T, cards []Card) {
	t.Helper()
	seen := make(map[models.GoalStatus]map[int]bool)
	counts := make(map[models.GoalStatus]int)
	for _, c := range cards {
		if seen[c.Column] == nil {
			seen[c.Column] = make(map[int]bool)
		}
		assert.False(t, seen[c.Column][c.Position], "duplicate position %d in column %s", c.Position, c.Column)
		seen[c.Column][c.Position] = true
		counts[c.Column]++
	}
	for col, n := range counts {
		for i := 0; i < n; i++ {
			assert.True(t, seen[col][i], "gap at position %d in column %s", i, col)
		}
	}
}

func TestMoveCard(t *testing.T) {
	t.Run("cross-column move shifts target siblings and closes the gap", func(t *testing.T) {
		cards, ids := board(map[models.GoalStatus]int{
			models.GoalBehind:  3,
			models.GoalOnTrack: 2,
		})

		moved := ids[models.GoalBehind][2]
		changed, err := MoveCard(cards, moved, models.GoalOnTrack, 0)
		require.NoError(t, err)

		after := apply(cards, changed)
		assertDense(t, after)

		got := make(map[uuid.UUID]Card)
		for _, c := range after {
			got[c.ID] = c
		}

		assert.Equal(t, Card{ID: moved, Column: models.GoalOnTrack, Position: 0}, got[moved])
		// Former on_track cards shifted down by one.
		assert.Equal(t, 1, got[ids[models.GoalOnTrack][0]].Position)
		assert.Equal(t, 2, got[ids[models.GoalOnTrack][1]].Position)
		// Remaining behind cards kept their order, no gap.
		assert.Equal(t, 0, got[ids[models.GoalBehind][0]].Position)
		assert.Equal(t, 1, got[ids[models.GoalBehind][1]].Position)
	})

	t.Run("move within a column", func(t *testing.T) {
		cards, ids := board(map[models.GoalStatus]int{models.GoalOnTrack: 4})

		changed, err := MoveCard(cards, ids[models.GoalOnTrack][3], models.GoalOnTrack, 1)
		require.NoError(t, err)

		after := apply(cards, changed)
		assertDense(t, after)

		order := make([]uuid.UUID, 4)
		for _, c := range after {
			order[c.Position] = c.ID
		}
		want := []uuid.UUID{
			ids[models.GoalOnTrack][0],
			ids[models.GoalOnTrack][3],
			ids[models.GoalOnTrack][1],
			ids[models.GoalOnTrack][2],
		}
		assert.Equal(t, want, order)
	})

	t.Run("index past the end appends", func(t *testing.T) {
		cards, ids := board(map[models.GoalStatus]int{
			models.GoalBehind:  1,
			models.GoalOnTrack: 2,
		})

		changed, err := MoveCard(cards, ids[models.GoalBehind][0], models.GoalOnTrack, 99)
		require.NoError(t, err)

		after := apply(cards, changed)
		assertDense(t, after)
		for _, c := range after {
			if c.ID == ids[models.GoalBehind][0] {
				assert.Equal(t, models.GoalOnTrack, c.Column)
				assert.Equal(t, 2, c.Position)
			}
		}
	})

	t.Run("unknown card errors", func(t *testing.T) {
		cards, _ := board(map[models.GoalStatus]int{models.GoalOnTrack: 2})
		_, err := MoveCard(cards, uuid.New(), models.GoalOnTrack, 0)
		assert.ErrorIs(t, err, ErrCardNotFound)
	})

	t.Run("move into an empty column", func(t *testing.T) {
		cards, ids := board(map[models.GoalStatus]int{models.GoalBehind: 2})

		changed, err := MoveCard(cards, ids[models.GoalBehind][0], models.GoalComplete, 0)
		require.NoError(t, err)

		after := apply(cards, changed)
		assertDense(t, after)
	})

	t.Run("density holds across a sequence of moves", func(t *testing.T) {
		cards, ids := board(map[models.GoalStatus]int{
			models.GoalNotStarted: 3,
			models.GoalOnTrack:    3,
			models.GoalBehind:     2,
		})

		moves := []struct {
			id     uuid.UUID
			column models.GoalStatus
			index  int
		}{
			{ids[models.GoalNotStarted][0], models.GoalOnTrack, 1},
			{ids[models.GoalBehind][1], models.GoalNotStarted, 0},
			{ids[models.GoalOnTrack][2], models.GoalOnTrack, 0},
			{ids[models.GoalNotStarted][2], models.GoalBehind, 5},
			{ids[models.GoalOnTrack][0], models.GoalComplete, 0},
		}

		for _, m := range moves {
			changed, err := MoveCard(cards, m.id, m.column, m.index)
			require.NoError(t, err)
			cards = apply(cards, changed)
			assertDense(t, cards)
		}
	})
}

func TestNormalizeColumns(t *testing.T) {
	t.Run("closes gaps left by status drift", func(t *testing.T) {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		cards := []Card{
			{ID: a, Column: models.GoalOnTrack, Position: 0},
			{ID: b, Column: models.GoalOnTrack, Position: 4},
			{ID: c, Column: models.GoalOnTrack, Position: 7},
		}

		changed := NormalizeColumns(cards)
		after := apply(cards, changed)
		assertDense(t, after)

		// Relative order preserved.
		got := make(map[uuid.UUID]int)
		for _, card := range after {
			got[card.ID] = card.Position
		}
		assert.Equal(t, 0, got[a])
		assert.Equal(t, 1, got[b])
		assert.Equal(t, 2, got[c])
	})

	t.Run("already dense board reports nothing", func(t *testing.T) {
		cards, _ := board(map[models.GoalStatus]int{models.GoalOnTrack: 3, models.GoalBehind: 2})
		assert.Empty(t, NormalizeColumns(cards))
	})
}
