package service

import (
	"fmt"
	"testing"

	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRoster(n int) []models.Member {
	roster := make([]models.Member, 0, n)
	for i := 0; i < n; i++ {
		m := models.Member{Name: fmt.Sprintf("Member %02d", i), IsActive: true}
		m.ID = uuid.New()
		roster = append(roster, m)
	}
	return roster
}

func TestRotationSeed(t *testing.T) {
	teamID := uuid.New()
	eventID := uuid.New()

	t.Run("deterministic for same pair", func(t *testing.T) {
		assert.Equal(t, RotationSeed(teamID, eventID), RotationSeed(teamID, eventID))
	})

	t.Run("differs across events", func(t *testing.T) {
		otherEvent := uuid.New()
		assert.NotEqual(t, RotationSeed(teamID, eventID), RotationSeed(teamID, otherEvent))
	})

	t.Run("not symmetric in team and event", func(t *testing.T) {
		assert.NotEqual(t, RotationSeed(teamID, eventID), RotationSeed(eventID, teamID))
	})
}

func TestRotationOffset(t *testing.T) {
	t.Run("within roster bounds", func(t *testing.T) {
		for seed := uint64(0); seed < 100; seed++ {
			offset := RotationOffset(seed, 5)
			assert.GreaterOrEqual(t, offset, 0)
			assert.Less(t, offset, 5)
		}
	})

	t.Run("zero roster yields zero", func(t *testing.T) {
		assert.Equal(t, 0, RotationOffset(12345, 0))
	})
}

func TestSortRoster(t *testing.T) {
	t.Run("orders by normalized name", func(t *testing.T) {
		roster := makeRoster(3)
		roster[0].Name = "  charlie  "
		roster[1].Name = "ALICE"
		roster[2].Name = "bob"

		sorted := SortRoster(roster)
		require.Len(t, sorted, 3)
		assert.Equal(t, "ALICE", sorted[0].Name)
		assert.Equal(t, "bob", sorted[1].Name)
		assert.Equal(t, "  charlie  ", sorted[2].Name)
	})

	t.Run("breaks name ties by ID", func(t *testing.T) {
		roster := makeRoster(2)
		roster[0].Name = "Same Name"
		roster[1].Name = "same  name"

		sorted := SortRoster(roster)
		assert.True(t, sorted[0].ID.String() < sorted[1].ID.String())
	})

	t.Run("does not mutate input", func(t *testing.T) {
		roster := makeRoster(3)
		roster[0].Name = "zz"
		first := roster[0].ID
		SortRoster(roster)
		assert.Equal(t, first, roster[0].ID)
	})
}

func TestSelectAttendees(t *testing.T) {
	t.Run("k zero selects nobody", func(t *testing.T) {
		roster := SortRoster(makeRoster(5))
		assert.Empty(t, SelectAttendees(roster, 0, 3))
	})

	t.Run("k equals roster selects everyone once", func(t *testing.T) {
		roster := SortRoster(makeRoster(5))
		selected := SelectAttendees(roster, 5, 2)
		assert.Len(t, selected, 5)
		for _, m := range roster {
			assert.True(t, selected[m.ID])
		}
	})

	t.Run("k three offset two picks positions 2 3 4", func(t *testing.T) {
		roster := SortRoster(makeRoster(5))
		selected := SelectAttendees(roster, 3, 2)
		require.Len(t, selected, 3)
		assert.True(t, selected[roster[2].ID])
		assert.True(t, selected[roster[3].ID])
		assert.True(t, selected[roster[4].ID])
		assert.False(t, selected[roster[0].ID])
		assert.False(t, selected[roster[1].ID])
	})

	t.Run("wraps past the end of the roster", func(t *testing.T) {
		roster := SortRoster(makeRoster(5))
		selected := SelectAttendees(roster, 3, 4)
		require.Len(t, selected, 3)
		assert.True(t, selected[roster[4].ID])
		assert.True(t, selected[roster[0].ID])
		assert.True(t, selected[roster[1].ID])
	})

	t.Run("k above roster caps at roster", func(t *testing.T) {
		roster := SortRoster(makeRoster(4))
		selected := SelectAttendees(roster, 10, 1)
		assert.Len(t, selected, 4)
	})

	t.Run("reruns select the identical set", func(t *testing.T) {
		roster := SortRoster(makeRoster(7))
		first := SelectAttendees(roster, 4, 5)
		second := SelectAttendees(roster, 4, 5)
		assert.Equal(t, first, second)
	})

	t.Run("varying offsets eventually include every member", func(t *testing.T) {
		roster := SortRoster(makeRoster(5))
		seen := make(map[uuid.UUID]bool)
		for offset := 0; offset < 5; offset++ {
			for id := range SelectAttendees(roster, 2, offset) {
				seen[id] = true
			}
		}
		assert.Len(t, seen, 5, "no member should be permanently excluded")
	})
}
