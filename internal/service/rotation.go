package service

import (
	"hash/fnv"
	"sort"

	"hackathon-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

// RotationSeed derives a stable seed for one (team, event) pair. Same inputs
// always produce the same seed; no wall clock or process randomness is
// involved, so reconciliation reruns are byte-identical.
func RotationSeed(teamID, eventID uuid.UUID) uint64 {
	h := fnv.New64a()
	h.Write([]byte(teamID.String()))
	h.Write([]byte(":"))
	h.Write([]byte(eventID.String()))
	return h.Sum64()
}

// RotationOffset maps a seed onto a starting roster position
func RotationOffset(seed uint64, rosterSize int) int {
	if rosterSize <= 0 {
		return 0
	}
	return int(seed % uint64(rosterSize))
}

// SortRoster orders members canonically: normalized name first, ID as the
// tiebreak. Every rotation works off this order, never raw query order.
func SortRoster(roster []models.Member) []models.Member {
	sorted := make([]models.Member, len(roster))
	copy(sorted, roster)
	sort.Slice(sorted, func(i, j int) bool {
		ni, nj := NormalizeName(sorted[i].Name), NormalizeName(sorted[j].Name)
		if ni != nj {
			return ni < nj
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})
	return sorted
}

// SelectAttendees picks k attendees from a sorted roster starting at offset,
// wrapping around. Because the offset varies per event, no roster position is
// permanently starved the way first-k-in-sort-order assignment starves the
// tail of the roster. Returns the set of selected member IDs.
func SelectAttendees(sortedRoster []models.Member, k, offset int) map[uuid.UUID]bool {
	selected := make(map[uuid.UUID]bool, k)
	n := len(sortedRoster)
	if n == 0 || k <= 0 {
		return selected
	}
	if k > n {
		k = n
	}
	for i := 0; i < k; i++ {
		selected[sortedRoster[(offset+i)%n].ID] = true
	}
	return selected
}
