package allocation

import (
	"slices"

	"github.com/iliyamo/hotel-room-reservation/internal/room"
	"github.com/iliyamo/hotel-room-reservation/internal/travel"
)

// candidate is a group of rooms and its span.  rooms is sorted ascending and
// may alias the normalized input.
type candidate struct {
	rooms []int
	span  int
}

// bestSingleFloor returns the best block over all floors that hold at least
// k of ids.  ids must be sorted and free of duplicates.
func bestSingleFloor(ids []int, k int) (candidate, bool) {
	var best candidate
	found := false
	for _, floor := range byFloor(ids) {
		c, ok := bestOnFloor(floor, k)
		if !ok {
			continue
		}
		// floors arrive in ascending order, so strict < keeps the lower floor on ties
		if !found || c.span < best.span {
			best, found = c, true
		}
	}
	return best, found
}

// bestOnFloor prefers runs of adjacent positions and falls back to any
// window of the floor's sorted rooms.
func bestOnFloor(floor []int, k int) (candidate, bool) {
	if len(floor) < k {
		return candidate{}, false
	}
	if c, ok := bestWindow(floor, k, adjacent); ok {
		return c, true
	}
	return bestWindow(floor, k, nil)
}

// bestWindow scores every window of k consecutive elements of ids accepted
// by keep (all windows when keep is nil).  Earlier windows win ties, which
// is the lower first room because ids is sorted.
func bestWindow(ids []int, k int, keep func([]int) bool) (candidate, bool) {
	var best candidate
	found := false
	for i := 0; i+k <= len(ids); i++ {
		w := ids[i : i+k]
		if keep != nil && !keep(w) {
			continue
		}
		if span := travel.GroupSpan(w); !found || span < best.span {
			best, found = candidate{rooms: w, span: span}, true
		}
	}
	return best, found
}

// adjacent reports whether consecutive rooms of w differ by one position.
func adjacent(w []int) bool {
	for i := 1; i < len(w); i++ {
		if room.PositionOf(w[i])-room.PositionOf(w[i-1]) != 1 {
			return false
		}
	}
	return true
}

// bestAcrossFloors returns the minimum-span k-subset of ids.  ids must be
// sorted, free of duplicates and hold at least k rooms.
//
// A subset's span is fixed by its lowest room ids[i] and highest room ids[j],
// so it is enough to scan the pairs with j-i >= k-1.  Of all subsets sharing
// a pair, ids[i:i+k-1] followed by ids[j] is the lexicographically first,
// and scanning i then j in ascending order with a strict comparison keeps
// the same winner an exhaustive lexicographic enumeration would.
func bestAcrossFloors(ids []int, k int) candidate {
	var best candidate
	found := false
	for i := 0; i+k <= len(ids); i++ {
		for j := i + k - 1; j < len(ids); j++ {
			span := travel.Between(ids[i], ids[j]).TotalMinutes
			if found && span >= best.span {
				continue
			}
			rooms := make([]int, 0, k)
			rooms = append(rooms, ids[i:i+k-1]...)
			rooms = append(rooms, ids[j])
			best, found = candidate{rooms: rooms, span: span}, true
		}
	}
	return best
}

// byFloor splits sorted ids into per-floor runs in ascending floor order.
// The runs alias ids.
func byFloor(ids []int) [][]int {
	var floors [][]int
	for start := 0; start < len(ids); {
		f := room.FloorOf(ids[start])
		end := start + slices.IndexFunc(ids[start:], func(id int) bool { return room.FloorOf(id) != f })
		if end < start {
			end = len(ids)
		}
		floors = append(floors, ids[start:end])
		start = end
	}
	return floors
}
