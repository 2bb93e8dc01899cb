// Package travel computes walking times between hotel rooms.
//
// The model is one-dimensional per floor: moving between adjacent rooms
// costs config.HorizontalMinutesPerRoom and changing floors costs
// config.VerticalMinutesPerFloor per floor crossed.  A trip between rooms on
// different floors pays both components.
package travel

import (
	"fmt"
	"math"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
	"github.com/iliyamo/hotel-room-reservation/internal/room"
)

// ErrInvalidRoom is returned inside a Result when either endpoint is not a
// room in the hotel.
var ErrInvalidRoom = room.ErrInvalidRoom

// Unreachable is the span of a group containing an invalid room.  It is
// larger than any real travel time.
const Unreachable = math.MaxInt

// Result is the travel time between two rooms split into its components.
// When Valid is false the minute fields are zero and Err names the offending
// room.
type Result struct {
	TotalMinutes      int    `json:"total_minutes"`
	VerticalMinutes   int    `json:"vertical_minutes"`
	HorizontalMinutes int    `json:"horizontal_minutes"`
	Valid             bool   `json:"valid"`
	Err               error  `json:"-"`
	ErrorMessage      string `json:"error,omitempty"`
}

// HorizontalTime returns the minutes needed to walk between two positions on
// the same floor.
func HorizontalTime(p1, p2 int) int { return abs(p1-p2) * config.HorizontalMinutesPerRoom }

// VerticalTime returns the minutes needed to move between two floors.
func VerticalTime(f1, f2 int) int { return abs(f1-f2) * config.VerticalMinutesPerFloor }

// Between returns the travel time from room a to room b.
func Between(a, b int) Result {
	for _, id := range [...]int{a, b} {
		if !room.IsValid(id) {
			err := fmt.Errorf("%w: %d", ErrInvalidRoom, id)
			return Result{Err: err, ErrorMessage: fmt.Sprintf("invalid room number: %d", id)}
		}
	}
	if a == b {
		return Result{Valid: true}
	}
	v := VerticalTime(room.FloorOf(a), room.FloorOf(b))
	h := HorizontalTime(room.PositionOf(a), room.PositionOf(b))
	return Result{
		TotalMinutes:      v + h,
		VerticalMinutes:   v,
		HorizontalMinutes: h,
		Valid:             true,
	}
}

// GroupSpan returns the travel time between the lowest and the highest room
// in ids.  Rooms in between do not contribute: the span is the longest walk
// a guest holding the group can be asked to make.  It is 0 for fewer than
// two rooms and Unreachable if any id is invalid.  ids need not be sorted
// and is not modified.
func GroupSpan(ids []int) int {
	if len(ids) == 0 {
		return 0
	}
	lo, hi := ids[0], ids[0]
	for _, id := range ids {
		if !room.IsValid(id) {
			return Unreachable
		}
		lo, hi = min(lo, id), max(hi, id)
	}
	return Between(lo, hi).TotalMinutes
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
