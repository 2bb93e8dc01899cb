package allocation

import (
	"fmt"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
	"github.com/iliyamo/hotel-room-reservation/internal/room"
)

// Result is the outcome of one allocation.  On success Rooms holds exactly
// the requested number of distinct room numbers in ascending order and
// TravelTime is their span.  On failure Rooms is empty, Err wraps one of the
// package sentinels and ErrorMessage explains the violated bound.
type Result struct {
	Success      bool   `json:"success"`
	Rooms        []int  `json:"allocated_rooms"`
	TravelTime   int    `json:"travel_time"`
	Err          error  `json:"-"`
	ErrorMessage string `json:"error,omitempty"`
}

// Allocate selects requested rooms from available.  See the package
// documentation for the selection rules.
func Allocate(requested int, available []int) Result {
	switch {
	case requested < config.MinRoomsPerBooking:
		return belowMinimum()
	case requested > config.MaxRoomsPerBooking:
		return aboveMaximum()
	}

	ids := normalize(available)
	if len(ids) < requested {
		return failure(
			fmt.Errorf("%w: requested %d, have %d", ErrInsufficientAvailability, requested, len(ids)),
			fmt.Sprintf("only %d room(s) available, cannot book %d", len(ids), requested),
		)
	}

	best, ok := bestSingleFloor(ids, requested)
	if !ok {
		best = bestAcrossFloors(ids, requested)
	}
	rooms := slices.Clone(best.rooms)
	slices.Sort(rooms)
	return Result{Success: true, Rooms: rooms, TravelTime: best.span}
}

// AllocateNumber is Allocate for counts that arrive as untyped numbers, such
// as JSON input.  Fractional, NaN and infinite counts fail with
// ErrInvalidCount before any other check.
func AllocateNumber(requested float64, available []int) Result {
	switch {
	case math.IsNaN(requested) || math.IsInf(requested, 0) || requested != math.Trunc(requested):
		return failure(
			fmt.Errorf("%w: got %v", ErrInvalidCount, requested),
			"number of rooms must be a whole number",
		)
	case requested < config.MinRoomsPerBooking:
		return belowMinimum()
	case requested > config.MaxRoomsPerBooking:
		return aboveMaximum()
	}
	return Allocate(int(requested), available)
}

// CanAllocate reports whether Allocate would succeed.
func CanAllocate(requested int, available []int) bool {
	return Allocate(requested, available).Success
}

func belowMinimum() Result {
	return failure(
		fmt.Errorf("%w: minimum is %d", ErrBelowMinimum, config.MinRoomsPerBooking),
		fmt.Sprintf("at least %d room must be booked", config.MinRoomsPerBooking),
	)
}

func aboveMaximum() Result {
	return failure(
		fmt.Errorf("%w: maximum is %d", ErrAboveMaximum, config.MaxRoomsPerBooking),
		fmt.Sprintf("at most %d rooms can be booked at once", config.MaxRoomsPerBooking),
	)
}

func failure(err error, msg string) Result {
	return Result{Rooms: []int{}, Err: err, ErrorMessage: msg}
}

// normalize returns the distinct valid room numbers of available in
// ascending order, in a new slice.
func normalize(available []int) []int {
	seen := mapset.New[int]()
	ids := make([]int, 0, len(available))
	for _, id := range available {
		if !room.IsValid(id) || seen.Has(id) {
			continue
		}
		seen.Put(id)
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
