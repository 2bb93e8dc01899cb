package allocation_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/allocation"
	"github.com/iliyamo/hotel-room-reservation/internal/room"
	"github.com/iliyamo/hotel-room-reservation/internal/travel"
)

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestAllocate_CountBounds(t *testing.T) {
	all := room.AllIDs()
	cases := []struct {
		name      string
		requested int
		err       error
		message   string
	}{
		{"Zero", 0, allocation.ErrBelowMinimum, "at least 1"},
		{"Negative", -4, allocation.ErrBelowMinimum, "at least 1"},
		{"Six", 6, allocation.ErrAboveMaximum, "at most 5"},
		{"Huge", math.MaxInt, allocation.ErrAboveMaximum, "at most 5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := allocation.Allocate(tc.requested, all)
			assert.False(t, res.Success)
			assert.True(t, errors.Is(res.Err, tc.err), "err = %v", res.Err)
			assert.Contains(t, res.ErrorMessage, tc.message)
			assert.Empty(t, res.Rooms)
			assert.Zero(t, res.TravelTime)
		})
	}
}

func TestAllocateNumber(t *testing.T) {
	all := room.AllIDs()
	cases := []struct {
		name      string
		requested float64
		err       error
	}{
		{"Fraction", 2.5, allocation.ErrInvalidCount},
		{"NaN", math.NaN(), allocation.ErrInvalidCount},
		{"Inf", math.Inf(1), allocation.ErrInvalidCount},
		{"NegInf", math.Inf(-1), allocation.ErrInvalidCount},
		// the whole-number check runs before the bounds
		{"NegativeFraction", -0.5, allocation.ErrInvalidCount},
		{"Zero", 0, allocation.ErrBelowMinimum},
		{"TooMany", 1e12, allocation.ErrAboveMaximum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := allocation.AllocateNumber(tc.requested, all)
			assert.False(t, res.Success)
			assert.True(t, errors.Is(res.Err, tc.err), "err = %v", res.Err)
			assert.NotEmpty(t, res.ErrorMessage)
		})
	}

	res := allocation.AllocateNumber(3, all)
	require.True(t, res.Success)
	assert.Equal(t, []int{101, 102, 103}, res.Rooms)
}

func TestAllocate_InsufficientAvailability(t *testing.T) {
	res := allocation.Allocate(3, []int{101, 202})
	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, allocation.ErrInsufficientAvailability))
	assert.Contains(t, res.ErrorMessage, "only 2 room(s) available")

	res = allocation.Allocate(1, nil)
	assert.True(t, errors.Is(res.Err, allocation.ErrInsufficientAvailability))
}

func TestAllocate_BoundsCheckedBeforeAvailability(t *testing.T) {
	res := allocation.Allocate(7, []int{101})
	assert.True(t, errors.Is(res.Err, allocation.ErrAboveMaximum))
}

//----------------------------------------------------------------------------//
// Selection
//----------------------------------------------------------------------------//

func TestAllocate_Scenarios(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		available []int
		rooms     []int
		span      int
	}{
		{"SingleRoom", 1, room.AllIDs(), []int{101}, 0},
		{"ThreeOnFirstFloor", 3, room.AllIDs(), []int{101, 102, 103}, 2},
		{"TopFloor", 5, []int{1001, 1002, 1003, 1004, 1005, 1006, 1007}, []int{1001, 1002, 1003, 1004, 1005}, 4},
		{"CrossFloorFallback", 3, []int{101, 102, 201, 202}, []int{101, 102, 201}, 2},
		{"CrossFloorPair", 2, []int{101, 510, 1007}, []int{510, 1007}, 13},
		{"UnsortedInput", 2, []int{1007, 510, 101}, []int{510, 1007}, 13},
		{"ContiguousBeatsEarlierGap", 2, []int{101, 103, 105, 106}, []int{105, 106}, 1},
		{"GapFallbackOnFloor", 3, []int{101, 103, 105, 107}, []int{101, 103, 105}, 4},
		{"LowerFloorWinsTie", 2, []int{301, 302, 201, 202}, []int{201, 202}, 1},
		{"SmallerSpanFloorWins", 3, []int{101, 105, 110, 406, 407, 408}, []int{406, 407, 408}, 2},
		{"SingleFloorBeatsCheaperCrossFloor", 2, []int{101, 110, 201}, []int{101, 110}, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := allocation.Allocate(tc.requested, tc.available)
			require.True(t, res.Success, res.ErrorMessage)
			assert.NoError(t, res.Err)
			assert.Equal(t, tc.rooms, res.Rooms)
			assert.Equal(t, tc.span, res.TravelTime)
		})
	}
}

// On a floor without a run the span only depends on the window's end rooms,
// so equal-span windows resolve to the lowest one.
func TestAllocate_FloorFallbackTie(t *testing.T) {
	res := allocation.Allocate(3, []int{101, 103, 106, 108})
	require.True(t, res.Success)
	assert.Equal(t, []int{101, 103, 106}, res.Rooms)
	assert.Equal(t, 5, res.TravelTime)
}

func TestAllocate_Duplicates(t *testing.T) {
	res := allocation.Allocate(2, []int{101, 101})
	assert.True(t, errors.Is(res.Err, allocation.ErrInsufficientAvailability))

	res = allocation.Allocate(2, []int{101, 101, 102, 102})
	require.True(t, res.Success)
	assert.Equal(t, []int{101, 102}, res.Rooms)
}

func TestAllocate_InvalidRoomsIgnored(t *testing.T) {
	res := allocation.Allocate(2, []int{1008, 99, 305, 0, 306})
	require.True(t, res.Success)
	assert.Equal(t, []int{305, 306}, res.Rooms)

	res = allocation.Allocate(2, []int{1008, 1009})
	assert.True(t, errors.Is(res.Err, allocation.ErrInsufficientAvailability))
}

func TestCanAllocate(t *testing.T) {
	assert.True(t, allocation.CanAllocate(2, []int{101, 909}))
	assert.False(t, allocation.CanAllocate(2, []int{101}))
	assert.False(t, allocation.CanAllocate(0, room.AllIDs()))
	assert.False(t, allocation.CanAllocate(6, room.AllIDs()))
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

func randomAvailable(rng *rand.Rand) []int {
	all := room.AllIDs()
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:rng.Intn(len(all)+1)]
}

func TestAllocate_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		available := randomAvailable(rng)
		requested := 1 + rng.Intn(5)
		before := slices.Clone(available)

		res := allocation.Allocate(requested, available)
		require.Equal(t, before, available, "input modified")

		again := allocation.Allocate(requested, available)
		require.Equal(t, res.Rooms, again.Rooms)
		require.Equal(t, res.TravelTime, again.TravelTime)

		if len(available) < requested {
			require.False(t, res.Success)
			continue
		}
		require.True(t, res.Success, res.ErrorMessage)
		require.Len(t, res.Rooms, requested)
		for i, id := range res.Rooms {
			require.True(t, room.IsValid(id))
			require.Contains(t, available, id)
			if i > 0 {
				require.Less(t, res.Rooms[i-1], id, "rooms not strictly ascending")
			}
		}
		require.Equal(t, travel.GroupSpan(res.Rooms), res.TravelTime)
	}
}

func TestAllocate_SameFloorWheneverPossible(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 300; iter++ {
		available := randomAvailable(rng)
		requested := 1 + rng.Intn(5)
		res := allocation.Allocate(requested, available)
		if !res.Success {
			continue
		}
		perFloor := map[int]int{}
		for _, id := range available {
			perFloor[room.FloorOf(id)]++
		}
		fits := false
		for _, n := range perFloor {
			fits = fits || n >= requested
		}
		sameFloor := room.FloorOf(res.Rooms[0]) == room.FloorOf(res.Rooms[len(res.Rooms)-1])
		require.Equal(t, fits, sameFloor, "available=%v rooms=%v", available, res.Rooms)
	}
}
