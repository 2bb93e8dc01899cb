package hotel_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/allocation"
	"github.com/iliyamo/hotel-room-reservation/internal/hotel"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/room"
)

func status(t *testing.T, s hotel.State, id int) model.RoomStatus {
	t.Helper()
	r, ok := s.Room(id)
	require.True(t, ok, "room %d missing", id)
	return r.Status
}

func TestNewState(t *testing.T) {
	s := hotel.NewState()
	rooms := s.Rooms()
	require.Len(t, rooms, 97)
	for i, r := range rooms {
		assert.Equal(t, room.AllIDs()[i], r.ID)
		assert.Equal(t, room.FloorOf(r.ID), r.Floor)
		assert.Equal(t, room.PositionOf(r.ID), r.Position)
		assert.Equal(t, model.StatusAvailable, r.Status)
	}
	assert.Equal(t, room.AllIDs(), s.AvailableIDs())
	assert.Empty(t, s.Bookings())

	_, ok := s.Room(1008)
	assert.False(t, ok)
}

func TestState_Floor(t *testing.T) {
	s := hotel.NewState()
	assert.Len(t, s.Floor(1), 10)
	assert.Len(t, s.Floor(10), 7)
	assert.Empty(t, s.Floor(11))
	assert.Equal(t, 1001, s.Floor(10)[0].ID)
}

func TestState_Book(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("8f7c2d62-3a4b-4c1e-9f00-5b2a7e6d1c10")
	s0 := hotel.NewState()

	s1, b, res := s0.Book(hotel.BookRequest{Rooms: 3, BookedBy: "7", At: at, ID: id})
	require.True(t, res.Success)
	assert.Equal(t, []int{101, 102, 103}, res.Rooms)
	assert.Equal(t, model.Booking{ID: id, Rooms: []int{101, 102, 103}, TravelTime: 2, BookedBy: "7", CreatedAt: at}, b)

	for _, r := range res.Rooms {
		assert.Equal(t, model.StatusBooked, status(t, s1, r))
		assert.Equal(t, model.StatusAvailable, status(t, s0, r), "original state changed")
	}
	assert.Len(t, s1.Bookings(), 1)
	assert.Empty(t, s0.Bookings())

	// the next booking skips the booked rooms
	s2, _, res := s1.Book(hotel.BookRequest{Rooms: 2})
	require.True(t, res.Success)
	assert.Equal(t, []int{104, 105}, res.Rooms)
	assert.Len(t, s2.Bookings(), 2)
	assert.Len(t, s1.Bookings(), 1)
	assert.NotEqual(t, uuid.Nil, s2.Bookings()[1].ID)
	assert.False(t, s2.Bookings()[1].CreatedAt.IsZero())
}

func TestState_BookFailureLeavesStateAlone(t *testing.T) {
	s := hotel.NewState()
	for _, n := range []float64{0, 6, 1.5} {
		next, b, res := s.Book(hotel.BookRequest{Rooms: n})
		assert.False(t, res.Success)
		assert.Equal(t, model.Booking{}, b)
		assert.Equal(t, s.AvailableIDs(), next.AvailableIDs())
		assert.Empty(t, next.Bookings())
	}
	_, _, res := s.Book(hotel.BookRequest{Rooms: 2.5})
	assert.True(t, errors.Is(res.Err, allocation.ErrInvalidCount))
}

func TestState_BookUntilFull(t *testing.T) {
	s := hotel.NewState()
	booked := map[int]bool{}
	for {
		next, _, res := s.Book(hotel.BookRequest{Rooms: 5})
		if !res.Success {
			assert.True(t, errors.Is(res.Err, allocation.ErrInsufficientAvailability))
			break
		}
		for _, id := range res.Rooms {
			require.False(t, booked[id], "room %d booked twice", id)
			booked[id] = true
		}
		s = next
	}
	assert.Len(t, booked, 95)
	assert.Equal(t, []int{1006, 1007}, s.AvailableIDs())
}

func TestState_Bookings_ReturnsCopies(t *testing.T) {
	s, _, _ := hotel.NewState().Book(hotel.BookRequest{Rooms: 2})
	bs := s.Bookings()
	bs[0].Rooms[0] = 999
	assert.Equal(t, 101, s.Bookings()[0].Rooms[0])
}

func TestState_CheckInCheckOut(t *testing.T) {
	s, _, _ := hotel.NewState().Book(hotel.BookRequest{Rooms: 2})

	in, err := s.CheckIn([]int{101, 102, 101})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOccupied, status(t, in, 101))
	assert.Equal(t, model.StatusOccupied, status(t, in, 102))
	assert.Equal(t, model.StatusBooked, status(t, s, 101))

	out, err := in.CheckOut([]int{101})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, status(t, out, 101))
	assert.Equal(t, model.StatusOccupied, status(t, out, 102))

	out, err = s.CheckOut([]int{102})
	require.NoError(t, err, "booked rooms can be released directly")
	assert.Equal(t, model.StatusAvailable, status(t, out, 102))
}

func TestState_TransitionsAreAllOrNothing(t *testing.T) {
	s, _, _ := hotel.NewState().Book(hotel.BookRequest{Rooms: 2})

	cases := []struct {
		name string
		run  func() (hotel.State, error)
		err  error
	}{
		{"CheckInAvailable", func() (hotel.State, error) { return s.CheckIn([]int{101, 205}) }, hotel.ErrInvalidTransition},
		{"CheckInUnknown", func() (hotel.State, error) { return s.CheckIn([]int{101, 1008}) }, hotel.ErrUnknownRoom},
		{"CheckOutAvailable", func() (hotel.State, error) { return s.CheckOut([]int{101, 205}) }, hotel.ErrInvalidTransition},
		{"Empty", func() (hotel.State, error) { return s.CheckOut(nil) }, hotel.ErrNoRooms},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.run()
			assert.True(t, errors.Is(err, tc.err), "err = %v", err)
			assert.Equal(t, model.StatusBooked, status(t, next, 101))
			assert.Equal(t, s.Stats(), next.Stats())
		})
	}
}

func TestState_Randomize(t *testing.T) {
	s, _, _ := hotel.NewState().Book(hotel.BookRequest{Rooms: 3})

	all, err := s.Randomize(rand.New(rand.NewSource(1)), 1)
	require.NoError(t, err)
	st := all.Stats()
	assert.Equal(t, 0, st.Available)
	assert.Equal(t, 3, st.Booked, "booked rooms are not overwritten")
	assert.Equal(t, 94, st.Occupied)

	none, err := s.Randomize(rand.New(rand.NewSource(1)), 0)
	require.NoError(t, err)
	assert.Equal(t, s.Stats(), none.Stats())

	a, _ := s.Randomize(rand.New(rand.NewSource(42)), 0.5)
	b, _ := s.Randomize(rand.New(rand.NewSource(42)), 0.5)
	assert.Equal(t, a.AvailableIDs(), b.AvailableIDs(), "same seed, same outcome")

	for _, rate := range []float64{-0.1, 1.1} {
		_, err := s.Randomize(rand.New(rand.NewSource(1)), rate)
		assert.True(t, errors.Is(err, hotel.ErrInvalidRate))
	}
}

func TestState_Reset(t *testing.T) {
	s, _, _ := hotel.NewState().Book(hotel.BookRequest{Rooms: 5})
	r := s.Reset()
	assert.Equal(t, 97, r.Stats().Available)
	assert.Empty(t, r.Bookings())
	assert.Equal(t, 5, s.Stats().Booked)
}

func TestState_Stats(t *testing.T) {
	s, _, _ := hotel.NewState().Book(hotel.BookRequest{Rooms: 4})
	s, _ = s.CheckIn([]int{101})
	st := s.Stats()
	assert.Equal(t, 97, st.Total)
	assert.Equal(t, 93, st.Available)
	assert.Equal(t, 3, st.Booked)
	assert.Equal(t, 1, st.Occupied)
	assert.Equal(t, 1, st.Bookings)
	assert.Equal(t, 6, st.AvailableByFloor[1])
	assert.Equal(t, 7, st.AvailableByFloor[10])
	assert.Len(t, st.AvailableByFloor, 10)
}
