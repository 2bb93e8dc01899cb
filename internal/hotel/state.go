// Package hotel holds the room status of the whole hotel and applies
// bookings to it.
//
// State is an immutable value: every transition returns a new State and
// leaves the receiver untouched, so a State can be shared freely between
// goroutines.  Store keeps the current State and serializes transitions so
// that concurrent bookings never receive the same room.
package hotel

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-room-reservation/internal/allocation"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/room"
)

// State is a snapshot of every room and the bookings made so far.  The zero
// value has no rooms; use NewState.
type State struct {
	rooms    map[int]model.Room
	bookings []model.Booking
}

// Stats summarizes a State.
type Stats struct {
	Total            int         `json:"total"`
	Available        int         `json:"available"`
	Booked           int         `json:"booked"`
	Occupied         int         `json:"occupied"`
	AvailableByFloor map[int]int `json:"available_by_floor"`
	Bookings         int         `json:"bookings"`
}

// BookRequest describes a booking attempt.  Rooms is the requested count as
// received from the caller and must be a whole number.  A zero ID or At is
// filled in with a random UUID and the current UTC time.
type BookRequest struct {
	Rooms    float64
	BookedBy string
	At       time.Time
	ID       uuid.UUID
}

// NewState returns a hotel with every room available and no bookings.
func NewState() State {
	ids := room.AllIDs()
	rooms := make(map[int]model.Room, len(ids))
	for _, id := range ids {
		rooms[id] = model.Room{
			ID:       id,
			Floor:    room.FloorOf(id),
			Position: room.PositionOf(id),
			Status:   model.StatusAvailable,
		}
	}
	return State{rooms: rooms}
}

// Room returns the room with the given number.
func (s State) Room(id int) (model.Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

// Rooms returns every room in ascending order.
func (s State) Rooms() []model.Room {
	out := make([]model.Room, 0, len(s.rooms))
	for _, id := range slices.Sorted(maps.Keys(s.rooms)) {
		out = append(out, s.rooms[id])
	}
	return out
}

// Floor returns the rooms of one floor in ascending order.
func (s State) Floor(floor int) []model.Room {
	out := make([]model.Room, 0, room.RoomsOnFloor(floor))
	for p := 1; p <= room.RoomsOnFloor(floor); p++ {
		if r, ok := s.rooms[room.MakeID(floor, p)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// AvailableIDs returns the numbers of all available rooms in ascending order.
func (s State) AvailableIDs() []int {
	var ids []int
	for _, r := range s.Rooms() {
		if r.Status == model.StatusAvailable {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Bookings returns the bookings in the order they were made.
func (s State) Bookings() []model.Booking {
	out := make([]model.Booking, len(s.bookings))
	for i, b := range s.bookings {
		b.Rooms = slices.Clone(b.Rooms)
		out[i] = b
	}
	return out
}

// Stats counts rooms by status.
func (s State) Stats() Stats {
	st := Stats{
		Total:            len(s.rooms),
		AvailableByFloor: make(map[int]int, len(room.Floors())),
		Bookings:         len(s.bookings),
	}
	for _, f := range room.Floors() {
		st.AvailableByFloor[f] = 0
	}
	for _, r := range s.rooms {
		switch r.Status {
		case model.StatusAvailable:
			st.Available++
			st.AvailableByFloor[r.Floor]++
		case model.StatusBooked:
			st.Booked++
		case model.StatusOccupied:
			st.Occupied++
		}
	}
	return st
}

// Book allocates rooms for req from the currently available ones.  On
// success every allocated room is booked in the returned State.  On failure
// the receiver is returned as is, together with the failed result.
func (s State) Book(req BookRequest) (State, model.Booking, allocation.Result) {
	res := allocation.AllocateNumber(req.Rooms, s.AvailableIDs())
	if !res.Success {
		return s, model.Booking{}, res
	}
	b := model.Booking{
		ID:         req.ID,
		Rooms:      slices.Clone(res.Rooms),
		TravelTime: res.TravelTime,
		BookedBy:   req.BookedBy,
		CreatedAt:  req.At,
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	next := s.clone()
	for _, id := range res.Rooms {
		r := next.rooms[id]
		r.Status = model.StatusBooked
		next.rooms[id] = r
	}
	next.bookings = append(next.bookings, b)
	return next, b, res
}

// CheckIn moves booked rooms to occupied.
func (s State) CheckIn(ids []int) (State, error) {
	return s.transition(ids, func(st model.RoomStatus) (model.RoomStatus, bool) {
		switch st {
		case model.StatusBooked:
			return model.StatusOccupied, true
		case model.StatusAvailable, model.StatusOccupied:
			return st, false
		}
		return st, false
	})
}

// CheckOut frees booked or occupied rooms.
func (s State) CheckOut(ids []int) (State, error) {
	return s.transition(ids, func(st model.RoomStatus) (model.RoomStatus, bool) {
		switch st {
		case model.StatusBooked, model.StatusOccupied:
			return model.StatusAvailable, true
		case model.StatusAvailable:
			return st, false
		}
		return st, false
	})
}

// Randomize marks each available room occupied with probability rate.
// Booked and occupied rooms keep their status.
func (s State) Randomize(rng *rand.Rand, rate float64) (State, error) {
	if !(rate >= 0 && rate <= 1) {
		return s, fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	next := s.clone()
	for _, id := range s.AvailableIDs() {
		if rng.Float64() < rate {
			r := next.rooms[id]
			r.Status = model.StatusOccupied
			next.rooms[id] = r
		}
	}
	return next, nil
}

// Reset returns a hotel with every room available and no bookings.
func (s State) Reset() State { return NewState() }

// transition applies step to every distinct room in ids, or to none of
// them: the first unknown room or refused status change aborts the whole
// transition.
func (s State) transition(ids []int, step func(model.RoomStatus) (model.RoomStatus, bool)) (State, error) {
	if len(ids) == 0 {
		return s, ErrNoRooms
	}
	next := s.clone()
	for _, id := range slices.Compact(slices.Sorted(slices.Values(ids))) {
		r, ok := next.rooms[id]
		if !ok {
			return s, fmt.Errorf("%w: %d", ErrUnknownRoom, id)
		}
		st, ok := step(r.Status)
		if !ok {
			return s, fmt.Errorf("%w: room %d is %s", ErrInvalidTransition, id, r.Status)
		}
		r.Status = st
		next.rooms[id] = r
	}
	return next, nil
}

// clone copies the room map and the booking slice header so the copy can be
// changed without affecting s.  Bookings themselves are never modified
// after creation.
func (s State) clone() State {
	return State{
		rooms:    maps.Clone(s.rooms),
		bookings: slices.Clip(s.bookings),
	}
}
