package hotel

import (
	"math/rand"
	"sync"

	"github.com/iliyamo/hotel-room-reservation/internal/allocation"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// Store owns the current State.  Each method reads the state, computes the
// next one and swaps it in under one lock, so a booking commits all of its
// rooms or none and two bookings never share a room.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns a Store holding a fresh hotel.
func NewStore() *Store { return &Store{state: NewState()} }

// Snapshot returns the current State.  It stays valid and unchanged while
// the Store moves on.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Book allocates and books rooms for req.
func (s *Store) Book(req BookRequest) (model.Booking, allocation.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, b, res := s.state.Book(req)
	s.state = next
	return b, res
}

// CheckIn moves booked rooms to occupied.
func (s *Store) CheckIn(ids []int) error {
	return s.update(func(st State) (State, error) { return st.CheckIn(ids) })
}

// CheckOut frees booked or occupied rooms.
func (s *Store) CheckOut(ids []int) error {
	return s.update(func(st State) (State, error) { return st.CheckOut(ids) })
}

// Randomize occupies available rooms at random; see State.Randomize.
func (s *Store) Randomize(rng *rand.Rand, rate float64) error {
	return s.update(func(st State) (State, error) { return st.Randomize(rng, rate) })
}

// Reset makes every room available and forgets all bookings.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Reset()
}

func (s *Store) update(fn func(State) (State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.state)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}
