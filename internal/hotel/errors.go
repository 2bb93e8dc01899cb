package hotel

import "errors"

var (
	// ErrUnknownRoom indicates a room number that is not in the hotel.
	ErrUnknownRoom = errors.New("hotel: unknown room")
	// ErrInvalidTransition indicates a status change the room's current status does not allow.
	ErrInvalidTransition = errors.New("hotel: invalid status transition")
	// ErrNoRooms indicates a status change requested for an empty room list.
	ErrNoRooms = errors.New("hotel: no rooms given")
	// ErrInvalidRate indicates an occupancy rate outside [0, 1].
	ErrInvalidRate = errors.New("hotel: occupancy rate must be between 0 and 1")
)
