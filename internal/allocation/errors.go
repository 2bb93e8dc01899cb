package allocation

import "errors"

var (
	// ErrInvalidCount indicates a requested room count that is not a whole number.
	ErrInvalidCount = errors.New("allocation: room count must be a whole number")
	// ErrBelowMinimum indicates a requested room count under config.MinRoomsPerBooking.
	ErrBelowMinimum = errors.New("allocation: room count below minimum")
	// ErrAboveMaximum indicates a requested room count over config.MaxRoomsPerBooking.
	ErrAboveMaximum = errors.New("allocation: room count above maximum")
	// ErrInsufficientAvailability indicates fewer available rooms than requested.
	ErrInsufficientAvailability = errors.New("allocation: not enough rooms available")
)
