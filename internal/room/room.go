// Package room maps room numbers to their floor and position and back.
//
// A room number encodes floor*100 + position, so 101 is the first room on
// the first floor and 1007 is the last room in the hotel.  Floors 1-9 have
// ten rooms and the top floor has seven, giving 97 valid numbers.  For valid
// numbers the integer order is the same as ordering by floor and then by
// position, and every package in this module relies on that.
package room

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
)

// ErrInvalidRoom reports a room number outside the hotel layout.
var ErrInvalidRoom = errors.New("room: invalid room number")

// FloorOf returns the floor encoded in id.
func FloorOf(id int) int { return id / 100 }

// PositionOf returns the position along the floor encoded in id.
func PositionOf(id int) int { return id % 100 }

// MakeID builds the room number for a floor and position.
func MakeID(floor, position int) int { return floor*100 + position }

// RoomsOnFloor returns how many rooms floor has, or 0 for a floor that does
// not exist.
func RoomsOnFloor(floor int) int {
	switch {
	case floor < 1 || floor > config.Floors:
		return 0
	case floor == config.Floors:
		return config.TopFloorRooms
	default:
		return config.RoomsPerFloor
	}
}

// IsValid reports whether id names a room in the hotel.
func IsValid(id int) bool {
	if id < 100 {
		return false
	}
	f, p := FloorOf(id), PositionOf(id)
	return p >= 1 && p <= RoomsOnFloor(f)
}

// Floors returns the floor numbers in ascending order.
func Floors() []int {
	out := make([]int, 0, config.Floors)
	for f := 1; f <= config.Floors; f++ {
		out = append(out, f)
	}
	return out
}

// AllIDs returns every valid room number in ascending order.
func AllIDs() []int {
	out := make([]int, 0, (config.Floors-1)*config.RoomsPerFloor+config.TopFloorRooms)
	for f := 1; f <= config.Floors; f++ {
		for p := 1; p <= RoomsOnFloor(f); p++ {
			out = append(out, MakeID(f, p))
		}
	}
	return out
}

// Parse reads a room number typed by a user.  Surrounding spaces are
// ignored; anything that is not a valid room number yields an error
// wrapping ErrInvalidRoom.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.Atoi(s)
	if err != nil || !IsValid(id) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoom, s)
	}
	return id, nil
}
