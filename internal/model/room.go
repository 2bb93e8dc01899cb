package model

import (
    "fmt"
    "strings"
)

// RoomStatus is the occupancy state of a room.  The zero value is
// StatusAvailable.  Only the three declared values exist; every switch over
// a RoomStatus is expected to handle all of them.
type RoomStatus uint8

const (
    StatusAvailable RoomStatus = iota // free to be allocated
    StatusBooked                      // allocated to a booking, guest not arrived
    StatusOccupied                    // guest checked in (or randomly occupied)
)

// RoomStatuses lists every status in declaration order.
var RoomStatuses = []RoomStatus{StatusAvailable, StatusBooked, StatusOccupied}

// String returns the lower-case wire name of s.
func (s RoomStatus) String() string {
    switch s {
    case StatusAvailable:
        return "available"
    case StatusBooked:
        return "booked"
    case StatusOccupied:
        return "occupied"
    }
    return fmt.Sprintf("RoomStatus(%d)", uint8(s))
}

// ParseRoomStatus is the inverse of String.  Matching ignores case and
// surrounding spaces.
func ParseRoomStatus(s string) (RoomStatus, error) {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "available":
        return StatusAvailable, nil
    case "booked":
        return StatusBooked, nil
    case "occupied":
        return StatusOccupied, nil
    }
    return 0, fmt.Errorf("unknown room status %q", s)
}

// MarshalText encodes s by name so JSON carries "available" rather than 0.
func (s RoomStatus) MarshalText() ([]byte, error) {
    if s > StatusOccupied {
        return nil, fmt.Errorf("cannot encode %v", s)
    }
    return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *RoomStatus) UnmarshalText(b []byte) error {
    v, err := ParseRoomStatus(string(b))
    if err != nil {
        return err
    }
    *s = v
    return nil
}

// Room describes one hotel room and its current status.  ID encodes
// Floor*100 + Position.
//
// Fields:
//  ID       – room number, e.g. 305.
//  Floor    – floor number, 1-based.
//  Position – place along the floor, 1-based.
//  Status   – occupancy status.
type Room struct {
    ID       int        `json:"id"`
    Floor    int        `json:"floor"`
    Position int        `json:"position"`
    Status   RoomStatus `json:"status"`
}
