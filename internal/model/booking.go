package model

import (
    "time"

    "github.com/google/uuid"
)

// Booking records one successful allocation.  Rooms are in ascending order
// and TravelTime is their span in minutes.
//
// Fields:
//  ID         – random identifier returned to the client.
//  Rooms      – allocated room numbers.
//  TravelTime – walking time between the farthest two rooms.
//  BookedBy   – subject of the staff member who made the booking.
//  CreatedAt  – UTC time the booking was committed.
type Booking struct {
    ID         uuid.UUID `json:"id"`
    Rooms      []int     `json:"rooms"`
    TravelTime int       `json:"travel_time"`
    BookedBy   string    `json:"booked_by,omitempty"`
    CreatedAt  time.Time `json:"created_at"`
}
