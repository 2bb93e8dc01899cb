// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them.
package queue

// RoomsBookedQueue is the durable queue that carries RoomsBookedEvent.
const RoomsBookedQueue = "rooms.booked"

// RoomsBookedEvent is published after a booking commits.  It carries enough
// for downstream consumers to log, notify or feed analytics without asking
// the booking service again.
type RoomsBookedEvent struct {
    BookingID  string `json:"booking_id"`
    Rooms      []int  `json:"rooms"`
    Floors     []int  `json:"floors"`
    TravelTime int    `json:"travel_time"`
    BookedBy   string `json:"booked_by"`
    BookedAt   string `json:"booked_at"` // RFC 3339, UTC
}
