package config

// Hotel layout and booking policy.  The layout is fixed: floors 1-9 have
// RoomsPerFloor rooms each and the top floor has TopFloorRooms.
const (
    Floors        = 10 // number of floors, numbered from 1
    RoomsPerFloor = 10 // rooms on every floor below the top one
    TopFloorRooms = 7  // rooms on floor Floors

    HorizontalMinutesPerRoom = 1 // walking time between adjacent rooms
    VerticalMinutesPerFloor  = 2 // stairs/lift time per floor crossed

    MinRoomsPerBooking = 1
    MaxRoomsPerBooking = 5
)
