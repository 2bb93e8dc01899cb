package allocation_test

import (
	"fmt"

	"github.com/iliyamo/hotel-room-reservation/internal/allocation"
	"github.com/iliyamo/hotel-room-reservation/internal/room"
)

// ExampleAllocate books three rooms in an empty hotel: the first run of
// three adjacent rooms on the lowest floor.
func ExampleAllocate() {
	res := allocation.Allocate(3, room.AllIDs())
	fmt.Println(res.Success, res.Rooms, res.TravelTime)
	// Output:
	// true [101 102 103] 2
}

// ExampleAllocate_crossFloor shows the fallback when no floor can hold the
// booking: the pair with the shortest walk between them is chosen.
func ExampleAllocate_crossFloor() {
	res := allocation.Allocate(2, []int{101, 510, 1007})
	fmt.Println(res.Rooms, res.TravelTime)
	// Output:
	// [510 1007] 13
}

func ExampleAllocate_tooMany() {
	res := allocation.Allocate(6, room.AllIDs())
	fmt.Println(res.Success, res.ErrorMessage)
	// Output:
	// false at most 5 rooms can be booked at once
}
