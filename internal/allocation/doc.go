// Package allocation picks the rooms for a booking.
//
// Allocate chooses requested rooms out of an available set so that the
// booking's span (see travel.GroupSpan) is as small as possible, under two
// priority rules that are applied before the span is compared:
//
//  1. Rooms on a single floor always beat rooms spread over several floors,
//     even when a cross-floor group would have a smaller span.
//  2. On a floor, an unbroken run of adjacent positions beats any other
//     selection on that floor.
//
// Search outline:
//
//   - The available rooms are treated as a set: duplicates collapse and
//     numbers outside the hotel layout are ignored.
//   - For every floor holding at least requested rooms (ascending floor
//     order) the best block is the minimum-span window of requested
//     consecutive positions.  When the floor has no such run, every window of
//     requested rooms over the floor's sorted rooms is scored instead (gaps
//     allowed, but only windows of the sorted list are considered, not every
//     subset of the floor).
//   - The floor with the smallest block span wins; equal spans go to the
//     lower floor.
//   - Only when no floor can hold the booking are all requested-sized subsets
//     of the available rooms considered.
//
// Ties are always resolved toward the group whose lowest room number is
// smaller, so results are deterministic for a given input.
//
// Complexity: per-floor scans are O(n·k).  The cross-floor search is O(n²)
// because a subset's span depends only on its lowest and highest rooms, so
// it is enough to try every (lowest, highest) pair with room for k-2 rooms
// between them; this returns exactly the subset an exhaustive lexicographic
// enumeration of all C(n,k) subsets would.
//
// The package has no state.  Allocate never modifies its input and is safe to
// call from any number of goroutines.
package allocation
