package allocation

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/room"
	"github.com/iliyamo/hotel-room-reservation/internal/travel"
)

// exhaustive enumerates every k-subset of ids in lexicographic order and
// keeps the first one with the smallest span.
func exhaustive(ids []int, k int) candidate {
	var best candidate
	found := false
	pick := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(pick) == k {
			if span := travel.GroupSpan(pick); !found || span < best.span {
				best, found = candidate{rooms: slices.Clone(pick), span: span}, true
			}
			return
		}
		for i := start; i <= len(ids)-(k-len(pick)); i++ {
			pick = append(pick, ids[i])
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)
	return best
}

func TestBestAcrossFloors_MatchesExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	all := room.AllIDs()
	for iter := 0; iter < 300; iter++ {
		rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		n := 1 + rng.Intn(14)
		k := 1 + rng.Intn(min(5, n))
		ids := slices.Clone(all[:n])
		slices.Sort(ids)

		got := bestAcrossFloors(ids, k)
		want := exhaustive(ids, k)
		require.Equal(t, want.rooms, got.rooms, "ids=%v k=%d", ids, k)
		require.Equal(t, want.span, got.span)
	}
}

func TestBestAcrossFloors_TieGoesToLowerRoom(t *testing.T) {
	// 101-302 and 302-501 both span 5
	got := bestAcrossFloors([]int{101, 302, 501}, 2)
	assert.Equal(t, []int{101, 302}, got.rooms)
	assert.Equal(t, 5, got.span)
}

func TestByFloor(t *testing.T) {
	assert.Nil(t, byFloor(nil))
	assert.Equal(t,
		[][]int{{101, 105}, {301}, {1001, 1002, 1007}},
		byFloor([]int{101, 105, 301, 1001, 1002, 1007}),
	)
}

func TestAdjacent(t *testing.T) {
	assert.True(t, adjacent([]int{104}))
	assert.True(t, adjacent([]int{104, 105, 106}))
	assert.False(t, adjacent([]int{104, 106}))
	assert.False(t, adjacent([]int{110, 201}))
}

func TestBestOnFloor(t *testing.T) {
	_, ok := bestOnFloor([]int{101, 102}, 3)
	assert.False(t, ok)

	c, ok := bestOnFloor([]int{101, 102, 104, 105, 106}, 3)
	require.True(t, ok)
	assert.Equal(t, []int{104, 105, 106}, c.rooms)
	assert.Equal(t, 2, c.span)

	c, ok = bestOnFloor([]int{101, 104, 105, 109}, 3)
	require.True(t, ok)
	assert.Equal(t, []int{101, 104, 105}, c.rooms, "narrowest window wins")
	assert.Equal(t, 4, c.span)
}

func TestNormalize(t *testing.T) {
	in := []int{305, 101, 1008, 305, 0, 1007}
	assert.Equal(t, []int{101, 305, 1007}, normalize(in))
	assert.Equal(t, []int{305, 101, 1008, 305, 0, 1007}, in)
	assert.Empty(t, normalize(nil))
}
