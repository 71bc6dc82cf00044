package morph

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func code(positions ...int) uint8 {
	var c uint8
	for _, p := range positions {
		c |= uint8(masks[p])
	}
	return c
}

func TestMasksAreDistinctBitWeights(t *testing.T) {
	var sum uint
	for i, m := range masks {
		assert.Equal(t, uint(1)<<uint(i), m)
		sum |= m
	}
	assert.Equal(t, uint(0xff), sum)
}

func TestDeletableBoundaries(t *testing.T) {
	assert.False(t, isDeletable[0], "isolated pixel must never be deletable")
	assert.False(t, isDeletable[255], "interior pixel must never be deletable")
	for c := 0; c < 256; c++ {
		if bits.OnesCount8(uint8(c)) == 1 {
			assert.False(t, isDeletable[c], "endpoint pattern %08b must survive", c)
		}
	}
}

func TestDeletablePatterns(t *testing.T) {
	const (
		west      = 0
		northWest = 1
		north     = 2
		northEast = 3
		east      = 4
		southEast = 5
		south     = 6
		southWest = 7
	)
	cases := []struct {
		name string
		code uint8
		want bool
	}{
		{"contiguous southern arc", code(southEast, south, southWest), true},
		{"arc wrapping the ring seam", code(south, southWest, west), true},
		{"opposite line neighbors", code(west, east), false},
		{"two diagonal runs", code(northWest, northEast), false},
		{"seven neighbors one gap", 0xff &^ code(north), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isDeletable[tc.code])
		})
	}
}

func TestInsertableMirrorsDeletable(t *testing.T) {
	for c := 0; c < 256; c++ {
		assert.Equal(t, isDeletable[c], isInsertable[c],
			"insertion is the reverse of deletion for pattern %08b", c)
	}
}

func TestPrunablePatterns(t *testing.T) {
	for i := 0; i < 8; i++ {
		assert.True(t, isPrunable[uint8(masks[i])], "single neighbor at %d is a spur tip", i)
	}
	assert.True(t, isPrunable[code(0, 1)], "two ring-adjacent neighbors form a tip")
	assert.True(t, isPrunable[code(7, 0)], "adjacency wraps the ring seam")
	assert.False(t, isPrunable[code(0, 4)], "line interior is not prunable")
	assert.False(t, isPrunable[0], "isolated pixel is not a spur")
	assert.False(t, isPrunable[code(0, 1, 2)], "three neighbors anchor the pixel")
}

func TestCrossingsCountsArcs(t *testing.T) {
	assert.Equal(t, 0, crossings(0x00))
	assert.Equal(t, 0, crossings(0xff))
	assert.Equal(t, 1, crossings(code(0, 1, 2)))
	assert.Equal(t, 2, crossings(code(0, 4)))
	assert.Equal(t, 4, crossings(code(0, 2, 4, 6)))
}
