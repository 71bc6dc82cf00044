package morph

import "math/bits"

// Neighborhood encoding: the 8 neighbors of a pixel are numbered
// clockwise starting at west, so that ring-adjacent indices are also
// spatially 8-adjacent (index 7 wraps to 0).
//
//	1 2 3
//	0 . 4
//	7 6 5
var offsets = [8][2]int{
	{-1, 0},  // W
	{-1, -1}, // NW
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
}

// masks holds the bit weight of each neighbor position. The same weights
// are used to enumerate patterns at table build time and to encode live
// neighborhoods during a pass; the two must never diverge.
var masks [8]uint

var (
	isDeletable  [256]bool
	isInsertable [256]bool
	isPrunable   [256]bool
)

func init() {
	for i := range masks {
		masks[i] = 1 << uint(i)
	}
	for code := 0; code < 256; code++ {
		n := bits.OnesCount8(uint8(code))
		simple := crossings(uint8(code)) == 1

		// A foreground center may go iff its neighbors form a single
		// 8-connected arc (removal cannot split the region) and it is
		// not an isolated pixel or a line endpoint. The all-foreground
		// pattern has zero crossings and is excluded as interior.
		isDeletable[code] = simple && n >= 2

		// A background center may be filled under the mirror condition:
		// the arc guarantees the insertion bridges nothing that was not
		// already connected, and the two-neighbor floor keeps dilation
		// from sprouting new spurs pass after pass.
		isInsertable[code] = simple && n >= 2

		// Spur tips: a single foreground neighbor, or exactly two that
		// are themselves 8-adjacent (the tip of a diagonal stub).
		isPrunable[code] = n == 1 || (n == 2 && adjacentPair(uint8(code)))
	}
}

// crossings counts background-to-foreground transitions walking the
// neighbor ring once. One crossing means the foreground neighbors form
// exactly one contiguous arc.
func crossings(code uint8) int {
	c := 0
	for i := 0; i < 8; i++ {
		if code&uint8(masks[i]) == 0 && code&uint8(masks[(i+1)%8]) != 0 {
			c++
		}
	}
	return c
}

// adjacentPair reports whether the pattern's two set bits sit on
// ring-adjacent positions.
func adjacentPair(code uint8) bool {
	for i := 0; i < 8; i++ {
		if code&uint8(masks[i]) != 0 && code&uint8(masks[(i+1)%8]) != 0 {
			return true
		}
	}
	return false
}
