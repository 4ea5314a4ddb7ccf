// Counter array backing the filter.
//
// Each slot counts how many current insertions map to it across all k
// positions. Counters are uint32 and saturate at MaxCount: once a slot
// reaches MaxCount its true value is unknown, so it is never decremented
// again. Decrements otherwise clamp at zero so an unbalanced delete cannot
// push a shared slot negative.
package cbloom

import "math"

// MaxCount is the saturation value for a single counter.
const MaxCount = math.MaxUint32

type counters struct {
	slots []uint32
}

// newCounters returns m zeroed counters.
func newCounters(m int) *counters {
	return &counters{slots: make([]uint32, m)}
}

// inc increments the counters at pos, saturating at MaxCount.
func (c *counters) inc(pos []int) {
	for _, p := range pos {
		if c.slots[p] < MaxCount {
			c.slots[p]++
		}
	}
}

// dec decrements the counters at pos, clamping at zero and leaving
// saturated slots untouched.
func (c *counters) dec(pos []int) {
	for _, p := range pos {
		if v := c.slots[p]; v > 0 && v < MaxCount {
			c.slots[p]--
		}
	}
}

// all reports whether every counter at pos is non-zero.
func (c *counters) all(pos []int) bool {
	for _, p := range pos {
		if c.slots[p] == 0 {
			return false
		}
	}
	return true
}

// missing returns the positions whose counter is zero, in the order given.
func (c *counters) missing(pos []int) []int {
	var out []int
	for _, p := range pos {
		if c.slots[p] == 0 {
			out = append(out, p)
		}
	}
	return out
}

// values returns the counter value at each position.
func (c *counters) values(pos []int) []uint32 {
	out := make([]uint32, len(pos))
	for i, p := range pos {
		out[i] = c.slots[p]
	}
	return out
}

// filled counts non-zero slots.
func (c *counters) filled() int {
	n := 0
	for _, v := range c.slots {
		if v > 0 {
			n++
		}
	}
	return n
}

// snapshot returns a copy of all slots.
func (c *counters) snapshot() []uint32 {
	out := make([]uint32, len(c.slots))
	copy(out, c.slots)
	return out
}
