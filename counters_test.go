// Counter array tests.
//
// The counters carry the two invariants that make deletion safe: a slot
// never drops below zero, and a slot that has saturated is never
// decremented. Either failure turns a still-present member into a false
// negative, which is the one outcome a bloom filter must never produce.
package cbloom

import (
	"slices"
	"strconv"
	"testing"
)

// TestCountersIncDec verifies the basic round trip, including a position
// repeated within one call (k > distinct slots).
func TestCountersIncDec(t *testing.T) {
	c := newCounters(4)
	c.inc([]int{1, 2, 1})

	if got := c.snapshot(); !slices.Equal(got, []uint32{0, 2, 1, 0}) {
		t.Fatalf("after inc = %v, want [0 2 1 0]", got)
	}

	c.dec([]int{1, 2, 1})
	if got := c.snapshot(); !slices.Equal(got, []uint32{0, 0, 0, 0}) {
		t.Errorf("after dec = %v, want all zero", got)
	}
}

// TestCountersClampAtZero verifies dec on an empty slot stays at zero.
func TestCountersClampAtZero(t *testing.T) {
	c := newCounters(3)
	c.inc([]int{0})
	c.dec([]int{0, 0, 1})

	if got := c.snapshot(); !slices.Equal(got, []uint32{0, 0, 0}) {
		t.Errorf("counters = %v, want all zero", got)
	}
}

// TestCountersSaturate verifies that a slot at MaxCount neither wraps on
// increment nor moves on decrement.
func TestCountersSaturate(t *testing.T) {
	c := newCounters(2)
	c.slots[0] = MaxCount

	c.inc([]int{0})
	if c.slots[0] != MaxCount {
		t.Fatalf("after inc = %d, want MaxCount", c.slots[0])
	}

	c.dec([]int{0})
	if c.slots[0] != MaxCount {
		t.Errorf("after dec = %d, want MaxCount (sticky)", c.slots[0])
	}
}

// TestCountersMissing verifies missing preserves index order and repeats.
func TestCountersMissing(t *testing.T) {
	c := newCounters(5)
	c.inc([]int{2})

	pos := []int{4, 2, 0, 4}
	if c.all(pos) {
		t.Error("all = true, want false")
	}
	if got := c.missing(pos); !slices.Equal(got, []int{4, 0, 4}) {
		t.Errorf("missing = %v, want [4 0 4]", got)
	}
	if got := c.missing([]int{2}); got != nil {
		t.Errorf("missing = %v, want nil", got)
	}
}

// TestCountersFilled verifies only non-zero slots are counted.
func TestCountersFilled(t *testing.T) {
	c := newCounters(6)
	c.inc([]int{0, 0, 3, 5})
	if got := c.filled(); got != 3 {
		t.Errorf("filled = %d, want 3", got)
	}
}

// TestCountersSnapshotIsCopy verifies callers cannot mutate the filter
// through a snapshot.
func TestCountersSnapshotIsCopy(t *testing.T) {
	c := newCounters(2)
	s := c.snapshot()
	s[0] = 99
	if c.slots[0] != 0 {
		t.Error("snapshot aliases the counter array")
	}
}

// TestFilterFPRate measures the observed false-positive rate with 1000
// members and 10000 probes at m=9600, k=7. The asymptotic estimate is
// about 1%; the threshold allows for the correlation between similar
// probe strings under FNV double hashing.
func TestFilterFPRate(t *testing.T) {
	f := newTestFilter(t, 9600, 7)
	for i := range 1000 {
		f.Insert("present-" + strconv.Itoa(i))
	}

	fp := 0
	tests := 10000
	for i := range tests {
		r := f.Check("absent-" + strconv.Itoa(i))
		if r.Matched {
			fp++
			if !r.FalsePositive {
				t.Fatalf("absent-%d matched but FalsePositive = false", i)
			}
		}
	}

	rate := float64(fp) / float64(tests)
	if rate > 0.03 {
		t.Errorf("false positive rate %.4f exceeds 3%%", rate)
	}
}
