// Boundary condition and edge case tests.
//
// These cover inputs that normal usage rarely hits: the empty string,
// a single-slot filter where every index collides, k larger than m,
// non-ASCII items, and counters at saturation. Each one, if mishandled,
// would either panic or break the no-false-negative guarantee.
package cbloom

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// TestEmptyItem verifies the empty string is an ordinary item.
func TestEmptyItem(t *testing.T) {
	f := newTestFilter(t, 20, 3)

	r := f.Insert("")
	if !slices.Equal(r.Indices, []int{0, 16, 12}) {
		t.Errorf("Indices = %v, want [0 16 12]", r.Indices)
	}
	if !f.Check("").Matched {
		t.Error("Check(\"\").Matched = false, want true")
	}
	if _, err := f.Delete(""); err != nil {
		t.Errorf("Delete(\"\"): %v", err)
	}
	if f.FilledCount() != 0 {
		t.Errorf("FilledCount = %d, want 0", f.FilledCount())
	}
}

// TestSingleSlot verifies m=1: every index is 0 and the single counter
// carries k per insert.
func TestSingleSlot(t *testing.T) {
	f := newTestFilter(t, 1, 4)

	f.Insert("a")
	f.Insert("b")
	if got := f.Counters()[0]; got != 8 {
		t.Fatalf("slot 0 = %d, want 8", got)
	}

	f.Delete("a")
	if got := f.Counters()[0]; got != 4 {
		t.Errorf("slot 0 = %d after delete, want 4", got)
	}

	r := f.Check("anything")
	if !r.Matched || !r.FalsePositive {
		t.Errorf("Check = %+v, want a false positive", r)
	}
}

// TestHashCountExceedsCapacity verifies k > m works; repeats are legal.
func TestHashCountExceedsCapacity(t *testing.T) {
	f := newTestFilter(t, 3, 10)

	r := f.Insert("item")
	if len(r.Indices) != 10 {
		t.Fatalf("len(Indices) = %d, want 10", len(r.Indices))
	}
	var sum uint32
	for _, v := range f.Counters() {
		sum += v
	}
	if sum != 10 {
		t.Errorf("sum of counters = %d, want 10", sum)
	}

	f.Delete("item")
	if f.FilledCount() != 0 {
		t.Errorf("FilledCount = %d after delete, want 0", f.FilledCount())
	}
}

// TestUnicodeItems verifies non-ASCII items round-trip and differ from
// their neighbours.
func TestUnicodeItems(t *testing.T) {
	f := newTestFilter(t, 20, 3)

	for _, item := range []string{"日本", "😀", "naïve"} {
		f.Insert(item)
		if !f.Check(item).Matched {
			t.Errorf("Check(%q).Matched = false", item)
		}
	}
	if !slices.Equal(f.Indices("日本"), []int{13, 6, 15}) {
		t.Errorf("Indices(日本) = %v, want [13 6 15]", f.Indices("日本"))
	}
}

// TestLongItem verifies a large item is hashed without issue.
func TestLongItem(t *testing.T) {
	f := newTestFilter(t, 1024, 7)
	item := strings.Repeat("x", 1<<20)

	f.Insert(item)
	if !f.Check(item).Matched {
		t.Error("Check(long).Matched = false")
	}
}

// TestSaturatedSlotSurvivesDelete verifies a saturated counter keeps a
// co-located member visible after other deletes.
func TestSaturatedSlotSurvivesDelete(t *testing.T) {
	f := newTestFilter(t, 20, 3)
	f.Insert("a") // [3 6 9]
	f.Insert("b") // [2 4 6]
	f.counters.slots[6] = MaxCount

	f.Delete("a")
	if got := f.Counters()[6]; got != MaxCount {
		t.Errorf("slot 6 = %d, want MaxCount", got)
	}
	if !f.Check("b").Matched {
		t.Error("Check(b).Matched = false")
	}
}

// TestDeleteOnEmptyFilter verifies every item is refused on a fresh filter.
func TestDeleteOnEmptyFilter(t *testing.T) {
	f := newTestFilter(t, 20, 3)
	for _, item := range []string{"", "ghost", "alpha"} {
		if _, err := f.Delete(item); !errors.Is(err, ErrNotPresent) {
			t.Errorf("Delete(%q) err = %v, want ErrNotPresent", item, err)
		}
	}
}

// TestDeleteErrorNamesItem verifies the wrapped error carries the item.
func TestDeleteErrorNamesItem(t *testing.T) {
	f := newTestFilter(t, 20, 3)
	_, err := f.Delete("ghost")
	if err == nil || !strings.Contains(err.Error(), `"ghost"`) {
		t.Errorf("err = %v, want mention of \"ghost\"", err)
	}
}
