// Item deletion.
//
// Delete refuses items that are not in the member set. Decrementing the
// counters of a never-inserted item would under-count slots it shares with
// real members and turn later checks for them into false negatives. The
// membership test runs before any counter is touched, so a failed Delete
// leaves the filter exactly as it was.
package cbloom

import "fmt"

// Delete removes one occurrence of item. It returns ErrNotPresent if item
// is not a member.
func (f *Filter) Delete(item string) (Record, error) {
	if !f.members.contains(item) {
		return Record{}, fmt.Errorf("%w: %q", ErrNotPresent, item)
	}

	pos := f.Indices(item)
	f.counters.dec(pos)
	f.members.remove(item)

	r := Record{
		Op:      OpDelete,
		Input:   item,
		Indices: pos,
		Counts:  f.counters.values(pos),
		Matched: true,
	}
	f.emit(r)
	return r, nil
}
