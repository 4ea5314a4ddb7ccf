// Membership query.
package cbloom

// Check reports whether item may be present. Matched is true only if every
// counter at the item's indices is non-zero; Missing lists the zero ones.
// FalsePositive is set when the filter matches an item that is not in the
// member set. Check never mutates the filter.
func (f *Filter) Check(item string) Record {
	pos := f.Indices(item)
	matched := f.counters.all(pos)

	r := Record{
		Op:            OpCheck,
		Input:         item,
		Indices:       pos,
		Counts:        f.counters.values(pos),
		Matched:       matched,
		FalsePositive: matched && !f.members.contains(item),
		Missing:       f.counters.missing(pos),
	}
	f.emit(r)
	return r
}
