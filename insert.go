// Item insertion.
//
// Insert is unconditional: every call increments the item's k counters and
// appends one member entry, so repeated inserts of the same value model
// multiplicity. InsertBatch applies Insert to each item in slice order.
package cbloom

// Insert adds item to the filter and returns the resulting Record. Counts
// holds each index's counter value after the increment.
func (f *Filter) Insert(item string) Record {
	pos := f.Indices(item)
	f.counters.inc(pos)
	f.members.add(item)

	r := Record{
		Op:      OpInsert,
		Input:   item,
		Indices: pos,
		Counts:  f.counters.values(pos),
		Matched: true,
	}
	f.emit(r)
	return r
}

// InsertBatch inserts items in order and returns one Record per item.
func (f *Filter) InsertBatch(items ...string) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, f.Insert(item))
	}
	return out
}
