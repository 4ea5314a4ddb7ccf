// Mutex-guarded filter for shared use.
//
// Filter itself does no locking. Guarded wraps one and holds a lock for the
// whole of each operation, from index derivation through counter mutation,
// so concurrent Insert and Delete calls cannot interleave and leave a
// counter below what its remaining members require. Mutations take the
// write lock; Check and the read accessors share the read lock. A Check
// still calls the observer, so an observer used with Guarded must be safe
// for concurrent calls.
package cbloom

import "sync"

// Guarded serialises access to a Filter.
type Guarded struct {
	mu sync.RWMutex
	f  *Filter
}

// NewGuarded wraps f. The caller must not use f directly afterwards.
func NewGuarded(f *Filter) *Guarded {
	return &Guarded{f: f}
}

// Insert adds item under the write lock.
func (g *Guarded) Insert(item string) Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Insert(item)
}

// InsertBatch inserts all items under a single write lock hold.
func (g *Guarded) InsertBatch(items ...string) []Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.InsertBatch(items...)
}

// Delete removes one occurrence of item under the write lock.
func (g *Guarded) Delete(item string) (Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Delete(item)
}

// Reset discards state and adopts new dimensions under the write lock.
func (g *Guarded) Reset(capacity, hashCount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Reset(capacity, hashCount)
}

// Check queries item under the read lock.
func (g *Guarded) Check(item string) Record {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.Check(item)
}

// Contains reports exact membership under the read lock.
func (g *Guarded) Contains(item string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.Contains(item)
}

// Len returns the member count under the read lock.
func (g *Guarded) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.Len()
}

// Counters returns a copy of the counter array.
func (g *Guarded) Counters() []uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.Counters()
}

// Members returns a copy of the member list.
func (g *Guarded) Members() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.Members()
}

// FilledCount returns the number of non-zero counters.
func (g *Guarded) FilledCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.FilledCount()
}

// FillRate returns the fraction of non-zero counters.
func (g *Guarded) FillRate() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.FillRate()
}

// EstimatedFalsePositiveRate returns the current estimate.
func (g *Guarded) EstimatedFalsePositiveRate() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.EstimatedFalsePositiveRate()
}

// Snapshot returns a consistent copy of the filter state.
func (g *Guarded) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.f.Snapshot()
}
