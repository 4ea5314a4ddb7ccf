// Core filter type and lifecycle operations.
//
// Filter owns the counter array and the member multiset. It is created with
// a fixed (capacity, hashCount) and never resized; Reset discards all state
// and starts over with new dimensions.
package cbloom

// Config holds filter options. Zero values take defaults.
type Config struct {
	HashAlgorithm int          // 1=xxHash3, 2=FNV1a (default), 3=Blake2b
	Observer      func(Record) // Called after every successful operation
}

// Filter is a counting bloom filter. It is not safe for concurrent use.
type Filter struct {
	m        int       // Number of counter slots
	k        int       // Positions per item
	config   Config    // Configuration
	counters *counters // Slot counts
	members  *members  // Ground truth
}

// New creates an empty filter with capacity slots and hashCount positions
// per item. It returns ErrInvalidConfig if capacity < 1, hashCount is
// outside [1, MaxHashCount], or the hash algorithm is unknown.
func New(capacity, hashCount int, config Config) (*Filter, error) {
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgFNV1a
	}
	if err := validate(capacity, hashCount, config.HashAlgorithm); err != nil {
		return nil, err
	}
	return &Filter{
		m:        capacity,
		k:        hashCount,
		config:   config,
		counters: newCounters(capacity),
		members:  newMembers(),
	}, nil
}

// Reset discards all counters and members and adopts the new dimensions.
// Arguments are validated first; on error the filter is unchanged. The
// hash algorithm and observer carry over.
func (f *Filter) Reset(capacity, hashCount int) error {
	if err := validate(capacity, hashCount, f.config.HashAlgorithm); err != nil {
		return err
	}
	f.m = capacity
	f.k = hashCount
	f.counters = newCounters(capacity)
	f.members = newMembers()
	return nil
}

// Capacity returns the number of counter slots, m.
func (f *Filter) Capacity() int { return f.m }

// HashCount returns the number of positions per item, k.
func (f *Filter) HashCount() int { return f.k }

// Algorithm returns the base-hash algorithm in use.
func (f *Filter) Algorithm() int { return f.config.HashAlgorithm }

// Counters returns a copy of the counter array.
func (f *Filter) Counters() []uint32 {
	return f.counters.snapshot()
}

// Indices returns the k positions for item under this filter's
// configuration.
func (f *Filter) Indices(item string) []int {
	return indices(item, f.m, f.k, f.config.HashAlgorithm)
}

// emit hands r to the observer, if any.
func (f *Filter) emit(r Record) {
	if f.config.Observer != nil {
		f.config.Observer(r)
	}
}
