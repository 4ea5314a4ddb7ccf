// Read-only snapshots of filter state.
//
// A Snapshot copies everything a presentation layer needs to redraw the
// filter: dimensions, every counter, the member list and the derived
// statistics. It is a one-way export. Nothing in this package rebuilds a
// Filter from a snapshot.
package cbloom

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Snapshot is a point-in-time copy of a filter's state.
type Snapshot struct {
	Capacity          int      `json:"m"`        // Counter slots
	HashCount         int      `json:"k"`        // Positions per item
	Algorithm         int      `json:"alg"`      // Hash algorithm (1=xxHash3, 2=FNV1a, 3=Blake2b)
	Counters          []uint32 `json:"counters"` // All counter values, index order
	Members           []string `json:"members"`  // Inserted items, insertion order
	Filled            int      `json:"filled"`   // Non-zero counters
	FillRate          float64  `json:"fillRate"`
	FalsePositiveRate float64  `json:"fpRate"` // Asymptotic estimate
}

// Snapshot returns a copy of the filter's current state.
func (f *Filter) Snapshot() Snapshot {
	mem := f.Members()
	if mem == nil {
		mem = []string{}
	}
	return Snapshot{
		Capacity:          f.m,
		HashCount:         f.k,
		Algorithm:         f.config.HashAlgorithm,
		Counters:          f.Counters(),
		Members:           mem,
		Filled:            f.FilledCount(),
		FillRate:          f.FillRate(),
		FalsePositiveRate: f.EstimatedFalsePositiveRate(),
	}
}

// Encode serialises the snapshot to JSON.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses JSON produced by Encode. It returns
// ErrCorruptSnapshot if the data is malformed or the counter array does
// not match the declared capacity.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if s.Capacity < 1 || s.HashCount < 1 {
		return nil, fmt.Errorf("%w: m=%d k=%d", ErrCorruptSnapshot, s.Capacity, s.HashCount)
	}
	if len(s.Counters) != s.Capacity {
		return nil, fmt.Errorf("%w: %d counters for m=%d", ErrCorruptSnapshot, len(s.Counters), s.Capacity)
	}
	return &s, nil
}
