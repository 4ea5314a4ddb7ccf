// Package cbloom provides an in-memory counting bloom filter. Each slot is
// a counter rather than a bit, so items can be deleted as well as inserted
// and queried.
//
// Every item maps to k counter positions derived by double hashing from two
// seeded FNV-1a values. Insert increments those counters, Delete decrements
// them (never below zero), and Check reports a match when all of them are
// non-zero. Each call returns a Record describing the indices touched and
// the outcome, which presentation layers can render or stream via Feed.
//
// The filter also keeps the exact multiset of inserted items. It is never
// consulted for membership decisions, only to flag false positives and to
// refuse deletes of items that were never inserted.
//
// A Filter is not safe for concurrent use. Wrap it in Guarded when several
// goroutines share one instance.
package cbloom

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to
// distinguish configuration mistakes (ErrInvalidConfig) from the
// recoverable ErrNotPresent returned by Delete.
var (
	ErrInvalidConfig   = errors.New("invalid filter configuration")
	ErrNotPresent      = errors.New("item not present")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	ErrCorruptRecord   = errors.New("corrupt record")
	ErrDecompress      = errors.New("decompression failed")
)
