// Hash-index derivation.
//
// An item is reduced to two 32-bit base hashes h1 and h2, then expanded to
// k positions with index_i = (h1 + i*h2) mod m. All arithmetic is uint32
// with wraparound so the sequence is bit-exact across platforms.
//
// The reference base pair is FNV-1a run twice with different seeds over the
// item's UTF-16 code units. Two alternatives are selectable via
// Config.HashAlgorithm; they change only how h1 and h2 are produced.
package cbloom

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Fastest, not reference-compatible
	AlgFNV1a   = 2 // Default, reference scheme
	AlgBlake2b = 3 // Best distribution
)

// MaxHashCount caps k to keep index generation bounded.
const MaxHashCount = 32

// FNV-1a parameters and the two seeds used for double hashing.
const (
	fnvOffset = 2166136261
	fnvPrime  = 16777619

	SeedPrimary   uint32 = 0x811c9dc5
	SeedSecondary uint32 = 0x9e3779b9
)

// fnv1a hashes the UTF-16 code units of s starting from fnvOffset^seed.
// Note that SeedPrimary equals the offset basis, so h1 starts from zero.
func fnv1a(s string, seed uint32) uint32 {
	h := uint32(fnvOffset) ^ seed
	for _, u := range utf16.Encode([]rune(s)) {
		h ^= uint32(u)
		h *= fnvPrime
	}
	return h
}

// pair returns the two base hashes for item under alg. ok is false for an
// unknown algorithm.
func pair(item string, alg int) (h1, h2 uint32, ok bool) {
	switch alg {
	case AlgFNV1a:
		return fnv1a(item, SeedPrimary), fnv1a(item, SeedSecondary), true
	case AlgXXHash3:
		v := xxh3.HashString(item)
		return uint32(v), uint32(v >> 32), true
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = two uint32 halves
		h.Write([]byte(item))
		sum := h.Sum(nil)
		return binary.BigEndian.Uint32(sum[0:4]), binary.BigEndian.Uint32(sum[4:8]), true
	default:
		return 0, 0, false
	}
}

// indices expands the base pair into k positions in [0, m). The caller
// guarantees m >= 1 and a known algorithm.
func indices(item string, m, k, alg int) []int {
	h1, h2, _ := pair(item, alg)
	out := make([]int, k)
	for i := range k {
		combined := h1 + uint32(i)*h2
		out[i] = int(combined % uint32(m))
	}
	return out
}

// validate checks capacity, hash count and algorithm.
func validate(capacity, hashCount, alg int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: capacity %d < 1", ErrInvalidConfig, capacity)
	}
	if uint64(capacity) > uint64(^uint32(0)) {
		return fmt.Errorf("%w: capacity %d exceeds uint32 range", ErrInvalidConfig, capacity)
	}
	if hashCount < 1 {
		return fmt.Errorf("%w: hash count %d < 1", ErrInvalidConfig, hashCount)
	}
	if hashCount > MaxHashCount {
		return fmt.Errorf("%w: hash count %d > %d", ErrInvalidConfig, hashCount, MaxHashCount)
	}
	if _, _, ok := pair("", alg); !ok {
		return fmt.Errorf("%w: unknown hash algorithm %d", ErrInvalidConfig, alg)
	}
	return nil
}

// HashIndices returns the hashCount positions in [0, capacity) for item
// using the reference FNV-1a double-hashing scheme. The result is a pure
// function of its arguments. Positions need not be distinct.
func HashIndices(item string, capacity, hashCount int) ([]int, error) {
	if err := validate(capacity, hashCount, AlgFNV1a); err != nil {
		return nil, err
	}
	return indices(item, capacity, hashCount, AlgFNV1a), nil
}
