// Fill statistics and false-positive estimation.
//
// EstimateFalsePositiveRate uses the asymptotic approximation
// (1 - e^(-kn/m))^k, which is what the filter reports. The exact
// combinatorial form (1 - (1 - 1/m)^(kn))^k is available separately as
// ExactFalsePositiveRate for comparison; the two converge as m grows.
package cbloom

import "math"

// FilledCount returns the number of counters greater than zero.
func (f *Filter) FilledCount() int {
	return f.counters.filled()
}

// FillRate returns FilledCount divided by capacity.
func (f *Filter) FillRate() float64 {
	return float64(f.counters.filled()) / float64(f.m)
}

// EstimatedFalsePositiveRate returns the approximate false-positive
// probability for the current number of members, duplicates included.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.Len())
}

// ApproximateCount estimates the number of distinct insertions from the
// fill rate: -m/k * ln(1 - X/m) where X is the filled count.
func (f *Filter) ApproximateCount() float64 {
	x := f.counters.filled()
	if x == 0 {
		return 0
	}
	// full filter: ln(0) is undefined
	if x >= f.m {
		x = f.m - 1
	}

	m := float64(f.m)
	k := float64(f.k)
	return -m / k * math.Log(1-float64(x)/m)
}

// EstimateFalsePositiveRate returns (1 - e^(-k*n/m))^k for m slots, k
// positions and n inserted items. It is 0 for n <= 0 and non-decreasing
// in n.
func EstimateFalsePositiveRate(m, k, n int) float64 {
	if n <= 0 || m < 1 || k < 1 {
		return 0
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(n)/float64(m)), kf)
}

// ExactFalsePositiveRate returns (1 - (1 - 1/m)^(k*n))^k.
func ExactFalsePositiveRate(m, k, n int) float64 {
	if n <= 0 || m < 1 || k < 1 {
		return 0
	}
	kf := float64(k)
	return math.Pow(1-math.Pow(1-1/float64(m), kf*float64(n)), kf)
}
