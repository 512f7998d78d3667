package core

import "sort"

// ValueFunction maps state hashes to expected utilities. The solver replaces
// the whole map on every sweep rather than updating it in place; a snapshot
// handed to an observer or returned from a solve is never mutated again.
type ValueFunction map[string]float64

func (v ValueFunction) Copy() ValueFunction {
	out := make(ValueFunction, len(v))
	for s, val := range v {
		out[s] = val
	}
	return out
}

// Expected computes the expectation of v under the distribution. Successors
// missing from v contribute zero. Summation runs in sorted hash order so the
// result is identical across runs regardless of map iteration order.
func (d Distribution) Expected(v ValueFunction) float64 {
	hashes := make([]string, 0, len(d))
	for h := range d {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	expected := 0.0
	for _, h := range hashes {
		expected += d[h] * v[h]
	}
	return expected
}

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	hashes := make([]string, 0, len(d))
	for h := range d {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	sum := 0.0
	for _, h := range hashes {
		sum += d[h]
	}
	return sum
}

// Policy maps state hashes to the greedy action. It is written once, after
// convergence, and read-only afterwards.
type Policy map[string]Action

func (p Policy) Copy() Policy {
	out := make(Policy, len(p))
	for s, a := range p {
		out[s] = a
	}
	return out
}
