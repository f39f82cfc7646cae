// Package dice provides the seeded random stream used by dungeon generation.
//
// Every draw goes through a single Stream so that a seed fully determines the
// sequence of decisions. Nothing in this package touches the global
// math/rand source.
package dice

import "math/rand"

// Stream is a deterministic random source seeded once.
type Stream struct {
	seed int64
	rng  *rand.Rand
}

// New creates a stream for the given seed.
func New(seed int64) *Stream {
	return &Stream{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n). Returns 0 when n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Range returns a value in [lo, hi], inclusive on both ends.
func (s *Stream) Range(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a value in [0.0, 1.0).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Coin reports true with probability one half.
func (s *Stream) Coin() bool {
	return s.rng.Intn(2) == 0
}

// Pick returns a uniformly chosen element. The second result is false for
// an empty slice, in which case no draw is made.
func Pick[T any](s *Stream, xs []T) (T, bool) {
	var zero T
	if len(xs) == 0 {
		return zero, false
	}
	return xs[s.rng.Intn(len(xs))], true
}

// Sample returns up to k distinct elements chosen without replacement, in
// draw order. The input slice is not modified.
func Sample[T any](s *Stream, xs []T, k int) []T {
	if k > len(xs) {
		k = len(xs)
	}
	if k <= 0 {
		return nil
	}
	pool := make([]T, len(xs))
	copy(pool, xs)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
