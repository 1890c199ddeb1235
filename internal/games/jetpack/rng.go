package jetpack

import "math"

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG; every random decision of a run draws from one RNG so a
// seed fully replays a run.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

func (r *RNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
// Uses the high 53 bits; the low bits of an LCG have short periods.
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Range returns a random float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// Angle returns a random angle in [0, 2*pi).
func (r *RNG) Angle() float64 {
	return r.Range(0, 2*math.Pi)
}

// weighted is one entry of a discrete weighted table.
type weighted[T any] struct {
	value  T
	weight float64
}

// pickWeighted draws one value from table proportionally to its weight.
func pickWeighted[T any](r *RNG, table []weighted[T]) T {
	total := 0.0
	for _, w := range table {
		total += w.weight
	}
	roll := r.Float64() * total
	for _, w := range table {
		if roll < w.weight {
			return w.value
		}
		roll -= w.weight
	}
	return table[len(table)-1].value
}
