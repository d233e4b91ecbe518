package engine

import "math/rand"

// RNG wraps math/rand.Rand with deterministic position tracking. Every
// random draw (thief movement, theft, counter-stab, grue) goes through
// one injected RNG, so a fixed seed replays an exact event sequence.
// Position increments with every call, enabling save/restore.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a random integer in [1, sides]. Every draw consumes
// exactly one value from the source, so RestoreRNG can replay the
// stream by position alone. The modulo bias is irrelevant at dice
// sizes.
func (r *RNG) Roll(sides int) int {
	r.pos++
	return int(r.src.Int63()%int64(sides)) + 1
}

// Chance returns true with the given percent probability.
func (r *RNG) Chance(percent int) bool {
	return r.Roll(100) <= percent
}

// OneIn returns true with probability 1/n.
func (r *RNG) OneIn(n int) bool {
	return r.Roll(n) == 1
}

// Pick returns a random index in [0, n).
func (r *RNG) Pick(n int) int {
	r.pos++
	return int(r.src.Int63() % int64(n))
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 { return r.pos }

// RestoreRNG creates an RNG and advances it to the given position,
// reproducing the exact stream state recorded in a save.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.src.Int63()
	}
	rng.pos = position
	return rng
}
