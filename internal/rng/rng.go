package rng

import (
	"math"
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a reproducible generator, two generators with the same seed produce the same numbers
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// NewSeeded returns a generator for the seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// NextSeed returns a positive shuffle seed drawn from g
func NextSeed(g Generator) int64 {
	return int64(g.Intn(math.MaxInt32)) + 1
}
