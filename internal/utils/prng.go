// internal/utils/prng.go
package utils

import (
	"cake-defense/internal/defs"
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand generator so that every random draw
// in the simulation comes from one reproducible stream.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the stream was started from.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Reset rewinds the stream to its initial seed.
func (s *PRNGService) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Signed returns (r - 0.5) * scale, i.e. a value in [-scale/2, scale/2).
func (s *PRNGService) Signed(scale float64) float64 {
	return (s.rng.Float64() - 0.5) * scale
}

// ChooseWeighted picks an ant kind from a spawn table proportionally to the
// entry weights. An empty or zero-weight table yields a worker.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) defs.AntKind {
	if len(entries) == 0 {
		return defs.AntWorker
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Kind
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Kind
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Kind
}

// SeededRandom returns a Park-Miller generator producing values in [0, 1).
// Used for cosmetic layouts that must look the same on every frame.
func SeededRandom(seed int64) func() float64 {
	value := seed % 2147483647
	if value <= 0 {
		value += 2147483646
	}
	return func() float64 {
		value = (value * 16807) % 2147483647
		return float64(value-1) / 2147483646
	}
}
