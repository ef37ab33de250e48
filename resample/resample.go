// Package resample draws bootstrap resamples with replacement.
package resample

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

var (
	// ErrEmptyPopulation indicates a draw from an empty population.
	ErrEmptyPopulation = errors.New("resample: population must not be empty")
	// ErrInvalidSize indicates a non-positive draw size.
	ErrInvalidSize = errors.New("resample: draw size must be positive")
)

// Draw returns size elements picked independently and uniformly at
// random from population, with replacement: the same element may appear
// more than once and size may exceed len(population). When rng is nil a
// fresh entropy-seeded source is used.
func Draw(population []float64, size int, rng *rand.Rand) ([]float64, error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(EntropySeed()))
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = population[rng.Intn(len(population))]
	}
	return out, nil
}

// DrawSeeded is Draw with a deterministic source: identical
// (population, size, seed) inputs yield identical output, independent of
// prior calls, platform, or goroutine. This is what lets the loop
// strategy regenerate any single (window, replicate) cell in isolation.
func DrawSeeded(population []float64, size int, seed uint64) ([]float64, error) {
	return Draw(population, size, rand.New(rand.NewSource(seed)))
}
