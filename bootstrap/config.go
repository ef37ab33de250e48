package bootstrap

import (
	"errors"
	"fmt"

	"github.com/sartorproj/geoboot/stats"
)

// ErrInvalidConfig indicates a configuration that cannot produce a run:
// non-positive window size, grid step, or replicate count, no statistics
// requested, or an empty series.
var ErrInvalidConfig = errors.New("bootstrap: invalid configuration")

// Config holds configuration for a bootstrap run.
//
// WindowSize and GridStep are in the age units of the series and carry
// no usable defaults; DefaultConfig leaves them zero and Validate
// rejects them until the caller chooses values for the record at hand.
type Config struct {
	WindowSize float64      // Full window width, age units
	GridStep   float64      // Spacing between window centers, age units
	Replicates int          // R, resamples per window (default: 1000)
	Stats      []stats.Spec // Statistics to evaluate (default: median, q0.25, q0.75)
	Workers    int          // Parallel workers; <=0 means GOMAXPROCS
	Seed       uint64       // Vectorized-strategy base seed; 0 means process entropy
}

// DefaultConfig returns the default bootstrap configuration.
func DefaultConfig() *Config {
	return &Config{
		Replicates: 1000,
		Stats: []stats.Spec{
			stats.Median(),
			stats.Quantile(0.25),
			stats.Quantile(0.75),
		},
	}
}

// Validate checks the configuration, including every requested
// statistic spec.
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: window size %v must be positive", ErrInvalidConfig, c.WindowSize)
	}
	if c.GridStep <= 0 {
		return fmt.Errorf("%w: grid step %v must be positive", ErrInvalidConfig, c.GridStep)
	}
	if c.Replicates <= 0 {
		return fmt.Errorf("%w: replicate count %d must be positive", ErrInvalidConfig, c.Replicates)
	}
	if len(c.Stats) == 0 {
		return fmt.Errorf("%w: no statistics requested", ErrInvalidConfig)
	}
	for _, sp := range c.Stats {
		if err := sp.Validate(); err != nil {
			return err
		}
	}
	return nil
}
