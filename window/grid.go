package window

import (
	"fmt"
	"math"
)

// BuildGrid returns the evenly spaced window centers
// minAge, minAge+step, ..., up to and including the last point that does
// not exceed maxAge. Points are computed as minAge + i*step rather than
// accumulated, so long grids do not drift.
func BuildGrid(minAge, maxAge, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("%w: step %v must be positive", ErrInvalidConfig, step)
	}
	if minAge > maxAge || math.IsNaN(minAge) || math.IsNaN(maxAge) {
		return nil, fmt.Errorf("%w: age range [%v, %v]", ErrInvalidConfig, minAge, maxAge)
	}

	n := int(math.Floor((maxAge-minAge)/step)) + 1
	// Floor can land one short or one long at representation boundaries.
	for minAge+float64(n)*step <= maxAge {
		n++
	}
	for n > 1 && minAge+float64(n-1)*step > maxAge {
		n--
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = minAge + float64(i)*step
	}
	return grid, nil
}
