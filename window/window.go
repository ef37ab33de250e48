package window

import (
	"fmt"

	"github.com/sartorproj/geoboot/timeseries"
)

// Window is the set of observation values whose ages fall within a
// fixed-width interval centered on a grid point. Windows are derived
// views; they are recomputed from the series and never stored.
type Window struct {
	Center float64
	Values []float64
}

// N returns the number of member observations.
func (w Window) N() int {
	return len(w.Values)
}

// Members selects the observations with age in the closed interval
// [center-width/2, center+width/2]. A window with zero members is legal
// here; MinCount rejects it when the common resample size is resolved.
func Members(s *timeseries.Series, center, width float64) Window {
	half := width / 2
	return Window{
		Center: center,
		Values: s.ValuesBetween(center-half, center+half),
	}
}

// Slice builds the window for every grid point.
func Slice(s *timeseries.Series, grid []float64, width float64) ([]Window, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: window width %v must be positive", ErrInvalidConfig, width)
	}

	windows := make([]Window, len(grid))
	for i, center := range grid {
		windows[i] = Members(s, center, width)
	}
	return windows, nil
}

// MinCount resolves the common resample size m: the smallest member
// count across all windows, computed in one traversal. Every window is
// later resampled with this single m, so that replicate spread reflects
// the record rather than local sampling density. A zero-member window is
// surfaced as ErrInsufficientData, never folded into m.
func MinCount(windows []Window) (int, error) {
	if len(windows) == 0 {
		return 0, fmt.Errorf("%w: no windows", ErrInsufficientData)
	}

	m := windows[0].N()
	for _, w := range windows {
		if w.N() == 0 {
			return 0, fmt.Errorf("%w: window centered at %v", ErrInsufficientData, w.Center)
		}
		if w.N() < m {
			m = w.N()
		}
	}
	return m, nil
}
