// Package window derives the uniform grid and per-grid-point window
// membership that the bootstrap slides along a series.
//
// A grid is the ordered sequence minAge, minAge+step, ... up to the last
// point not exceeding maxAge. Each grid point defines a window: the
// observations whose ages fall in the closed interval
// [center-width/2, center+width/2]. Window sizes vary with sampling
// density; MinCount reduces them to the single common resample size m
// used for every window.
//
//	grid, err := window.BuildGrid(s.AgeMin(), s.AgeMax(), 2.0)
//	windows, err := window.Slice(s, grid, 10.0)
//	m, err := window.MinCount(windows)
//
// MinCount fails with ErrInsufficientData if any window is empty:
// an m of zero would be meaningless, and silently skipping sparse
// windows would break the comparability the common m exists to provide.
// The fix is a wider window or a coarser grid, not a smaller m.
package window
