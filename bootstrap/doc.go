// Package bootstrap runs the moving-window m-out-of-n bootstrap over an
// irregularly sampled series and collects the tidy result table.
//
// A run slides a fixed-width window along a uniform age grid, resamples
// every window R times with the single common resample size
// m = min over windows of the window's observation count, and evaluates
// the requested statistics on each resample and on the full window.
// Using one m everywhere is the point of the design: it makes replicate
// spread comparable along the record instead of tracking local sampling
// density.
//
//	cfg := bootstrap.DefaultConfig()
//	cfg.WindowSize = 10
//	cfg.GridStep = 2
//	table, err := bootstrap.RunLoop(series, cfg)
//
// # Strategies
//
// RunVectorized and RunLoop implement the same contract two ways, which
// keeps each one honest: aggregated per grid point, their outputs must
// agree to within bootstrap noise.
//
//   - RunVectorized materializes each window's R draws as a batch from a
//     per-window random stream. With Config.Seed zero the streams come
//     from process entropy and runs differ; a nonzero Seed makes the run
//     repeatable as a whole.
//   - RunLoop iterates (window i, replicate t) cells, each drawn with
//     the collision-free derived seed resample.PairSeed(i, t). Loop runs
//     are bit-identical across repeats, platforms, and worker counts,
//     and any cell can be regenerated on its own.
//
// # Failure
//
// A run either completes or returns the first error; there is no
// partial output. Every failure is deterministic given the inputs
// (a too-narrow window, an impossible statistic), so callers fix the
// configuration and rerun rather than retry.
//
// # Concurrency
//
// Grid points are independent, so runs fan out across Config.Workers
// goroutines. Each worker reads the shared immutable series and writes a
// disjoint, index-derived region of the output slice; table content is
// identical whatever the schedule.
package bootstrap
