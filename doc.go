// Package geoboot provides a moving-window m-out-of-n bootstrap for
// irregularly sampled time series.
//
// Geoboot estimates robust measures of location and spread (median,
// quartiles, arbitrary quantiles) along a noisy, unevenly sampled proxy
// record, such as a geochemical isotope curve, by sliding a
// fixed-width window along a uniform age grid and bootstrapping each
// window's observations. Because sampling density varies along such
// records, every window is resampled with the same resample size m,
// the smallest observation count found in any window, so that the
// replicate spread is comparable across the whole series rather than an
// artifact of local data density.
//
// # Quick Start
//
// Load a record and bootstrap it:
//
//	series, _ := timeseries.LoadCSV("record.csv", nil)
//	cfg := bootstrap.DefaultConfig()
//	cfg.WindowSize = 10 // age units
//	cfg.GridStep = 2
//	table, _ := bootstrap.RunLoop(series, cfg)
//	for _, s := range table.Summaries() {
//	    fmt.Printf("%.1f %s observed=%.3f\n", s.Age, s.Stat, s.Observed)
//	}
//
// Two orchestrator strategies produce the same statistics: RunVectorized
// materializes all replicate draws per window at once, while RunLoop
// iterates (window, replicate) cells with a derived deterministic seed
// per cell, so a loop run is exactly reproducible and any single cell of
// the result table can be regenerated in isolation. Agreement between
// the two is the library's built-in cross-validation.
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: age-ordered observation storage and CSV loading
//   - window: uniform grid construction and window membership
//   - resample: with-replacement draws and deterministic seed derivation
//   - stats: summary-statistic kinds and evaluation
//   - bootstrap: the orchestrator, result table, and summary views
//
// # References
//
//   - Bickel, P.J., Götze, F., & van Zwet, W.R. (1997). Resampling fewer
//     than n observations: gains, losses, and remedies for losses
//   - Efron, B., & Tibshirani, R.J. (1993). An Introduction to the Bootstrap
package geoboot
