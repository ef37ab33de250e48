// Package stats provides the summary statistics evaluated over
// bootstrap replicates.
//
// A Spec names a statistic; Evaluate applies it to a slice of values:
//
//	v, err := stats.Quantile(0.25).Evaluate(draw)
//	v, err := stats.Median().Evaluate(draw)
//
// Supported kinds are median, mean, interquartile range, and arbitrary
// quantiles. The kind set is closed; an unknown kind or a quantile
// probability outside [0, 1] fails with ErrUnsupportedStatistic.
//
// # Quantile Rule
//
// All quantile-based statistics interpolate linearly between order
// statistics (the rule documented on QuantileOf). Every consumer of the
// result table compares replicate distributions across strategies, so
// a single shared interpolation rule is part of the contract, not an
// implementation detail.
package stats
