// Package stats evaluates summary statistics over resampled draws.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrUnsupportedStatistic indicates an unknown statistic kind or a
	// quantile spec without a valid probability.
	ErrUnsupportedStatistic = errors.New("stats: unsupported statistic")
	// ErrNoValues indicates an evaluation over an empty slice.
	ErrNoValues = errors.New("stats: no values to evaluate")
)

// Kind enumerates the supported summary statistics. The set is closed:
// dispatch is a switch, not an open registry.
type Kind int

const (
	KindMedian Kind = iota
	KindMean
	KindIQR
	KindQuantile
)

// Spec selects a statistic to evaluate. Prob is only meaningful for
// KindQuantile. The zero value is a valid median spec.
type Spec struct {
	Kind Kind
	Prob float64
}

// Median selects the sample median.
func Median() Spec { return Spec{Kind: KindMedian} }

// Mean selects the arithmetic mean.
func Mean() Spec { return Spec{Kind: KindMean} }

// IQR selects the interquartile range, Quantile(0.75) - Quantile(0.25).
func IQR() Spec { return Spec{Kind: KindIQR} }

// Quantile selects the quantile at probability p in [0, 1].
func Quantile(p float64) Spec { return Spec{Kind: KindQuantile, Prob: p} }

// Name returns the tidy-table name of the statistic: "median", "mean",
// "iqr", or "q<prob>" such as "q0.25".
func (sp Spec) Name() string {
	switch sp.Kind {
	case KindMedian:
		return "median"
	case KindMean:
		return "mean"
	case KindIQR:
		return "iqr"
	case KindQuantile:
		return fmt.Sprintf("q%g", sp.Prob)
	default:
		return fmt.Sprintf("unknown(%d)", sp.Kind)
	}
}

// Validate reports whether the spec names a supported statistic.
func (sp Spec) Validate() error {
	switch sp.Kind {
	case KindMedian, KindMean, KindIQR:
		return nil
	case KindQuantile:
		// The negated form also rejects NaN.
		if !(sp.Prob >= 0 && sp.Prob <= 1) {
			return fmt.Errorf("%w: quantile probability %v outside [0, 1]", ErrUnsupportedStatistic, sp.Prob)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnsupportedStatistic, sp.Kind)
	}
}

// Evaluate applies the statistic to values. Quantile-based kinds use
// linear interpolation between order statistics (see QuantileOf); both
// orchestrator strategies share this rule, which is what makes their
// outputs comparable.
func (sp Spec) Evaluate(values []float64) (float64, error) {
	if err := sp.Validate(); err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrNoValues
	}

	switch sp.Kind {
	case KindMedian:
		return QuantileOf(values, 0.5), nil
	case KindMean:
		return stat.Mean(values, nil), nil
	case KindIQR:
		sorted := sortedCopy(values)
		return quantileSorted(sorted, 0.75) - quantileSorted(sorted, 0.25), nil
	default: // KindQuantile, Validate rejected everything else
		return QuantileOf(values, sp.Prob), nil
	}
}

// QuantileOf returns the quantile at probability p using linear
// interpolation between order statistics: with the values sorted and
// h = (n-1)p, the result is
//
//	x[floor(h)] + (h - floor(h)) * (x[floor(h)+1] - x[floor(h)])
//
// so QuantileOf([1 2 3 4], 0.25) = 1.75. The input is not modified.
func QuantileOf(values []float64, p float64) float64 {
	return quantileSorted(sortedCopy(values), p)
}

func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	lo := int(h)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
