// Package timeseries provides storage for irregularly sampled observations.
package timeseries

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Series represents an irregularly sampled record as parallel slices of
// ages and values, kept sorted ascending by age. Duplicate ages are legal
// and represent distinct samples at the same nominal time. A Series is
// treated as immutable once constructed.
type Series struct {
	Ages   []float64
	Values []float64
	Name   string
}

// New creates a series from ages and values. The input is copied and
// sorted ascending by age; the sort is stable, so samples sharing an age
// keep their input order.
func New(ages, values []float64) (*Series, error) {
	if len(ages) != len(values) {
		return nil, errors.New("timeseries: ages and values must have the same length")
	}

	idx := make([]int, len(ages))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ages[idx[a]] < ages[idx[b]]
	})

	s := &Series{
		Ages:   make([]float64, len(ages)),
		Values: make([]float64, len(values)),
	}
	for i, j := range idx {
		s.Ages[i] = ages[j]
		s.Values[i] = values[j]
	}
	return s, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// AgeMin returns the smallest age in the series.
func (s *Series) AgeMin() float64 {
	if len(s.Ages) == 0 {
		return math.NaN()
	}
	return s.Ages[0]
}

// AgeMax returns the largest age in the series.
func (s *Series) AgeMax() float64 {
	if len(s.Ages) == 0 {
		return math.NaN()
	}
	return s.Ages[len(s.Ages)-1]
}

// Mean calculates the arithmetic mean of the values.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return stat.Mean(s.Values, nil)
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// ValuesBetween returns a copy of the values whose ages fall in the
// closed interval [lo, hi]. The result may be empty.
func (s *Series) ValuesBetween(lo, hi float64) []float64 {
	if lo > hi || len(s.Ages) == 0 {
		return nil
	}
	// First index with age >= lo.
	start := sort.SearchFloat64s(s.Ages, lo)
	// First index with age > hi.
	end := sort.Search(len(s.Ages), func(i int) bool { return s.Ages[i] > hi })
	if start >= end {
		return nil
	}

	out := make([]float64, end-start)
	copy(out, s.Values[start:end])
	return out
}

// CountBetween returns the number of observations whose ages fall in the
// closed interval [lo, hi].
func (s *Series) CountBetween(lo, hi float64) int {
	if lo > hi || len(s.Ages) == 0 {
		return 0
	}
	start := sort.SearchFloat64s(s.Ages, lo)
	end := sort.Search(len(s.Ages), func(i int) bool { return s.Ages[i] > hi })
	if start >= end {
		return 0
	}
	return end - start
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	ages := make([]float64, len(s.Ages))
	copy(ages, s.Ages)

	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Ages:   ages,
		Values: values,
		Name:   s.Name,
	}
}
