package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/geoboot/stats"
)

func TestQuantileInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	got, err := stats.Quantile(0.25).Evaluate(values)
	require.NoError(t, err)
	require.InDelta(t, 1.75, got, 1e-12)

	got, err = stats.Quantile(0.75).Evaluate(values)
	require.NoError(t, err)
	require.InDelta(t, 3.25, got, 1e-12)

	got, err = stats.Quantile(0).Evaluate(values)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	got, err = stats.Quantile(1).Evaluate(values)
	require.NoError(t, err)
	require.Equal(t, 4.0, got)
}

func TestQuantileUnsortedInput(t *testing.T) {
	got, err := stats.Quantile(0.25).Evaluate([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	require.InDelta(t, 1.75, got, 1e-12)
}

func TestQuantileMonotonic(t *testing.T) {
	values := []float64{2.5, -1, 7, 3, 3, 0.1, 12, -4, 6}
	q25, err := stats.Quantile(0.25).Evaluate(values)
	require.NoError(t, err)
	q75, err := stats.Quantile(0.75).Evaluate(values)
	require.NoError(t, err)
	require.LessOrEqual(t, q25, q75)
}

func TestMedian(t *testing.T) {
	got, err := stats.Median().Evaluate([]float64{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	got, err = stats.Median().Evaluate([]float64{1, 2, 3, 10})
	require.NoError(t, err)
	require.Equal(t, 2.5, got)

	got, err = stats.Median().Evaluate([]float64{5})
	require.NoError(t, err)
	require.Equal(t, 5.0, got)
}

func TestMean(t *testing.T) {
	got, err := stats.Mean().Evaluate([]float64{1, 2, 3, 10})
	require.NoError(t, err)
	require.InDelta(t, 4.0, got, 1e-12)
}

func TestIQR(t *testing.T) {
	got, err := stats.IQR().Evaluate([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.InDelta(t, 1.5, got, 1e-12) // 3.25 - 1.75

	// IQR of identical values is zero.
	got, err = stats.IQR().Evaluate([]float64{7, 7, 7})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestSpecNames(t *testing.T) {
	require.Equal(t, "median", stats.Median().Name())
	require.Equal(t, "mean", stats.Mean().Name())
	require.Equal(t, "iqr", stats.IQR().Name())
	require.Equal(t, "q0.25", stats.Quantile(0.25).Name())
	require.Equal(t, "q0.5", stats.Quantile(0.5).Name())
}

func TestUnsupportedStatistic(t *testing.T) {
	bad := stats.Spec{Kind: stats.Kind(99)}
	_, err := bad.Evaluate([]float64{1, 2})
	require.True(t, errors.Is(err, stats.ErrUnsupportedStatistic))

	_, err = stats.Quantile(1.5).Evaluate([]float64{1, 2})
	require.True(t, errors.Is(err, stats.ErrUnsupportedStatistic))

	_, err = stats.Quantile(-0.1).Evaluate([]float64{1, 2})
	require.True(t, errors.Is(err, stats.ErrUnsupportedStatistic))

	_, err = stats.Quantile(math.NaN()).Evaluate([]float64{1, 2})
	require.Error(t, err)
}

func TestEvaluateEmpty(t *testing.T) {
	_, err := stats.Median().Evaluate(nil)
	require.True(t, errors.Is(err, stats.ErrNoValues))
}

func TestMedianMatchesHalfQuantile(t *testing.T) {
	values := []float64{0.4, 9, -2, 3.3, 5, 5, 1}
	med, err := stats.Median().Evaluate(values)
	require.NoError(t, err)
	q50, err := stats.Quantile(0.5).Evaluate(values)
	require.NoError(t, err)
	require.Equal(t, med, q50)
}
