// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valid8r/valid8r/pkg/stats"
)

func TestMean(t *testing.T) {
	m, err := stats.Mean([]float64{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	m, err = stats.Mean([]float64{-1, -1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	// Constant sample: mean is the constant.
	m, err = stats.Mean([]int{7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, m)

	_, err = stats.Mean([]float64{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

func TestMinMax(t *testing.T) {
	min, max, err := stats.MinMax([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 5.0, max)

	min, max, err = stats.MinMax([]int{3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, min)
	assert.Equal(t, 3.0, max)

	_, _, err = stats.MinMax([]float64{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)

	_, _, err = stats.MinMax([]float64{1, math.NaN(), 3})
	assert.ErrorIs(t, err, stats.ErrNaN)
}

func TestRMSE(t *testing.T) {
	// Constant offset of 1 gives RMSE 1 regardless of sign.
	rmse, err := stats.RMSE([]float64{0, 0, 0, 0}, []float64{-1, -1, 1, 1})
	require.NoError(t, err)
	assert.True(t, stats.Close(1, rmse), "got %v", rmse)

	// Identical series have zero error.
	e := []float64{3, 1, 4, 1, 5}
	rmse, err = stats.RMSE(e, e)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rmse)

	rmse, err = stats.RMSE([]float64{1, 2, 3}, []float64{5, 6, 6})
	require.NoError(t, err)
	assert.True(t, stats.CloseTol(math.Sqrt(41.0/3.0), rmse, 1e-12), "got %v", rmse)

	_, err = stats.RMSE([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrShapeMismatch)
	_, err = stats.RMSE([]float64{}, []float64{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.RMSE([]float64{math.NaN()}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrNaN)
}

func TestMBE(t *testing.T) {
	// Errors of opposite sign cancel out.
	mbe, err := stats.MBE([]float64{0, 0, 0, 0}, []float64{-1, -1, 1, 1})
	require.NoError(t, err)
	assert.True(t, stats.Close(0, mbe), "got %v", mbe)

	e := []float64{3, 1, 4, 1, 5}
	mbe, err = stats.MBE(e, e)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mbe)

	// Positive sign means found overshoots expected.
	mbe, err = stats.MBE([]float64{1, 2, 3}, []float64{5, 6, 6})
	require.NoError(t, err)
	assert.True(t, stats.CloseTol(11.0/3.0, mbe, 1e-12), "got %v", mbe)

	_, err = stats.MBE([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrShapeMismatch)
}

func TestLinearFit(t *testing.T) {
	// Perfect fit y = x.
	x := []float64{1, 2, 3, 4}
	fit, err := stats.LinearFit(x, x)
	require.NoError(t, err)
	assert.True(t, stats.Close(0, fit.Intercept))
	assert.True(t, stats.Close(1, fit.Slope))
	assert.True(t, stats.Close(1, fit.R2))

	// Perfect fit y = 3x - 2.
	y := []float64{1, 4, 7, 10}
	fit, err = stats.LinearFit(x, y)
	require.NoError(t, err)
	assert.True(t, stats.Close(-2, fit.Intercept), "got %v", fit.Intercept)
	assert.True(t, stats.Close(3, fit.Slope), "got %v", fit.Slope)
	assert.True(t, stats.Close(1, fit.R2), "got %v", fit.R2)

	// Not so perfect fit.
	fit, err = stats.LinearFit([]float64{1, 2, 3, 4}, []float64{6, 2, 1, 0})
	require.NoError(t, err)
	assert.True(t, stats.Close(7, fit.Intercept), "got %v", fit.Intercept)
	assert.True(t, stats.Close(-1.9, fit.Slope), "got %v", fit.Slope)
	assert.True(t, stats.CloseTol(0.8699, fit.R2, 1e-3), "got %v", fit.R2)

	_, err = stats.LinearFit([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrShapeMismatch)
	_, err = stats.LinearFit([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrInsufficientData)
	// A vertical cloud has no defined slope.
	_, err = stats.LinearFit([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, stats.ErrNaN)
	// A flat y sample has no defined R2.
	_, err = stats.LinearFit([]float64{1, 2, 3, 4}, []float64{5, 5, 5, 5})
	assert.ErrorIs(t, err, stats.ErrNaN)
}

func TestClose(t *testing.T) {
	assert.True(t, stats.CloseTol(1, 1.01, 0.1))
	assert.True(t, stats.Close(1, 1.0000001))
	assert.False(t, stats.Close(1, 1.01))
	assert.True(t, stats.NotCloseTol(1, 21, 1))
	assert.False(t, stats.NotClose(1, 1))

	assert.Panics(t, func() { stats.MustClose(1, 2, 0.2) })
	assert.NotPanics(t, func() { stats.MustClose(1, 2, 2) })
	assert.Panics(t, func() { stats.MustNotClose(1, 1, 0.1) })
	assert.NotPanics(t, func() { stats.MustNotClose(1, 21, 1) })
}
