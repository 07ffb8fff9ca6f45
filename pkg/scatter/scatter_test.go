// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

package scatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valid8r/valid8r/pkg/ptr"
	"github.com/valid8r/valid8r/pkg/scatter"
	"github.com/valid8r/valid8r/pkg/stats"
	"github.com/valid8r/valid8r/pkg/valid8r"
)

func TestPerfectFit(t *testing.T) {
	v := &scatter.Validator[float64]{
		Expected: []float64{1, 2, 3, 4},
		Found:    []float64{1, 2, 3, 4},
		MinR2:    ptr.To(0.99),
	}
	o := v.Validate()
	require.NoError(t, o.Err)
	assert.Contains(t, o.Report, "Fit: 0.000 + 1.000x")
	assert.Contains(t, o.Report, "R2 = 1.000")
	assert.Contains(t, o.Report, "<svg")
}

func TestIntegerSamples(t *testing.T) {
	v := &scatter.Validator[int]{
		Expected: []int{1, 2, 3, 4},
		Found:    []int{2, 4, 6, 8},
	}
	o := v.Validate()
	require.NoError(t, o.Err)
	assert.Contains(t, o.Report, "Fit: 0.000 + 2.000x")
}

func TestR2Floor(t *testing.T) {
	v := &scatter.Validator[float64]{
		Expected: []float64{1, 2, 3, 4},
		Found:    []float64{6, 2, 1, 0},
		MinR2:    ptr.To(0.95),
	}
	o := v.Validate()
	require.Error(t, o.Err)
	var te valid8r.ThresholdError
	require.ErrorAs(t, o.Err, &te)
	assert.Equal(t, "R2", te.Metric)
	assert.InDelta(t, 0.8699, te.Value, 1e-3)
	assert.Contains(t, o.Report, "R2 = 0.870 | **Failed!**")
	assert.Contains(t, o.Report, "<svg")
}

func TestSlopeAndInterceptDeltas(t *testing.T) {
	// y = 2x: slope deviates from the implicit expected slope of 1.
	v := &scatter.Validator[float64]{
		Expected:      []float64{1, 2, 3, 4},
		Found:         []float64{2, 4, 6, 8},
		MaxSlopeDelta: ptr.To(0.5),
	}
	o := v.Validate()
	require.Error(t, o.Err)
	assert.Contains(t, o.Err.Error(), "slope delta")
	assert.Contains(t, o.Report, "**Failed!**")

	// With an explicit expected slope of 2, the same data passes.
	v.ExpectedSlope = ptr.To(2.0)
	assert.NoError(t, v.Validate().Err)

	// Intercept check against the default expected intercept of 0.
	v = &scatter.Validator[float64]{
		Expected:          []float64{1, 2, 3, 4},
		Found:             []float64{4, 5, 6, 7},
		MaxInterceptDelta: ptr.To(1.0),
	}
	o = v.Validate()
	require.Error(t, o.Err)
	assert.Contains(t, o.Err.Error(), "intercept delta")
}

func TestFlatFoundSampleFailsR2Floor(t *testing.T) {
	// A constant output sample leaves R2 undefined; an R2 floor must not
	// silently pass on it.
	v := &scatter.Validator[float64]{
		Expected: []float64{1, 2, 3, 4},
		Found:    []float64{5, 5, 5, 5},
		MinR2:    ptr.To(0.9),
	}
	o := v.Validate()
	require.Error(t, o.Err)
	assert.ErrorIs(t, o.Err, stats.ErrNaN)
	assert.NotEmpty(t, o.Report)
}

func TestInsufficientData(t *testing.T) {
	v := &scatter.Validator[float64]{Expected: []float64{1}, Found: []float64{1}}
	o := v.Validate()
	assert.ErrorIs(t, o.Err, stats.ErrInsufficientData)
	assert.NotEmpty(t, o.Report)

	v = &scatter.Validator[float64]{Expected: []float64{1, 2}, Found: []float64{1}}
	assert.ErrorIs(t, v.Validate().Err, stats.ErrShapeMismatch)
}
