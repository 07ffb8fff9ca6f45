// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package scatter validates paired observations by fitting found = a + b*expected
// with ordinary least squares and checking the fit against configured bounds.
package scatter

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/valid8r/valid8r/pkg/chart"
	"github.com/valid8r/valid8r/pkg/ptr"
	"github.com/valid8r/valid8r/pkg/stats"
	"github.com/valid8r/valid8r/pkg/valid8r"
)

// Validator plots Found against Expected and judges the linear fit.
// A perfect result has slope 1, intercept 0 and R2 of 1.
type Validator[T stats.Number] struct {
	Expected, Found []T

	// MinR2 fails the validation if the fit's R2 is below it.
	MinR2 *float64
	// MaxSlopeDelta fails the validation if the fitted slope deviates from
	// ExpectedSlope by more than this. ExpectedSlope defaults to 1.
	MaxSlopeDelta *float64
	ExpectedSlope *float64
	// MaxInterceptDelta is the same check for the intercept, which
	// defaults to 0.
	MaxInterceptDelta *float64
	ExpectedIntercept *float64

	// Chart metadata, all optional.
	Title          string
	Units          string
	ExpectedLegend string
	FoundLegend    string
}

var _ valid8r.Validator = &Validator[float64]{}

func (v *Validator[T]) Validate() valid8r.Outcome {
	fit, err := stats.LinearFit(v.Expected, v.Found)
	if err != nil {
		return valid8r.Fail(err, fmt.Sprintf(" * Cannot fit series: %v", err))
	}

	var errs []error
	fitMsg := fmt.Sprintf(" * Fit: %.3f + %.3fx", fit.Intercept, fit.Slope)
	r2Msg := fmt.Sprintf(" * R2 = %.3f", fit.R2)
	if v.MinR2 != nil && fit.R2 < *v.MinR2 {
		errs = append(errs, valid8r.ThresholdError{Metric: "R2", Value: fit.R2, Bound: *v.MinR2})
		r2Msg += " | **Failed!**"
	}
	wantSlope := ptr.Or(v.ExpectedSlope, 1)
	if v.MaxSlopeDelta != nil && math.Abs(fit.Slope-wantSlope) > *v.MaxSlopeDelta {
		errs = append(errs, valid8r.ThresholdError{Metric: "slope delta", Value: math.Abs(fit.Slope - wantSlope), Bound: *v.MaxSlopeDelta})
		fitMsg += " | **Failed!**"
	}
	wantIntercept := ptr.Or(v.ExpectedIntercept, 0)
	if v.MaxInterceptDelta != nil && math.Abs(fit.Intercept-wantIntercept) > *v.MaxInterceptDelta {
		errs = append(errs, valid8r.ThresholdError{Metric: "intercept delta", Value: math.Abs(fit.Intercept - wantIntercept), Bound: *v.MaxInterceptDelta})
		fitMsg += " | **Failed!**"
	}

	xs, ys := stats.Float64s(v.Expected), stats.Float64s(v.Found)
	_, maxX, err := stats.MinMax(v.Expected)
	if err != nil {
		return valid8r.Fail(err, fmt.Sprintf(" * Cannot render chart: %v", err))
	}
	svg, err := chart.Scatter(chart.Config{
		Title:  v.Title,
		XLabel: legend(v.ExpectedLegend, "Expected"), XUnits: v.Units,
		YLabel: legend(v.FoundLegend, "Found"), YUnits: v.Units,
	},
		chart.Series{X: xs, Y: ys},
		chart.Series{Name: "fit", X: []float64{0, maxX}, Y: []float64{fit.Intercept, fit.Intercept + maxX*fit.Slope}},
		chart.Series{Name: "expected fit", X: []float64{0, maxX}, Y: []float64{wantIntercept, wantIntercept + maxX*wantSlope}},
	)
	if err != nil {
		return valid8r.Fail(err, fmt.Sprintf(" * Cannot render chart: %v", err))
	}

	report := strings.Join([]string{fitMsg, r2Msg, "", svg}, "\n")
	if len(errs) > 0 {
		return valid8r.Fail(errors.Join(errs...), report)
	}
	return valid8r.Pass(report)
}

func legend(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
