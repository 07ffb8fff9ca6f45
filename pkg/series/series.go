// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package series validates a computed time series against a reference one,
// using Root Mean Squared Error and Mean Bias Error.
package series

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/valid8r/valid8r/pkg/chart"
	"github.com/valid8r/valid8r/pkg/stats"
	"github.com/valid8r/valid8r/pkg/valid8r"
)

// Validator compares two time series of equal length.
// Metrics are always computed and reported; a bound that is left nil is
// reported but never fails the validation.
type Validator struct {
	// Expected is the reference series, Found the computed one.
	Expected, Found []float64

	// MaxRMSE fails the validation if the RMSE exceeds it.
	MaxRMSE *float64
	// MaxMBE fails the validation if |MBE| exceeds it.
	// The bound applies to the magnitude: a large negative bias fails too.
	MaxMBE *float64

	// Chart metadata, all optional.
	Title          string
	XLabel, XUnits string
	YLabel, YUnits string
	ExpectedLegend string
	FoundLegend    string
}

var _ valid8r.Validator = &Validator{}

// Validate computes the metrics, renders the chart and checks the bounds.
// Structural problems (mismatched lengths, NaN values) are returned as a
// failed outcome so the rest of the suite still runs.
func (v *Validator) Validate() valid8r.Outcome {
	rmse, err := stats.RMSE(v.Expected, v.Found)
	if err != nil {
		return valid8r.Fail(err, fmt.Sprintf(" * Cannot compare series: %v", err))
	}
	mbe, _ := stats.MBE(v.Expected, v.Found) // Same inputs, cannot fail after RMSE.

	var errs []error
	rmseMsg := fmt.Sprintf(" * Root Mean Squared Error: %.2f", rmse)
	if v.MaxRMSE != nil && rmse > *v.MaxRMSE {
		errs = append(errs, valid8r.ThresholdError{Metric: "Root Mean Squared Error", Value: rmse, Bound: *v.MaxRMSE})
		rmseMsg += " | **Failed!**"
	}
	mbeMsg := fmt.Sprintf(" * Mean Bias Error: %.2f", mbe)
	if v.MaxMBE != nil && math.Abs(mbe) > *v.MaxMBE {
		errs = append(errs, valid8r.ThresholdError{Metric: "Mean Bias Error", Value: mbe, Bound: *v.MaxMBE})
		mbeMsg += " | **Failed!**"
	}

	svg, err := chart.Lines(chart.Config{
		Title:  v.Title,
		XLabel: v.XLabel, XUnits: v.XUnits,
		YLabel: v.YLabel, YUnits: v.YUnits,
	},
		chart.Series{Name: legend(v.ExpectedLegend, "Expected"), X: steps(len(v.Expected)), Y: v.Expected},
		chart.Series{Name: legend(v.FoundLegend, "Found"), X: steps(len(v.Found)), Y: v.Found},
	)
	if err != nil {
		return valid8r.Fail(err, fmt.Sprintf(" * Cannot render chart: %v", err))
	}

	report := strings.Join([]string{rmseMsg, mbeMsg, "", svg}, "\n")
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

// steps returns 0, 1, ... n-1 as the implicit time axis.
func steps(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
