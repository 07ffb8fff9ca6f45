// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package stats is the numeric kernel for the built-in validators.
//
// All functions accept any [Number] element type, compute in float64 and
// validate their inputs before delegating to gonum, so callers get errors
// instead of panics for empty or mismatched samples.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by kernel functions, matchable with errors.Is.
var (
	ErrEmptyInput       = errors.New("empty sample")
	ErrShapeMismatch    = errors.New("samples differ in length")
	ErrNaN              = errors.New("NaN in sample")
	ErrInsufficientData = errors.New("not enough data points")
)

// Number is any element type a sample may hold.
// Integer types never contain NaN; float values are checked where it matters.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float64s converts a sample to float64 for computation.
func Float64s[T Number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// Mean returns the arithmetic mean of xs.
func Mean[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyInput)
	}
	return stat.Mean(Float64s(xs), nil), nil
}

// MinMax returns the minimum and maximum of xs in one pass.
func MinMax[T Number](xs []T) (min, max float64, err error) {
	if len(xs) == 0 {
		return 0, 0, fmt.Errorf("min/max: %w", ErrEmptyInput)
	}
	fs := Float64s(xs)
	if floats.HasNaN(fs) {
		return 0, 0, fmt.Errorf("min/max: %w", ErrNaN)
	}
	return floats.Min(fs), floats.Max(fs), nil
}

// RMSE returns the root mean squared error between two equal-length samples,
// the average magnitude of the deviation of found from expected.
func RMSE[T Number](expected, found []T) (float64, error) {
	e, f, err := pair("rmse", expected, found)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := range e {
		d := f[i] - e[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(e))), nil
}

// MBE returns the mean bias error between two equal-length samples.
// A positive result means found systematically overshoots expected.
func MBE[T Number](expected, found []T) (float64, error) {
	e, f, err := pair("mbe", expected, found)
	if err != nil {
		return 0, err
	}
	diff := make([]float64, len(e))
	floats.SubTo(diff, f, e)
	return stat.Mean(diff, nil), nil
}

// Fit holds ordinary least squares coefficients for y = Intercept + Slope*x.
type Fit struct {
	Slope     float64
	Intercept float64
	R2        float64
}

// LinearFit returns the ordinary least squares fit of y against x.
// Requires at least two points and a non-degenerate x sample.
func LinearFit[T Number](x, y []T) (Fit, error) {
	xs, ys, err := pair("linear fit", x, y)
	if err != nil {
		return Fit{}, err
	}
	if len(xs) < 2 {
		return Fit{}, fmt.Errorf("linear fit: %w: got %v points, need 2", ErrInsufficientData, len(xs))
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return Fit{}, fmt.Errorf("linear fit: %w: x sample has zero variance", ErrNaN)
	}
	// R2 divides by the total variance of y, so a flat y sample leaves it
	// undefined and any configured floor would be meaningless.
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return Fit{}, fmt.Errorf("linear fit: %w: y sample has zero variance", ErrNaN)
	}
	return Fit{Slope: beta, Intercept: alpha, R2: r2}, nil
}

// pair validates two samples for pairwise computation and converts them.
func pair[T Number](op string, a, b []T) ([]float64, []float64, error) {
	if len(a) != len(b) {
		return nil, nil, fmt.Errorf("%v: %w: expected %v points, found %v", op, ErrShapeMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return nil, nil, fmt.Errorf("%v: %w", op, ErrEmptyInput)
	}
	fa, fb := Float64s(a), Float64s(b)
	if floats.HasNaN(fa) || floats.HasNaN(fb) {
		return nil, nil, fmt.Errorf("%v: %w", op, ErrNaN)
	}
	return fa, fb, nil
}
