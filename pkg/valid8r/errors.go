// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

package valid8r

import (
	"fmt"
	"strings"
)

// ThresholdError is returned in a failed Outcome when a computed metric
// violates a configured bound. It is the normal "validation failed" case,
// not a programming error.
type ThresholdError struct {
	Metric string  // Name of the metric, e.g. "Root Mean Squared Error".
	Value  float64 // Computed value.
	Bound  float64 // Configured bound that was violated.
}

func (e ThresholdError) Error() string {
	return fmt.Sprintf("%v is %v, which is not within the allowed value of %v", e.Metric, e.Value, e.Bound)
}

// EntryError is one failed suite entry, attributed to its title.
type EntryError struct {
	Title string
	Err   error
}

func (e EntryError) Error() string { return fmt.Sprintf("%v: %v", e.Title, e.Err) }
func (e EntryError) Unwrap() error { return e.Err }

// SuiteError aggregates every failed entry of a suite run, in entry order.
type SuiteError struct{ Failures []EntryError }

func (e *SuiteError) Error() string {
	lines := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		lines[i] = f.Error()
	}
	return fmt.Sprintf("%v validation(s) failed:\n%v", len(e.Failures), strings.Join(lines, "\n"))
}

// Unwrap lets errors.Is and errors.As see through to individual failures.
func (e *SuiteError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
