// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package valid8r contains the interfaces and result types to validate the
// output of numerical software against reference data.
//
// A validation task is anything that implements [Validator]. Tasks are
// collected in a [github.com/valid8r/valid8r/pkg/suite.Suite], which runs
// them in order and writes one markdown report. The built-in validators live
// in [github.com/valid8r/valid8r/pkg/series] and
// [github.com/valid8r/valid8r/pkg/scatter].
package valid8r

// Validator is the capability every validation task implements.
//
// Validate never writes to the report destination itself: it only returns an
// [Outcome], and the running suite owns the destination. Implementations must
// fill the Outcome's report text whether or not the validation passed, so the
// report stays complete when some tasks fail.
type Validator interface {
	Validate() Outcome
}

// Func adapts a plain function to the Validator interface.
type Func func() Outcome

func (f Func) Validate() Outcome { return f() }

// Outcome is the result of one validation task.
// Report is markdown to include in the suite report and is always present;
// a failed task keeps its explanation in the report rather than discarding it.
// Err is nil if the task passed.
type Outcome struct {
	Report string
	Err    error
}

// Pass returns a successful Outcome carrying report text.
func Pass(report string) Outcome { return Outcome{Report: report} }

// Fail returns a failed Outcome carrying both an error and report text.
func Fail(err error, report string) Outcome { return Outcome{Report: report, Err: err} }

// Passed reports whether the task succeeded.
func (o Outcome) Passed() bool { return o.Err == nil }
