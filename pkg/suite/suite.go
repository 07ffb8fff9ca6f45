// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package suite runs an ordered collection of validation tasks and writes
// their outcomes to one markdown report.
package suite

import (
	"fmt"
	"os"

	"github.com/valid8r/valid8r/internal/pkg/logging"
	"github.com/valid8r/valid8r/pkg/valid8r"
)

var log = logging.Log()

// Entry is one titled validation task owned by a Suite.
// New is called once per run to build the validator, so a suite can be
// re-run against freshly constructed tasks.
type Entry struct {
	Title       string
	Description string // Optional markdown shown under the title.
	New         func() valid8r.Validator
}

// Suite is an ordered collection of entries bound to a report destination.
// Entries run strictly one at a time, in insertion order. The destination
// file is not touched until [Suite.Run].
type Suite struct {
	dest    string
	entries []Entry
}

// New returns an empty suite that will write its report to dest.
func New(dest string) *Suite { return &Suite{dest: dest} }

// Push appends an entry. Order of insertion is order of execution.
func (s *Suite) Push(e Entry) { s.entries = append(s.entries, e) }

// Add appends an entry wrapping an already built validator.
func (s *Suite) Add(title, description string, v valid8r.Validator) {
	s.Push(Entry{Title: title, Description: description, New: func() valid8r.Validator { return v }})
}

// Register appends an entry built from a validator constructor.
// This is the registration surface for test files: declare a function
// returning the validator, register it with a title and description.
func (s *Suite) Register(title, description string, make func() valid8r.Validator) {
	s.Push(Entry{Title: title, Description: description, New: make})
}

// Run executes every entry in order and rewrites the report destination.
//
// Every entry's report fragment is written whether it passed or not, so the
// report is complete even when validations fail. Failures are collected and
// returned as one [valid8r.SuiteError] after all entries have run. The only
// fatal condition is an error opening or writing the destination, which
// aborts the run immediately.
func (s *Suite) Run() error {
	f, err := os.Create(s.dest)
	if err != nil {
		return fmt.Errorf("report destination: %w", err)
	}
	defer f.Close()

	var failures []valid8r.EntryError
	for _, e := range s.entries {
		o := e.New().Validate()
		if o.Passed() {
			log.V(1).Info("validation passed", "title", e.Title)
		} else {
			log.Info("validation failed", "title", e.Title, "error", logging.Stringer(o.Err))
			failures = append(failures, valid8r.EntryError{Title: e.Title, Err: o.Err})
		}
		if _, err := fmt.Fprintf(f, "## %v\n\n%v#### Indicators\n\n%v\n\n", e.Title, description(e.Description), o.Report); err != nil {
			return fmt.Errorf("report destination: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report destination: %w", err)
	}
	if len(failures) > 0 {
		return &valid8r.SuiteError{Failures: failures}
	}
	return nil
}

func description(d string) string {
	if d == "" {
		return ""
	}
	return d + "\n\n"
}
