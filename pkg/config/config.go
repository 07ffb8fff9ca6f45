// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package config loads a validation plan from a YAML file and turns it into
// a runnable suite. A plan names a report destination and a list of checks,
// each reading its samples from columns of a CSV file.
package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/valid8r/valid8r/pkg/csv"
	"github.com/valid8r/valid8r/pkg/scatter"
	"github.com/valid8r/valid8r/pkg/series"
	"github.com/valid8r/valid8r/pkg/suite"
	"github.com/valid8r/valid8r/pkg/valid8r"
)

// Plan is the top-level validation plan.
type Plan struct {
	// Report is the path of the markdown report to write.
	Report string `json:"report"`
	// Checks run in the order they are listed.
	Checks []Check `json:"checks"`
}

// Check is one validation: a data source plus thresholds.
type Check struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// Kind is "series" or "scatter".
	Kind string `json:"kind"`
	Data Data   `json:"data"`

	Bounds Bounds `json:"bounds,omitempty"`
	Chart  Chart  `json:"chart,omitempty"`
}

// Data selects the expected and found columns of a CSV file.
type Data struct {
	File     string `json:"file"`
	Expected int    `json:"expected"`
	Found    int    `json:"found"`
}

// Bounds are the optional failure thresholds. Absent bounds are reported
// but never fail a check.
type Bounds struct {
	MaxRMSE           *float64 `json:"maxRMSE,omitempty"`
	MaxMBE            *float64 `json:"maxMBE,omitempty"`
	MinR2             *float64 `json:"minR2,omitempty"`
	MaxSlopeDelta     *float64 `json:"maxSlopeDelta,omitempty"`
	MaxInterceptDelta *float64 `json:"maxInterceptDelta,omitempty"`
	ExpectedSlope     *float64 `json:"expectedSlope,omitempty"`
	ExpectedIntercept *float64 `json:"expectedIntercept,omitempty"`
}

// Chart is the optional axis metadata for the rendered chart.
type Chart struct {
	Title  string `json:"title,omitempty"`
	XLabel string `json:"xLabel,omitempty"`
	XUnits string `json:"xUnits,omitempty"`
	YLabel string `json:"yLabel,omitempty"`
	YUnits string `json:"yUnits,omitempty"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &Plan{}
	if err := yaml.UnmarshalStrict(b, p); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return p, nil
}

// Validate checks the plan for structural problems before anything runs.
func (p *Plan) Validate() error {
	if p.Report == "" {
		return fmt.Errorf("missing report destination")
	}
	for i, c := range p.Checks {
		if c.Title == "" {
			return fmt.Errorf("check %v: missing title", i)
		}
		if c.Data.File == "" {
			return fmt.Errorf("check %q: missing data file", c.Title)
		}
		switch c.Kind {
		case "series", "scatter":
		default:
			return fmt.Errorf("check %q: unknown kind %q", c.Title, c.Kind)
		}
	}
	return nil
}

// Suite builds the runnable suite for the plan.
// Data files are read when each entry runs, not when the suite is built, so
// a missing file fails its own check and the rest of the report is written.
func (p *Plan) Suite() *suite.Suite {
	s := suite.New(p.Report)
	for _, c := range p.Checks {
		s.Register(c.Title, c.Description, c.validator)
	}
	return s
}

func (c Check) validator() valid8r.Validator {
	cols, err := csv.Columns(c.Data.File, c.Data.Expected, c.Data.Found)
	if err != nil {
		return valid8r.Func(func() valid8r.Outcome {
			return valid8r.Fail(err, fmt.Sprintf(" * Cannot read data: %v", err))
		})
	}
	expected, found := cols[0], cols[1]
	switch c.Kind {
	case "scatter":
		return &scatter.Validator[float64]{
			Expected: expected, Found: found,
			MinR2:             c.Bounds.MinR2,
			MaxSlopeDelta:     c.Bounds.MaxSlopeDelta,
			ExpectedSlope:     c.Bounds.ExpectedSlope,
			MaxInterceptDelta: c.Bounds.MaxInterceptDelta,
			ExpectedIntercept: c.Bounds.ExpectedIntercept,
			Title:             c.Chart.Title,
			Units:             c.Chart.YUnits,
		}
	default: // "series", enforced by Validate.
		return &series.Validator{
			Expected: expected, Found: found,
			MaxRMSE: c.Bounds.MaxRMSE,
			MaxMBE:  c.Bounds.MaxMBE,
			Title:   c.Chart.Title,
			XLabel:  c.Chart.XLabel, XUnits: c.Chart.XUnits,
			YLabel: c.Chart.YLabel, YUnits: c.Chart.YUnits,
		}
	}
}
