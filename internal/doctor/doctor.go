package doctor

import (
	"context"
	"time"
)

// Check is one diagnostic. Run reports the outcome; Name and Category on the
// returned result are filled in by the Runner.
type Check interface {
	Name() string
	Category() string
	Run(ctx context.Context) *CheckResult
}

// Runner runs checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner returns a Runner over checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks, now: time.Now}
}

// AddCheck appends c.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes the checks and tallies the results. Once ctx is canceled no
// further checks start; results gathered so far are returned.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{Timestamp: r.now().UTC(), Results: []*CheckResult{}}
	for _, c := range r.checks {
		if ctx.Err() != nil {
			break
		}
		res := c.Run(ctx)
		res.Name, res.Category = c.Name(), c.Category()
		report.Results = append(report.Results, res)
		report.Summary.count(res.Status)
	}
	return report
}

// Report is the outcome of one Runner.Run.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed.
func (r *Report) HasErrors() bool { return r.Summary.Errors > 0 }

// HasWarnings reports whether any check warned.
func (r *Report) HasWarnings() bool { return r.Summary.Warnings > 0 }
