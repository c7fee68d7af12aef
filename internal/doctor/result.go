// Package doctor runs diagnostic checks against a repository layout.
package doctor

import "github.com/thoreinstein/agentdocs/internal/errors"

// Severity orders check outcomes from harmless to failing.
type Severity int

const (
	SeverityPass Severity = iota
	// SeverityInfo is worth showing but needs no action.
	SeverityInfo
	// SeverityWarning does not stop generate but likely surprises the user.
	SeverityWarning
	// SeverityError makes generate fail.
	SeverityError
)

var severityNames = [...]string{"pass", "info", "warning", "error"}

func (s Severity) String() string {
	if s < SeverityPass || s > SeverityError {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	for i, name := range severityNames {
		if name == string(b) {
			*s = Severity(i)
			return nil
		}
	}
	return errors.Newf("unknown severity %q", b)
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Status   Severity `json:"status"`
	Message  string   `json:"message"`
	// Details lists the individual findings summarized by Message.
	Details []string `json:"details,omitempty"`
	FixHint string   `json:"fix_hint,omitempty"`
}

// Summary counts results per severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) count(sev Severity) {
	switch sev {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}
