package tags

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// Format specifies the output format for tag reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces YAML output.
	FormatYAML Format = "yaml"
	// FormatTOML produces TOML output.
	FormatTOML Format = "toml"
)

// Formats lists the accepted formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Newf("unknown format %q (want text, json, yaml or toml)", s)
}

// Reporter formats and writes tag reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes report to the output. strict only affects the text format,
// which omits the closing success line when the report fails.
func (r *Reporter) Report(report *Report, strict bool) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON report")
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding YAML report")
		}
		return errors.Wrap(enc.Close(), "encoding YAML report")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(r.out).Encode(report), "encoding TOML report")
	default:
		return r.reportText(report, strict)
	}
}

func (r *Reporter) reportText(report *Report, strict bool) error {
	fmt.Fprintf(r.out, "Checked %d skills\n", report.Checked)

	fmt.Fprintf(r.out, "Tagged (%d):\n", len(report.Tagged))
	for _, name := range report.Tagged {
		fmt.Fprintf(r.out, "  - %s\n", color.GreenString(name))
	}

	if len(report.Untagged) > 0 {
		fmt.Fprintf(r.out, "Untagged/general (%d):\n", len(report.Untagged))
		c := color.FgYellow
		if strict {
			c = color.FgRed
		}
		for _, name := range report.Untagged {
			fmt.Fprintf(r.out, "  - %s\n", color.New(c).Sprint(name))
		}
	}

	if !report.Failed(strict) {
		fmt.Fprintln(r.out, "Skill tag validation passed")
	}
	return nil
}
