package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentdocs/internal/doctor"
	"github.com/thoreinstein/agentdocs/internal/errors"
)

func newDoctorCmd(a *app) *cobra.Command {
	var (
		asJSON  bool
		verbose bool
	)

	c := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose problems before running generate",
		Long: `Run diagnostic checks on the repository layout and manifest.

Checks that the skills and agents directories and the manifest exist, that
both tables have markers or a fallback anchor, that every entry has a
description, that allow-lists match the files on disk, which skills are
untagged, and whether the tables are current.

Output modes (mutually exclusive):
  (default)   Show errors, warnings and info
  --all       Show every check including passed ones
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors (warnings are reported but do not fail)
  1 - At least one check failed`,
		Example: `  # Check the current repository
  agentdocs doctor

  # Everything, as JSON
  agentdocs doctor --json

See Also: agentdocs generate --check`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if asJSON && verbose {
				return errors.NewUserError(errors.New("flags --json and --all are mutually exclusive"), "")
			}
			l, err := a.layout()
			if err != nil {
				return err
			}

			report := doctor.NewRunner(doctor.Standard(doctor.Env{Layout: l, Config: a.cfg})...).Run(c.Context())

			out := c.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return errors.NewSystemError(errors.Wrap(err, "encoding JSON"), "")
				}
			} else {
				writeDoctorText(out, report, verbose)
			}

			if report.HasErrors() {
				return errors.NewUserError(errors.Newf("%d check(s) failed", report.Summary.Errors), "Fix the errors above, then run: agentdocs generate")
			}
			return nil
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "output results as JSON")
	c.Flags().BoolVar(&verbose, "all", false, "show passed checks too")
	return c
}

func writeDoctorText(w io.Writer, report *doctor.Report, all bool) {
	for _, r := range report.Results {
		if !all && r.Status == doctor.SeverityPass {
			continue
		}
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(r.Status), r.Category, r.Name, r.Message)
		if len(r.Details) > 1 || (len(r.Details) == 1 && r.Details[0] != r.Message) {
			for _, d := range r.Details {
				fmt.Fprintf(w, "    - %s\n", d)
			}
		}
		if r.FixHint != "" && r.Status >= doctor.SeverityInfo {
			fmt.Fprintf(w, "  hint: %s\n", r.FixHint)
		}
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
