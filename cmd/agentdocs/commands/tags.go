package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/tags"
)

func newTagsCmd(a *app) *cobra.Command {
	var (
		strict    bool
		format    string
		skillsDir string
	)

	c := &cobra.Command{
		Use:   "tags",
		Short: "Check that skill folders start with an approved tag",
		Long: `Check that skill folder names start with an approved tag.

A folder is tagged when its name is "<tag>-<rest>" and <tag> is one of the
allowed tags (op, sec, fe, qa unless allowed_tags is configured). Untagged
folders are listed as general skills and only fail the check with
--strict-untagged.`,
		Example: `  # Report tagged and untagged skills
  agentdocs tags

  # Fail on untagged skills
  agentdocs tags --strict-untagged

  # Machine-readable report
  agentdocs tags --format json

  See Also: agentdocs generate`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			f, err := tags.ParseFormat(format)
			if err != nil {
				return errors.NewUserError(err, "Use --format text, json, yaml or toml")
			}

			dir := skillsDir
			if dir == "" {
				l, err := a.layout()
				if err != nil {
					return err
				}
				dir = l.Skills
			}
			dir, err = filepath.Abs(dir)
			if err != nil {
				return errors.NewSystemError(errors.Wrap(err, "resolving skills directory"), "")
			}

			report, err := tags.Scan(dir, tags.NewPolicy(a.cfg.AllowedTags...))
			if err != nil {
				if errors.Is(err, errors.ErrMissingDirectory) {
					return errors.NewUserError(err, "Pass --skills-dir or --repo-root")
				}
				return errors.NewSystemError(err, "")
			}

			if err := tags.NewReporter(c.OutOrStdout(), f).Report(report, strict); err != nil {
				return errors.NewSystemError(err, "")
			}
			// The message already tells the user what to do.
			if err := report.Err(strict); err != nil {
				return errors.NewUserError(err, "")
			}
			return nil
		},
	}

	c.Flags().BoolVar(&strict, "strict-untagged", false, "fail when skills without an approved tag prefix are found")
	c.Flags().StringVar(&format, "format", string(tags.FormatText), "output format: text, json, yaml, toml")
	c.Flags().StringVar(&skillsDir, "skills-dir", "", "skills directory (default: <repo-root>/skills)")
	return c
}
