package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentdocs/internal/catalog"
	"github.com/thoreinstein/agentdocs/internal/config"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/generator"
	"github.com/thoreinstein/agentdocs/internal/logging"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		check  bool
		dryRun bool
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Rebuild the skills and agents tables in the manifest",
		Long: `Rebuild the skills and agents tables in the manifest.

Every skills/<name>/SKILL.md and agents/<name>.md is read; the "name" and
"description" front matter keys fill the table rows, sorted by name.
When skills/ACTIVE_SKILLS.txt or agents/ACTIVE_AGENTS.txt exists, only the
entries it lists are included.

Tables are written between these markers:

  <!-- SKILLS_TABLE:START --> ... <!-- SKILLS_TABLE:END -->
  <!-- AGENTS_TABLE:START --> ... <!-- AGENTS_TABLE:END -->

On a first run the skills table replaces the "Context | Read this file"
placeholder, and the agents section is inserted before the
"# How to use skills" heading.`,
		Example: `  # Update AGENTS.md in the current repository
  agentdocs generate

  # Show what would change
  agentdocs generate --dry-run

  # Exit non-zero when AGENTS.md is stale
  agentdocs generate --check --repo-root ../docs

  See Also: agentdocs active list, agentdocs config show`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if check && dryRun {
				return errors.NewUserError(errors.New("--check and --dry-run cannot be combined"), "Use --dry-run to see the diff")
			}
			mode := generator.ModeWrite
			switch {
			case check:
				mode = generator.ModeCheck
			case dryRun:
				mode = generator.ModeDryRun
			}
			return a.runGenerate(c, mode)
		},
	}

	c.Flags().BoolVar(&check, "check", false, "fail when the manifest is out of date; never write")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "print a unified diff instead of writing")
	return c
}

func (a *app) runGenerate(c *cobra.Command, mode generator.Mode) error {
	l, err := a.layout()
	if err != nil {
		return err
	}

	ctx := c.Context()
	g := generator.New(logging.FromContext(ctx))
	sum, runErr := g.Run(ctx, generator.Options{Layout: l, Config: a.cfg, Mode: mode})
	if sum != nil {
		printDrift(c.ErrOrStderr(), catalog.Skills, l.Rel(l.Skills), sum.SkillDrift)
		printDrift(c.ErrOrStderr(), catalog.Agents, l.Rel(l.Agents), sum.AgentDrift)

		if sum.Diff != "" && mode != generator.ModeWrite {
			printDiff(c.OutOrStdout(), sum.Diff)
		}
		if !a.quiet || runErr != nil {
			fmt.Fprintln(c.OutOrStdout(), sum.Line())
		}
	}

	if runErr != nil {
		return classifyGenerateError(runErr)
	}
	return nil
}

func printDrift(w io.Writer, kind catalog.Kind, dir string, ids []string) {
	for _, id := range ids {
		fmt.Fprintf(w, "warning: active %s '%s' not found under %s/\n", kind.Label, id, dir)
	}
}

// printDiff colors added and removed lines when the output supports it.
func printDiff(w io.Writer, diff string) {
	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprintln(w, line)
		case strings.HasPrefix(line, "+"):
			add.Fprintln(w, line)
		case strings.HasPrefix(line, "-"):
			del.Fprintln(w, line)
		case strings.HasPrefix(line, "@@"):
			hunk.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}

// classifyGenerateError attaches a suggestion to the known failure modes.
func classifyGenerateError(err error) error {
	switch {
	case errors.Is(err, errors.ErrMissingDirectory), errors.Is(err, errors.ErrMissingTarget):
		return errors.NewUserError(err, "Check --repo-root, or set skills_dir, agents_dir and manifest in "+config.RepoFileName)
	case errors.Is(err, errors.ErrAnchorNotFound):
		return errors.NewUserError(err, `Add the table markers, the "Context | Read this file" placeholder, or a "# How to use skills" heading to the manifest`)
	case errors.Is(err, errors.ErrOutOfDate):
		return errors.NewUserError(err, "Run: agentdocs generate")
	default:
		return errors.NewSystemError(err, "")
	}
}
