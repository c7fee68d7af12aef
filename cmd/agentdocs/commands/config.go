package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/agentdocs/internal/config"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/paths"
	"github.com/thoreinstein/agentdocs/pkg/fileutil"
)

func newConfigCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create agentdocs configuration",
		Long: `Inspect or create agentdocs configuration.

Configuration is read from the first of:

  --config <file>
  <repo-root>/.agentdocs.yaml
  $XDG_CONFIG_HOME/agentdocs/config.yaml

Environment variables prefixed with AGENTDOCS_ override single keys, for
example AGENTDOCS_MANIFEST=README.md.

Without a subcommand, shows the effective configuration.`,
		Example: `  # Show effective configuration
  agentdocs config

  # Write a starter .agentdocs.yaml
  agentdocs config init

See Also: agentdocs generate`,
		RunE: a.runConfigShow,
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE:  a.runConfigShow,
		},
		newConfigInitCmd(a),
	)
	return c
}

func (a *app) runConfigShow(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()
	if a.cfg.Source != "" {
		fmt.Fprintf(out, "# source: %s\n", a.cfg.Source)
	} else {
		fmt.Fprintln(out, "# source: built-in defaults")
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(a.cfg); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "encoding config"), "")
	}
	return errors.Wrap(enc.Close(), "encoding config")
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.RepoFileName + " with the defaults",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationNoConfig: "true",
		},
		RunE: func(c *cobra.Command, _ []string) error {
			root, err := filepath.Abs(a.repoRoot)
			if err != nil {
				return errors.NewSystemError(errors.Wrap(err, "resolving repository root"), "")
			}
			path := filepath.Join(root, config.RepoFileName)

			if paths.IsFile(path) && !force {
				return errors.NewUserError(
					errors.Newf("%s already exists", path),
					"Use --force to overwrite",
				)
			}
			if err := fileutil.AtomicWriteYAML(path, config.Default()); err != nil {
				return errors.NewSystemError(err, "")
			}
			fmt.Fprintf(c.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	c.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return c
}
