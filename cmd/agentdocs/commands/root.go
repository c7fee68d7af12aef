// Package commands implements the CLI commands for agentdocs.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentdocs/cmd"
	"github.com/thoreinstein/agentdocs/internal/config"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/logging"
	"github.com/thoreinstein/agentdocs/internal/paths"
)

// DebugEnv enables debug logging when no -v flag is given: "1" or "true"
// selects debug, "2" selects trace.
const DebugEnv = "AGENTDOCS_DEBUG"

// app holds the persistent flag values and the state resolved from them
// before any subcommand runs.
type app struct {
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	color      string
	repoRoot   string
	configPath string

	cfg     *config.Config
	logger  *slog.Logger
	logSink io.Closer
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "agentdocs",
		Short: "Keep the skills and agents tables in AGENTS.md current",
		Long: `agentdocs maintains the metadata tables inside a project manifest
(AGENTS.md by default).

It scans skills/*/SKILL.md and agents/*.md, reads the name and description
from each file's front matter, and rewrites the tables between fixed marker
comments. Optional ACTIVE_SKILLS.txt and ACTIVE_AGENTS.txt files limit which
entries are listed.

It also checks that skill folder names start with an approved tag.`,
		Example: `  # Rebuild both tables
  agentdocs generate

  # Fail in CI when AGENTS.md is stale
  agentdocs generate --check

  # Check skill naming tags
  agentdocs tags --strict-untagged

  # Diagnose layout and marker problems
  agentdocs doctor

  See Also: agentdocs active, agentdocs config`,
		Version:       cmd.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if err := a.setupLogging(c); err != nil {
				return err
			}
			if skipsConfig(c) {
				return nil
			}
			return a.loadConfig()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
		Run: func(c *cobra.Command, _ []string) {
			_ = c.Help()
		},
	}
	rootCmd.SetVersionTemplate("agentdocs version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.verbosity, "verbose", "v", "increase verbosity level (e.g., -v, -vv, -vvv)")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text, json")
	pf.StringVar(&a.logFile, "log-file", "", "also write logs to file in JSON format")
	pf.StringVar(&a.color, "color", string(logging.ColorAuto), "colorize output: auto, always, never")
	pf.StringVar(&a.repoRoot, "repo-root", ".", "repository root containing the manifest")
	pf.StringVar(&a.configPath, "config", "", "config file (default: <repo-root>/"+config.RepoFileName+")")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newTagsCmd(a),
		newActiveCmd(a),
		newConfigCmd(a),
		newDoctorCmd(a),
		newVersionCmd(),
		newGenDocCmd(rootCmd),
	)

	return rootCmd
}

// skipsConfig reports whether c runs without loading configuration.
func skipsConfig(c *cobra.Command) bool {
	for p := c; p != nil; p = p.Parent() {
		if p.Annotations[annotationNoConfig] == "true" {
			return true
		}
		switch p.Name() {
		case "help", cobra.ShellCompRequestCmd, "completion":
			return true
		}
	}
	return false
}

const annotationNoConfig = "agentdocs/no-config"

// setupLogging configures the default logger based on verbosity flags.
func (a *app) setupLogging(c *cobra.Command) error {
	if a.quiet && a.verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pick one of -q or -v")
	}

	var level slog.Level
	if a.quiet {
		level = slog.LevelError
	} else {
		v := a.verbosity
		// Flags win over the environment.
		if v == 0 {
			switch os.Getenv(DebugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(a.logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}
	mode, err := logging.ParseColorMode(a.color)
	if err != nil {
		return errors.NewUserError(err, "Use --color auto, always or never")
	}
	logging.ApplyColorMode(c.OutOrStdout(), mode)

	handler := logging.NewHandlerFor(logging.Config{
		Level:  level,
		Format: format,
		Output: c.ErrOrStderr(),
		Color:  mode,
	})

	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "opening log file %s", a.logFile), "Check that the directory exists and is writable")
		}
		a.logSink = f
		handler = logging.NewTee(handler, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, a.logger))
	return nil
}

// loadConfig reads the configuration for the repository root.
func (a *app) loadConfig() error {
	cfg, err := config.Load(a.repoRoot, a.configPath)
	if err != nil {
		return errors.NewConfigError(err)
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", "source", cfg.Source, "repo_root", a.repoRoot)
	return nil
}

// layout resolves the repository paths from the loaded configuration.
func (a *app) layout() (paths.Layout, error) {
	l, err := paths.NewLayout(a.repoRoot, a.cfg.SkillsDir, a.cfg.AgentsDir, a.cfg.Manifest)
	if err != nil {
		return paths.Layout{}, errors.NewConfigError(err)
	}
	return l, nil
}

func (a *app) close() error {
	if a.logSink == nil {
		return nil
	}
	err := a.logSink.Close()
	a.logSink = nil
	return errors.Wrap(err, "closing log file")
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
