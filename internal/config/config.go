package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/paths"
)

// RepoFileName is the per-repository configuration file.
const RepoFileName = ".agentdocs.yaml"

// UserFileName is the user-wide configuration file inside paths.ConfigDir.
const UserFileName = "config.yaml"

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "AGENTDOCS"

// Config represents the top-level configuration structure.
type Config struct {
	Manifest    string      `mapstructure:"manifest" yaml:"manifest"`
	SkillsDir   string      `mapstructure:"skills_dir" yaml:"skills_dir"`
	AgentsDir   string      `mapstructure:"agents_dir" yaml:"agents_dir"`
	AllowedTags []string    `mapstructure:"allowed_tags" yaml:"allowed_tags"`
	Skills      SkillsTable `mapstructure:"skills" yaml:"skills"`
	Agents      AgentsTable `mapstructure:"agents" yaml:"agents"`

	// Source is the config file that was read, empty when only defaults
	// and environment variables apply.
	Source string `mapstructure:"-" yaml:"-"`
}

// SkillsTable holds the literals used to place the skills table.
type SkillsTable struct {
	StartMarker string `mapstructure:"start_marker" yaml:"start_marker"`
	EndMarker   string `mapstructure:"end_marker" yaml:"end_marker"`
	// Placeholder is replaced on first generation when no markers exist yet.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
}

// AgentsTable holds the literals used to place the agents table.
type AgentsTable struct {
	StartMarker string `mapstructure:"start_marker" yaml:"start_marker"`
	EndMarker   string `mapstructure:"end_marker" yaml:"end_marker"`
	Title       string `mapstructure:"title" yaml:"title"`
	Intro       string `mapstructure:"intro" yaml:"intro"`
	// Anchor is a heading line; a new agents section is inserted before it.
	Anchor string `mapstructure:"anchor" yaml:"anchor"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Manifest:    "AGENTS.md",
		SkillsDir:   "skills",
		AgentsDir:   "agents",
		AllowedTags: []string{"fe", "op", "qa", "sec"},
		Skills: SkillsTable{
			StartMarker: "<!-- SKILLS_TABLE:START -->",
			EndMarker:   "<!-- SKILLS_TABLE:END -->",
			Placeholder: "Context | Read this file",
		},
		Agents: AgentsTable{
			StartMarker: "<!-- AGENTS_TABLE:START -->",
			EndMarker:   "<!-- AGENTS_TABLE:END -->",
			Title:       "# Agents (Auto-load based on context)",
			Intro:       "Use these subagents for specialized, read-only analysis workflows.",
			Anchor:      "# How to use skills",
		},
	}
}

// newViper returns a viper instance seeded with defaults and env support.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("skills_dir", d.SkillsDir)
	v.SetDefault("agents_dir", d.AgentsDir)
	v.SetDefault("allowed_tags", d.AllowedTags)
	v.SetDefault("skills.start_marker", d.Skills.StartMarker)
	v.SetDefault("skills.end_marker", d.Skills.EndMarker)
	v.SetDefault("skills.placeholder", d.Skills.Placeholder)
	v.SetDefault("agents.start_marker", d.Agents.StartMarker)
	v.SetDefault("agents.end_marker", d.Agents.EndMarker)
	v.SetDefault("agents.title", d.Agents.Title)
	v.SetDefault("agents.intro", d.Agents.Intro)
	v.SetDefault("agents.anchor", d.Agents.Anchor)
	return v
}

// Load reads the configuration for the repository at repoRoot.
//
// If path is provided, it must exist. Otherwise the repository file is tried
// first, then the user file; when neither exists the defaults are used.
func Load(repoRoot, path string) (*Config, error) {
	v := newViper()

	source, err := locate(repoRoot, path)
	if err != nil {
		return nil, err
	}
	if source != "" {
		v.SetConfigFile(source)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", source)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	cfg.Source = source

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// locate returns the config file to read, or "" when none applies.
func locate(repoRoot, path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		}
		return path, nil
	}

	candidates := []string{
		filepath.Join(repoRoot, RepoFileName),
		filepath.Join(paths.ConfigDir(), UserFileName),
	}
	for _, c := range candidates {
		if paths.IsFile(c) {
			return c, nil
		}
	}
	return "", nil
}

// Tags returns the allowed tag set.
func (c *Config) Tags() map[string]struct{} {
	set := make(map[string]struct{}, len(c.AllowedTags))
	for _, t := range c.AllowedTags {
		set[t] = struct{}{}
	}
	return set
}
