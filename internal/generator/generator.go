package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aymanbagabas/go-udiff"
	"github.com/hashicorp/go-multierror"

	"github.com/thoreinstein/agentdocs/internal/catalog"
	"github.com/thoreinstein/agentdocs/internal/config"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/manifest"
	"github.com/thoreinstein/agentdocs/internal/mdtable"
	"github.com/thoreinstein/agentdocs/internal/paths"
	"github.com/thoreinstein/agentdocs/pkg/fileutil"
)

// Table headers.
var (
	SkillsHeaders = []string{"Context", "Read this file", "Description"}
	AgentsHeaders = []string{"Agent", "Read this file", "Description"}
)

// Mode selects what Run does with the updated manifest.
type Mode int

const (
	// ModeWrite replaces the manifest when it changed.
	ModeWrite Mode = iota
	// ModeCheck fails with errors.ErrOutOfDate when the manifest would change.
	ModeCheck
	// ModeDryRun computes the update without writing.
	ModeDryRun
)

func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeDryRun:
		return "dry-run"
	default:
		return "write"
	}
}

// Options configures a run.
type Options struct {
	Layout paths.Layout
	Config *config.Config
	Mode   Mode
}

// Summary describes a completed run.
type Summary struct {
	Mode   Mode
	Skills int
	Agents int
	// SkillDrift and AgentDrift list allow-listed identifiers with no file.
	SkillDrift []string
	AgentDrift []string
	// Changed reports whether the manifest content differs from the update.
	Changed bool
	// Written reports whether the manifest was replaced on disk.
	Written bool
	// Manifest is the manifest path relative to the repository root.
	Manifest string
	// Diff is a unified diff of the change, empty when unchanged.
	Diff string
}

// Line is the one-line result printed after a run. A write run always
// reports "Updated", even when the content was already current.
func (s *Summary) Line() string {
	switch {
	case s.Mode == ModeWrite:
		return fmt.Sprintf("Updated %s with %d skills and %d agents.", s.Manifest, s.Skills, s.Agents)
	case !s.Changed:
		return fmt.Sprintf("%s is up to date with %d skills and %d agents.", s.Manifest, s.Skills, s.Agents)
	case s.Mode == ModeDryRun:
		return fmt.Sprintf("Would update %s with %d skills and %d agents.", s.Manifest, s.Skills, s.Agents)
	default:
		return fmt.Sprintf("%s is out of date.", s.Manifest)
	}
}

// Generator runs the table update pipeline.
type Generator struct {
	collector *catalog.Collector
	logger    *slog.Logger
}

// New creates a Generator. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		collector: catalog.NewCollector(logger),
		logger:    logger,
	}
}

// Run updates the manifest described by opts.
func (g *Generator) Run(ctx context.Context, opts Options) (*Summary, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	l := opts.Layout

	if err := Preflight(l); err != nil {
		return nil, err
	}

	skills, err := g.collector.Collect(ctx, catalog.Skills, l.Skills, l.Root)
	if err != nil {
		return nil, errors.Wrap(err, "collecting skills")
	}
	agents, err := g.collector.Collect(ctx, catalog.Agents, l.Agents, l.Root)
	if err != nil {
		return nil, errors.Wrap(err, "collecting agents")
	}

	data, err := fileutil.ReadFileWithLimit(l.Manifest)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", l.Rel(l.Manifest))
	}
	before := string(data)

	after, err := manifest.Apply(before,
		manifest.Step{Injection: manifest.SkillsInjection(cfg), Table: mdtable.Render(SkillsHeaders, skills.Rows())},
		manifest.Step{Injection: manifest.AgentsInjection(cfg), Table: mdtable.Render(AgentsHeaders, agents.Rows())},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "updating %s", l.Rel(l.Manifest))
	}

	sum := &Summary{
		Mode:       opts.Mode,
		Skills:     len(skills.Entries),
		Agents:     len(agents.Entries),
		SkillDrift: skills.Drift,
		AgentDrift: agents.Drift,
		Changed:    after != before,
		Manifest:   l.Rel(l.Manifest),
	}
	if sum.Changed {
		sum.Diff = udiff.Unified("a/"+sum.Manifest, "b/"+sum.Manifest, before, after)
	}

	g.logger.Debug("manifest rendered",
		"mode", opts.Mode.String(),
		"manifest", sum.Manifest,
		"changed", sum.Changed)

	switch opts.Mode {
	case ModeCheck:
		if sum.Changed {
			return sum, errors.Wrapf(errors.ErrOutOfDate, "%s", sum.Manifest)
		}
	case ModeDryRun:
	default:
		if sum.Changed {
			if err := fileutil.ReplaceFile(l.Manifest, []byte(after)); err != nil {
				return nil, errors.Wrapf(err, "writing %s", sum.Manifest)
			}
			sum.Written = true
			g.logger.Info("manifest updated", "manifest", sum.Manifest)
		}
	}

	return sum, nil
}

// Preflight checks that every input exists. All problems are reported
// together; each one is marked with errors.ErrMissingDirectory or
// errors.ErrMissingTarget.
func Preflight(l paths.Layout) error {
	var (
		result *multierror.Error
		first  error
	)

	for _, dir := range []struct {
		label string
		path  string
	}{
		{"skills", l.Skills},
		{"agents", l.Agents},
	} {
		if !paths.IsDir(dir.path) {
			if first == nil {
				first = errors.ErrMissingDirectory
			}
			result = multierror.Append(result,
				errors.Wrapf(errors.ErrMissingDirectory, "%s directory %s", dir.label, l.Rel(dir.path)))
		}
	}
	if !paths.IsFile(l.Manifest) {
		if first == nil {
			first = errors.ErrMissingTarget
		}
		result = multierror.Append(result,
			errors.Wrapf(errors.ErrMissingTarget, "%s", l.Rel(l.Manifest)))
	}

	if result == nil {
		return nil
	}
	result.ErrorFormat = formatPreflight
	// The combined error carries the first failure's sentinel so callers can
	// classify it without walking the list.
	return errors.Mark(result, first)
}

func formatPreflight(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msg := fmt.Sprintf("%d preflight checks failed:", len(errs))
	for _, err := range errs {
		msg += "\n  * " + err.Error()
	}
	return msg
}
