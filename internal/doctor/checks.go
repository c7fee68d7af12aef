package doctor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/thoreinstein/agentdocs/internal/allowlist"
	"github.com/thoreinstein/agentdocs/internal/catalog"
	"github.com/thoreinstein/agentdocs/internal/config"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/generator"
	"github.com/thoreinstein/agentdocs/internal/logging"
	"github.com/thoreinstein/agentdocs/internal/manifest"
	"github.com/thoreinstein/agentdocs/internal/paths"
	"github.com/thoreinstein/agentdocs/internal/tags"
	"github.com/thoreinstein/agentdocs/pkg/fileutil"
	"github.com/thoreinstein/agentdocs/pkg/frontmatter"
)

// Env is the repository the checks inspect.
type Env struct {
	Layout paths.Layout
	Config *config.Config
}

// Standard returns every built-in check in run order.
func Standard(env Env) []Check {
	return []Check{
		&LayoutCheck{env: env},
		&MarkerCheck{env: env},
		&FrontMatterCheck{env: env},
		&AllowListCheck{env: env},
		&TagCheck{env: env},
		&FreshnessCheck{env: env},
	}
}

// findings collects messages at varying severities and folds them into one
// result.
type findings struct {
	worst   Severity
	details []string
	hint    string
}

func (f *findings) add(s Severity, format string, args ...any) {
	if s > f.worst {
		f.worst = s
	}
	f.details = append(f.details, fmt.Sprintf(format, args...))
}

func (f *findings) result(passMsg string) *CheckResult {
	if len(f.details) == 0 {
		return &CheckResult{Status: SeverityPass, Message: passMsg}
	}
	msg := f.details[0]
	if len(f.details) > 1 {
		msg = fmt.Sprintf("%d findings", len(f.details))
	}
	return &CheckResult{Status: f.worst, Message: msg, Details: f.details, FixHint: f.hint}
}

func skipped(reason string) *CheckResult {
	return &CheckResult{Status: SeverityInfo, Message: "skipped: " + reason}
}

// LayoutCheck verifies that the source directories and the manifest exist.
type LayoutCheck struct{ env Env }

var _ Check = (*LayoutCheck)(nil)

func (c *LayoutCheck) Name() string     { return "layout" }
func (c *LayoutCheck) Category() string { return "filesystem" }

func (c *LayoutCheck) Run(context.Context) *CheckResult {
	err := generator.Preflight(c.env.Layout)
	if err == nil {
		return &CheckResult{Status: SeverityPass, Message: "skills, agents and manifest found"}
	}

	res := &CheckResult{
		Status:  SeverityError,
		Message: "required paths are missing",
		FixHint: "Check --repo-root, or set skills_dir, agents_dir and manifest in " + config.RepoFileName,
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			res.Details = append(res.Details, e.Error())
		}
	} else {
		res.Details = []string{err.Error()}
	}
	return res
}

// MarkerCheck verifies that both tables have somewhere to go.
type MarkerCheck struct{ env Env }

var _ Check = (*MarkerCheck)(nil)

func (c *MarkerCheck) Name() string     { return "markers" }
func (c *MarkerCheck) Category() string { return "manifest" }

func (c *MarkerCheck) Run(context.Context) *CheckResult {
	l := c.env.Layout
	if !paths.IsFile(l.Manifest) {
		return skipped("manifest not found")
	}
	data, err := fileutil.ReadFileWithLimit(l.Manifest)
	if err != nil {
		return &CheckResult{Status: SeverityError, Message: err.Error()}
	}
	doc := string(data)
	cfg := c.env.Config

	var f findings
	c.region(&f, doc, "skills", manifest.SkillsInjection(cfg))
	c.region(&f, doc, "agents", manifest.AgentsInjection(cfg))
	if f.worst == SeverityError {
		f.hint = fmt.Sprintf("Add %s / %s, or the %q heading", cfg.Agents.StartMarker, cfg.Agents.EndMarker, cfg.Agents.Anchor)
	}
	return f.result("both table regions found")
}

func (c *MarkerCheck) region(f *findings, doc, label string, inj manifest.Injection) {
	if n := strings.Count(doc, inj.Region.Start); n > 1 {
		f.add(SeverityWarning, "%s: %d start markers, only the first region is updated", label, n)
	}
	for i, s := range inj.Strategies {
		if _, ok := s.Apply(doc, ""); ok {
			if i > 0 {
				f.add(SeverityInfo, "%s: no markers yet, first run will use %s", label, s.Name())
			}
			return
		}
	}
	f.add(SeverityError, "%s: no markers and no fallback anchor", label)
}

// FrontMatterCheck reports description files whose rows would be bare.
type FrontMatterCheck struct{ env Env }

var _ Check = (*FrontMatterCheck)(nil)

func (c *FrontMatterCheck) Name() string     { return "front-matter" }
func (c *FrontMatterCheck) Category() string { return "content" }

func (c *FrontMatterCheck) Run(ctx context.Context) *CheckResult {
	var f findings
	for _, src := range sources(c.env.Layout) {
		if !paths.IsDir(src.dir) {
			continue
		}
		cands, err := catalog.Discover(src.kind, src.dir)
		if err != nil {
			f.add(SeverityError, "%s: %v", src.kind.Label, err)
			continue
		}
		for _, cand := range cands {
			if ctx.Err() != nil {
				break
			}
			meta, err := frontmatter.ParseFile(filepath.Join(src.dir, filepath.FromSlash(cand.Rel)))
			if err != nil {
				f.add(SeverityError, "%s %s: %v", src.kind.Label, cand.ID, err)
				continue
			}
			if meta.Get(catalog.KeyDescription) == "" {
				f.add(SeverityWarning, "%s %s: no description", src.kind.Label, cand.ID)
			}
		}
	}
	if f.worst == SeverityWarning {
		f.hint = "Add a description: line to the file's front matter"
	}
	return f.result("every entry has a description")
}

// AllowListCheck reports allow-lists that exclude everything or name
// entries that do not exist.
type AllowListCheck struct{ env Env }

var _ Check = (*AllowListCheck)(nil)

func (c *AllowListCheck) Name() string     { return "allow-list" }
func (c *AllowListCheck) Category() string { return "content" }

func (c *AllowListCheck) Run(context.Context) *CheckResult {
	var f findings
	for _, src := range sources(c.env.Layout) {
		if !paths.IsDir(src.dir) {
			continue
		}
		list, err := allowlist.Load(filepath.Join(src.dir, src.kind.AllowListFile))
		if err != nil {
			f.add(SeverityError, "%s: %v", src.kind.AllowListFile, err)
			continue
		}
		if list == nil {
			continue
		}
		if list.Len() == 0 {
			f.add(SeverityWarning, "%s is empty: no %ss will be listed", src.kind.AllowListFile, src.kind.Label)
			continue
		}
		cands, err := catalog.Discover(src.kind, src.dir)
		if err != nil {
			f.add(SeverityError, "%s: %v", src.kind.Label, err)
			continue
		}
		for _, id := range list.Missing(catalog.IDs(cands)) {
			f.add(SeverityWarning, "active %s '%s' not found under %s/", src.kind.Label, id, c.env.Layout.Rel(src.dir))
		}
	}
	if f.worst == SeverityWarning {
		f.hint = "Run: agentdocs active select <skills|agents>"
	}
	return f.result("allow-lists match the files on disk")
}

// TagCheck lists skills without an approved tag prefix.
type TagCheck struct{ env Env }

var _ Check = (*TagCheck)(nil)

func (c *TagCheck) Name() string     { return "tags" }
func (c *TagCheck) Category() string { return "naming" }

func (c *TagCheck) Run(context.Context) *CheckResult {
	if !paths.IsDir(c.env.Layout.Skills) {
		return skipped("skills directory not found")
	}
	report, err := tags.Scan(c.env.Layout.Skills, tags.NewPolicy(c.env.Config.AllowedTags...))
	if err != nil {
		return &CheckResult{Status: SeverityError, Message: err.Error()}
	}
	if len(report.Untagged) == 0 {
		return &CheckResult{Status: SeverityPass, Message: fmt.Sprintf("all %d skills tagged", report.Checked)}
	}
	return &CheckResult{
		Status:  SeverityInfo,
		Message: fmt.Sprintf("%d of %d skills untagged", len(report.Untagged), report.Checked),
		Details: report.Untagged,
		FixHint: "Prefix folder names with one of: " + strings.Join(c.env.Config.AllowedTags, ", "),
	}
}

// FreshnessCheck reports whether generate would change the manifest.
type FreshnessCheck struct{ env Env }

var _ Check = (*FreshnessCheck)(nil)

func (c *FreshnessCheck) Name() string     { return "freshness" }
func (c *FreshnessCheck) Category() string { return "manifest" }

func (c *FreshnessCheck) Run(ctx context.Context) *CheckResult {
	g := generator.New(quiet(ctx))
	_, err := g.Run(ctx, generator.Options{Layout: c.env.Layout, Config: c.env.Config, Mode: generator.ModeCheck})
	switch {
	case err == nil:
		return &CheckResult{Status: SeverityPass, Message: "tables are up to date"}
	case errors.Is(err, errors.ErrOutOfDate):
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "tables are out of date",
			FixHint: "Run: agentdocs generate",
		}
	case errors.Is(err, errors.ErrMissingDirectory), errors.Is(err, errors.ErrMissingTarget), errors.Is(err, errors.ErrAnchorNotFound):
		return skipped("generation cannot run")
	default:
		return &CheckResult{Status: SeverityError, Message: err.Error()}
	}
}

// quiet returns the context logger when it logs debug output and a
// discarding logger otherwise.
func quiet(ctx context.Context) *slog.Logger {
	h := logging.FromContext(ctx).Handler()
	if h.Enabled(ctx, slog.LevelDebug) {
		return logging.FromContext(ctx)
	}
	return logging.NewDiscard()
}

type source struct {
	kind catalog.Kind
	dir  string
}

func sources(l paths.Layout) []source {
	return []source{
		{kind: catalog.Skills, dir: l.Skills},
		{kind: catalog.Agents, dir: l.Agents},
	}
}
