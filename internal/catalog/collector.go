package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/agentdocs/internal/allowlist"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/mdtable"
	"github.com/thoreinstein/agentdocs/pkg/frontmatter"
)

// Front matter keys read from description files.
const (
	KeyName        = "name"
	KeyDescription = "description"
)

// Entry is one row of a generated table. Name, Path and Description are
// already pipe-escaped.
type Entry struct {
	ID          string
	Name        string
	Path        string
	Description string
}

// Result is the outcome of collecting one source directory.
type Result struct {
	Kind    Kind
	Entries []Entry
	// Active is the loaded allow-list, nil when none exists.
	Active *allowlist.List
	// Discovered counts every candidate before allow-list filtering.
	Discovered int
	// Drift lists allow-listed identifiers with no source file, sorted.
	Drift []string
}

// Rows returns the table cells for each entry: name and path as inline code,
// description as text.
func (r *Result) Rows() [][]string {
	rows := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		rows[i] = []string{mdtable.Code(e.Name), mdtable.Code(e.Path), e.Description}
	}
	return rows
}

// Collector reads description files into entries.
type Collector struct {
	logger *slog.Logger
}

// NewCollector creates a Collector. A nil logger falls back to slog.Default.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Collect discovers kind under sourceDir and returns its entries. Paths in
// the entries are relative to repoRoot. An empty directory yields an empty
// result, not an error.
func (c *Collector) Collect(ctx context.Context, kind Kind, sourceDir, repoRoot string) (*Result, error) {
	active, err := allowlist.Load(filepath.Join(sourceDir, kind.AllowListFile))
	if err != nil {
		return nil, err
	}

	candidates, err := Discover(kind, sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, "discovering %s files in %s", kind.Label, sourceDir)
	}

	res := &Result{
		Kind:       kind,
		Active:     active,
		Discovered: len(candidates),
		Entries:    make([]Entry, 0, len(candidates)),
	}

	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !active.Contains(cand.ID) {
			c.logger.Debug("skipping inactive entry", "kind", kind.Label, "id", cand.ID)
			continue
		}

		entry, err := entryFor(kind, cand, sourceDir, repoRoot)
		if err != nil {
			return nil, err
		}
		res.Entries = append(res.Entries, entry)
	}

	slices.SortStableFunc(res.Entries, func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	res.Drift = active.Missing(IDs(candidates))
	for _, id := range res.Drift {
		c.logger.Debug("allow-listed entry not found", "kind", kind.Label, "id", id, "dir", sourceDir)
	}

	c.logger.Debug("collected entries",
		"kind", kind.Label,
		"discovered", res.Discovered,
		"included", len(res.Entries),
		"filtered", active != nil)

	return res, nil
}

func entryFor(kind Kind, cand Candidate, sourceDir, repoRoot string) (Entry, error) {
	abs := filepath.Join(sourceDir, filepath.FromSlash(cand.Rel))

	meta, err := frontmatter.ParseFile(abs)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "reading %s %q", kind.Label, cand.ID)
	}

	name := meta.Get(KeyName)
	if name == "" {
		name = cand.ID
	}

	rel, err := filepath.Rel(repoRoot, abs)
	if err != nil {
		rel = abs
	}

	return Entry{
		ID:          cand.ID,
		Name:        mdtable.EscapeCell(name),
		Path:        mdtable.EscapeCell(filepath.ToSlash(rel)),
		Description: mdtable.EscapeCell(meta.Get(KeyDescription)),
	}, nil
}
