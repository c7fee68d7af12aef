package catalog

import (
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// Kind describes how one type of description file is laid out on disk.
type Kind struct {
	// Label is the singular noun used in messages ("skill").
	Label string
	// Pattern is the doublestar pattern matched inside the source directory.
	Pattern string
	// AllowListFile is the optional allow-list file inside the source directory.
	AllowListFile string
	// Identify derives the identifier from a slash path matched by Pattern.
	Identify func(rel string) string
}

// Skills are folders containing a SKILL.md file.
var Skills = Kind{
	Label:         "skill",
	Pattern:       "*/SKILL.md",
	AllowListFile: "ACTIVE_SKILLS.txt",
	Identify: func(rel string) string {
		return path.Base(path.Dir(rel))
	},
}

// Agents are Markdown files directly inside the agents directory.
var Agents = Kind{
	Label:         "agent",
	Pattern:       "*.md",
	AllowListFile: "ACTIVE_AGENTS.txt",
	Identify: func(rel string) string {
		return strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	},
}

// Candidate is a discovered description file.
type Candidate struct {
	// ID is the identifier used for allow-list matching.
	ID string
	// Rel is the slash path relative to the source directory.
	Rel string
}

// Discover lists the candidates for kind under dir, sorted by path.
// Directories that happen to match the pattern are ignored.
func Discover(kind Kind, dir string) ([]Candidate, error) {
	return discoverFS(kind, os.DirFS(dir))
}

func discoverFS(kind Kind, fsys fs.FS) ([]Candidate, error) {
	matches, err := doublestar.Glob(fsys, kind.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "matching %s", kind.Pattern)
	}
	slices.Sort(matches)

	out := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		out = append(out, Candidate{ID: kind.Identify(m), Rel: m})
	}
	return out, nil
}

// IDs returns the identifiers of cs in order.
func IDs(cs []Candidate) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}
