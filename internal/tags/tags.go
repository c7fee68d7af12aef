package tags

import (
	"slices"
	"strings"

	"github.com/thoreinstein/agentdocs/internal/catalog"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/paths"
)

// Separator splits a folder name into tag and rest.
const Separator = "-"

// DefaultTags are the approved tag prefixes.
var DefaultTags = []string{"fe", "op", "qa", "sec"}

// Policy decides which folder names are tagged.
type Policy struct {
	Allowed map[string]struct{}
}

// NewPolicy returns a policy accepting the given tags.
func NewPolicy(allowed ...string) Policy {
	set := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		set[t] = struct{}{}
	}
	return Policy{Allowed: set}
}

// DefaultPolicy accepts DefaultTags.
func DefaultPolicy() Policy {
	return NewPolicy(DefaultTags...)
}

// IsTagged reports whether name starts with an allowed tag followed by the
// separator. Only the first separator counts: "op-deploy-prod" has tag "op".
func (p Policy) IsTagged(name string) bool {
	tag, _, found := strings.Cut(name, Separator)
	if !found {
		return false
	}
	_, ok := p.Allowed[tag]
	return ok
}

// Tags returns the allowed tags, sorted.
func (p Policy) Tags() []string {
	out := make([]string, 0, len(p.Allowed))
	for t := range p.Allowed {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Report is the outcome of a tag check.
type Report struct {
	Checked  int      `json:"checked" yaml:"checked" toml:"checked"`
	Tagged   []string `json:"tagged" yaml:"tagged" toml:"tagged"`
	Untagged []string `json:"untagged" yaml:"untagged" toml:"untagged"`
}

// Classify splits names into tagged and untagged, keeping input order.
func (p Policy) Classify(names []string) *Report {
	r := &Report{
		Checked:  len(names),
		Tagged:   []string{},
		Untagged: []string{},
	}
	for _, n := range names {
		if p.IsTagged(n) {
			r.Tagged = append(r.Tagged, n)
		} else {
			r.Untagged = append(r.Untagged, n)
		}
	}
	return r
}

// Scan classifies every skill folder under skillsDir that holds a SKILL.md.
// Folders are checked in sorted order.
func Scan(skillsDir string, p Policy) (*Report, error) {
	if !paths.IsDir(skillsDir) {
		return nil, errors.Wrapf(errors.ErrMissingDirectory, "skills directory %s", skillsDir)
	}
	cands, err := catalog.Discover(catalog.Skills, skillsDir)
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", skillsDir)
	}
	return p.Classify(catalog.IDs(cands)), nil
}

// Failed reports whether the report fails in the given mode.
func (r *Report) Failed(strict bool) bool {
	return strict && len(r.Untagged) > 0
}

// Err returns an error marked errors.ErrUntagged when the report fails in the
// given mode, nil otherwise.
func (r *Report) Err(strict bool) error {
	if !r.Failed(strict) {
		return nil
	}
	return errors.Mark(
		errors.New("untagged skills found with --strict-untagged. Rename or explicitly accept them."),
		errors.ErrUntagged,
	)
}
