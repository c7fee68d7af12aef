package manifest

import (
	"strings"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// Strategy places a filled region into a document.
type Strategy interface {
	// Name identifies the strategy in error messages.
	Name() string
	// Apply returns the rewritten document and true, or the input and false
	// when the strategy cannot find what it anchors on.
	Apply(doc, inner string) (string, bool)
}

// MarkerPair replaces the first existing region, markers included.
type MarkerPair struct {
	Region Region
}

func (s MarkerPair) Name() string {
	return "markers " + s.Region.Start + " ... " + s.Region.End
}

func (s MarkerPair) Apply(doc, inner string) (string, bool) {
	start, end, ok := s.Region.Find(doc)
	if !ok {
		return doc, false
	}
	return doc[:start] + s.Region.Block(inner) + doc[end:], true
}

// Placeholder replaces the first occurrence of Literal with a new region.
type Placeholder struct {
	Region  Region
	Literal string
}

func (s Placeholder) Name() string {
	return "placeholder " + `"` + s.Literal + `"`
}

func (s Placeholder) Apply(doc, inner string) (string, bool) {
	if s.Literal == "" || !strings.Contains(doc, s.Literal) {
		return doc, false
	}
	return strings.Replace(doc, s.Literal, s.Region.Block(inner), 1), true
}

// SectionAnchor inserts a titled section holding a new region immediately
// before the first line that equals Anchor (a heading such as
// "# How to use skills"). The anchor must start a line that is not the first
// line of the document.
type SectionAnchor struct {
	Region Region
	Anchor string
	Title  string
	Intro  string
}

func (s SectionAnchor) Name() string {
	return "section anchor " + `"` + s.Anchor + `"`
}

func (s SectionAnchor) Apply(doc, inner string) (string, bool) {
	if s.Anchor == "" {
		return doc, false
	}
	idx := strings.Index(doc, "\n"+s.Anchor)
	if idx == -1 {
		return doc, false
	}
	return doc[:idx] + "\n" + s.Section(inner) + doc[idx:], true
}

// Section renders the inserted section: title, intro, region, blank line.
func (s SectionAnchor) Section(inner string) string {
	return strings.Join([]string{
		s.Title,
		"",
		s.Intro,
		"",
		s.Region.Block(inner),
		"",
	}, "\n")
}

// Inject tries each strategy in order and returns the first rewrite.
// When none applies the error wraps errors.ErrAnchorNotFound and lists the
// strategies that were tried.
func Inject(doc, inner string, strategies ...Strategy) (string, error) {
	tried := make([]string, 0, len(strategies))
	for _, s := range strategies {
		if out, ok := s.Apply(doc, inner); ok {
			return out, nil
		}
		tried = append(tried, s.Name())
	}
	return doc, errors.Wrapf(errors.ErrAnchorNotFound, "tried %s", strings.Join(tried, ", "))
}
