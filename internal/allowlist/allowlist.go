// Package allowlist reads and writes the optional ACTIVE_*.txt files that
// restrict which skills and agents are published.
//
// An absent file means "no filtering" and is represented by a nil *List.
// A present but empty file is a non-nil List that excludes everything.
// All methods are safe to call on a nil *List.
package allowlist

import (
	"bufio"
	"bytes"
	"os"
	"slices"
	"strings"

	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/pkg/fileutil"
)

// CommentPrefix starts a line that is ignored.
const CommentPrefix = "#"

// List is a set of identifiers.
type List struct {
	items map[string]struct{}
}

// New returns a List holding ids.
func New(ids ...string) *List {
	l := &List{items: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		l.items[id] = struct{}{}
	}
	return l
}

// Load reads the allow-list at path. A missing file yields (nil, nil).
func Load(path string) (*List, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading allow-list %s", path)
	}
	return Parse(data), nil
}

// Parse reads one identifier per line. Blank lines and lines starting with
// CommentPrefix are skipped; surrounding whitespace is trimmed.
func Parse(data []byte) *List {
	l := New()
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		l.items[line] = struct{}{}
	}
	return l
}

// Contains reports whether id passes the filter. A nil List contains every id.
func (l *List) Contains(id string) bool {
	if l == nil {
		return true
	}
	_, ok := l.items[id]
	return ok
}

// Len returns the number of identifiers; 0 for a nil List.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns the identifiers sorted ascending.
func (l *List) Items() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.items))
	for id := range l.items {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Missing returns the identifiers in l that are not in discovered, sorted.
// A nil List has nothing missing.
func (l *List) Missing(discovered []string) []string {
	if l == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(discovered))
	for _, id := range discovered {
		seen[id] = struct{}{}
	}
	var missing []string
	for _, id := range l.Items() {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Write atomically stores ids at path, sorted and de-duplicated, preceded by
// header lines rendered as comments.
func Write(path string, ids []string, header ...string) error {
	var b strings.Builder
	for _, h := range header {
		b.WriteString(CommentPrefix)
		if h != "" {
			b.WriteString(" ")
			b.WriteString(h)
		}
		b.WriteString("\n")
	}
	for _, id := range New(ids...).Items() {
		if strings.TrimSpace(id) == "" {
			continue
		}
		b.WriteString(id)
		b.WriteString("\n")
	}
	return errors.Wrapf(fileutil.ReplaceFile(path, []byte(b.String())), "writing allow-list %s", path)
}
