package frontmatter

import (
	"strings"

	"github.com/thoreinstein/agentdocs/pkg/fileutil"
)

const (
	// Delimiter is the line that opens and closes a header block.
	Delimiter = "---"

	// Separator splits a header line into key and value.
	Separator = ":"
)

var (
	opening = Delimiter + "\n"
	closing = "\n" + Delimiter + "\n"
)

// Meta holds the key-value pairs from a header block.
type Meta map[string]string

// Get returns the value for key, or "" when absent.
func (m Meta) Get(key string) string {
	return m[key]
}

// Parse extracts the header block from text.
func Parse(text string) Meta {
	meta := Meta{}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(text, opening) {
		return meta
	}

	// Search from the newline that ends the opening delimiter so an empty
	// block ("---\n---\n") still closes.
	start := len(Delimiter)
	end := strings.Index(text[start:], closing)
	if end == -1 {
		return meta
	}
	block := text[start : start+end]

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		key, value, ok := strings.Cut(line, Separator)
		if !ok {
			continue
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return meta
}

// ParseFile reads path with the standard size limit and parses its header.
// The only error path is I/O.
func ParseFile(path string) (Meta, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}
