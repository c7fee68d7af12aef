// Package mdtable renders Markdown pipe tables.
package mdtable

import "strings"

// SeparatorCell is the cell written under every header.
const SeparatorCell = "---"

// Render returns a Markdown pipe table: a header row, a separator row, then
// one line per row. Every line has exactly len(headers) cells; short rows are
// padded with empty cells and long rows are truncated. The result has no
// trailing newline.
//
// Cells are written verbatim. Use EscapeCell on untrusted text first.
func Render(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, line(headers))

	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = SeparatorCell
	}
	lines = append(lines, line(sep))

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		lines = append(lines, line(cells))
	}

	return strings.Join(lines, "\n")
}

func line(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// EscapeCell trims s and escapes every pipe so it cannot split a cell.
func EscapeCell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}

// Code wraps s in backticks for an inline code span.
func Code(s string) string {
	return "`" + s + "`"
}

// SplitRow splits a rendered table line back into its cells, honoring
// escaped pipes. The single-space padding around each cell is removed.
func SplitRow(row string) []string {
	row = strings.TrimPrefix(row, "| ")
	row = strings.TrimSuffix(row, " |")

	var (
		cells []string
		cur   strings.Builder
	)
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == '\\' && i+1 < len(row) && row[i+1] == '|' {
			cur.WriteString(`\|`)
			i++
			continue
		}
		if c == '|' {
			cells = append(cells, strings.TrimSuffix(cur.String(), " "))
			cur.Reset()
			if i+1 < len(row) && row[i+1] == ' ' {
				i++
			}
			continue
		}
		cur.WriteByte(c)
	}
	return append(cells, cur.String())
}

// Unescape reverses EscapeCell's pipe escaping.
func Unescape(s string) string {
	return strings.ReplaceAll(s, `\|`, "|")
}
