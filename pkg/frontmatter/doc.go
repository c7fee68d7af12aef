// Package frontmatter extracts the leading key-value header block from
// Markdown description files.
//
// A header block is delimited by a "---" line at the very start of the
// document and the next "---" line. Each line inside the block of the form
// "key: value" contributes one entry. Parsing is deliberately lenient:
//
//   - blank lines are skipped
//   - lines starting with a space or tab (continuations, nested values) are skipped
//   - lines without a colon are skipped
//   - later duplicate keys overwrite earlier ones
//
// Documents without an opening delimiter, or with an unterminated block,
// produce an empty [Meta]. No parse errors exist.
//
// # Basic Usage
//
//	meta, err := frontmatter.ParseFile("skills/op-deploy/SKILL.md")
//	if err != nil {
//		return err
//	}
//	fmt.Println(meta.Get("name"), meta.Get("description"))
//
// Both Unix (LF) and Windows (CRLF) line endings are accepted.
package frontmatter
