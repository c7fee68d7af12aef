// Package manifest places generated tables into marker-delimited regions of
// a Markdown document.
//
// A [Region] is a pair of literal marker comments. The content between the
// markers is owned by the generator and rewritten on every run:
//
//	<!-- SKILLS_TABLE:START -->
//	| Context | Read this file | Description |
//	| --- | --- | --- |
//	<!-- SKILLS_TABLE:END -->
//
// Where a region goes is decided by an ordered list of [Strategy] values.
// Each strategy either rewrites the document or declines; [Inject] returns
// the first rewrite and fails with [errors.ErrAnchorNotFound] when every
// strategy declines. The built-in strategies are:
//
//   - [MarkerPair]: replace an existing region in place
//   - [Placeholder]: replace a literal placeholder with a new region
//   - [SectionAnchor]: insert a titled section holding a new region before a heading
//
// [Apply] runs several injections against one in-memory document and either
// returns the fully updated text or an error; it never returns a partial
// update.
package manifest
